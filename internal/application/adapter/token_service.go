// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"github.com/google/uuid"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// TokenClaims holds the identity carried by an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Role   entity.UserRole
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// Generate creates a signed access token for a user.
	Generate(user *entity.User) (string, error)

	// Validate parses and verifies an access token.
	Validate(token string) (*TokenClaims, error)
}
