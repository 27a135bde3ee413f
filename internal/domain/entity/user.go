// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a treasury user.
type UserRole string

const (
	UserRoleAdmin     UserRole = "مسؤول"
	UserRoleTreasurer UserRole = "أمين صندوق"
)

// User represents an application user.
type User struct {
	ID           uuid.UUID
	Name         string
	Username     string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity with an already-hashed password.
func NewUser(name, username, passwordHash string, role UserRole) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Name:         name,
		Username:     username,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
