// Package auth contains the authentication use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// LoginInput represents the input for a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the output of a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// LoginUseCase handles login logic.
type LoginUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute verifies the credentials and issues an access token. An unknown
// username and a wrong password produce the same error so the response does
// not leak which usernames exist.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidCredentials,
				"invalid credentials",
				domainerror.ErrInvalidCredentials,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwordService.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid credentials",
			domainerror.ErrInvalidCredentials,
		)
	}

	token, err := uc.tokenService.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginOutput{Token: token, User: user}, nil
}
