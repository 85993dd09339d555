// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wishlist/internal/domain/entity"
)

// UserUsecase defines the interface for account-related business operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*LoginOutput, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create a new account.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name,omitempty"`
	Gender    string `json:"gender,omitempty" validate:"omitempty,oneof=M F N"`
	Birthday  string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// LoginInput defines the credentials for an authentication attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries a refresh token to be exchanged for a new pair.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput carries a freshly issued token pair. ExpiresIn reports the
// refresh token lifetime in seconds, after which a new login is required.
type LoginOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
