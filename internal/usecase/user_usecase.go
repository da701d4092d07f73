// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"studymind/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Username string `json:"username" form:"username" validate:"required,username"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=72"`
}

// LoginInput defines the credentials exchanged for an access token.
type LoginInput struct {
	Username string `json:"username" form:"username" query:"username" validate:"required"`
	Password string `json:"password" form:"password" query:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the access token issued at login.
type LoginOutput struct {
	AccessToken entity.AccessToken
}

// UserUsecase defines the interface for account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates an account with a unique email and username.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login exchanges a username and password for a bearer token.
	// Unknown users and wrong passwords fail identically.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Me resolves the subject of a verified token to the stored user.
	Me(ctx context.Context, username string) (*entity.User, error)
}
