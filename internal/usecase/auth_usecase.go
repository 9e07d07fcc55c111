// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the signed bearer token after a successful
// registration or login.
type AuthOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines the interface for the authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a user record for a previously unseen email and
	// returns a token for the new account.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies stored credentials and returns a fresh token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
