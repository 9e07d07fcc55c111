package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is the single error returned for any token verification
// failure. Malformed structure, bad signature, wrong algorithm and expiry all
// collapse into it so callers cannot build an oracle on the rejection cause.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the payload embedded in issued tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-bounded token binding the user's identity.
	Issue(userID uuid.UUID, email string) (string, error)

	// Verify checks signature integrity and expiry, returning the embedded
	// claims on success and ErrInvalidToken on any failure.
	Verify(tokenString string) (*Claims, error)
}
