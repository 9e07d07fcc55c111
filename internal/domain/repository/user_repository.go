// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authgate/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	// Returns ErrUserNotFound when no record exists for that email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user record. The store's unique index on email is
	// the authority on duplicates: a conflicting insert surfaces as a domain
	// conflict error, never as a raw driver error.
	Create(ctx context.Context, user *entity.User) error
}
