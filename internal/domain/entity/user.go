// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single durable record of the system: one row per registered
// email address. The password is never stored in plaintext; PasswordHash
// holds the bcrypt output, which embeds its own salt and cost parameters.
type User struct {
	ID           uuid.UUID // The store-assigned identifier, used as the token subject.
	Email        string    // The unique login identifier, case-sensitive as stored.
	PasswordHash string    // The bcrypt hash of the user's password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}
