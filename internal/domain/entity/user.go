// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is an account that can log in with a username and password.
type User struct {
	ID           uint      // Server-assigned identifier.
	Email        string    // Unique contact email.
	Username     string    // Unique login name, also the token subject.
	PasswordHash string    // bcrypt hash of the password; never the plaintext.
	CreatedAt    time.Time // Set by the store adapter on insert.
	UpdatedAt    time.Time // Set by the store adapter on every write.
}

// NewUser is the record handed to the store when registering an account.
type NewUser struct {
	Email        string
	Username     string
	PasswordHash string
}
