// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"fmt"

	"studymind/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned by the finders when no row matches.
	ErrUserNotFound = errors.New("user not found")

	// ErrConstraintViolation matches every *ConstraintViolationError.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnavailable is returned when the database cannot be reached.
	ErrUnavailable = errors.New("database unavailable")
)

// Unique columns of the users table, as reported in ConstraintViolationError.Column.
const (
	ColumnEmail    = "email"
	ColumnUsername = "username"
)

// ConstraintViolationError is returned when a write is rejected by a uniqueness rule.
// Column is empty when the offending column could not be determined.
type ConstraintViolationError struct {
	Column     string
	Constraint string
	Err        error
}

func (e *ConstraintViolationError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("unique constraint %q violated", e.Constraint)
	}

	return fmt.Sprintf("unique constraint on %s violated", e.Column)
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and returns the stored record with its ID and timestamps.
	// A duplicate email or username yields a *ConstraintViolationError.
	Create(ctx context.Context, user *entity.NewUser) (*entity.User, error)
}
