package postgres

import (
	"context"
	"database/sql/driver"
	"regexp"
	"strings"

	domainerrors "studymind/internal/domain/errors"
	"studymind/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes and classes we react to.
const (
	pgUniqueViolation       = "23505"
	pgConnectionException   = "08"
	pgOperatorIntervention  = "57P"
	constraintUsersEmail    = "users_email_key"
	constraintUsersUsername = "users_username_key"
)

// detailKeyPattern extracts the column list from "Key (email)=(a@b.c) already exists."
var detailKeyPattern = regexp.MustCompile(`Key \(([^)]+)\)=`)

// classifyError turns a driver or GORM error into the repository vocabulary.
// op names the failed operation and ends up in the error details.
func classifyError(err error, op string) error {
	if err == nil {
		return nil
	}

	if violation := uniqueViolation(err); violation != nil {
		return violation
	}

	if isUnavailable(err) {
		return errors.Wrapf(repository.ErrUnavailable, "%s: %v", op, err)
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}

// uniqueViolation returns a *repository.ConstraintViolationError when err reports a duplicate key.
func uniqueViolation(err error) *repository.ConstraintViolationError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &repository.ConstraintViolationError{
			Column:     violatedColumn(pgErr.ConstraintName, pgErr.Detail),
			Constraint: pgErr.ConstraintName,
			Err:        err,
		}
	}

	// With TranslateError enabled GORM hides the driver error behind a sentinel.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &repository.ConstraintViolationError{Err: err}
	}

	return nil
}

// violatedColumn maps a constraint to the unique column it guards, falling back to the error detail.
func violatedColumn(constraint, detail string) string {
	switch constraint {
	case constraintUsersEmail:
		return repository.ColumnEmail
	case constraintUsersUsername:
		return repository.ColumnUsername
	}

	if match := detailKeyPattern.FindStringSubmatch(detail); len(match) == 2 {
		if column := knownColumn(match[1]); column != "" {
			return column
		}
	}

	return knownColumn(constraint)
}

func knownColumn(s string) string {
	lowered := strings.ToLower(s)
	switch {
	case strings.Contains(lowered, repository.ColumnEmail):
		return repository.ColumnEmail
	case strings.Contains(lowered, repository.ColumnUsername):
		return repository.ColumnUsername
	default:
		return ""
	}
}

func isUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, pgConnectionException) ||
			strings.HasPrefix(pgErr.Code, pgOperatorIntervention)
	}

	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		pgconn.Timeout(err)
}
