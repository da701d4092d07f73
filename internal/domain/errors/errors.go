package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Registration
	ErrDuplicateEmail = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_EMAIL",
		"Email already registered",
		"",
	)

	ErrDuplicateUsername = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_USERNAME",
		"Username already taken",
		"",
	)

	// ErrUserAlreadyExists covers a unique violation whose column could not be determined.
	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"Email or username already registered",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password could not be processed",
		"",
	)

	ErrPasswordTooLong = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_LONG",
		"Password must be at most 72 bytes",
		"",
	)

	// Authentication
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect username or password",
		"",
	)

	// ErrUnauthorized is the single outcome for every token failure.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Could not validate credentials",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Access token could not be issued",
		"",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrServiceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"Service temporarily unavailable",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
