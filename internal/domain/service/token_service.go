package service

import (
	"time"

	"github.com/pkg/errors"
)

// Token verification failures. Callers outside the delivery layer may tell
// them apart; HTTP responses never do.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
)

// TokenService issues and verifies signed, expiring bearer tokens.
type TokenService interface {
	// Issue signs a token for subject that expires after ttl.
	Issue(subject string, ttl time.Duration) (string, error)

	// Verify returns the subject embedded in a valid token, or one of the
	// ErrToken* errors.
	Verify(token string) (string, error)

	// AccessTokenTTL returns the configured lifetime of login tokens.
	AccessTokenTTL() time.Duration
}
