// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"studymind/config"
	domainerrors "studymind/internal/domain/errors"
	"studymind/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt looks at.
const maxPasswordBytes = 72

// equalizePassword seeds the dummy hash compared against when a user does not exist.
const equalizePassword = "studymind-equalize-dummy"

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	dummyHash []byte
}

// NewBcryptHasher is the constructor for bcryptHasher.
// A zero cost in the configuration selects bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	return newBcryptHasher(cfg.Security.BcryptCost)
}

func newBcryptHasher(cost int) (*bcryptHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(equalizePassword), cost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare bcrypt hasher")
	}

	return &bcryptHasher{
		cost:      cost,
		dummyHash: dummy,
	}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", domainerrors.ErrPasswordTooLong
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	if len(password) > maxPasswordBytes {
		return false
	}

	// err is nil only if the password and hash match; a malformed hash is just a mismatch.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Equalize spends one comparison against a dummy hash of the configured cost.
func (h *bcryptHasher) Equalize(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}
