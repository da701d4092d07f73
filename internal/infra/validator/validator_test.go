package validator

import (
	"strings"
	"testing"

	domainerrors "studymind/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(signup{Email: "a@x.io", Username: "alice", Password: "s3cretpass"}))
	assert.NoError(t, v.Validate(signup{Email: "a@x.io", Username: "a.b_c-d", Password: strings.Repeat("p", 72)}))
}

func TestValidator_Invalid(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		input      signup
		wantDetail string
	}{
		{name: "bad email", input: signup{Email: "nope", Username: "alice", Password: "s3cretpass"}, wantDetail: "email: must be a valid email address"},
		{name: "short username", input: signup{Email: "a@x.io", Username: "al", Password: "s3cretpass"}, wantDetail: "username: must be 3-50"},
		{name: "username with space", input: signup{Email: "a@x.io", Username: "al ice", Password: "s3cretpass"}, wantDetail: "username:"},
		{name: "long username", input: signup{Email: "a@x.io", Username: strings.Repeat("a", 51), Password: "s3cretpass"}, wantDetail: "username:"},
		{name: "short password", input: signup{Email: "a@x.io", Username: "alice", Password: "short"}, wantDetail: "password: must be at least 8 characters"},
		{name: "long password", input: signup{Email: "a@x.io", Username: "alice", Password: strings.Repeat("p", 73)}, wantDetail: "password: must be at most 72 characters"},
		{name: "missing", input: signup{}, wantDetail: "email: is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.wantDetail)
		})
	}
}
