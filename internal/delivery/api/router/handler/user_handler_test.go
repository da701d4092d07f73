package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	deliverycontext "studymind/internal/delivery/context"
	"studymind/internal/domain/entity"
	domainerrors "studymind/internal/domain/errors"
	mockusecase "studymind/internal/mocks/usecase"
	"studymind/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target string, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testUser() *entity.User {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	return &entity.User{
		ID:           7,
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

func TestUserHandler_Register(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Email: "alice@example.com", Username: "alice", Password: "secret123"}).
		Return(&usecase.RegisterOutput{User: testUser()}, nil)

	body := `{"email":"alice@example.com","username":"alice","password":"secret123"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body), echo.MIMEApplicationJSON)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	var got UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, got.CreatedAt.Equal(testUser().CreatedAt))
}

func TestUserHandler_Register_UsecaseError(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateUsername)

	body := `{"email":"bob@example.com","username":"alice","password":"secret123"}`
	c, _ := newTestContext(http.MethodPost, "/register", strings.NewReader(body), echo.MIMEApplicationJSON)

	err := h.Register(c)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func TestUserHandler_Register_MalformedBody(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	c, rec := newTestContext(http.MethodPost, "/register", strings.NewReader(`{"email":`), echo.MIMEApplicationJSON)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_Login(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		body        string
		contentType string
		want        usecase.LoginInput
	}{
		{
			name:        "json body",
			target:      "/login",
			body:        `{"username":"alice","password":"secret123"}`,
			contentType: echo.MIMEApplicationJSON,
			want:        usecase.LoginInput{Username: "alice", Password: "secret123"},
		},
		{
			name:        "form body",
			target:      "/login",
			body:        url.Values{"username": {"alice"}, "password": {"secret123"}}.Encode(),
			contentType: echo.MIMEApplicationForm,
			want:        usecase.LoginInput{Username: "alice", Password: "secret123"},
		},
		{
			name:   "query parameters",
			target: "/login?username=alice&password=secret123",
			want:   usecase.LoginInput{Username: "alice", Password: "secret123"},
		},
		{
			name:        "body wins over query",
			target:      "/login?username=mallory&password=nope",
			body:        `{"username":"alice","password":"secret123"}`,
			contentType: echo.MIMEApplicationJSON,
			want:        usecase.LoginInput{Username: "alice", Password: "secret123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockUserUsecase(t)
			h := NewUserHandler(uc, slog.Default())

			want := tt.want
			uc.EXPECT().Login(mock.Anything, &want).Return(&usecase.LoginOutput{
				AccessToken: entity.AccessToken{Token: "signed.jwt.token", TokenType: entity.TokenTypeBearer, ExpiresIn: 1800},
			}, nil)

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			c, rec := newTestContext(http.MethodPost, tt.target, body, tt.contentType)

			require.NoError(t, h.Login(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var got TokenResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "signed.jwt.token", got.AccessToken)
			assert.Equal(t, "bearer", got.TokenType)
			assert.Equal(t, int64(1800), got.ExpiresIn)
		})
	}
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := newTestContext(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"wrong-pass"}`), echo.MIMEApplicationJSON)

	err := h.Login(c)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserHandler_Me(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, slog.Default())

		uc.EXPECT().Me(mock.Anything, "alice").Return(testUser(), nil)

		c, rec := newTestContext(http.MethodGet, "/api/v1/users/me", nil, "")
		deliverycontext.SetUsername(c, "alice")

		require.NoError(t, h.Me(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
		assert.NotContains(t, rec.Body.String(), "$2a$")
	})

	t.Run("no subject on context", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, slog.Default())

		c, _ := newTestContext(http.MethodGet, "/api/v1/users/me", nil, "")

		err := h.Me(c)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}
