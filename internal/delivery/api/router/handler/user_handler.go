// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"studymind/internal/delivery/api/response"
	deliverycontext "studymind/internal/delivery/context"
	"studymind/internal/domain/entity"
	domainerrors "studymind/internal/domain/errors"
	"studymind/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserResponse is the public view of an account. The password hash has no field here.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles POST /auth/register.
func (h *UserHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, newUserResponse(output.User))
}

// Login handles POST /auth/login. Credentials may come as JSON, a form body or query parameters.
func (h *UserHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	// Body values win over query values.
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &TokenResponse{
		AccessToken: output.AccessToken.Token,
		TokenType:   output.AccessToken.TokenType,
		ExpiresIn:   output.AccessToken.ExpiresIn,
	})
}

// Me handles GET /users/me for the bearer of a valid token.
func (h *UserHandler) Me(c echo.Context) error {
	username, ok := deliverycontext.GetUsername(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.uc.Me(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, newUserResponse(user))
}
