package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "studymind/internal/delivery/context"
	domainerrors "studymind/internal/domain/errors"
	"studymind/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "bearer "

// AuthMiddleware verifies bearer tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate stores the token subject on the context. Every failure, whether
// missing header, malformed, tampered or expired token, yields the same 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthorized
		}

		username, err := m.tokenSvc.Verify(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Token rejected", slog.String("reason", err.Error()))

			return domainerrors.ErrUnauthorized
		}

		deliverycontext.SetUsername(c, username)

		return next(c)
	}
}
