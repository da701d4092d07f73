package middleware

import (
	"log/slog"
	"net/http"

	"studymind/internal/delivery/api/response"
	deliverycontext "studymind/internal/delivery/context"
	domainerrors "studymind/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			log.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("error", err.Error()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			notFound := domainerrors.ErrNotFound
			_ = response.Error(c, notFound.HTTPCode(), notFound.ErrorCode(), notFound.Message(), nil)

			return
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Unknown errors are logged in full and answered with a generic 500.
	log.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}
