package middleware

import (
	"log/slog"

	deliverycontext "studymind/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns every request an ID and a logger tagged with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a sane X-Request-Id from the client or generates one, echoes it on
// the response and stores it with a child logger on the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := deliverycontext.SanitizeRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
