package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"studymind/config"
	deliverycontext "studymind/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Outside debug mode
// only server errors are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Render now so the logged status is the one the client sees.
			c.Error(err)
		}

		if m.debug || c.Response().Status >= http.StatusInternalServerError {
			m.logRequest(c, start, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	// Query strings are left out: login accepts credentials there.
	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if err != nil {
		fields = append(fields, slog.String("error", err.Error()))
	}

	logLevel := slog.LevelInfo
	if res.Status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}
	if res.Status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
