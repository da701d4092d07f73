// Package response renders HTTP bodies. Successful bodies are plain JSON objects;
// errors share one envelope.
package response

import (
	"net/http"

	deliverycontext "studymind/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// HeaderWWWAuthenticate is sent with every 401.
const (
	HeaderWWWAuthenticate = "WWW-Authenticate"
	bearerChallenge       = "Bearer"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// JSON writes data as the whole response body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if detail, ok := details.(string); ok && detail == "" {
		details = nil
	}

	if statusCode == http.StatusUnauthorized {
		c.Response().Header().Set(HeaderWWWAuthenticate, bearerChallenge)
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BindingError returns a 400 for a body that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
