package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetingHandler(t *testing.T) {
	h := NewGreetingHandler()

	tests := []struct {
		name    string
		handler echo.HandlerFunc
		want    string
	}{
		{name: "student", handler: h.HelloStudent, want: "Hello, student! 🎓 Let's study together."},
		{name: "parent", handler: h.HelloParent, want: "Hello, parent! 👋 Welcome to StudyMind."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(http.MethodGet, "/api/v1/hello/"+tt.name, nil, "")

			require.NoError(t, tt.handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}
