package handler

import (
	"net/http"

	"studymind/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// GreetingResponse carries a welcome message for the frontend.
type GreetingResponse struct {
	Message string `json:"message"`
}

// GreetingHandler serves the static welcome messages of the landing pages.
type GreetingHandler struct{}

func NewGreetingHandler() *GreetingHandler {
	return &GreetingHandler{}
}

func (h *GreetingHandler) HelloStudent(c echo.Context) error {
	return response.JSON(c, http.StatusOK, &GreetingResponse{Message: "Hello, student! 🎓 Let's study together."})
}

func (h *GreetingHandler) HelloParent(c echo.Context) error {
	return response.JSON(c, http.StatusOK, &GreetingResponse{Message: "Hello, parent! 👋 Welcome to StudyMind."})
}
