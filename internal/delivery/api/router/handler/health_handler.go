package handler

import (
	"net/http"

	"studymind/internal/delivery/api/response"
	"studymind/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	databaseConnected    = "connected"
	databaseDisconnected = "disconnected"
)

// LivenessResponse is the body of GET /health.
type LivenessResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ReadinessResponse is the body of GET /health/db.
type ReadinessResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type HealthHandler struct {
	uc usecase.HealthUsecase
}

func NewHealthHandler(uc usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

// Liveness answers without touching the database.
func (h *HealthHandler) Liveness(c echo.Context) error {
	out := h.uc.Liveness()

	return response.JSON(c, http.StatusOK, &LivenessResponse{
		Status:  out.Status,
		Service: out.Service,
		Version: out.Version,
	})
}

// Readiness reports database connectivity; the failure cause stays in the logs.
func (h *HealthHandler) Readiness(c echo.Context) error {
	if err := h.uc.Readiness(c.Request().Context()); err != nil {
		return response.JSON(c, http.StatusServiceUnavailable, &ReadinessResponse{
			Status:   usecase.StatusUnhealthy,
			Database: databaseDisconnected,
		})
	}

	return response.JSON(c, http.StatusOK, &ReadinessResponse{
		Status:   usecase.StatusHealthy,
		Database: databaseConnected,
	})
}
