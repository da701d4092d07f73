package usecase

import "context"

// Health status values reported by the probes.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// LivenessOutput identifies the running service.
type LivenessOutput struct {
	Status  string
	Service string
	Version string
}

// HealthUsecase backs the liveness and readiness probes.
type HealthUsecase interface {
	Liveness() *LivenessOutput

	// Readiness returns an error wrapping ErrServiceUnavailable when the database does not answer.
	Readiness(ctx context.Context) error
}
