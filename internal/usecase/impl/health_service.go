package impl

import (
	"context"
	"log/slog"
	"time"

	"studymind/config"
	deliverycontext "studymind/internal/delivery/context"
	domainerrors "studymind/internal/domain/errors"
	"studymind/internal/domain/repository"
	"studymind/internal/usecase"

	"go.uber.org/fx"
)

const readinessTimeout = 3 * time.Second

type healthService struct {
	healthRepo repository.HealthRepository
	service    string
	version    string
	logger     *slog.Logger
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	HealthRepo repository.HealthRepository
	Config     *config.Config
	Logger     *slog.Logger
}

func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		healthRepo: params.HealthRepo,
		service:    params.Config.Env.ServiceName,
		version:    params.Config.Env.Version,
		logger:     params.Logger,
	}
}

func (srv *healthService) Liveness() *usecase.LivenessOutput {
	return &usecase.LivenessOutput{
		Status:  usecase.StatusHealthy,
		Service: srv.service,
		Version: srv.version,
	}
}

// Readiness pings the database with a short deadline. The cause is logged, never returned to clients.
func (srv *healthService) Readiness(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	if err := srv.healthRepo.Ping(pingCtx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Database readiness check failed",
			slog.String("error", err.Error()),
		)

		return domainerrors.ErrServiceUnavailable.WrapMessage("database ping failed")
	}

	return nil
}
