package impl

import (
	"context"
	"testing"

	"studymind/config"
	domainerrors "studymind/internal/domain/errors"
	mockRepo "studymind/internal/mocks/repository"
	"studymind/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestHealthService(t *testing.T) (usecase.HealthUsecase, *mockRepo.MockHealthRepository) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "StudyMind AI API"
	cfg.Env.Version = "0.1.0"

	repo := mockRepo.NewMockHealthRepository(t)

	return NewHealthService(HealthServiceParams{
		HealthRepo: repo,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	}), repo
}

func TestHealthService_Liveness(t *testing.T) {
	svc, _ := newTestHealthService(t)

	out := svc.Liveness()

	assert.Equal(t, usecase.StatusHealthy, out.Status)
	assert.Equal(t, "StudyMind AI API", out.Service)
	assert.Equal(t, "0.1.0", out.Version)
}

func TestHealthService_Readiness(t *testing.T) {
	svc, repo := newTestHealthService(t)
	repo.EXPECT().Ping(mock.Anything).Return(nil).Once()

	assert.NoError(t, svc.Readiness(context.Background()))
}

func TestHealthService_ReadinessHidesCause(t *testing.T) {
	svc, repo := newTestHealthService(t)
	repo.EXPECT().Ping(mock.Anything).Return(errors.New("dial tcp 10.0.0.5:5432: connection refused")).Once()

	err := svc.Readiness(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
	assert.NotContains(t, err.Error(), "10.0.0.5")
}

func TestHealthService_ReadinessUsesDeadline(t *testing.T) {
	svc, repo := newTestHealthService(t)
	repo.EXPECT().Ping(mock.Anything).
		RunAndReturn(func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)

			return nil
		}).Once()

	assert.NoError(t, svc.Readiness(context.Background()))
}
