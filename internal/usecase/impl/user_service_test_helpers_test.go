package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"studymind/internal/domain/entity"
	"studymind/internal/domain/repository"
	"studymind/internal/infra/validator"
	mockRepo "studymind/internal/mocks/repository"
	mockSvc "studymind/internal/mocks/service"
	"studymind/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	txUserRepo   *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fixtures := userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		txUserRepo:   mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	fixtures.service = NewUserService(UserServiceParams{
		TxManager:    fixtures.txManager,
		UserRepo:     fixtures.userRepo,
		Hasher:       fixtures.hasher,
		TokenService: fixtures.tokenService,
		Publisher:    fixtures.publisher,
		Validator:    validator.New(),
		Logger:       newDiscardLogger(),
	})

	return fixtures
}

// expectTransaction runs the registration callback against txUserRepo.
func (f userServiceFixtures) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(f.txUserRepo)

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func storedUser() *entity.User {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	return &entity.User{
		ID:           1,
		Email:        "alice@x.io",
		Username:     "alice",
		PasswordHash: "$2a$12$hashed",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:    "alice@x.io",
		Username: "alice",
		Password: "s3cretpass",
	}
}
