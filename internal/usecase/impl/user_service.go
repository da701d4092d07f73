// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "studymind/internal/delivery/context"
	"studymind/internal/domain/entity"
	domainerrors "studymind/internal/domain/errors"
	"studymind/internal/domain/repository"
	"studymind/internal/domain/service"
	"studymind/internal/infra/validator"
	"studymind/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	validator    *validator.Validator
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Validator    *validator.Validator
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		validator:    params.Validator,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the input and, inside one transaction, checks email and
// username before hashing the password and inserting the account.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := ensureAbsent(userRepo.FindByEmail(ctx, input.Email)); err != nil {
			if errors.Is(err, errTaken) {
				return domainerrors.ErrDuplicateEmail
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		if err := ensureAbsent(userRepo.FindByUsername(ctx, input.Username)); err != nil {
			if errors.Is(err, errTaken) {
				return domainerrors.ErrDuplicateUsername
			}

			return errors.Wrap(err, "failed to find user by username")
		}

		hash, err := srv.hashPassword(input.Password)
		if err != nil {
			return err
		}

		user, err := userRepo.Create(ctx, &entity.NewUser{
			Email:        input.Email,
			Username:     input.Username,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		created = user

		return nil
	})
	if err != nil {
		mapped := mapRegisterError(err)
		srv.log(ctx).Warn("Registration failed",
			slog.String("username", input.Username),
			slog.String("error", mapped.Error()),
		)

		return nil, mapped
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", created.ID), slog.String("username", created.Username))
	srv.publishRegistered(ctx, created)

	return &usecase.RegisterOutput{User: created}, nil
}

func (srv *userService) hashPassword(password string) (string, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPasswordTooLong) {
			return "", err
		}

		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return hash, nil
}

// errTaken marks a finder hit during the pre-insert checks.
var errTaken = errors.New("already taken")

func ensureAbsent(_ *entity.User, err error) error {
	switch {
	case err == nil:
		return errTaken
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

// mapRegisterError converts a lost insert race into the same duplicate errors the pre-checks return.
func mapRegisterError(err error) error {
	var violation *repository.ConstraintViolationError
	if errors.As(err, &violation) {
		switch violation.Column {
		case repository.ColumnEmail:
			return domainerrors.ErrDuplicateEmail
		case repository.ColumnUsername:
			return domainerrors.ErrDuplicateUsername
		default:
			return domainerrors.ErrUserAlreadyExists
		}
	}

	return mapStoreError(err, "failed to register user")
}

// mapStoreError keeps AppErrors as they are and turns an unreachable database into a 503.
func mapStoreError(err error, message string) error {
	if errors.Is(err, repository.ErrUnavailable) {
		return domainerrors.ErrServiceUnavailable.WrapMessage(err.Error())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, message)
}

// publishRegistered emits user.registered. A failed publish never fails the registration.
func (srv *userService) publishRegistered(ctx context.Context, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventTypeUserRegistered,
		UserID:     user.ID,
		Username:   user.Username,
		Email:      user.Email,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("event_type", event.Type),
			slog.Any("userID", user.ID),
			slog.String("error", err.Error()),
		)
	}
}

// Login verifies the credentials and issues an access token for the username.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Equalize(input.Password)
			srv.log(ctx).Debug("Login rejected", slog.String("reason", "unknown user"))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, mapStoreError(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Login rejected", slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	ttl := srv.tokenService.AccessTokenTTL()
	token, err := srv.tokenService.Issue(user.Username, ttl)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: entity.AccessToken{
			Token:     token,
			TokenType: entity.TokenTypeBearer,
			ExpiresIn: int64(ttl / time.Second),
		},
	}, nil
}

// Me returns the account behind a verified token subject.
func (srv *userService) Me(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, mapStoreError(err, "failed to find user by username")
	}

	return user, nil
}
