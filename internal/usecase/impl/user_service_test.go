package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"studymind/internal/domain/entity"
	domainerrors "studymind/internal/domain/errors"
	"studymind/internal/domain/repository"
	"studymind/internal/domain/service"
	"studymind/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$12$hashed", nil)
	fx.expectTransaction(t)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.txUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fx.txUserRepo.EXPECT().
		Create(ctx, &entity.NewUser{Email: input.Email, Username: input.Username, PasswordHash: "$2a$12$hashed"}).
		Return(storedUser(), nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.MatchedBy(func(event *service.AccountEvent) bool {
			return event.Type == service.EventTypeUserRegistered && event.UserID == 1 && event.Username == "alice"
		})).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uint(1), output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.Username, output.User.Username)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	fx.expectTransaction(t)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser(), nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()
	input.Email = "bob@x.io"

	fx.expectTransaction(t)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.txUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(storedUser(), nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func TestUserService_Register_LostInsertRace(t *testing.T) {
	tests := []struct {
		column string
		want   error
	}{
		{column: repository.ColumnEmail, want: domainerrors.ErrDuplicateEmail},
		{column: repository.ColumnUsername, want: domainerrors.ErrDuplicateUsername},
		{column: "", want: domainerrors.ErrUserAlreadyExists},
	}

	for _, tt := range tests {
		t.Run("column="+tt.column, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()
			input := registerInput()

			fx.hasher.EXPECT().Hash(input.Password).Return("$2a$12$hashed", nil)
			fx.expectTransaction(t)
			fx.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
			fx.txUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
			fx.txUserRepo.EXPECT().Create(ctx, mock.Anything).
				Return(nil, &repository.ConstraintViolationError{Column: tt.column, Constraint: "users_" + tt.column + "_key"})

			output, err := fx.service.Register(ctx, input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestUserService_Register_ValidationFailed(t *testing.T) {
	tests := map[string]func(in *usecase.RegisterInput){
		"bad email":      func(in *usecase.RegisterInput) { in.Email = "not-an-email" },
		"short username": func(in *usecase.RegisterInput) { in.Username = "al" },
		"short password": func(in *usecase.RegisterInput) { in.Password = "short" },
		"empty":          func(in *usecase.RegisterInput) { *in = usecase.RegisterInput{} },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			fx := createTestUserService(t)
			input := registerInput()
			mutate(input)

			output, err := fx.service.Register(context.Background(), input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestUserService_Register_PasswordTooLong(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	fx.expectTransaction(t)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.txUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", domainerrors.ErrPasswordTooLong)

	_, err := fx.service.Register(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooLong))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	fx.expectTransaction(t)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.txUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("entropy exhausted"))

	_, err := fx.service.Register(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

// A taken email is reported before the password is looked at, even one bcrypt would refuse.
func TestUserService_Register_DuplicateEmailBeforeHashing(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()
	input.Password = strings.Repeat("密", 30) // 30 runes, 90 bytes

	fx.expectTransaction(t)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser(), nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail), "got %v", err)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_Register_StoreUnavailable(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	fx.expectTransaction(t)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).
		Return(nil, errors.Wrap(repository.ErrUnavailable, "dial tcp: connection refused"))

	_, err := fx.service.Register(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
}

func TestUserService_Register_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$12$hashed", nil)
	fx.expectTransaction(t)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.txUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fx.txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(storedUser(), nil)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice", output.User.Username)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := storedUser()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("s3cretpass", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(30 * time.Minute)
	fx.tokenService.EXPECT().Issue("alice", 30*time.Minute).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cretpass"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken.Token)
	assert.Equal(t, entity.TokenTypeBearer, output.AccessToken.TokenType)
	assert.Equal(t, int64(1800), output.AccessToken.ExpiresIn)
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknown := createTestUserService(t)
	unknown.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	unknown.hasher.EXPECT().Equalize("s3cretpass").Return()
	_, unknownErr := unknown.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "s3cretpass"})

	wrong := createTestUserService(t)
	user := storedUser()
	wrong.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	wrong.hasher.EXPECT().Check("wrongpass", user.PasswordHash).Return(false)
	_, wrongErr := wrong.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrongpass"})

	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestUserService_Login_IssueFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := storedUser()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("s3cretpass", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(30 * time.Minute)
	fx.tokenService.EXPECT().Issue("alice", 30*time.Minute).Return("", errors.New("sign failed"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cretpass"})

	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}

func TestUserService_Login_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "alice"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Login_StoreUnavailable(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUnavailable)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cretpass"})

	assert.True(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Me(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser(), nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Me(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = fx.service.Me(ctx, "ghost")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
