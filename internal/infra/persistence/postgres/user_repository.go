// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"studymind/internal/domain/entity"
	"studymind/internal/domain/repository"
	"studymind/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return newUserRepository(db)
}

func newUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// FindByEmail retrieves a single user by their email address (exact match).
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "find user by email", "email = ?", email)
}

// FindByUsername retrieves a single user by their username (exact match).
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "find user by username", "username = ?", username)
}

func (repo *userRepository) findOne(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where(query, arg).Take(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, classifyError(err, op)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create inserts one row and returns it with the generated ID and timestamps.
// Duplicates surface as *repository.ConstraintViolationError.
func (repo *userRepository) Create(ctx context.Context, user *entity.NewUser) (*entity.User, error) {
	now := repo.now()
	userM := &model.UserModel{
		Email:          user.Email,
		Username:       user.Username,
		HashedPassword: user.PasswordHash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return nil, classifyError(err, "create user")
	}

	return toUserDomain(userM), nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.HashedPassword,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
