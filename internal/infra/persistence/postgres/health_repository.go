package postgres

import (
	"context"

	"studymind/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type healthRepository struct {
	db *gorm.DB
}

// NewHealthRepository reports database reachability through the pooled connection.
func NewHealthRepository(db *gorm.DB) repository.HealthRepository {
	return &healthRepository{db: db}
}

// Ping runs SELECT 1 through the pool.
func (r *healthRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return classifyError(err, "ping database")
	}
	if one != 1 {
		return errors.Errorf("unexpected ping result: %d", one)
	}

	return nil
}
