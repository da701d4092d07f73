package repository

import "context"

// HealthRepository reports whether the backing database answers.
type HealthRepository interface {
	Ping(ctx context.Context) error
}
