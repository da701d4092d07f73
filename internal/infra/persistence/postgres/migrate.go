package postgres

import (
	"context"
	"database/sql"

	"studymind/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// runMigrations applies the embedded schema migrations.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose.SetDialect")
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
