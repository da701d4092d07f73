package postgres

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"studymind/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir

		return nil
	}

	require.NoError(t, runMigrations(context.Background(), nil))
	assert.Equal(t, ".", gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	err := runMigrations(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply migrations")
}

func TestMigrations_CreateUsersTable(t *testing.T) {
	body, err := fs.ReadFile(migrations.Migrations, "00001_create_users.sql")
	require.NoError(t, err)

	sqlText := string(body)
	assert.Contains(t, sqlText, "-- +goose Up")
	assert.Contains(t, sqlText, "-- +goose Down")
	assert.Contains(t, sqlText, "CONSTRAINT users_email_key UNIQUE (email)")
	assert.Contains(t, sqlText, "CONSTRAINT users_username_key UNIQUE (username)")
}
