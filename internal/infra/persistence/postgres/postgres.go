package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"studymind/config"
	"studymind/internal/domain/lifecycle"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool. The first ping and the schema migrations run
// on fx start, so an unreachable database aborts startup.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// Registration uses an explicit transaction via txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Migrations.Enabled {
				if err := runMigrations(ctx, sqlDB); err != nil {
					return err
				}
				params.Logger.Info("Database migrations applied")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if attrs, level, ok := poolWaitAttrs(prev, cur); ok {
				logger.LogAttrs(ctx, level, "Postgres pool wait detected", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitAttrs describes the connection waits between two pool snapshots.
// ok is false when nobody waited for a connection.
func poolWaitAttrs(prev, cur sql.DBStats) (attrs []slog.Attr, level slog.Level, ok bool) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return nil, slog.LevelDebug, false
	}

	waitDurationDelta := cur.WaitDuration - prev.WaitDuration
	attrs = []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	level = slog.LevelDebug
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	return attrs, level, true
}
