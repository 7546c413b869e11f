package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"rating/config"
	"rating/internal/domain/lifecycle"
	"rating/internal/errors"
	"rating/internal/infra/metrics"

	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	poolWatchInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Collector `optional:"true"`
}

// New opens the PostgreSQL pool. The handle is owned by the fx app: it is
// pinged (and optionally migrated) on start and closed on stop.
func New(params Params) (*gorm.DB, error) {
	dbCfg := params.Config.Database

	db, err := gorm.Open(postgres.Open(dbCfg.URL), &gorm.Config{
		// Every repository call is a single statement; no implicit transactions.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	if err := registerReplicas(db, dbCfg.ReplicaURLs); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	applyPoolSettings(sqlDB, dbCfg)

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats(sqlDB, "primary"); err != nil {
			return nil, errors.Wrap(err, "failed to register pool metrics")
		}
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			params.Logger.Info("Connected to PostgreSQL",
				slog.Int("replicas", len(dbCfg.ReplicaURLs)),
			)

			if dbCfg.AutoMigrate {
				if err := Migrate(ctx, db, params.Logger); err != nil {
					return err
				}
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// registerReplicas routes reads to the replicas through dbresolver; writes
// and raw statements with RETURNING stay on the primary.
func registerReplicas(db *gorm.DB, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	replicas := make([]gorm.Dialector, 0, len(urls))
	for _, url := range urls {
		replicas = append(replicas, postgres.Open(url))
	}

	err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	}))

	return errors.Wrap(err, "failed to register read replicas")
}

func applyPoolSettings(sqlDB *sql.DB, cfg config.DatabaseConfig) {
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// watchPoolWaits logs when requests had to queue for a connection. Pool
// gauges themselves are exported through the metrics collector.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolWatchInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waits := cur.WaitCount - prev.WaitCount
			waited := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waits <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= poolWaitWarnAfter {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "PostgreSQL pool wait",
				slog.Int64("waits", waits),
				slog.Duration("waited", waited),
				slog.Duration("avg_wait", waited/time.Duration(waits)),
				slog.Int("open", cur.OpenConnections),
				slog.Int("in_use", cur.InUse),
				slog.Int("max_open", cur.MaxOpenConnections),
			)
		}
	}
}
