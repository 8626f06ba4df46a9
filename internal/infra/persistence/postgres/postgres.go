package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"perkpass/config"
	"perkpass/internal/domain/lifecycle"
	"perkpass/migrations"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval = 5 * time.Second
	slowPoolWait      = 50 * time.Millisecond
	migrateTimeout    = time.Minute
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	Registerer prometheus.Registerer
}

// New opens the PostgreSQL pool. On start it pings the database, applies
// pending schema migrations when configured to, and begins watching the pool
// for connection waits.
func New(params Params) (*gorm.DB, error) {
	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	// Multi-step writes go through TransactionManager; single statements stay unwrapped.
	db := conn.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB handle")
	}

	if err := params.Registerer.Register(collectors.NewDBStatsCollector(sqlDB, params.Config.Env.ServiceName)); err != nil {
		return nil, errors.Wrap(err, "register postgres stats collector")
	}

	watcher := &poolWatcher{
		db:     sqlDB,
		logger: params.Logger,
		waits: promauto.With(params.Registerer).NewCounter(prometheus.CounterOpts{
			Namespace: params.Config.Metrics.Namespace,
			Name:      "db_pool_slow_waits_total",
			Help:      "Number of pool checks where connection waits exceeded the slow threshold.",
		}),
	}
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}

			if params.Config.Migrate.OnStart {
				migrateCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
				defer cancel()

				if err := Migrate(migrateCtx, db, migrations.FS, params.Logger); err != nil {
					return err
				}
			}

			go watcher.run(watchCtx, poolWatchInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return errors.Wrap(sqlDB.Close(), "close postgres")
		},
	})

	return db, nil
}

type poolWatcher struct {
	db     *sql.DB
	logger *slog.Logger
	waits  prometheus.Counter
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := w.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := w.db.Stats()
			w.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe compares two pool snapshots and reports any waits between them.
func (w *poolWatcher) observe(ctx context.Context, prev, cur sql.DBStats) {
	waited := cur.WaitCount - prev.WaitCount
	if waited <= 0 {
		return
	}

	spent := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if spent >= slowPoolWait {
		level = slog.LevelWarn
		w.waits.Inc()
	}

	w.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waited),
		slog.Duration("wait_total", spent),
		slog.Duration("wait_avg", spent/time.Duration(waited)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
