// Package job runs periodic maintenance next to the HTTP deliveries.
package job

import (
	"context"
	"log/slog"
	"time"

	"perkpass/config"
	"perkpass/internal/delivery"
	"perkpass/internal/usecase"

	"go.uber.org/fx"
)

// SessionPurgeParams holds dependencies for the purge job, injected by Fx.
type SessionPurgeParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	AuthUC usecase.AuthUsecase
}

type sessionPurge struct {
	interval time.Duration
	authUC   usecase.AuthUsecase
	logger   *slog.Logger
	done     chan struct{}
}

// NewSessionPurge deletes expired refresh tokens on a fixed interval until the app stops.
func NewSessionPurge(params SessionPurgeParams) delivery.Delivery {
	job := &sessionPurge{
		interval: params.Cfg.Session.PurgeInterval,
		authUC:   params.AuthUC,
		logger:   params.Logger.With(slog.String("component", "session_purge")),
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(job.done)

			return nil
		},
	})

	return job
}

// Serve blocks until the job is stopped or ctx is cancelled.
func (j *sessionPurge) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info("Starting session purge", slog.Duration("interval", j.interval))
	j.purge(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.done:
			return nil
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *sessionPurge) purge(ctx context.Context) {
	removed, err := j.authUC.PurgeExpiredSessions(ctx)
	if err != nil {
		j.logger.Error("Failed to purge expired sessions", slog.Any("error", err))

		return
	}

	if removed > 0 {
		j.logger.Info("Purged expired sessions", slog.Int64("removed", removed))
	}
}
