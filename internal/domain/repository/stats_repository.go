package repository

import (
	"context"
	"time"

	"perkpass/internal/domain/entity"
)

// StatsRepository computes the admin overview counters.
type StatsRepository interface {
	PlatformStats(ctx context.Context, now time.Time) (*entity.PlatformStats, error)
}
