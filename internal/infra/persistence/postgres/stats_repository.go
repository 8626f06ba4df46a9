package postgres

import (
	"context"
	"time"

	"perkpass/internal/domain/entity"
	"perkpass/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const platformStatsQuery = `
SELECT
	(SELECT COUNT(*) FROM profiles) AS profiles,
	(SELECT COUNT(*) FROM businesses) AS businesses,
	(SELECT COUNT(*) FROM campaigns) AS campaigns,
	(SELECT COUNT(*) FROM memberships WHERE expires_at >= @now) AS active_memberships,
	(SELECT COUNT(*) FROM deals WHERE approval_status = @pending) AS pending_deals,
	(SELECT COUNT(*) FROM deals WHERE approval_status = @approved) AS approved_deals`

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// PlatformStats computes every counter in a single round trip.
func (repo *statsRepository) PlatformStats(ctx context.Context, now time.Time) (*entity.PlatformStats, error) {
	var stats entity.PlatformStats

	err := repo.db.WithContext(ctx).
		Raw(platformStatsQuery, map[string]any{
			"now":      now,
			"pending":  string(entity.ApprovalPending),
			"approved": string(entity.ApprovalApproved),
		}).
		Scan(&stats).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &stats, nil
}
