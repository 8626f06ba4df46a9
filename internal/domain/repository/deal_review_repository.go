package repository

import (
	"context"

	"perkpass/internal/domain/entity"
)

// DealReviewRepository stores the moderation audit trail.
type DealReviewRepository interface {
	// Record inserts the review unless one with the same MessageID exists.
	// It reports whether a row was written.
	Record(ctx context.Context, review *entity.DealReview) (bool, error)

	// ListRecent returns the newest reviews first, joined with the deal title.
	ListRecent(ctx context.Context, limit int) ([]*entity.DealReview, error)
}
