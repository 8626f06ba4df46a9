package usecase

import (
	"context"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase covers deal moderation and the platform overview.
type AdminUsecase interface {
	ListPendingDeals(ctx context.Context) []*entity.Deal
	ReviewDeal(ctx context.Context, adminID, dealID uuid.UUID, decision entity.ApprovalStatus) (*entity.Deal, error)
	// Stats returns zero counters when they could not be computed.
	Stats(ctx context.Context) *entity.PlatformStats
	// RecentReviews returns the latest recorded decisions, or none when they could not be read.
	RecentReviews(ctx context.Context) []*entity.DealReview
}
