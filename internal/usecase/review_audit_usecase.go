package usecase

import (
	"context"

	"perkpass/internal/domain/service"
)

// ReviewAuditUsecase consumes deal.reviewed events on the worker side.
type ReviewAuditUsecase interface {
	// RecordDealReview stores the event once per messageID. Malformed events fail with
	// ErrValidationFailed and should not be redelivered.
	RecordDealReview(ctx context.Context, messageID string, event *service.DealReviewedEvent) error
}
