package impl

import (
	"context"
	"log/slog"

	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
	"perkpass/internal/domain/service"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewAuditService struct {
	reviewRepo repository.DealReviewRepository
	clock      service.Clock
	logger     *slog.Logger
}

// ReviewAuditServiceParams holds dependencies for ReviewAuditService, injected by Fx.
type ReviewAuditServiceParams struct {
	fx.In

	ReviewRepo repository.DealReviewRepository
	Clock      service.Clock
	Logger     *slog.Logger
}

// NewReviewAuditService creates the worker-side consumer of moderation events.
func NewReviewAuditService(params ReviewAuditServiceParams) usecase.ReviewAuditUsecase {
	return &reviewAuditService{
		reviewRepo: params.ReviewRepo,
		clock:      params.Clock,
		logger:     params.Logger,
	}
}

func (srv *reviewAuditService) RecordDealReview(ctx context.Context, messageID string, event *service.DealReviewedEvent) error {
	review, err := srv.toReview(messageID, event)
	if err != nil {
		return err
	}

	created, err := srv.reviewRepo.Record(ctx, review)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("deal no longer exists"))
		}

		return errors.Wrap(err, "failed to record deal review")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	if !created {
		logger.Info("Deal review already recorded", slog.String("message_id", messageID))

		return nil
	}

	logger.Info("Deal review recorded",
		slog.String("message_id", messageID),
		slog.String("deal_id", event.DealID),
		slog.String("decision", event.Decision),
	)

	return nil
}

func (srv *reviewAuditService) toReview(messageID string, event *service.DealReviewedEvent) (*entity.DealReview, error) {
	if messageID == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("message id is missing"))
	}

	decision := entity.ApprovalStatus(event.Decision)
	if !decision.IsReviewDecision() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown decision " + event.Decision))
	}

	ids := make([]uuid.UUID, 3)
	for i, raw := range []string{event.DealID, event.BusinessID, event.ReviewerID} {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed id " + raw))
		}
		ids[i] = id
	}

	reviewedAt := event.ReviewedAt
	now := srv.clock.Now()
	if reviewedAt.IsZero() {
		reviewedAt = now
	}

	return &entity.DealReview{
		MessageID:  messageID,
		DealID:     ids[0],
		BusinessID: ids[1],
		ReviewerID: ids[2],
		Decision:   decision,
		ReviewedAt: reviewedAt,
		RecordedAt: now,
	}, nil
}
