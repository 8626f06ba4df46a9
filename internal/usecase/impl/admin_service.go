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

// recentReviewsLimit caps the audit trail shown on the moderation page.
const recentReviewsLimit = 20

type adminService struct {
	dealRepo       repository.DealRepository
	reviewRepo     repository.DealReviewRepository
	statsRepo      repository.StatsRepository
	eventPublisher service.EventPublisher
	clock          service.Clock
	logger         *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	DealRepo       repository.DealRepository
	ReviewRepo     repository.DealReviewRepository
	StatsRepo      repository.StatsRepository
	EventPublisher service.EventPublisher
	Clock          service.Clock
	Logger         *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		dealRepo:       params.DealRepo,
		reviewRepo:     params.ReviewRepo,
		statsRepo:      params.StatsRepo,
		eventPublisher: params.EventPublisher,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) ListPendingDeals(ctx context.Context) []*entity.Deal {
	deals, err := srv.dealRepo.ListByApproval(ctx, entity.ApprovalPending)
	if err != nil {
		srv.log(ctx).Error("Failed to list pending deals", slog.Any("error", err))

		return []*entity.Deal{}
	}

	return deals
}

// ReviewDeal records the moderation decision and announces it.
func (srv *adminService) ReviewDeal(ctx context.Context, adminID, dealID uuid.UUID, decision entity.ApprovalStatus) (*entity.Deal, error) {
	if !decision.IsReviewDecision() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidReviewDecision, "decision %q", decision)
	}

	deal, err := srv.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, errors.WithStack(domainerrors.ErrDealNotFound)
		}

		return nil, errors.Wrap(err, "failed to find deal")
	}

	if err := srv.dealRepo.UpdateApproval(ctx, deal.ID, decision); err != nil {
		return nil, errors.Wrap(err, "failed to update deal approval")
	}
	deal.ApprovalStatus = decision

	srv.log(ctx).Info("Deal reviewed",
		slog.Any("dealID", deal.ID),
		slog.Any("adminID", adminID),
		slog.String("decision", string(decision)),
	)

	event := &service.DealReviewedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		DealID:     deal.ID.String(),
		BusinessID: deal.BusinessID.String(),
		ReviewerID: adminID.String(),
		Decision:   string(decision),
		ReviewedAt: srv.clock.Now(),
	}
	if err := srv.eventPublisher.PublishDealReviewed(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish deal review event", slog.Any("dealID", deal.ID), slog.Any("error", err))
	}

	return deal, nil
}

func (srv *adminService) Stats(ctx context.Context) *entity.PlatformStats {
	stats, err := srv.statsRepo.PlatformStats(ctx, srv.clock.Now())
	if err != nil {
		srv.log(ctx).Error("Failed to compute platform stats", slog.Any("error", err))

		return &entity.PlatformStats{}
	}

	return stats
}

func (srv *adminService) RecentReviews(ctx context.Context) []*entity.DealReview {
	reviews, err := srv.reviewRepo.ListRecent(ctx, recentReviewsLimit)
	if err != nil {
		srv.log(ctx).Error("Failed to list recent reviews", slog.Any("error", err))

		return []*entity.DealReview{}
	}

	return reviews
}
