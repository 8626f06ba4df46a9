package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dealService struct {
	dealRepo     repository.DealRepository
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// DealServiceParams holds dependencies for DealService, injected by Fx.
type DealServiceParams struct {
	fx.In

	DealRepo     repository.DealRepository
	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewDealService creates a new deal service.
func NewDealService(params DealServiceParams) usecase.DealUsecase {
	return &dealService{
		dealRepo:     params.DealRepo,
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
	}
}

func (srv *dealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMemberDeals is the gated content provider. Non-members get a locked, empty listing
// without the deals table being touched.
func (srv *dealService) ListMemberDeals(ctx context.Context, viewer *entity.Viewer) *usecase.MemberDeals {
	if !viewer.IsAuthenticated() || !viewer.Capabilities.IsMember {
		return &usecase.MemberDeals{Locked: true, Deals: []*entity.Deal{}}
	}

	deals, err := srv.dealRepo.ListListable(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list deals", slog.Any("userID", viewer.ID()), slog.Any("error", err))

		return &usecase.MemberDeals{Deals: []*entity.Deal{}}
	}

	return &usecase.MemberDeals{Deals: deals}
}

func (srv *dealService) ListBusinessDeals(ctx context.Context, ownerID uuid.UUID) (*entity.Business, []*entity.Deal) {
	business, err := srv.businessRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, repository.ErrBusinessNotFound) {
			srv.log(ctx).Error("Failed to read business", slog.Any("ownerID", ownerID), slog.Any("error", err))
		}

		return nil, []*entity.Deal{}
	}

	deals, err := srv.dealRepo.ListByBusiness(ctx, business.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to list business deals", slog.Any("businessID", business.ID), slog.Any("error", err))

		return business, []*entity.Deal{}
	}

	return business, deals
}

// CreateDeal publishes a deal as active and pending review.
func (srv *dealService) CreateDeal(ctx context.Context, ownerID uuid.UUID, input *usecase.DealInput) (*entity.Deal, error) {
	if err := validateDealInput(input); err != nil {
		return nil, err
	}

	business, err := srv.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	deal := &entity.Deal{
		BusinessID:     business.ID,
		Title:          strings.TrimSpace(input.Title),
		Description:    strings.TrimSpace(input.Description),
		Category:       strings.TrimSpace(input.Category),
		Terms:          strings.TrimSpace(input.Terms),
		Status:         entity.DealStatusActive,
		ApprovalStatus: entity.ApprovalPending,
	}
	if err := srv.dealRepo.Create(ctx, deal); err != nil {
		return nil, errors.Wrap(err, "failed to create deal")
	}

	srv.log(ctx).Info("Deal created", slog.Any("dealID", deal.ID), slog.Any("businessID", business.ID))

	return deal, nil
}

// UpdateDeal edits an owned deal. Edited content goes back to review.
func (srv *dealService) UpdateDeal(ctx context.Context, ownerID, dealID uuid.UUID, input *usecase.DealInput) (*entity.Deal, error) {
	if err := validateDealInput(input); err != nil {
		return nil, err
	}

	deal, err := srv.ownedDeal(ctx, ownerID, dealID)
	if err != nil {
		return nil, err
	}

	deal.Title = strings.TrimSpace(input.Title)
	deal.Description = strings.TrimSpace(input.Description)
	deal.Category = strings.TrimSpace(input.Category)
	deal.Terms = strings.TrimSpace(input.Terms)
	deal.ApprovalStatus = entity.ApprovalPending

	if err := srv.dealRepo.Update(ctx, deal); err != nil {
		return nil, errors.Wrap(err, "failed to update deal")
	}

	return deal, nil
}

// ToggleDealStatus flips the merchant switch of an owned deal.
func (srv *dealService) ToggleDealStatus(ctx context.Context, ownerID, dealID uuid.UUID) (*entity.Deal, error) {
	deal, err := srv.ownedDeal(ctx, ownerID, dealID)
	if err != nil {
		return nil, err
	}

	next := deal.Status.Toggled()
	if err := srv.dealRepo.UpdateStatus(ctx, deal.ID, next); err != nil {
		return nil, errors.Wrap(err, "failed to update deal status")
	}
	deal.Status = next

	srv.log(ctx).Info("Deal status toggled", slog.Any("dealID", deal.ID), slog.String("status", string(next)))

	return deal, nil
}

func (srv *dealService) ownedBusiness(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.WithStack(domainerrors.ErrBusinessNotFound)
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

func (srv *dealService) ownedDeal(ctx context.Context, ownerID, dealID uuid.UUID) (*entity.Deal, error) {
	business, err := srv.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	deal, err := srv.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, errors.WithStack(domainerrors.ErrDealNotFound)
		}

		return nil, errors.Wrap(err, "failed to find deal")
	}

	if deal.BusinessID != business.ID {
		srv.log(ctx).Warn("Deal ownership violation",
			slog.Any("dealID", dealID),
			slog.Any("ownerID", ownerID),
		)

		return nil, errors.WithStack(domainerrors.ErrDealOwnershipViolation)
	}

	return deal, nil
}

func validateDealInput(input *usecase.DealInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	return nil
}
