package impl

import (
	"context"
	"log/slog"

	"perkpass/config"
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

type membershipService struct {
	cfg            *config.MembershipConfig
	campaignRepo   repository.CampaignRepository
	membershipRepo repository.MembershipRepository
	qrService      service.QRCodeService
	clock          service.Clock
	logger         *slog.Logger
}

// MembershipServiceParams holds dependencies for MembershipService, injected by Fx.
type MembershipServiceParams struct {
	fx.In

	Config         *config.Config
	CampaignRepo   repository.CampaignRepository
	MembershipRepo repository.MembershipRepository
	QRService      service.QRCodeService
	Clock          service.Clock
	Logger         *slog.Logger
}

// NewMembershipService creates a new membership service.
func NewMembershipService(params MembershipServiceParams) usecase.MembershipUsecase {
	return &membershipService{
		cfg:            params.Config.Membership,
		campaignRepo:   params.CampaignRepo,
		membershipRepo: params.MembershipRepo,
		qrService:      params.QRService,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

func (srv *membershipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Purchase buys a membership through an open campaign. The fundraiser share is
// fixed at purchase time from the configured price and percentage.
func (srv *membershipService) Purchase(ctx context.Context, userID uuid.UUID, campaignSlug string) (*entity.Membership, error) {
	campaign, err := srv.campaignRepo.FindBySlug(ctx, campaignSlug)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCampaignNotFound)
		}

		return nil, errors.Wrap(err, "failed to find campaign")
	}

	now := srv.clock.Now()
	if !campaign.IsOpenAt(now) {
		return nil, errors.Wrapf(domainerrors.ErrCampaignClosed, "campaign %s", campaign.Slug)
	}

	membership := &entity.Membership{
		UserID:               userID,
		CampaignID:           campaign.ID,
		ExpiresAt:            now.AddDate(0, srv.cfg.ValidityMonths, 0),
		FundraiserShareCents: srv.cfg.PriceCents * srv.cfg.FundraiserSharePercent / 100,
		Campaign:             campaign,
	}
	if err := srv.membershipRepo.Create(ctx, membership); err != nil {
		return nil, errors.Wrap(err, "failed to create membership")
	}

	srv.log(ctx).Info("Membership purchased",
		slog.Any("membershipID", membership.ID),
		slog.Any("userID", userID),
		slog.Any("campaignID", campaign.ID),
	)

	return membership, nil
}

// ListMine evaluates every membership against the clock at read time.
func (srv *membershipService) ListMine(ctx context.Context, userID uuid.UUID) []*usecase.MembershipView {
	memberships, err := srv.membershipRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list memberships", slog.Any("userID", userID), slog.Any("error", err))

		return []*usecase.MembershipView{}
	}

	now := srv.clock.Now()
	views := make([]*usecase.MembershipView, 0, len(memberships))
	for _, m := range memberships {
		views = append(views, &usecase.MembershipView{Membership: m, Active: m.IsActiveAt(now)})
	}

	return views
}

// MembershipCard renders the QR card of a membership the caller holds.
func (srv *membershipService) MembershipCard(ctx context.Context, userID, membershipID uuid.UUID) ([]byte, error) {
	membership, err := srv.membershipRepo.FindByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMembershipNotFound)
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}
	if membership.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrMembershipNotFound)
	}

	png, err := srv.qrService.GenerateMembershipQR(&service.MembershipCard{
		MembershipID: membership.ID,
		UserID:       membership.UserID,
		ExpiresAt:    membership.ExpiresAt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render membership card")
	}

	return png, nil
}

// Verify checks a scanned card against the stored membership. The expiry encoded in
// the card is informational; validity is decided by the stored row.
func (srv *membershipService) Verify(ctx context.Context, payload string) (*usecase.CardVerification, error) {
	card, err := srv.qrService.ParseMembershipQR(payload)
	if err != nil {
		srv.log(ctx).Debug("Unreadable membership card", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMembershipCardInvalid, err.Error())
	}

	membership, err := srv.membershipRepo.FindByID(ctx, card.MembershipID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMembershipCardInvalid)
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}
	if membership.UserID != card.UserID {
		srv.log(ctx).Warn("Membership card holder mismatch", slog.Any("membershipID", membership.ID))

		return nil, errors.WithStack(domainerrors.ErrMembershipCardInvalid)
	}

	verification := &usecase.CardVerification{
		MembershipID: membership.ID,
		ExpiresAt:    membership.ExpiresAt,
		Valid:        membership.IsActiveAt(srv.clock.Now()),
	}

	campaign, err := srv.campaignRepo.FindByID(ctx, membership.CampaignID)
	if err != nil {
		srv.log(ctx).Warn("Campaign unavailable for verified card", slog.Any("campaignID", membership.CampaignID), slog.Any("error", err))
	} else {
		verification.CampaignName = campaign.CampaignName
	}

	return verification, nil
}
