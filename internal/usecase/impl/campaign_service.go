package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/domain/constants"
	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
	"perkpass/internal/domain/service"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// maxSlugAttempts bounds how many suffixed slugs are tried before giving up.
	maxSlugAttempts = 5
	// slugSuffixLength is the number of uuid characters appended to a taken slug.
	slugSuffixLength = 6
	// activeCampaignsLimit caps the home page listing.
	activeCampaignsLimit = 24
)

type campaignService struct {
	campaignRepo   repository.CampaignRepository
	membershipRepo repository.MembershipRepository
	storage        service.ObjectStorage
	clock          service.Clock
	logger         *slog.Logger
}

// CampaignServiceParams holds dependencies for CampaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	CampaignRepo   repository.CampaignRepository
	MembershipRepo repository.MembershipRepository
	Storage        service.ObjectStorage
	Clock          service.Clock
	Logger         *slog.Logger
}

// NewCampaignService creates a new campaign service.
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		campaignRepo:   params.CampaignRepo,
		membershipRepo: params.MembershipRepo,
		storage:        params.Storage,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

func (srv *campaignService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMyCampaigns returns the organizer's campaigns with their membership totals.
func (srv *campaignService) ListMyCampaigns(ctx context.Context, organizerID uuid.UUID) []*entity.CampaignProgress {
	campaigns, err := srv.campaignRepo.ListByOrganizer(ctx, organizerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list campaigns", slog.Any("organizerID", organizerID), slog.Any("error", err))

		return []*entity.CampaignProgress{}
	}

	return srv.withTotals(ctx, campaigns)
}

// CreateCampaign validates the input and stores an active campaign under a unique slug.
func (srv *campaignService) CreateCampaign(ctx context.Context, organizerID uuid.UUID, input *usecase.CreateCampaignInput) (*entity.Campaign, error) {
	name := strings.TrimSpace(input.CampaignName)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("campaign name is required")
	}
	if input.GoalAmountCents <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("goal amount must be positive")
	}
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() && !input.EndDate.After(input.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("end date must be after start date")
	}

	campaign := &entity.Campaign{
		OrganizerID:     organizerID,
		CampaignName:    name,
		Description:     strings.TrimSpace(input.Description),
		GoalAmountCents: input.GoalAmountCents,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Status:          entity.CampaignStatusActive,
	}

	base := entity.Slugify(name)
	for attempt := range maxSlugAttempts {
		slug := base
		if attempt > 0 {
			slug = base + "-" + uuid.NewString()[:slugSuffixLength]
		}

		taken, err := srv.campaignRepo.SlugExists(ctx, slug)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check slug")
		}
		if taken {
			continue
		}

		campaign.Slug = slug
		err = srv.campaignRepo.Create(ctx, campaign)
		if errors.Is(err, repository.ErrDuplicateSlug) {
			// Lost a race with a concurrent create.
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to create campaign")
		}

		srv.log(ctx).Info("Campaign created",
			slog.Any("campaignID", campaign.ID),
			slog.String("slug", campaign.Slug),
			slog.Any("organizerID", organizerID),
		)

		return campaign, nil
	}

	return nil, errors.Wrapf(domainerrors.ErrConflict, "no free slug for %q after %d attempts", base, maxSlugAttempts)
}

func (srv *campaignService) GetPublicCampaign(ctx context.Context, slug string) (*entity.CampaignProgress, error) {
	campaign, err := srv.campaignRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCampaignNotFound)
		}

		return nil, errors.Wrap(err, "failed to find campaign")
	}

	return srv.withTotals(ctx, []*entity.Campaign{campaign})[0], nil
}

func (srv *campaignService) ListActiveCampaigns(ctx context.Context) []*entity.Campaign {
	campaigns, err := srv.campaignRepo.ListOpen(ctx, srv.clock.Now(), activeCampaignsLimit)
	if err != nil {
		srv.log(ctx).Error("Failed to list open campaigns", slog.Any("error", err))

		return []*entity.Campaign{}
	}

	return campaigns
}

// UploadLogo stores the image for a campaign the caller organizes.
func (srv *campaignService) UploadLogo(ctx context.Context, organizerID, campaignID uuid.UUID, content io.Reader) (*entity.Campaign, error) {
	campaign, err := srv.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCampaignNotFound)
		}

		return nil, errors.Wrap(err, "failed to find campaign")
	}
	if campaign.OrganizerID != organizerID {
		srv.log(ctx).Warn("Campaign ownership violation", slog.Any("campaignID", campaignID), slog.Any("organizerID", organizerID))

		return nil, errors.WithStack(domainerrors.ErrCampaignOwnershipViolation)
	}

	url, err := srv.storage.PutImage(ctx, path.Join(constants.StoragePrefixCampaignLogo, campaign.ID.String()), content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store campaign logo")
	}

	if err := srv.campaignRepo.UpdateLogo(ctx, campaign.ID, url); err != nil {
		return nil, errors.Wrap(err, "failed to update campaign logo")
	}
	campaign.LogoURL = url

	return campaign, nil
}

// withTotals attaches membership totals. A failed aggregate shows zero progress.
func (srv *campaignService) withTotals(ctx context.Context, campaigns []*entity.Campaign) []*entity.CampaignProgress {
	progress := make([]*entity.CampaignProgress, 0, len(campaigns))
	if len(campaigns) == 0 {
		return progress
	}

	ids := make([]uuid.UUID, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}

	totals, err := srv.membershipRepo.TotalsByCampaign(ctx, ids)
	if err != nil {
		srv.log(ctx).Error("Failed to aggregate campaign totals", slog.Any("error", err))
		totals = nil
	}

	for _, c := range campaigns {
		t := totals[c.ID]
		progress = append(progress, &entity.CampaignProgress{
			Campaign:    c,
			Members:     t.Members,
			RaisedCents: t.RaisedCents,
		})
	}

	return progress
}
