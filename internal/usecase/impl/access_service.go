package impl

import (
	"context"
	"log/slog"

	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/domain/entity"
	"perkpass/internal/domain/repository"
	"perkpass/internal/domain/service"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Check names reported to metrics when a classifier lookup fails.
const (
	checkProfile    = "profile"
	checkMerchant   = "merchant"
	checkFundraiser = "fundraiser"
	checkMember     = "member"
)

type accessService struct {
	profileRepo    repository.ProfileRepository
	businessRepo   repository.BusinessRepository
	campaignRepo   repository.CampaignRepository
	membershipRepo repository.MembershipRepository
	metrics        service.AccessMetrics
	clock          service.Clock
	logger         *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	ProfileRepo    repository.ProfileRepository
	BusinessRepo   repository.BusinessRepository
	CampaignRepo   repository.CampaignRepository
	MembershipRepo repository.MembershipRepository
	Metrics        service.AccessMetrics
	Clock          service.Clock
	Logger         *slog.Logger
}

// NewAccessService creates the classifier.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		profileRepo:    params.ProfileRepo,
		businessRepo:   params.BusinessRepo,
		campaignRepo:   params.CampaignRepo,
		membershipRepo: params.MembershipRepo,
		metrics:        params.Metrics,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Classify runs the profile read and the three existence checks concurrently.
// Each goroutine writes only its own result variable.
func (srv *accessService) Classify(ctx context.Context, identityID uuid.UUID) (*entity.Profile, entity.Capabilities) {
	var (
		profile      *entity.Profile
		isMerchant   bool
		isFundraiser bool
		isMember     bool
		group        errgroup.Group
	)

	group.Go(func() error {
		found, err := srv.profileRepo.FindByID(ctx, identityID)
		if err != nil {
			srv.recordFailure(ctx, checkProfile, identityID, err)

			return nil
		}
		profile = found

		return nil
	})

	group.Go(func() error {
		exists, err := srv.businessRepo.ExistsByOwner(ctx, identityID)
		if err != nil {
			srv.recordFailure(ctx, checkMerchant, identityID, err)

			return nil
		}
		isMerchant = exists

		return nil
	})

	group.Go(func() error {
		exists, err := srv.campaignRepo.ExistsByOrganizer(ctx, identityID)
		if err != nil {
			srv.recordFailure(ctx, checkFundraiser, identityID, err)

			return nil
		}
		isFundraiser = exists

		return nil
	})

	group.Go(func() error {
		active, err := srv.membershipRepo.HasActive(ctx, identityID, srv.clock.Now())
		if err != nil {
			srv.recordFailure(ctx, checkMember, identityID, err)

			return nil
		}
		isMember = active

		return nil
	})

	// Every goroutine swallows its error, Wait only joins them.
	_ = group.Wait()

	capabilities := entity.Capabilities{
		IsMerchant:   isMerchant,
		IsFundraiser: isFundraiser,
		IsMember:     isMember,
	}
	if profile != nil {
		capabilities.Role = profile.Role
	}

	return profile, capabilities
}

func (srv *accessService) recordFailure(ctx context.Context, check string, identityID uuid.UUID, err error) {
	if check == checkProfile && errors.Is(err, repository.ErrProfileNotFound) {
		srv.log(ctx).Debug("Identity has no profile", slog.Any("userID", identityID))

		return
	}

	srv.metrics.ObserveClassifierFailure(check)
	srv.log(ctx).Warn("Classifier check failed, treating as negative",
		slog.String("check", check),
		slog.Any("userID", identityID),
		slog.Any("error", err),
	)
}
