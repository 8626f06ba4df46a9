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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile changes the display name. Role is not editable.
func (srv *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, fullName string) (*entity.Profile, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full name is required")
	}

	if err := srv.profileRepo.UpdateFullName(ctx, id, fullName); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", id))

	return srv.GetProfile(ctx, id)
}
