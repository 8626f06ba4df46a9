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

type businessService struct {
	businessRepo repository.BusinessRepository
	storage      service.ObjectStorage
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Storage      service.ObjectStorage
	Logger       *slog.Logger
}

// NewBusinessService creates a new business service.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		storage:      params.Storage,
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *businessService) GetMyBusiness(ctx context.Context, ownerID uuid.UUID) *entity.Business {
	business, err := srv.businessRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, repository.ErrBusinessNotFound) {
			srv.log(ctx).Error("Failed to read business", slog.Any("ownerID", ownerID), slog.Any("error", err))
		}

		return nil
	}

	return business
}

// SaveBusiness creates the owner's business on first save and updates it afterwards.
func (srv *businessService) SaveBusiness(ctx context.Context, ownerID uuid.UUID, input *usecase.SaveBusinessInput) (*entity.Business, error) {
	name := strings.TrimSpace(input.BusinessName)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("business name is required")
	}

	business, err := srv.businessRepo.FindByOwner(ctx, ownerID)
	switch {
	case errors.Is(err, repository.ErrBusinessNotFound):
		business = &entity.Business{
			OwnerID:      ownerID,
			BusinessName: name,
			Address:      strings.TrimSpace(input.Address),
			Phone:        strings.TrimSpace(input.Phone),
		}
		if err := srv.businessRepo.Create(ctx, business); err != nil {
			return nil, errors.Wrap(err, "failed to create business")
		}
		srv.log(ctx).Info("Business created", slog.Any("businessID", business.ID), slog.Any("ownerID", ownerID))

		return business, nil
	case err != nil:
		return nil, errors.Wrap(err, "failed to find business")
	}

	business.BusinessName = name
	business.Address = strings.TrimSpace(input.Address)
	business.Phone = strings.TrimSpace(input.Phone)
	if err := srv.businessRepo.Update(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	return business, nil
}

// UploadLogo stores the image and points the owner's business at it.
func (srv *businessService) UploadLogo(ctx context.Context, ownerID uuid.UUID, content io.Reader) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.WithStack(domainerrors.ErrBusinessNotFound)
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	url, err := srv.storage.PutImage(ctx, path.Join(constants.StoragePrefixBusinessLogo, ownerID.String()), content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store business logo")
	}

	if err := srv.businessRepo.UpdateLogo(ctx, business.ID, url); err != nil {
		return nil, errors.Wrap(err, "failed to update business logo")
	}
	business.LogoURL = url

	return business, nil
}
