package usecase

import (
	"context"
	"io"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveBusinessInput holds the editable business profile fields.
type SaveBusinessInput struct {
	BusinessName string
	Address      string
	Phone        string
}

// BusinessUsecase manages the merchant's business profile.
type BusinessUsecase interface {
	// GetMyBusiness returns nil when the owner has not set one up yet or it could not be read.
	GetMyBusiness(ctx context.Context, ownerID uuid.UUID) *entity.Business
	SaveBusiness(ctx context.Context, ownerID uuid.UUID, input *SaveBusinessInput) (*entity.Business, error)
	UploadLogo(ctx context.Context, ownerID uuid.UUID, content io.Reader) (*entity.Business, error)
}
