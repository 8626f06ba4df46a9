package repository

import (
	"context"
	"errors"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDealNotFound is returned when a deal lookup matches no rows.
var ErrDealNotFound = errors.New("deal not found")

// DealRepository persists merchant deals.
type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// ListListable returns deals that are active and approved, newest first,
	// with the owning Business populated.
	ListListable(ctx context.Context) ([]*entity.Deal, error)

	// ListByBusiness returns every deal of a business regardless of status, newest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Deal, error)

	// ListByApproval returns deals in the given approval state, oldest first,
	// with the owning Business populated.
	ListByApproval(ctx context.Context, status entity.ApprovalStatus) ([]*entity.Deal, error)

	// Update writes the merchant-editable fields of a deal.
	Update(ctx context.Context, deal *entity.Deal) error

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DealStatus) error
	UpdateApproval(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error
}
