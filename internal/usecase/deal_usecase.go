package usecase

import (
	"context"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// DealInput holds the merchant-editable deal fields.
type DealInput struct {
	Title       string
	Description string
	Category    string
	Terms       string
}

// MemberDeals is the gated listing. Deals is empty and Locked is true for non-members.
type MemberDeals struct {
	Locked bool
	Deals  []*entity.Deal
}

// DealUsecase covers the member listing and merchant deal management.
type DealUsecase interface {
	// ListMemberDeals never queries deals for a viewer without an active membership.
	ListMemberDeals(ctx context.Context, viewer *entity.Viewer) *MemberDeals
	// ListBusinessDeals returns a nil business when the owner has none yet.
	ListBusinessDeals(ctx context.Context, ownerID uuid.UUID) (*entity.Business, []*entity.Deal)
	CreateDeal(ctx context.Context, ownerID uuid.UUID, input *DealInput) (*entity.Deal, error)
	UpdateDeal(ctx context.Context, ownerID, dealID uuid.UUID, input *DealInput) (*entity.Deal, error)
	ToggleDealStatus(ctx context.Context, ownerID, dealID uuid.UUID) (*entity.Deal, error)
}
