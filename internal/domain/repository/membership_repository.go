package repository

import (
	"context"
	"errors"
	"time"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMembershipNotFound is returned when a membership lookup matches no rows.
var ErrMembershipNotFound = errors.New("membership not found")

// CampaignTotals aggregates the memberships sold through one campaign.
type CampaignTotals struct {
	Members     int64
	RaisedCents int64
}

// MembershipRepository persists memberships. Memberships are insert-only.
type MembershipRepository interface {
	Create(ctx context.Context, membership *entity.Membership) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error)

	// HasActive reports whether userID holds a membership with expires_at >= now.
	HasActive(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error)

	// ListByUser returns the user's memberships, newest first, with Campaign populated.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error)

	// TotalsByCampaign sums member counts and fundraiser shares per campaign.
	// Campaigns without memberships are absent from the result.
	TotalsByCampaign(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID]CampaignTotals, error)
}
