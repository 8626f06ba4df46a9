package repository

import (
	"context"
	"errors"
	"time"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for campaign persistence.
var (
	// ErrCampaignNotFound is returned when a campaign lookup matches no rows.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrDuplicateSlug is returned when the slug is already taken.
	ErrDuplicateSlug = errors.New("campaign slug already exists")
)

// CampaignRepository persists fundraising campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Campaign, error)

	// SlugExists reports whether slug is already used by any campaign.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// ExistsByOrganizer reports whether organizerID runs at least one campaign.
	ExistsByOrganizer(ctx context.Context, organizerID uuid.UUID) (bool, error)

	// ListByOrganizer returns the organizer's campaigns, newest first.
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*entity.Campaign, error)

	// ListOpen returns active campaigns whose date window contains now, newest first.
	ListOpen(ctx context.Context, now time.Time, limit int) ([]*entity.Campaign, error)

	UpdateLogo(ctx context.Context, id uuid.UUID, logoURL string) error
}
