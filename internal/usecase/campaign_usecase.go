package usecase

import (
	"context"
	"io"
	"time"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCampaignInput holds the fields of a new campaign.
type CreateCampaignInput struct {
	CampaignName    string
	Description     string
	GoalAmountCents int64
	StartDate       time.Time
	EndDate         time.Time
}

// CampaignUsecase covers fundraiser campaign management and the public campaign pages.
type CampaignUsecase interface {
	ListMyCampaigns(ctx context.Context, organizerID uuid.UUID) []*entity.CampaignProgress
	CreateCampaign(ctx context.Context, organizerID uuid.UUID, input *CreateCampaignInput) (*entity.Campaign, error)
	GetPublicCampaign(ctx context.Context, slug string) (*entity.CampaignProgress, error)
	ListActiveCampaigns(ctx context.Context) []*entity.Campaign
	UploadLogo(ctx context.Context, organizerID, campaignID uuid.UUID, content io.Reader) (*entity.Campaign, error)
}
