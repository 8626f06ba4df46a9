package usecase

import (
	"context"
	"time"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// MembershipView pairs a membership with its state at read time.
type MembershipView struct {
	Membership *entity.Membership
	Active     bool
}

// CardVerification is what a merchant sees after scanning a membership card.
type CardVerification struct {
	MembershipID uuid.UUID
	CampaignName string
	ExpiresAt    time.Time
	Valid        bool
}

// MembershipUsecase covers purchasing, listing and verifying memberships.
type MembershipUsecase interface {
	Purchase(ctx context.Context, userID uuid.UUID, campaignSlug string) (*entity.Membership, error)
	ListMine(ctx context.Context, userID uuid.UUID) []*MembershipView
	MembershipCard(ctx context.Context, userID, membershipID uuid.UUID) ([]byte, error)
	Verify(ctx context.Context, payload string) (*CardVerification, error)
}
