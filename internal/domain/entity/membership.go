package entity

import (
	"time"

	"github.com/google/uuid"
)

// Membership is a time-bounded entitlement granting access to deals. It is never updated;
// whether it is active is evaluated against the clock every time it is read.
type Membership struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	CampaignID           uuid.UUID
	ExpiresAt            time.Time
	FundraiserShareCents int64
	CreatedAt            time.Time

	// Campaign is populated by listing queries for display.
	Campaign *Campaign
}

// IsActiveAt reports whether the membership still grants access: expires_at >= now.
func (m *Membership) IsActiveAt(now time.Time) bool {
	return !m.ExpiresAt.Before(now)
}
