package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignModel mirrors the 'campaigns' table. Nullable dates mean "no bound".
type CampaignModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrganizerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Slug            string    `gorm:"type:varchar(120);unique;not null"`
	CampaignName    string    `gorm:"type:varchar(150);not null"`
	Description     string    `gorm:"type:text"`
	GoalAmountCents int64     `gorm:"not null"`
	StartDate       *time.Time
	EndDate         *time.Time
	Status          string `gorm:"type:varchar(20);not null"`
	LogoURL         string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}

// MembershipModel mirrors the 'memberships' table. Rows are insert-only.
type MembershipModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index:idx_memberships_user_expiry,priority:1"`
	CampaignID           uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt            time.Time `gorm:"not null;index:idx_memberships_user_expiry,priority:2"`
	FundraiserShareCents int64     `gorm:"not null"`
	CreatedAt            time.Time

	Campaign *CampaignModel `gorm:"foreignKey:CampaignID"`
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "memberships"
}
