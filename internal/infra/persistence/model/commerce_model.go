package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table.
type BusinessModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessName string    `gorm:"type:varchar(150);not null"`
	Address      string    `gorm:"type:text"`
	Phone        string    `gorm:"type:varchar(50)"`
	LogoURL      string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// DealModel mirrors the 'deals' table.
type DealModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(200);not null"`
	Description    string    `gorm:"type:text"`
	Category       string    `gorm:"type:varchar(50)"`
	Terms          string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20);not null;index:idx_deals_listable,priority:1"`
	ApprovalStatus string    `gorm:"type:varchar(20);not null;index:idx_deals_listable,priority:2"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Business *BusinessModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (DealModel) TableName() string {
	return "deals"
}

// DealReviewModel mirrors the 'deal_reviews' table.
type DealReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MessageID  string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	DealID     uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null"`
	Decision   string    `gorm:"type:varchar(20);not null"`
	ReviewedAt time.Time `gorm:"not null;index"`
	RecordedAt time.Time `gorm:"not null"`

	Deal *DealModel `gorm:"foreignKey:DealID"`
}

// TableName explicitly sets the table name for GORM.
func (DealReviewModel) TableName() string {
	return "deal_reviews"
}
