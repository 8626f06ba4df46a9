package entity

import (
	"time"

	"github.com/google/uuid"
)

// DealStatus is the merchant-controlled visibility switch.
type DealStatus string

const (
	DealStatusActive   DealStatus = "active"
	DealStatusInactive DealStatus = "inactive"
)

// Toggled returns the opposite status.
func (s DealStatus) Toggled() DealStatus {
	if s == DealStatusActive {
		return DealStatusInactive
	}

	return DealStatusActive
}

// ApprovalStatus is the admin-controlled visibility switch.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsReviewDecision reports whether an admin may set this value.
func (s ApprovalStatus) IsReviewDecision() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// Deal is an offer published by a Business.
type Deal struct {
	ID             uuid.UUID
	BusinessID     uuid.UUID
	Title          string
	Description    string
	Category       string
	Terms          string
	Status         DealStatus
	ApprovalStatus ApprovalStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Business is populated by listing queries that join the owning business for display.
	Business *Business
}
