package entity

import (
	"time"

	"github.com/google/uuid"
)

// DealReview is the audit record of one moderation decision, written by the worker
// from the deal.reviewed event. MessageID makes redelivered events idempotent.
type DealReview struct {
	ID         uuid.UUID
	MessageID  string
	DealID     uuid.UUID
	BusinessID uuid.UUID
	ReviewerID uuid.UUID
	Decision   ApprovalStatus
	ReviewedAt time.Time
	RecordedAt time.Time

	// DealTitle is filled by listing queries for display.
	DealTitle string
}
