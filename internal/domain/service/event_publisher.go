package service

import (
	"context"
	"time"
)

// DealReviewedEvent is emitted after an admin approves or rejects a deal.
type DealReviewedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	DealID     string    `json:"deal_id"`
	BusinessID string    `json:"business_id"`
	ReviewerID string    `json:"reviewer_id"`
	Decision   string    `json:"decision"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDealReviewed publishes a moderation outcome for downstream consumers.
	PublishDealReviewed(ctx context.Context, event *DealReviewedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
