package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a partner that publishes deals. The application uses at most one per owner.
type Business struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	BusinessName string
	Address      string
	Phone        string
	LogoURL      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
