package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile extends an Identity with a display name and declared role.
type Profile struct {
	ID        uuid.UUID // Same value as Identity.ID.
	FullName  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
