package repository

import (
	"context"
	"errors"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when the owner has not set up a business yet.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository persists merchant business profiles.
type BusinessRepository interface {
	// FindByOwner returns the business owned by ownerID.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)

	// ExistsByOwner reports whether ownerID owns at least one business.
	ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error)

	Create(ctx context.Context, business *entity.Business) error

	// Update writes the editable contact fields of an existing business.
	Update(ctx context.Context, business *entity.Business) error

	UpdateLogo(ctx context.Context, id uuid.UUID, logoURL string) error
}
