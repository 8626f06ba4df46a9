package repository

import (
	"context"
	"errors"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile row exists for an identity.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the per-identity profile carrying the declared role.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error
}
