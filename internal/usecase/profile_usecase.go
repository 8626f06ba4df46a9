package usecase

import (
	"context"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase reads and edits the caller's own profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, fullName string) (*entity.Profile, error)
}
