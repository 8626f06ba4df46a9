package usecase

import (
	"context"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessUsecase classifies an identity into the capabilities the route guard checks.
type AccessUsecase interface {
	// Classify never fails: every lookup that errors counts as a negative.
	// The returned profile is nil when it could not be read.
	Classify(ctx context.Context, identityID uuid.UUID) (*entity.Profile, entity.Capabilities)
}
