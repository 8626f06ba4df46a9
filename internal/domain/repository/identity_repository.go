// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIdentityNotFound is a domain-specific error returned when an account is not found.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository defines the standard operations for account persistence.
type IdentityRepository interface {
	// Create persists a new identity and fills in its generated ID.
	Create(ctx context.Context, identity *entity.Identity) error

	// FindByID retrieves a single identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail retrieves a single identity by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)
}
