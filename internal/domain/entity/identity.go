// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail marks an email/password credential.
const ProviderTypeEmail = "email"

// Identity is an authenticated account. It is created at sign-up and never
// mutated by the application afterwards; signing out only ends a session.
type Identity struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email     string    // Login identifier.
	CreatedAt time.Time // Timestamp of when the account was created.
}

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this credential record.
	UserID         uuid.UUID // Links this credential to the Identity it belongs to.
	Provider       string    // The authentication provider, e.g. "email".
	ProviderUserID string    // Provider-scoped login key; the email address for the email provider.
	PasswordHash   string    // bcrypt hash, only set when Provider is "email".
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived session. Only a SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpiredAt reports whether the session is no longer usable at the given instant.
func (t *RefreshToken) IsExpiredAt(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
