// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"perkpass/config"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const defaultMinPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Cost and minimum length come from the auth config section; out-of-range values fall back to defaults.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		cost:      bcrypt.DefaultCost,
		minLength: defaultMinPasswordLength,
	}

	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			hasher.cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.MinPasswordLength > 0 {
			hasher.minLength = cfg.Auth.MinPasswordLength
		}
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) < h.minLength {
		return "", domainerrors.ErrPasswordTooShort
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
