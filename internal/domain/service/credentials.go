package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// PasswordHasher turns sign-up passwords into stored hashes and checks
// sign-in attempts against them. Hash rejects passwords below the
// configured minimum length.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// Claims defines the custom claims for the JWT tokens.
// The declared role is deliberately absent: it is read from the profile on every request.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given identity.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the signature and expiry of a token string, using the secret that
	// matches its type claim.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
