// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"perkpass/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
	Role     entity.Role
}

// SignInInput defines the data required for a user to log in.
type SignInInput struct {
	Email    string
	Password string
}

// ResolveSessionInput carries the raw token cookies of a request. Either may be empty.
type ResolveSessionInput struct {
	AccessToken  string
	RefreshToken string
}

// --- Output DTOs ---

// SessionTokens is a freshly issued token pair the delivery layer must write as cookies.
type SessionTokens struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// AuthOutput is returned by sign-up and sign-in.
type AuthOutput struct {
	Identity *entity.Identity
	Profile  *entity.Profile
	Tokens   *SessionTokens
}

// ResolveSessionOutput describes the caller and any cookie changes the response must carry.
type ResolveSessionOutput struct {
	// Identity is nil for an anonymous caller.
	Identity *entity.Identity
	// Rotated is set when the access token had expired and the refresh token was exchanged.
	Rotated *SessionTokens
	// ClearCookies is set when the request carried tokens that can no longer be used.
	ClearCookies bool
}

// AuthUsecase is the identity service boundary: accounts, credentials and cookie sessions.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)
	SignOut(ctx context.Context, refreshToken string) error
	ResolveSession(ctx context.Context, input *ResolveSessionInput) (*ResolveSessionOutput, error)
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
