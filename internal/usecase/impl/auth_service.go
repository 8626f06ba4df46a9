// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
	"perkpass/internal/domain/service"
	"perkpass/internal/usecase"
	"perkpass/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	authRepo         repository.AuthRepository
	profileRepo      repository.ProfileRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	clock            service.Clock
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AuthRepo         repository.AuthRepository
	ProfileRepo      repository.ProfileRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Clock            service.Clock
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		authRepo:         params.AuthRepo,
		profileRepo:      params.ProfileRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		clock:            params.Clock,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates the identity, its email credential and its profile in one transaction,
// then opens a session.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting sign-up", slog.String("email", email), slog.String("role", input.Role.String()))

	if !input.Role.IsSelfAssignable() {
		return nil, errors.Wrapf(domainerrors.ErrRoleNotAllowed, "role %q", input.Role)
	}

	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full name is required")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var (
		identity *entity.Identity
		profile  *entity.Profile
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()

		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findErr == nil {
			return errors.WithStack(domainerrors.ErrIdentityAlreadyExists)
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		identity = &entity.Identity{Email: email}
		if err := repoFactory.NewIdentityRepository().Create(ctx, identity); err != nil {
			return errors.Wrap(err, "failed to create identity")
		}

		credential := &entity.Authentication{
			UserID:         identity.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   passwordHash,
		}
		if err := authRepo.CreateAuthentication(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to create authentication")
		}

		profile = &entity.Profile{
			ID:       identity.ID,
			FullName: fullName,
			Role:     input.Role,
		}
		if err := repoFactory.NewProfileRepository().Create(ctx, profile); err != nil {
			return errors.Wrap(domainerrors.ErrSignUpFailed, err.Error())
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Sign-up transaction failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	tokens, err := srv.openSession(ctx, srv.refreshTokenRepo, identity.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", identity.ID))

	return &usecase.AuthOutput{Identity: identity, Profile: profile, Tokens: tokens}, nil
}

// SignIn checks an email/password pair and opens a session.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	// The profile only decides the landing page; a failed read lands on the dashboard.
	profile, err := srv.profileRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Profile unavailable at sign-in", slog.Any("userID", authRecord.UserID), slog.Any("error", err))
		profile = nil
	}

	tokens, err := srv.openSession(ctx, srv.refreshTokenRepo, authRecord.UserID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User signed in", slog.Any("userID", authRecord.UserID))

	return &usecase.AuthOutput{
		Identity: &entity.Identity{ID: authRecord.UserID, Email: email},
		Profile:  profile,
		Tokens:   tokens,
	}, nil
}

// SignOut deletes the stored session. Unknown tokens are ignored.
func (srv *authService) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, util.HashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Signed out")

	return nil
}

// ResolveSession turns request cookies into an identity. A valid access token is enough.
// Otherwise a stored, unexpired refresh token is exchanged for a new pair.
func (srv *authService) ResolveSession(ctx context.Context, input *usecase.ResolveSessionInput) (*usecase.ResolveSessionOutput, error) {
	if input.AccessToken == "" && input.RefreshToken == "" {
		return &usecase.ResolveSessionOutput{}, nil
	}

	if input.AccessToken != "" {
		claims, err := srv.tokenService.ValidateToken(input.AccessToken)
		if err == nil && claims.Type == service.TokenTypeAccess {
			return &usecase.ResolveSessionOutput{Identity: &entity.Identity{ID: claims.UserID}}, nil
		}
	}

	if input.RefreshToken == "" {
		return &usecase.ResolveSessionOutput{ClearCookies: true}, nil
	}

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return &usecase.ResolveSessionOutput{ClearCookies: true}, nil
	}

	tokenHash := util.HashToken(input.RefreshToken)
	now := srv.clock.Now()

	var (
		rotated     *usecase.SessionTokens
		lostRace bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID || stored.IsExpiredAt(now) {
			return errors.WithStack(repository.ErrRefreshTokenNotFound)
		}

		err = refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// A concurrent request with the same cookie rotated the row first; it owns the new pair.
			lostRace = true

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete rotated refresh token")
		}

		rotated, err = srv.openSession(ctx, refreshRepo, claims.UserID)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return &usecase.ResolveSessionOutput{ClearCookies: true}, nil
		}

		return nil, errors.Wrap(err, "failed to rotate session")
	}

	if lostRace {
		srv.log(ctx).Debug("Session rotated by a concurrent request", slog.Any("userID", claims.UserID))

		return &usecase.ResolveSessionOutput{Identity: &entity.Identity{ID: claims.UserID}}, nil
	}

	srv.log(ctx).Debug("Session rotated", slog.Any("userID", claims.UserID))

	return &usecase.ResolveSessionOutput{
		Identity: &entity.Identity{ID: claims.UserID},
		Rotated:  rotated,
	}, nil
}

// PurgeExpiredSessions deletes refresh tokens that can no longer be exchanged.
func (srv *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx, srv.clock.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired refresh tokens")
	}

	return removed, nil
}

// openSession issues a token pair and stores the refresh token's hash.
func (srv *authService) openSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID) (*usecase.SessionTokens, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := srv.clock.Now()
	tokens := &usecase.SessionTokens{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  now.Add(srv.tokenService.GetAccessTokenDuration()),
		RefreshExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	record := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: util.HashToken(refreshToken),
		ExpiresAt: tokens.RefreshExpiresAt,
	}
	if err := refreshRepo.CreateRefreshToken(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return tokens, nil
}
