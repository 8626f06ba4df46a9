package impl

import (
	"context"
	"testing"
	"time"

	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
	"perkpass/internal/domain/service"
	mockRepo "perkpass/internal/mocks/repository"
	mockSvc "perkpass/internal/mocks/service"
	"perkpass/internal/usecase"
	"perkpass/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	authRepo         *mockRepo.MockAuthRepository
	profileRepo      *mockRepo.MockProfileRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:        fx.txManager,
		AuthRepo:         fx.authRepo,
		ProfileRepo:      fx.profileRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Clock:            newFrozenClock(t),
		Logger:           newTestLogger(),
	})

	return fx
}

func (fx authServiceFixtures) expectTokenIssue(refreshRepo *mockRepo.MockRefreshTokenRepository, userID uuid.UUID) {
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	refreshRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID &&
				token.TokenHash == util.HashToken("refresh-token") &&
				token.ExpiresAt.Equal(testNow.Add(7*24*time.Hour))
		})).
		Return(nil)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SignUpInput{
		Email:    "  Ada@Example.com ",
		Password: "correct horse",
		FullName: "Ada Lovelace",
		Role:     entity.RoleFundraiser,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identityRepo := mockRepo.NewMockIdentityRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)

			factory.EXPECT().NewAuthRepository().Return(authRepo)
			factory.EXPECT().NewIdentityRepository().Return(identityRepo)
			factory.EXPECT().NewProfileRepository().Return(profileRepo)

			authRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "ada@example.com").
				Return(nil, repository.ErrAuthNotFound)
			identityRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Identity")).
				Run(func(_ context.Context, identity *entity.Identity) {
					identity.ID = userID
				}).
				Return(nil)
			authRepo.EXPECT().
				CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
					return a.UserID == userID && a.PasswordHash == "hashed" && a.ProviderUserID == "ada@example.com"
				})).
				Return(nil)
			profileRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
					return p.ID == userID && p.Role == entity.RoleFundraiser && p.FullName == "Ada Lovelace"
				})).
				Return(nil)

			return fn(factory)
		})
	fx.expectTokenIssue(fx.refreshTokenRepo, userID)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.Identity.ID)
	assert.Equal(t, "ada@example.com", output.Identity.Email)
	assert.Equal(t, entity.RoleFundraiser, output.Profile.Role)
	assert.Equal(t, "access-token", output.Tokens.AccessToken)
	assert.Equal(t, testNow.Add(15*time.Minute), output.Tokens.AccessExpiresAt)
}

func TestAuthService_SignUp_AdminRoleRejected(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:    "root@example.com",
		Password: "whatever123",
		FullName: "Root",
		Role:     entity.RoleAdmin,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			authRepo := mockRepo.NewMockAuthRepository(t)
			factory.EXPECT().NewAuthRepository().Return(authRepo)
			authRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "taken@example.com").
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			return fn(factory)
		})

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:    "taken@example.com",
		Password: "password123",
		FullName: "Someone",
		Role:     entity.RoleSupporter,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityAlreadyExists)
}

func TestAuthService_SignUp_ProfileFailureAbortsTransaction(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identityRepo := mockRepo.NewMockIdentityRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)

			factory.EXPECT().NewAuthRepository().Return(authRepo)
			factory.EXPECT().NewIdentityRepository().Return(identityRepo)
			factory.EXPECT().NewProfileRepository().Return(profileRepo)

			authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "new@example.com").Return(nil, repository.ErrAuthNotFound)
			identityRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
			authRepo.EXPECT().CreateAuthentication(ctx, mock.Anything).Return(nil)
			profileRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))

			return fn(factory)
		})

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:    "new@example.com",
		Password: "password123",
		FullName: "New User",
		Role:     entity.RoleBusiness,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSignUpFailed)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ada@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret-pass", "hashed").Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(&entity.Profile{ID: userID, Role: entity.RoleBusiness}, nil)
	fx.expectTokenIssue(fx.refreshTokenRepo, userID)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "Ada@example.com", Password: "secret-pass"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.Identity.ID)
	assert.Equal(t, entity.RoleBusiness, output.Profile.Role)
}

func TestAuthService_SignIn_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.authRepo.EXPECT().
			FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "nobody@example.com").
			Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "nobody@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.authRepo.EXPECT().
			FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "ada@example.com").
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "ada@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_SignIn_ProfileReadFailureIsNotFatal(t *testing.T) {
	fx := createTestAuthService(t)

	userID := uuid.New()
	fx.authRepo.EXPECT().
		FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "ada@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
	fx.profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, errors.New("timeout"))
	fx.expectTokenIssue(fx.refreshTokenRepo, userID)

	output, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "ada@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Nil(t, output.Profile)
}

func TestAuthService_SignOut(t *testing.T) {
	t.Run("deletes stored session", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, util.HashToken("raw")).Return(nil)

		assert.NoError(t, fx.service.SignOut(context.Background(), "raw"))
	})

	t.Run("unknown token is ignored", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.refreshTokenRepo.EXPECT().
			DeleteRefreshTokenByHash(mock.Anything, util.HashToken("raw")).
			Return(repository.ErrRefreshTokenNotFound)

		assert.NoError(t, fx.service.SignOut(context.Background(), "raw"))
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		fx := createTestAuthService(t)

		assert.NoError(t, fx.service.SignOut(context.Background(), ""))
	})
}

func TestAuthService_ResolveSession_NoCookies(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.ResolveSession(context.Background(), &usecase.ResolveSessionInput{})

	require.NoError(t, err)
	assert.Nil(t, output.Identity)
	assert.False(t, output.ClearCookies)
}

func TestAuthService_ResolveSession_ValidAccessToken(t *testing.T) {
	fx := createTestAuthService(t)

	userID := uuid.New()
	fx.tokenService.EXPECT().
		ValidateToken("access").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)

	output, err := fx.service.ResolveSession(context.Background(), &usecase.ResolveSessionInput{
		AccessToken:  "access",
		RefreshToken: "refresh",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, output.Identity.ID)
	assert.Nil(t, output.Rotated)
}

func TestAuthService_ResolveSession_RefreshRotatesPair(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.tokenService.EXPECT().ValidateToken("expired-access").Return(nil, errors.New("token is expired"))
	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
			factory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)

			oldHash := util.HashToken("old-refresh")
			refreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, oldHash).
				Return(&entity.RefreshToken{UserID: userID, TokenHash: oldHash, ExpiresAt: testNow.Add(time.Hour)}, nil)
			refreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, oldHash).Return(nil)
			fx.expectTokenIssue(refreshRepo, userID)

			return fn(factory)
		})

	output, err := fx.service.ResolveSession(ctx, &usecase.ResolveSessionInput{
		AccessToken:  "expired-access",
		RefreshToken: "old-refresh",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, output.Identity.ID)
	require.NotNil(t, output.Rotated)
	assert.Equal(t, "refresh-token", output.Rotated.RefreshToken)
	assert.False(t, output.ClearCookies)
}

func TestAuthService_ResolveSession_LostRotationKeepsIdentity(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
			factory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)

			oldHash := util.HashToken("old-refresh")
			refreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, oldHash).
				Return(&entity.RefreshToken{UserID: userID, TokenHash: oldHash, ExpiresAt: testNow.Add(time.Hour)}, nil)
			// The parallel request deleted the row between the read and this delete.
			refreshRepo.EXPECT().
				DeleteRefreshTokenByHash(ctx, oldHash).
				Return(errors.WithStack(repository.ErrRefreshTokenNotFound))

			return fn(factory)
		})

	output, err := fx.service.ResolveSession(ctx, &usecase.ResolveSessionInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	require.NotNil(t, output.Identity)
	assert.Equal(t, userID, output.Identity.ID)
	assert.Nil(t, output.Rotated)
	assert.False(t, output.ClearCookies)
}

func TestAuthService_ResolveSession_ExpiredStoredSessionClearsCookies(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
			factory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)
			refreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, util.HashToken("old-refresh")).
				Return(&entity.RefreshToken{UserID: userID, ExpiresAt: testNow.Add(-time.Minute)}, nil)

			return fn(factory)
		})

	output, err := fx.service.ResolveSession(ctx, &usecase.ResolveSessionInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Nil(t, output.Identity)
	assert.True(t, output.ClearCookies)
}

func TestAuthService_ResolveSession_AccessTokenInRefreshSlot(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().
		ValidateToken("access-used-as-refresh").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}, nil)

	output, err := fx.service.ResolveSession(context.Background(), &usecase.ResolveSessionInput{
		RefreshToken: "access-used-as-refresh",
	})

	require.NoError(t, err)
	assert.Nil(t, output.Identity)
	assert.True(t, output.ClearCookies)
}

func TestAuthService_ResolveSession_StorageErrorIsReturned(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().
		ValidateToken("refresh").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	_, err := fx.service.ResolveSession(context.Background(), &usecase.ResolveSessionInput{RefreshToken: "refresh"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAuthService_PurgeExpiredSessions(t *testing.T) {
	fx := createTestAuthService(t)
	fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(mock.Anything, testNow).Return(int64(3), nil)

	removed, err := fx.service.PurgeExpiredSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
