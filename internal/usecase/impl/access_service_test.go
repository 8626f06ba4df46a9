package impl

import (
	"context"
	"testing"

	"perkpass/internal/domain/entity"
	"perkpass/internal/domain/repository"
	mockRepo "perkpass/internal/mocks/repository"
	mockSvc "perkpass/internal/mocks/service"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type accessServiceFixtures struct {
	service        usecase.AccessUsecase
	profileRepo    *mockRepo.MockProfileRepository
	businessRepo   *mockRepo.MockBusinessRepository
	campaignRepo   *mockRepo.MockCampaignRepository
	membershipRepo *mockRepo.MockMembershipRepository
	metrics        *mockSvc.MockAccessMetrics
}

func createTestAccessService(t *testing.T) accessServiceFixtures {
	fx := accessServiceFixtures{
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		businessRepo:   mockRepo.NewMockBusinessRepository(t),
		campaignRepo:   mockRepo.NewMockCampaignRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		metrics:        mockSvc.NewMockAccessMetrics(t),
	}

	fx.service = NewAccessService(AccessServiceParams{
		ProfileRepo:    fx.profileRepo,
		BusinessRepo:   fx.businessRepo,
		CampaignRepo:   fx.campaignRepo,
		MembershipRepo: fx.membershipRepo,
		Metrics:        fx.metrics,
		Clock:          newFrozenClock(t),
		Logger:         newTestLogger(),
	})

	return fx
}

func TestAccessService_Classify_AllPositive(t *testing.T) {
	fx := createTestAccessService(t)

	userID := uuid.New()
	fx.profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.Profile{ID: userID, Role: entity.RoleSupporter}, nil)
	fx.businessRepo.EXPECT().ExistsByOwner(mock.Anything, userID).Return(true, nil)
	fx.campaignRepo.EXPECT().ExistsByOrganizer(mock.Anything, userID).Return(true, nil)
	fx.membershipRepo.EXPECT().HasActive(mock.Anything, userID, testNow).Return(true, nil)

	profile, caps := fx.service.Classify(context.Background(), userID)

	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, entity.Capabilities{
		Role:         entity.RoleSupporter,
		IsMerchant:   true,
		IsFundraiser: true,
		IsMember:     true,
	}, caps)
}

func TestAccessService_Classify_ChecksAreIndependent(t *testing.T) {
	fx := createTestAccessService(t)

	userID := uuid.New()
	fx.profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.Profile{ID: userID, Role: entity.RoleFundraiser}, nil)
	fx.businessRepo.EXPECT().ExistsByOwner(mock.Anything, userID).Return(false, nil)
	fx.campaignRepo.EXPECT().ExistsByOrganizer(mock.Anything, userID).Return(false, nil)
	fx.membershipRepo.EXPECT().HasActive(mock.Anything, userID, testNow).Return(true, nil)

	_, caps := fx.service.Classify(context.Background(), userID)

	assert.False(t, caps.IsMerchant)
	assert.False(t, caps.IsFundraiser)
	assert.True(t, caps.IsMember)
	assert.True(t, caps.CanManageCampaigns(), "declared fundraiser role opens the area without a campaign")
}

func TestAccessService_Classify_FailuresCountAsNegative(t *testing.T) {
	fx := createTestAccessService(t)

	userID := uuid.New()
	dbErr := errors.New("connection reset")
	fx.profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, dbErr)
	fx.businessRepo.EXPECT().ExistsByOwner(mock.Anything, userID).Return(true, dbErr)
	fx.campaignRepo.EXPECT().ExistsByOrganizer(mock.Anything, userID).Return(false, dbErr)
	fx.membershipRepo.EXPECT().HasActive(mock.Anything, userID, testNow).Return(true, dbErr)

	fx.metrics.EXPECT().ObserveClassifierFailure(checkProfile).Once()
	fx.metrics.EXPECT().ObserveClassifierFailure(checkMerchant).Once()
	fx.metrics.EXPECT().ObserveClassifierFailure(checkFundraiser).Once()
	fx.metrics.EXPECT().ObserveClassifierFailure(checkMember).Once()

	profile, caps := fx.service.Classify(context.Background(), userID)

	assert.Nil(t, profile)
	assert.Equal(t, entity.Capabilities{}, caps)
}

func TestAccessService_Classify_MissingProfileIsNotAFailure(t *testing.T) {
	fx := createTestAccessService(t)

	userID := uuid.New()
	fx.profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrProfileNotFound)
	fx.businessRepo.EXPECT().ExistsByOwner(mock.Anything, userID).Return(true, nil)
	fx.campaignRepo.EXPECT().ExistsByOrganizer(mock.Anything, userID).Return(false, nil)
	fx.membershipRepo.EXPECT().HasActive(mock.Anything, userID, testNow).Return(false, nil)

	profile, caps := fx.service.Classify(context.Background(), userID)

	assert.Nil(t, profile)
	assert.Equal(t, entity.Role(""), caps.Role)
	assert.True(t, caps.CanManageBusiness())
}
