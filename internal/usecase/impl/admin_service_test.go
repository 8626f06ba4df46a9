package impl

import (
	"context"
	"testing"

	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/service"
	mockRepo "perkpass/internal/mocks/repository"
	mockSvc "perkpass/internal/mocks/service"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service        usecase.AdminUsecase
	dealRepo       *mockRepo.MockDealRepository
	reviewRepo     *mockRepo.MockDealReviewRepository
	statsRepo      *mockRepo.MockStatsRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	fx := adminServiceFixtures{
		dealRepo:       mockRepo.NewMockDealRepository(t),
		reviewRepo:     mockRepo.NewMockDealReviewRepository(t),
		statsRepo:      mockRepo.NewMockStatsRepository(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewAdminService(AdminServiceParams{
		DealRepo:       fx.dealRepo,
		ReviewRepo:     fx.reviewRepo,
		StatsRepo:      fx.statsRepo,
		EventPublisher: fx.eventPublisher,
		Clock:          newFrozenClock(t),
		Logger:         newTestLogger(),
	})

	return fx
}

func TestAdminService_ReviewDeal_PublishesEvent(t *testing.T) {
	fx := createTestAdminService(t)

	adminID := uuid.New()
	deal := &entity.Deal{ID: uuid.New(), BusinessID: uuid.New(), ApprovalStatus: entity.ApprovalPending}
	fx.dealRepo.EXPECT().FindByID(mock.Anything, deal.ID).Return(deal, nil)
	fx.dealRepo.EXPECT().UpdateApproval(mock.Anything, deal.ID, entity.ApprovalApproved).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishDealReviewed(mock.Anything, &service.DealReviewedEvent{
			DealID:     deal.ID.String(),
			BusinessID: deal.BusinessID.String(),
			ReviewerID: adminID.String(),
			Decision:   "approved",
			ReviewedAt: testNow,
		}).
		Return(nil)

	reviewed, err := fx.service.ReviewDeal(context.Background(), adminID, deal.ID, entity.ApprovalApproved)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, reviewed.ApprovalStatus)
}

func TestAdminService_ReviewDeal_PublishFailureIsNotSurfaced(t *testing.T) {
	fx := createTestAdminService(t)

	deal := &entity.Deal{ID: uuid.New()}
	fx.dealRepo.EXPECT().FindByID(mock.Anything, deal.ID).Return(deal, nil)
	fx.dealRepo.EXPECT().UpdateApproval(mock.Anything, deal.ID, entity.ApprovalRejected).Return(nil)
	fx.eventPublisher.EXPECT().PublishDealReviewed(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	reviewed, err := fx.service.ReviewDeal(context.Background(), uuid.New(), deal.ID, entity.ApprovalRejected)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalRejected, reviewed.ApprovalStatus)
}

func TestAdminService_ReviewDeal_RejectsPendingAsDecision(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.ReviewDeal(context.Background(), uuid.New(), uuid.New(), entity.ApprovalPending)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidReviewDecision)
}

func TestAdminService_Stats_ErrorGivesZeroCounters(t *testing.T) {
	fx := createTestAdminService(t)
	fx.statsRepo.EXPECT().PlatformStats(mock.Anything, testNow).Return(nil, errors.New("boom"))

	assert.Equal(t, &entity.PlatformStats{}, fx.service.Stats(context.Background()))
}

func TestAdminService_ListPendingDeals(t *testing.T) {
	fx := createTestAdminService(t)
	pending := []*entity.Deal{{ID: uuid.New()}}
	fx.dealRepo.EXPECT().ListByApproval(mock.Anything, entity.ApprovalPending).Return(pending, nil)

	assert.Equal(t, pending, fx.service.ListPendingDeals(context.Background()))
}

func TestAdminService_RecentReviews(t *testing.T) {
	fx := createTestAdminService(t)

	reviews := []*entity.DealReview{{DealTitle: "Free coffee", Decision: entity.ApprovalApproved}}
	fx.reviewRepo.EXPECT().ListRecent(mock.Anything, recentReviewsLimit).Return(reviews, nil)

	assert.Equal(t, reviews, fx.service.RecentReviews(context.Background()))
}

func TestAdminService_RecentReviews_ReadFailureIsEmpty(t *testing.T) {
	fx := createTestAdminService(t)

	fx.reviewRepo.EXPECT().ListRecent(mock.Anything, recentReviewsLimit).Return(nil, errors.New("timeout"))

	reviews := fx.service.RecentReviews(context.Background())
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}
