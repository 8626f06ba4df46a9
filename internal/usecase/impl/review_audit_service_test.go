package impl

import (
	"context"
	"testing"

	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
	"perkpass/internal/domain/service"
	mockRepo "perkpass/internal/mocks/repository"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewAuditFixtures struct {
	service    usecase.ReviewAuditUsecase
	reviewRepo *mockRepo.MockDealReviewRepository
}

func createTestReviewAuditService(t *testing.T) reviewAuditFixtures {
	fx := reviewAuditFixtures{reviewRepo: mockRepo.NewMockDealReviewRepository(t)}
	fx.service = NewReviewAuditService(ReviewAuditServiceParams{
		ReviewRepo: fx.reviewRepo,
		Clock:      newFrozenClock(t),
		Logger:     newTestLogger(),
	})

	return fx
}

func newReviewedEvent() *service.DealReviewedEvent {
	return &service.DealReviewedEvent{
		DealID:     uuid.NewString(),
		BusinessID: uuid.NewString(),
		ReviewerID: uuid.NewString(),
		Decision:   "approved",
	}
}

func TestReviewAuditService_RecordDealReview(t *testing.T) {
	fx := createTestReviewAuditService(t)
	event := newReviewedEvent()

	fx.reviewRepo.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(r *entity.DealReview) bool {
			return r.MessageID == "msg-1" &&
				r.DealID.String() == event.DealID &&
				r.Decision == entity.ApprovalApproved &&
				r.ReviewedAt.Equal(testNow) &&
				r.RecordedAt.Equal(testNow)
		})).
		Return(true, nil)

	require.NoError(t, fx.service.RecordDealReview(context.Background(), "msg-1", event))
}

func TestReviewAuditService_RecordDealReview_DuplicateIsAcknowledged(t *testing.T) {
	fx := createTestReviewAuditService(t)

	fx.reviewRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(false, nil)

	assert.NoError(t, fx.service.RecordDealReview(context.Background(), "msg-1", newReviewedEvent()))
}

func TestReviewAuditService_RecordDealReview_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		messageID string
		mutate    func(*service.DealReviewedEvent)
	}{
		{name: "missing message id", messageID: ""},
		{name: "pending is not a decision", messageID: "m", mutate: func(e *service.DealReviewedEvent) { e.Decision = "pending" }},
		{name: "bad deal id", messageID: "m", mutate: func(e *service.DealReviewedEvent) { e.DealID = "nope" }},
		{name: "bad reviewer id", messageID: "m", mutate: func(e *service.DealReviewedEvent) { e.ReviewerID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewAuditService(t)
			event := newReviewedEvent()
			if tt.mutate != nil {
				tt.mutate(event)
			}

			err := fx.service.RecordDealReview(context.Background(), tt.messageID, event)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestReviewAuditService_RecordDealReview_DeletedDeal(t *testing.T) {
	fx := createTestReviewAuditService(t)

	fx.reviewRepo.EXPECT().Record(mock.Anything, mock.Anything).
		Return(false, errors.Wrap(repository.ErrDealNotFound, "record deal review"))

	err := fx.service.RecordDealReview(context.Background(), "msg-1", newReviewedEvent())
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewAuditService_RecordDealReview_StoreFailure(t *testing.T) {
	fx := createTestReviewAuditService(t)

	fx.reviewRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(false, errors.New("connection reset"))

	err := fx.service.RecordDealReview(context.Background(), "msg-1", newReviewedEvent())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}
