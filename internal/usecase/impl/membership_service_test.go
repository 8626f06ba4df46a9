package impl

import (
	"context"
	"testing"
	"time"

	"perkpass/config"
	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
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

type membershipServiceFixtures struct {
	service        usecase.MembershipUsecase
	campaignRepo   *mockRepo.MockCampaignRepository
	membershipRepo *mockRepo.MockMembershipRepository
	qrService      *mockSvc.MockQRCodeService
}

func createTestMembershipService(t *testing.T) membershipServiceFixtures {
	fx := membershipServiceFixtures{
		campaignRepo:   mockRepo.NewMockCampaignRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		qrService:      mockSvc.NewMockQRCodeService(t),
	}
	fx.service = NewMembershipService(MembershipServiceParams{
		Config: &config.Config{Membership: &config.MembershipConfig{
			PriceCents:             2500,
			FundraiserSharePercent: 40,
			ValidityMonths:         12,
		}},
		CampaignRepo:   fx.campaignRepo,
		MembershipRepo: fx.membershipRepo,
		QRService:      fx.qrService,
		Clock:          newFrozenClock(t),
		Logger:         newTestLogger(),
	})

	return fx
}

func TestMembershipService_Purchase(t *testing.T) {
	fx := createTestMembershipService(t)

	userID := uuid.New()
	campaign := &entity.Campaign{ID: uuid.New(), Slug: "band", Status: entity.CampaignStatusActive}
	fx.campaignRepo.EXPECT().FindBySlug(mock.Anything, "band").Return(campaign, nil)
	fx.membershipRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(m *entity.Membership) bool {
			return m.UserID == userID &&
				m.CampaignID == campaign.ID &&
				m.FundraiserShareCents == 1000 &&
				m.ExpiresAt.Equal(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
		})).
		Return(nil)

	membership, err := fx.service.Purchase(context.Background(), userID, "band")

	require.NoError(t, err)
	assert.True(t, membership.IsActiveAt(testNow))
}

func TestMembershipService_Purchase_ExpiresOneCalendarYearLater(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "across a leap day",
			now:  time.Date(2023, 6, 1, 9, 30, 0, 0, time.UTC),
			want: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "bought on a leap day",
			now:  time.Date(2024, 2, 29, 9, 30, 0, 0, time.UTC),
			want: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := mockSvc.NewMockClock(t)
			clock.EXPECT().Now().Return(tt.now)
			campaignRepo := mockRepo.NewMockCampaignRepository(t)
			membershipRepo := mockRepo.NewMockMembershipRepository(t)
			srv := NewMembershipService(MembershipServiceParams{
				Config:         &config.Config{Membership: &config.MembershipConfig{PriceCents: 2500, ValidityMonths: 12}},
				CampaignRepo:   campaignRepo,
				MembershipRepo: membershipRepo,
				QRService:      mockSvc.NewMockQRCodeService(t),
				Clock:          clock,
				Logger:         newTestLogger(),
			})

			campaignRepo.EXPECT().
				FindBySlug(mock.Anything, "band").
				Return(&entity.Campaign{ID: uuid.New(), Slug: "band", Status: entity.CampaignStatusActive}, nil)
			membershipRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

			membership, err := srv.Purchase(context.Background(), uuid.New(), "band")

			require.NoError(t, err)
			assert.Equal(t, tt.want, membership.ExpiresAt)
		})
	}
}

func TestMembershipService_Purchase_ClosedCampaign(t *testing.T) {
	fx := createTestMembershipService(t)

	campaign := &entity.Campaign{ID: uuid.New(), Slug: "old", Status: entity.CampaignStatusActive, EndDate: testNow.Add(-time.Hour)}
	fx.campaignRepo.EXPECT().FindBySlug(mock.Anything, "old").Return(campaign, nil)

	_, err := fx.service.Purchase(context.Background(), uuid.New(), "old")

	assert.ErrorIs(t, err, domainerrors.ErrCampaignClosed)
}

func TestMembershipService_ListMine_EvaluatesExpiry(t *testing.T) {
	fx := createTestMembershipService(t)

	userID := uuid.New()
	fx.membershipRepo.EXPECT().ListByUser(mock.Anything, userID).Return([]*entity.Membership{
		{ID: uuid.New(), ExpiresAt: testNow.Add(time.Hour)},
		{ID: uuid.New(), ExpiresAt: testNow},
		{ID: uuid.New(), ExpiresAt: testNow.Add(-time.Second)},
	}, nil)

	views := fx.service.ListMine(context.Background(), userID)

	require.Len(t, views, 3)
	assert.True(t, views[0].Active)
	assert.True(t, views[1].Active, "a membership expiring exactly now is still active")
	assert.False(t, views[2].Active)
}

func TestMembershipService_MembershipCard_OwnerOnly(t *testing.T) {
	fx := createTestMembershipService(t)

	membership := &entity.Membership{ID: uuid.New(), UserID: uuid.New()}
	fx.membershipRepo.EXPECT().FindByID(mock.Anything, membership.ID).Return(membership, nil)

	_, err := fx.service.MembershipCard(context.Background(), uuid.New(), membership.ID)

	assert.ErrorIs(t, err, domainerrors.ErrMembershipNotFound)
}

func TestMembershipService_MembershipCard(t *testing.T) {
	fx := createTestMembershipService(t)

	membership := &entity.Membership{ID: uuid.New(), UserID: uuid.New(), ExpiresAt: testNow.Add(time.Hour)}
	fx.membershipRepo.EXPECT().FindByID(mock.Anything, membership.ID).Return(membership, nil)
	fx.qrService.EXPECT().
		GenerateMembershipQR(&service.MembershipCard{
			MembershipID: membership.ID,
			UserID:       membership.UserID,
			ExpiresAt:    membership.ExpiresAt,
		}).
		Return([]byte("png"), nil)

	png, err := fx.service.MembershipCard(context.Background(), membership.UserID, membership.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestMembershipService_Verify(t *testing.T) {
	fx := createTestMembershipService(t)

	membership := &entity.Membership{ID: uuid.New(), UserID: uuid.New(), CampaignID: uuid.New(), ExpiresAt: testNow.Add(-time.Hour)}
	fx.qrService.EXPECT().
		ParseMembershipQR("payload").
		Return(&service.MembershipCard{MembershipID: membership.ID, UserID: membership.UserID, ExpiresAt: testNow.Add(time.Hour)}, nil)
	fx.membershipRepo.EXPECT().FindByID(mock.Anything, membership.ID).Return(membership, nil)
	fx.campaignRepo.EXPECT().FindByID(mock.Anything, membership.CampaignID).Return(&entity.Campaign{CampaignName: "Band"}, nil)

	result, err := fx.service.Verify(context.Background(), "payload")

	require.NoError(t, err)
	assert.False(t, result.Valid, "stored expiry wins over the card's")
	assert.Equal(t, "Band", result.CampaignName)
}

func TestMembershipService_Verify_InvalidCards(t *testing.T) {
	t.Run("unparseable", func(t *testing.T) {
		fx := createTestMembershipService(t)
		fx.qrService.EXPECT().ParseMembershipQR("junk").Return(nil, errors.New("bad payload"))

		_, err := fx.service.Verify(context.Background(), "junk")

		assert.ErrorIs(t, err, domainerrors.ErrMembershipCardInvalid)
	})

	t.Run("unknown membership", func(t *testing.T) {
		fx := createTestMembershipService(t)
		card := &service.MembershipCard{MembershipID: uuid.New(), UserID: uuid.New()}
		fx.qrService.EXPECT().ParseMembershipQR("p").Return(card, nil)
		fx.membershipRepo.EXPECT().FindByID(mock.Anything, card.MembershipID).Return(nil, repository.ErrMembershipNotFound)

		_, err := fx.service.Verify(context.Background(), "p")

		assert.ErrorIs(t, err, domainerrors.ErrMembershipCardInvalid)
	})

	t.Run("holder mismatch", func(t *testing.T) {
		fx := createTestMembershipService(t)
		card := &service.MembershipCard{MembershipID: uuid.New(), UserID: uuid.New()}
		fx.qrService.EXPECT().ParseMembershipQR("p").Return(card, nil)
		fx.membershipRepo.EXPECT().
			FindByID(mock.Anything, card.MembershipID).
			Return(&entity.Membership{ID: card.MembershipID, UserID: uuid.New()}, nil)

		_, err := fx.service.Verify(context.Background(), "p")

		assert.ErrorIs(t, err, domainerrors.ErrMembershipCardInvalid)
	})
}
