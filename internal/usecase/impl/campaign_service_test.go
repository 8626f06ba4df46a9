package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
	mockRepo "perkpass/internal/mocks/repository"
	mockSvc "perkpass/internal/mocks/service"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type campaignServiceFixtures struct {
	service        usecase.CampaignUsecase
	campaignRepo   *mockRepo.MockCampaignRepository
	membershipRepo *mockRepo.MockMembershipRepository
	storage        *mockSvc.MockObjectStorage
}

func createTestCampaignService(t *testing.T) campaignServiceFixtures {
	fx := campaignServiceFixtures{
		campaignRepo:   mockRepo.NewMockCampaignRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		storage:        mockSvc.NewMockObjectStorage(t),
	}
	fx.service = NewCampaignService(CampaignServiceParams{
		CampaignRepo:   fx.campaignRepo,
		MembershipRepo: fx.membershipRepo,
		Storage:        fx.storage,
		Clock:          newFrozenClock(t),
		Logger:         newTestLogger(),
	})

	return fx
}

func TestCampaignService_CreateCampaign_UsesBaseSlug(t *testing.T) {
	fx := createTestCampaignService(t)

	organizerID := uuid.New()
	fx.campaignRepo.EXPECT().SlugExists(mock.Anything, "lincoln-high-band").Return(false, nil)
	fx.campaignRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *entity.Campaign) bool {
			return c.Slug == "lincoln-high-band" && c.OrganizerID == organizerID && c.Status == entity.CampaignStatusActive
		})).
		Return(nil)

	campaign, err := fx.service.CreateCampaign(context.Background(), organizerID, &usecase.CreateCampaignInput{
		CampaignName:    "Lincoln High Band!",
		GoalAmountCents: 500000,
	})

	require.NoError(t, err)
	assert.Equal(t, "lincoln-high-band", campaign.Slug)
}

func TestCampaignService_CreateCampaign_SuffixesTakenSlug(t *testing.T) {
	fx := createTestCampaignService(t)

	fx.campaignRepo.EXPECT().SlugExists(mock.Anything, "robotics").Return(true, nil)
	fx.campaignRepo.EXPECT().
		SlugExists(mock.Anything, mock.MatchedBy(func(slug string) bool {
			return strings.HasPrefix(slug, "robotics-") && len(slug) == len("robotics-")+slugSuffixLength
		})).
		Return(false, nil)
	fx.campaignRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	campaign, err := fx.service.CreateCampaign(context.Background(), uuid.New(), &usecase.CreateCampaignInput{
		CampaignName:    "Robotics",
		GoalAmountCents: 100,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(campaign.Slug, "robotics-"))
}

func TestCampaignService_CreateCampaign_GivesUpAfterAttempts(t *testing.T) {
	fx := createTestCampaignService(t)
	fx.campaignRepo.EXPECT().SlugExists(mock.Anything, mock.Anything).Return(true, nil).Times(maxSlugAttempts)

	_, err := fx.service.CreateCampaign(context.Background(), uuid.New(), &usecase.CreateCampaignInput{
		CampaignName:    "Chess",
		GoalAmountCents: 100,
	})

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCampaignService_CreateCampaign_Validation(t *testing.T) {
	start := testNow
	tests := []struct {
		name  string
		input *usecase.CreateCampaignInput
	}{
		{"empty name", &usecase.CreateCampaignInput{GoalAmountCents: 100}},
		{"zero goal", &usecase.CreateCampaignInput{CampaignName: "Drive"}},
		{"end before start", &usecase.CreateCampaignInput{
			CampaignName:    "Drive",
			GoalAmountCents: 100,
			StartDate:       start,
			EndDate:         start.Add(-time.Hour),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCampaignService(t)

			_, err := fx.service.CreateCampaign(context.Background(), uuid.New(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCampaignService_ListMyCampaigns_AttachesTotals(t *testing.T) {
	fx := createTestCampaignService(t)

	organizerID := uuid.New()
	first := &entity.Campaign{ID: uuid.New(), GoalAmountCents: 1000}
	second := &entity.Campaign{ID: uuid.New(), GoalAmountCents: 1000}
	fx.campaignRepo.EXPECT().ListByOrganizer(mock.Anything, organizerID).Return([]*entity.Campaign{first, second}, nil)
	fx.membershipRepo.EXPECT().
		TotalsByCampaign(mock.Anything, []uuid.UUID{first.ID, second.ID}).
		Return(map[uuid.UUID]repository.CampaignTotals{first.ID: {Members: 3, RaisedCents: 750}}, nil)

	progress := fx.service.ListMyCampaigns(context.Background(), organizerID)

	require.Len(t, progress, 2)
	assert.Equal(t, int64(3), progress[0].Members)
	assert.Equal(t, 75, progress[0].PercentOfGoal())
	assert.Equal(t, int64(0), progress[1].Members)
}

func TestCampaignService_GetPublicCampaign_NotFound(t *testing.T) {
	fx := createTestCampaignService(t)
	fx.campaignRepo.EXPECT().FindBySlug(mock.Anything, "missing").Return(nil, repository.ErrCampaignNotFound)

	_, err := fx.service.GetPublicCampaign(context.Background(), "missing")

	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotFound)
}

func TestCampaignService_GetPublicCampaign_TotalsFailureShowsZero(t *testing.T) {
	fx := createTestCampaignService(t)

	campaign := &entity.Campaign{ID: uuid.New(), Slug: "drive"}
	fx.campaignRepo.EXPECT().FindBySlug(mock.Anything, "drive").Return(campaign, nil)
	fx.membershipRepo.EXPECT().TotalsByCampaign(mock.Anything, []uuid.UUID{campaign.ID}).Return(nil, errors.New("boom"))

	progress, err := fx.service.GetPublicCampaign(context.Background(), "drive")

	require.NoError(t, err)
	assert.Same(t, campaign, progress.Campaign)
	assert.Zero(t, progress.RaisedCents)
}

func TestCampaignService_ListActiveCampaigns(t *testing.T) {
	fx := createTestCampaignService(t)
	fx.campaignRepo.EXPECT().ListOpen(mock.Anything, testNow, activeCampaignsLimit).Return(nil, errors.New("boom"))

	campaigns := fx.service.ListActiveCampaigns(context.Background())

	assert.NotNil(t, campaigns)
	assert.Empty(t, campaigns)
}

func TestCampaignService_UploadLogo_OwnershipEnforced(t *testing.T) {
	fx := createTestCampaignService(t)

	campaign := &entity.Campaign{ID: uuid.New(), OrganizerID: uuid.New()}
	fx.campaignRepo.EXPECT().FindByID(mock.Anything, campaign.ID).Return(campaign, nil)

	_, err := fx.service.UploadLogo(context.Background(), uuid.New(), campaign.ID, strings.NewReader("x"))

	assert.ErrorIs(t, err, domainerrors.ErrCampaignOwnershipViolation)
}

func TestCampaignService_UploadLogo(t *testing.T) {
	fx := createTestCampaignService(t)

	organizerID := uuid.New()
	campaign := &entity.Campaign{ID: uuid.New(), OrganizerID: organizerID}
	fx.campaignRepo.EXPECT().FindByID(mock.Anything, campaign.ID).Return(campaign, nil)
	fx.storage.EXPECT().
		PutImage(mock.Anything, "campaign-logos/"+campaign.ID.String(), mock.Anything).
		Return("/uploads/campaign-logos/a.png", nil)
	fx.campaignRepo.EXPECT().UpdateLogo(mock.Anything, campaign.ID, "/uploads/campaign-logos/a.png").Return(nil)

	updated, err := fx.service.UploadLogo(context.Background(), organizerID, campaign.ID, strings.NewReader("x"))

	require.NoError(t, err)
	assert.Equal(t, "/uploads/campaign-logos/a.png", updated.LogoURL)
}
