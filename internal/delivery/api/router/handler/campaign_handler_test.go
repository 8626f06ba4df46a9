package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	mockUsecase "perkpass/internal/mocks/usecase"
	"perkpass/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCampaignHandler(t *testing.T) (*CampaignHandler, *mockUsecase.MockCampaignUsecase) {
	campaignUC := mockUsecase.NewMockCampaignUsecase(t)

	return NewCampaignHandler(CampaignHandlerParams{CampaignUC: campaignUC}), campaignUC
}

func TestCampaignHandler_List(t *testing.T) {
	handler, campaignUC := createTestCampaignHandler(t)
	e := newTestEcho(t)
	c, rec := newGet(e, "/campaigns")
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleFundraiser})

	campaignUC.EXPECT().ListMyCampaigns(mock.Anything, viewer.ID()).Return([]*entity.CampaignProgress{{
		Campaign:    &entity.Campaign{Slug: "river", CampaignName: "River Cleanup", GoalAmountCents: 100000},
		Members:     3,
		RaisedCents: 25000,
	}})

	require.NoError(t, handler.List(c))

	body := rec.Body.String()
	assert.Contains(t, body, "River Cleanup")
	assert.Contains(t, body, "$250.00 raised of $1,000.00 (25%)")
	assert.Contains(t, body, "3 members")
}

func TestCampaignHandler_Create(t *testing.T) {
	handler, campaignUC := createTestCampaignHandler(t)
	e := newTestEcho(t)
	c, rec := newFormPost(e, "/campaigns", url.Values{
		"campaign_name": {"River Cleanup"},
		"description":   {"Clean the river"},
		"goal":          {"500"},
		"start_date":    {"2025-04-01"},
		"end_date":      {"2025-04-30"},
	})
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleFundraiser})

	campaignUC.EXPECT().CreateCampaign(mock.Anything, viewer.ID(), &usecase.CreateCampaignInput{
		CampaignName:    "River Cleanup",
		Description:     "Clean the river",
		GoalAmountCents: 50000,
		StartDate:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC),
	}).Return(&entity.Campaign{}, nil)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/campaigns", rec.Header().Get("Location"))
}

func TestCampaignHandler_Create_Invalid(t *testing.T) {
	handler, campaignUC := createTestCampaignHandler(t)
	e := newTestEcho(t)
	c, rec := newFormPost(e, "/campaigns", url.Values{
		"campaign_name": {"River Cleanup"},
		"goal":          {"0"},
		"start_date":    {"2025-04-01"},
		"end_date":      {"soon"},
	})
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleFundraiser})

	campaignUC.EXPECT().ListMyCampaigns(mock.Anything, viewer.ID()).Return(nil)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "end date must be a date")
	assert.Contains(t, rec.Body.String(), `value="River Cleanup"`)
}

func TestCampaignHandler_Create_UsecaseError(t *testing.T) {
	handler, campaignUC := createTestCampaignHandler(t)
	e := newTestEcho(t)
	c, rec := newFormPost(e, "/campaigns", url.Values{
		"campaign_name": {"River Cleanup"},
		"goal":          {"10"},
		"start_date":    {"2025-04-30"},
		"end_date":      {"2025-04-01"},
	})
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleFundraiser})

	campaignUC.EXPECT().CreateCampaign(mock.Anything, viewer.ID(), mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("end date must be after the start date")))
	campaignUC.EXPECT().ListMyCampaigns(mock.Anything, viewer.ID()).Return(nil)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "end date must be after the start date")
}
