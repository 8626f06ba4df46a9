package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"perkpass/internal/domain/entity"
	mockUsecase "perkpass/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminHandler(t *testing.T) (*AdminHandler, *mockUsecase.MockAdminUsecase) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)

	return NewAdminHandler(AdminHandlerParams{AdminUC: adminUC}), adminUC
}

func reviewRequest(t *testing.T, decision string) (*AdminHandler, *mockUsecase.MockAdminUsecase, *entity.Viewer, uuid.UUID, func() (int, string, string)) {
	t.Helper()

	handler, adminUC := createTestAdminHandler(t)
	e := newTestEcho(t)
	dealID := uuid.New()
	c, rec := newFormPost(e, "/admin/deals/"+dealID.String()+"/review", url.Values{"decision": {decision}})
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleAdmin})

	run := func() (int, string, string) {
		require.NoError(t, handler.Review(c))

		return rec.Code, rec.Header().Get("Location"), rec.Body.String()
	}

	return handler, adminUC, viewer, dealID, run
}

func TestAdminHandler_Dashboard(t *testing.T) {
	handler, adminUC := createTestAdminHandler(t)
	e := newTestEcho(t)
	c, rec := newGet(e, "/admin")
	withViewer(c, entity.Capabilities{Role: entity.RoleAdmin})

	adminUC.EXPECT().Stats(mock.Anything).Return(&entity.PlatformStats{PendingDeals: 1})
	adminUC.EXPECT().RecentReviews(mock.Anything).Return([]*entity.DealReview{{
		DealTitle:  "Half-price pizza",
		Decision:   entity.ApprovalRejected,
		ReviewedAt: time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
	}})
	adminUC.EXPECT().ListPendingDeals(mock.Anything).Return([]*entity.Deal{{
		ID:       uuid.New(),
		Title:    "Free coffee",
		Business: &entity.Business{BusinessName: "Corner Cafe"},
	}})

	require.NoError(t, handler.Dashboard(c))
	body := rec.Body.String()
	assert.Contains(t, body, "Free coffee")
	assert.Contains(t, body, `value="approved"`)
	assert.Contains(t, body, `value="rejected"`)
	assert.Contains(t, body, "Half-price pizza")
	assert.Contains(t, body, "Mar 4, 2025")
}

func TestAdminHandler_Review_Approves(t *testing.T) {
	_, adminUC, viewer, dealID, run := reviewRequest(t, "approved")

	adminUC.EXPECT().ReviewDeal(mock.Anything, viewer.ID(), dealID, entity.ApprovalApproved).Return(&entity.Deal{}, nil)

	code, location, _ := run()
	assert.Equal(t, http.StatusSeeOther, code)
	assert.Equal(t, "/admin", location)
}

func TestAdminHandler_Review_RejectsUnknownDecision(t *testing.T) {
	_, adminUC, _, _, run := reviewRequest(t, "pending")

	adminUC.EXPECT().Stats(mock.Anything).Return(&entity.PlatformStats{})
	adminUC.EXPECT().ListPendingDeals(mock.Anything).Return(nil)
	adminUC.EXPECT().RecentReviews(mock.Anything).Return(nil)

	code, _, body := run()
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, body, "decision must be one of: approved rejected")
}
