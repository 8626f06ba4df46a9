package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"perkpass/config"
	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/service"
	mockSvc "perkpass/internal/mocks/service"
	mockUsecase "perkpass/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type publicHandlerFixture struct {
	campaignUC   *mockUsecase.MockCampaignUsecase
	membershipUC *mockUsecase.MockMembershipUsecase
	storage      *mockSvc.MockObjectStorage
	handler      *PublicHandler
}

func createTestPublicHandler(t *testing.T) *publicHandlerFixture {
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Maybe()

	tf := &publicHandlerFixture{
		campaignUC:   mockUsecase.NewMockCampaignUsecase(t),
		membershipUC: mockUsecase.NewMockMembershipUsecase(t),
		storage:      mockSvc.NewMockObjectStorage(t),
	}
	tf.handler = NewPublicHandler(PublicHandlerParams{
		Config:       &config.Config{Membership: &config.MembershipConfig{PriceCents: 2500}},
		CampaignUC:   tf.campaignUC,
		MembershipUC: tf.membershipUC,
		Storage:      tf.storage,
		Clock:        clock,
	})

	return tf
}

func openCampaign() *entity.CampaignProgress {
	return &entity.CampaignProgress{Campaign: &entity.Campaign{
		Slug:            "river",
		CampaignName:    "River Cleanup",
		GoalAmountCents: 100000,
		Status:          entity.CampaignStatusActive,
		StartDate:       testNow.Add(-24 * time.Hour),
		EndDate:         testNow.Add(24 * time.Hour),
	}}
}

func campaignContext(e *echo.Echo, method string) (echo.Context, *httptest.ResponseRecorder) {
	var c echo.Context
	var rec *httptest.ResponseRecorder
	if method == http.MethodPost {
		c, rec = newFormPost(e, "/c/river/join", url.Values{})
	} else {
		c, rec = newGet(e, "/c/river")
	}
	c.SetParamNames("slug")
	c.SetParamValues("river")

	return c, rec
}

func TestPublicHandler_Home(t *testing.T) {
	tf := createTestPublicHandler(t)
	e := newTestEcho(t)
	c, rec := newGet(e, "/")

	tf.campaignUC.EXPECT().ListActiveCampaigns(mock.Anything).Return([]*entity.Campaign{openCampaign().Campaign})

	require.NoError(t, tf.handler.Home(c))
	assert.Contains(t, rec.Body.String(), `href="/c/river"`)
}

func TestPublicHandler_Campaign_AnonymousSeesSignIn(t *testing.T) {
	tf := createTestPublicHandler(t)
	e := newTestEcho(t)
	c, rec := campaignContext(e, http.MethodGet)

	tf.campaignUC.EXPECT().GetPublicCampaign(mock.Anything, "river").Return(openCampaign(), nil)

	require.NoError(t, tf.handler.Campaign(c))
	body := rec.Body.String()
	assert.Contains(t, body, "River Cleanup")
	assert.Contains(t, body, "to join")
	assert.NotContains(t, body, "/c/river/join")
}

func TestPublicHandler_Campaign_SignedInSeesJoin(t *testing.T) {
	tf := createTestPublicHandler(t)
	e := newTestEcho(t)
	c, rec := campaignContext(e, http.MethodGet)
	withViewer(c, entity.Capabilities{Role: entity.RoleSupporter})

	tf.campaignUC.EXPECT().GetPublicCampaign(mock.Anything, "river").Return(openCampaign(), nil)

	require.NoError(t, tf.handler.Campaign(c))
	assert.Contains(t, rec.Body.String(), "Join for $25.00")
}

func TestPublicHandler_Campaign_NotFound(t *testing.T) {
	tf := createTestPublicHandler(t)
	e := newTestEcho(t)
	c, _ := campaignContext(e, http.MethodGet)

	tf.campaignUC.EXPECT().GetPublicCampaign(mock.Anything, "river").
		Return(nil, errors.WithStack(domainerrors.ErrCampaignNotFound))

	assert.ErrorIs(t, tf.handler.Campaign(c), domainerrors.ErrCampaignNotFound)
}

func TestPublicHandler_Join(t *testing.T) {
	tf := createTestPublicHandler(t)
	e := newTestEcho(t)
	c, rec := campaignContext(e, http.MethodPost)
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleSupporter})

	tf.membershipUC.EXPECT().Purchase(mock.Anything, viewer.ID(), "river").Return(&entity.Membership{}, nil)

	require.NoError(t, tf.handler.Join(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestPublicHandler_Join_ClosedCampaign(t *testing.T) {
	tf := createTestPublicHandler(t)
	e := newTestEcho(t)
	c, rec := campaignContext(e, http.MethodPost)
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleSupporter})

	closed := openCampaign()
	closed.Campaign.Status = entity.CampaignStatusClosed
	tf.membershipUC.EXPECT().Purchase(mock.Anything, viewer.ID(), "river").
		Return(nil, errors.WithStack(domainerrors.ErrCampaignClosed))
	tf.campaignUC.EXPECT().GetPublicCampaign(mock.Anything, "river").Return(closed, nil)

	require.NoError(t, tf.handler.Join(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "not accepting new members")
}

func TestPublicHandler_Upload(t *testing.T) {
	tf := createTestPublicHandler(t)
	e := newTestEcho(t)
	c, rec := newGet(e, "/uploads/business-logos/a.png")
	c.SetParamNames("*")
	c.SetParamValues("business-logos/a.png")

	tf.storage.EXPECT().Open(mock.Anything, "business-logos/a.png").Return(&service.StoredObject{
		Body:        io.NopCloser(strings.NewReader("png-bytes")),
		ContentType: "image/png",
	}, nil)

	require.NoError(t, tf.handler.Upload(c))
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestPublicHandler_Upload_Missing(t *testing.T) {
	tf := createTestPublicHandler(t)
	e := newTestEcho(t)
	c, _ := newGet(e, "/uploads/nope.png")
	c.SetParamNames("*")
	c.SetParamValues("nope.png")

	tf.storage.EXPECT().Open(mock.Anything, "nope.png").Return(nil, errors.WithStack(service.ErrObjectNotFound))

	assert.ErrorIs(t, tf.handler.Upload(c), domainerrors.ErrNotFound)
}
