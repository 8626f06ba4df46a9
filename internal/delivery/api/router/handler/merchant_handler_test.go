package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	mockUsecase "perkpass/internal/mocks/usecase"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type merchantHandlerFixture struct {
	businessUC   *mockUsecase.MockBusinessUsecase
	dealUC       *mockUsecase.MockDealUsecase
	membershipUC *mockUsecase.MockMembershipUsecase
	handler      *MerchantHandler
}

func createTestMerchantHandler(t *testing.T) *merchantHandlerFixture {
	fx := &merchantHandlerFixture{
		businessUC:   mockUsecase.NewMockBusinessUsecase(t),
		dealUC:       mockUsecase.NewMockDealUsecase(t),
		membershipUC: mockUsecase.NewMockMembershipUsecase(t),
	}
	fx.handler = NewMerchantHandler(MerchantHandlerParams{
		BusinessUC:   fx.businessUC,
		DealUC:       fx.dealUC,
		MembershipUC: fx.membershipUC,
	})

	return fx
}

func TestMerchantHandler_Home_WithoutBusinessShowsSetup(t *testing.T) {
	fx := createTestMerchantHandler(t)
	e := newTestEcho(t)
	c, rec := newGet(e, "/merchant")
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleBusiness})

	fx.dealUC.EXPECT().ListBusinessDeals(mock.Anything, viewer.ID()).Return(nil, nil)

	require.NoError(t, fx.handler.Home(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Set up your business")
	assert.Contains(t, rec.Body.String(), `action="/merchant/business"`)
}

func TestMerchantHandler_Home_ListsDeals(t *testing.T) {
	fx := createTestMerchantHandler(t)
	e := newTestEcho(t)
	c, rec := newGet(e, "/merchant")
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true})
	dealID := uuid.New()

	fx.dealUC.EXPECT().ListBusinessDeals(mock.Anything, viewer.ID()).Return(
		&entity.Business{BusinessName: "Corner Cafe"},
		[]*entity.Deal{{
			ID:             dealID,
			Title:          "Free coffee",
			Status:         entity.DealStatusActive,
			ApprovalStatus: entity.ApprovalPending,
		}},
	)

	require.NoError(t, fx.handler.Home(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Corner Cafe")
	assert.Contains(t, body, "/merchant/deals/"+dealID.String()+"/toggle")
	assert.Contains(t, body, "Deactivate")
}

func TestMerchantHandler_SaveBusiness(t *testing.T) {
	fx := createTestMerchantHandler(t)
	e := newTestEcho(t)
	c, rec := newFormPost(e, "/merchant/business", url.Values{
		"business_name": {" Corner Cafe "},
		"address":       {"1 Main St"},
		"phone":         {"555-0100"},
	})
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleBusiness})

	fx.businessUC.EXPECT().SaveBusiness(mock.Anything, viewer.ID(), &usecase.SaveBusinessInput{
		BusinessName: "Corner Cafe",
		Address:      "1 Main St",
		Phone:        "555-0100",
	}).Return(&entity.Business{}, nil)

	require.NoError(t, fx.handler.SaveBusiness(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/merchant", rec.Header().Get("Location"))
}

func TestMerchantHandler_SaveBusiness_InvalidKeepsInput(t *testing.T) {
	fx := createTestMerchantHandler(t)
	e := newTestEcho(t)
	c, rec := newFormPost(e, "/merchant/business", url.Values{
		"business_name": {""},
		"address":       {"1 Main St"},
	})
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleBusiness})

	fx.dealUC.EXPECT().ListBusinessDeals(mock.Anything, viewer.ID()).Return(nil, nil)

	require.NoError(t, fx.handler.SaveBusiness(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "business name is required")
	assert.Contains(t, rec.Body.String(), `value="1 Main St"`)
}

func TestMerchantHandler_ToggleDeal_OwnershipViolation(t *testing.T) {
	fx := createTestMerchantHandler(t)
	e := newTestEcho(t)
	dealID := uuid.New()
	c, rec := newFormPost(e, "/merchant/deals/"+dealID.String()+"/toggle", url.Values{})
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true})

	fx.dealUC.EXPECT().ToggleDealStatus(mock.Anything, viewer.ID(), dealID).
		Return(nil, errors.WithStack(domainerrors.ErrDealOwnershipViolation))
	fx.dealUC.EXPECT().ListBusinessDeals(mock.Anything, viewer.ID()).
		Return(&entity.Business{BusinessName: "Corner Cafe"}, nil)

	require.NoError(t, fx.handler.ToggleDeal(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "You can only change your own deals")
}

func TestMerchantHandler_CreateDeal(t *testing.T) {
	fx := createTestMerchantHandler(t)
	e := newTestEcho(t)
	c, rec := newFormPost(e, "/merchant/deals", url.Values{
		"title":       {"Free coffee "},
		"description": {"With any pastry"},
	})
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true})

	fx.dealUC.EXPECT().CreateDeal(mock.Anything, viewer.ID(), &usecase.DealInput{
		Title:       "Free coffee",
		Description: "With any pastry",
	}).Return(&entity.Deal{}, nil)

	require.NoError(t, fx.handler.CreateDeal(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestMerchantHandler_UploadLogo(t *testing.T) {
	fx := createTestMerchantHandler(t)
	e := newTestEcho(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/merchant/logo", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true})

	fx.businessUC.EXPECT().UploadLogo(mock.Anything, viewer.ID(), mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, content io.Reader) (*entity.Business, error) {
			data, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, "image-bytes", string(data))

			return &entity.Business{}, nil
		})

	require.NoError(t, fx.handler.UploadLogo(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestMerchantHandler_UploadLogo_MissingFile(t *testing.T) {
	fx := createTestMerchantHandler(t)
	e := newTestEcho(t)
	c, rec := newFormPost(e, "/merchant/logo", url.Values{})
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true})

	fx.dealUC.EXPECT().ListBusinessDeals(mock.Anything, viewer.ID()).
		Return(&entity.Business{BusinessName: "Corner Cafe"}, nil)

	require.NoError(t, fx.handler.UploadLogo(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "choose an image to upload")
}

func TestMerchantHandler_Verify(t *testing.T) {
	fx := createTestMerchantHandler(t)
	e := newTestEcho(t)
	c, rec := newFormPost(e, "/merchant/verify", url.Values{"payload": {" {\"type\":\"membership\"} "}})
	withViewer(c, entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true})

	fx.membershipUC.EXPECT().Verify(mock.Anything, `{"type":"membership"}`).Return(&usecase.CardVerification{
		CampaignName: "River Cleanup",
		Valid:        true,
	}, nil)

	require.NoError(t, fx.handler.Verify(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Valid membership")
	assert.Contains(t, rec.Body.String(), "River Cleanup")
}

func TestMerchantHandler_Verify_InvalidCard(t *testing.T) {
	fx := createTestMerchantHandler(t)
	e := newTestEcho(t)
	c, rec := newFormPost(e, "/merchant/verify", url.Values{"payload": {"garbage"}})
	withViewer(c, entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true})

	fx.membershipUC.EXPECT().Verify(mock.Anything, "garbage").
		Return(nil, errors.WithStack(domainerrors.ErrMembershipCardInvalid))

	require.NoError(t, fx.handler.Verify(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "This is not a valid membership card")
}
