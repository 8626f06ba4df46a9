package handler

import (
	"io"
	"strings"

	"perkpass/internal/delivery/api/response"
	"perkpass/internal/domain/entity"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const merchantPath = "/merchant"

// MerchantHandlerParams holds dependencies for MerchantHandler, injected by Fx.
type MerchantHandlerParams struct {
	fx.In

	BusinessUC   usecase.BusinessUsecase
	DealUC       usecase.DealUsecase
	MembershipUC usecase.MembershipUsecase
}

// MerchantHandler serves the business area.
type MerchantHandler struct {
	businessUC   usecase.BusinessUsecase
	dealUC       usecase.DealUsecase
	membershipUC usecase.MembershipUsecase
}

// NewMerchantHandler is the constructor for MerchantHandler
func NewMerchantHandler(params MerchantHandlerParams) *MerchantHandler {
	return &MerchantHandler{
		businessUC:   params.BusinessUC,
		dealUC:       params.DealUC,
		membershipUC: params.MembershipUC,
	}
}

// BusinessForm is the business profile form. It is also the Data of the setup page.
type BusinessForm struct {
	BusinessName string `form:"business_name" validate:"required,max=120"`
	Address      string `form:"address" validate:"max=255"`
	Phone        string `form:"phone" validate:"max=40"`
}

// DealForm creates or edits a deal.
type DealForm struct {
	Title       string `form:"title" validate:"required,max=120"`
	Description string `form:"description" validate:"max=2000"`
	Category    string `form:"category" validate:"max=60"`
	Terms       string `form:"terms" validate:"max=2000"`
}

func (f *DealForm) input() *usecase.DealInput {
	return &usecase.DealInput{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Category:    strings.TrimSpace(f.Category),
		Terms:       strings.TrimSpace(f.Terms),
	}
}

// VerifyForm carries the scanned contents of a membership card.
type VerifyForm struct {
	Payload string `form:"payload" validate:"required,max=1024"`
}

// MerchantPage is the Data of the merchant area.
type MerchantPage struct {
	Business *entity.Business
	Deals    []*entity.Deal
}

// VerifyPage is the Data of the card verification page.
type VerifyPage struct {
	Payload string
	Result  *usecase.CardVerification
}

// Home shows the business and its deals, or the setup form when no business exists yet.
func (h *MerchantHandler) Home(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	return h.render(c, viewer.ID(), nil, nil)
}

// SaveBusiness creates or updates the caller's business.
func (h *MerchantHandler) SaveBusiness(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	var form BusinessForm
	err := c.Bind(&form)
	if err == nil {
		err = c.Validate(&form)
	}
	if err == nil {
		_, err = h.businessUC.SaveBusiness(c.Request().Context(), viewer.ID(), &usecase.SaveBusinessInput{
			BusinessName: strings.TrimSpace(form.BusinessName),
			Address:      strings.TrimSpace(form.Address),
			Phone:        strings.TrimSpace(form.Phone),
		})
	}
	if err != nil {
		return h.render(c, viewer.ID(), &form, err)
	}

	return response.SeeOther(c, merchantPath)
}

// UploadLogo replaces the business logo.
func (h *MerchantHandler) UploadLogo(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	err := withUpload(c, "logo", func(file io.Reader) error {
		_, err := h.businessUC.UploadLogo(c.Request().Context(), viewer.ID(), file)

		return err
	})
	if err != nil {
		return h.render(c, viewer.ID(), nil, err)
	}

	return response.SeeOther(c, merchantPath)
}

// CreateDeal submits a new deal for review.
func (h *MerchantHandler) CreateDeal(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	var form DealForm
	err := c.Bind(&form)
	if err == nil {
		err = c.Validate(&form)
	}
	if err == nil {
		_, err = h.dealUC.CreateDeal(c.Request().Context(), viewer.ID(), form.input())
	}
	if err != nil {
		return h.render(c, viewer.ID(), nil, err)
	}

	return response.SeeOther(c, merchantPath)
}

// UpdateDeal edits a deal and sends it back for review.
func (h *MerchantHandler) UpdateDeal(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	dealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var form DealForm
	err = c.Bind(&form)
	if err == nil {
		err = c.Validate(&form)
	}
	if err == nil {
		_, err = h.dealUC.UpdateDeal(c.Request().Context(), viewer.ID(), dealID, form.input())
	}
	if err != nil {
		return h.render(c, viewer.ID(), nil, err)
	}

	return response.SeeOther(c, merchantPath)
}

// ToggleDeal flips a deal between active and inactive.
func (h *MerchantHandler) ToggleDeal(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	dealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.dealUC.ToggleDealStatus(c.Request().Context(), viewer.ID(), dealID); err != nil {
		return h.render(c, viewer.ID(), nil, err)
	}

	return response.SeeOther(c, merchantPath)
}

// ShowVerify renders the card verification form.
func (h *MerchantHandler) ShowVerify(c echo.Context) error {
	return response.Page(c, "merchant_verify", "Verify a card", &VerifyPage{})
}

// Verify checks a scanned membership card.
func (h *MerchantHandler) Verify(c echo.Context) error {
	var form VerifyForm
	err := c.Bind(&form)
	if err == nil {
		err = c.Validate(&form)
	}

	page := &VerifyPage{Payload: strings.TrimSpace(form.Payload)}
	if err == nil {
		page.Result, err = h.membershipUC.Verify(c.Request().Context(), page.Payload)
	}
	if err != nil {
		return response.PageWithError(c, "merchant_verify", "Verify a card", page, err)
	}

	return response.Page(c, "merchant_verify", "Verify a card", page)
}

// render draws the merchant area, showing err inline when set. A caller without a business
// gets the setup form, pre-filled with the submitted values when there are any.
func (h *MerchantHandler) render(c echo.Context, ownerID uuid.UUID, submitted *BusinessForm, err error) error {
	business, deals := h.dealUC.ListBusinessDeals(c.Request().Context(), ownerID)

	if business == nil {
		setup := submitted
		if setup == nil {
			setup = &BusinessForm{}
		}
		if err != nil {
			return response.PageWithError(c, "merchant_setup", "Set up your business", setup, err)
		}

		return response.Page(c, "merchant_setup", "Set up your business", setup)
	}

	page := &MerchantPage{Business: business, Deals: deals}
	if err != nil {
		return response.PageWithError(c, "merchant", business.BusinessName, page, err)
	}

	return response.Page(c, "merchant", business.BusinessName, page)
}
