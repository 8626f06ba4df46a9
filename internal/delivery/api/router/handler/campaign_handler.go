package handler

import (
	"io"
	"strings"
	"time"

	"perkpass/internal/delivery/api/response"
	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const campaignsPath = "/campaigns"

// CampaignHandlerParams holds dependencies for CampaignHandler, injected by Fx.
type CampaignHandlerParams struct {
	fx.In

	CampaignUC usecase.CampaignUsecase
}

// CampaignHandler serves the fundraiser area.
type CampaignHandler struct {
	campaignUC usecase.CampaignUsecase
}

// NewCampaignHandler is the constructor for CampaignHandler
func NewCampaignHandler(params CampaignHandlerParams) *CampaignHandler {
	return &CampaignHandler{campaignUC: params.CampaignUC}
}

// CampaignForm creates a campaign. Goal is in whole dollars; dates are YYYY-MM-DD.
type CampaignForm struct {
	CampaignName string `form:"campaign_name" validate:"required,max=120"`
	Description  string `form:"description" validate:"max=2000"`
	Goal         int64  `form:"goal" validate:"required,gt=0"`
	StartDate    string `form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `form:"end_date" validate:"required,datetime=2006-01-02"`
}

// input converts the form. The end date covers its whole day.
func (f *CampaignForm) input() (*usecase.CreateCampaignInput, error) {
	start, err := time.ParseInLocation(time.DateOnly, f.StartDate, time.UTC)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("start date is invalid")
	}
	end, err := time.ParseInLocation(time.DateOnly, f.EndDate, time.UTC)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("end date is invalid")
	}

	return &usecase.CreateCampaignInput{
		CampaignName:    strings.TrimSpace(f.CampaignName),
		Description:     strings.TrimSpace(f.Description),
		GoalAmountCents: f.Goal * 100,
		StartDate:       start,
		EndDate:         end.Add(24*time.Hour - time.Second),
	}, nil
}

// CampaignsPage is the Data of the fundraiser area.
type CampaignsPage struct {
	Campaigns []*entity.CampaignProgress
	Form      *CampaignForm
}

// List shows the caller's campaigns with their totals.
func (h *CampaignHandler) List(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	return h.render(c, viewer.ID(), &CampaignForm{}, nil)
}

// Create starts a new campaign.
func (h *CampaignHandler) Create(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	var form CampaignForm
	err := c.Bind(&form)
	if err == nil {
		err = c.Validate(&form)
	}

	var input *usecase.CreateCampaignInput
	if err == nil {
		input, err = form.input()
	}
	if err == nil {
		_, err = h.campaignUC.CreateCampaign(c.Request().Context(), viewer.ID(), input)
	}
	if err != nil {
		return h.render(c, viewer.ID(), &form, err)
	}

	return response.SeeOther(c, campaignsPath)
}

// UploadLogo replaces the logo of one of the caller's campaigns.
func (h *CampaignHandler) UploadLogo(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	campaignID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = withUpload(c, "logo", func(file io.Reader) error {
		_, err := h.campaignUC.UploadLogo(c.Request().Context(), viewer.ID(), campaignID, file)

		return err
	})
	if err != nil {
		return h.render(c, viewer.ID(), &CampaignForm{}, err)
	}

	return response.SeeOther(c, campaignsPath)
}

func (h *CampaignHandler) render(c echo.Context, organizerID uuid.UUID, form *CampaignForm, err error) error {
	page := &CampaignsPage{
		Campaigns: h.campaignUC.ListMyCampaigns(c.Request().Context(), organizerID),
		Form:      form,
	}
	if err != nil {
		return response.PageWithError(c, "campaigns", "Your campaigns", page, err)
	}

	return response.Page(c, "campaigns", "Your campaigns", page)
}
