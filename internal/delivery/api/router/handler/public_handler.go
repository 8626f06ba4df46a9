package handler

import (
	"net/http"

	"perkpass/config"
	"perkpass/internal/delivery/api/response"
	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/service"
	"perkpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublicHandlerParams holds dependencies for PublicHandler, injected by Fx.
type PublicHandlerParams struct {
	fx.In

	Config       *config.Config
	CampaignUC   usecase.CampaignUsecase
	MembershipUC usecase.MembershipUsecase
	Storage      service.ObjectStorage
	Clock        service.Clock
}

// PublicHandler serves the pages anyone can open, plus joining a campaign.
type PublicHandler struct {
	priceCents   int64
	campaignUC   usecase.CampaignUsecase
	membershipUC usecase.MembershipUsecase
	storage      service.ObjectStorage
	clock        service.Clock
}

// NewPublicHandler is the constructor for PublicHandler
func NewPublicHandler(params PublicHandlerParams) *PublicHandler {
	h := &PublicHandler{
		campaignUC:   params.CampaignUC,
		membershipUC: params.MembershipUC,
		storage:      params.Storage,
		clock:        params.Clock,
	}
	if params.Config != nil && params.Config.Membership != nil {
		h.priceCents = params.Config.Membership.PriceCents
	}

	return h
}

// HomePage is the Data of the home page.
type HomePage struct {
	Campaigns []*entity.Campaign
}

// CampaignPage is the Data of the public campaign page.
type CampaignPage struct {
	Progress   *entity.CampaignProgress
	Open       bool
	PriceCents int64
}

// Home lists the campaigns currently accepting members.
func (h *PublicHandler) Home(c echo.Context) error {
	return response.Page(c, "home", "", &HomePage{
		Campaigns: h.campaignUC.ListActiveCampaigns(c.Request().Context()),
	})
}

// Campaign renders the public page of one campaign.
func (h *PublicHandler) Campaign(c echo.Context) error {
	page, err := h.campaignPage(c)
	if err != nil {
		return err
	}

	return response.Page(c, "campaign", page.Progress.Campaign.CampaignName, page)
}

// Join buys a membership through the campaign. Payment is simulated.
func (h *PublicHandler) Join(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	_, err := h.membershipUC.Purchase(c.Request().Context(), viewer.ID(), c.Param("slug"))
	if err == nil {
		return response.SeeOther(c, "/dashboard")
	}

	page, pageErr := h.campaignPage(c)
	if pageErr != nil {
		return pageErr
	}

	return response.PageWithError(c, "campaign", page.Progress.Campaign.CampaignName, page, err)
}

func (h *PublicHandler) campaignPage(c echo.Context) (*CampaignPage, error) {
	progress, err := h.campaignUC.GetPublicCampaign(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return nil, err
	}

	return &CampaignPage{
		Progress:   progress,
		Open:       progress.Campaign.IsOpenAt(h.clock.Now()),
		PriceCents: h.priceCents,
	}, nil
}

// Upload streams a stored logo.
func (h *PublicHandler) Upload(c echo.Context) error {
	obj, err := h.storage.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return errors.WithStack(domainerrors.ErrNotFound)
		}

		return err
	}
	defer obj.Body.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderXContentTypeOptions, "nosniff")
	header.Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, obj.ContentType, obj.Body)
}
