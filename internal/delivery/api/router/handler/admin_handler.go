package handler

import (
	"perkpass/internal/delivery/api/response"
	"perkpass/internal/domain/entity"
	"perkpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves deal moderation.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

// ReviewForm carries the moderation decision.
type ReviewForm struct {
	Decision string `form:"decision" validate:"required,oneof=approved rejected"`
}

// AdminPage is the Data of the moderation page.
type AdminPage struct {
	Stats   *entity.PlatformStats
	Pending []*entity.Deal
	Reviews []*entity.DealReview
}

// Dashboard shows platform counters and the deals awaiting review.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	return response.Page(c, "admin", "Moderation", h.page(c))
}

// Review approves or rejects a pending deal.
func (h *AdminHandler) Review(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	dealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var form ReviewForm
	err = c.Bind(&form)
	if err == nil {
		err = c.Validate(&form)
	}
	if err == nil {
		_, err = h.adminUC.ReviewDeal(c.Request().Context(), viewer.ID(), dealID, entity.ApprovalStatus(form.Decision))
	}
	if err != nil {
		return response.PageWithError(c, "admin", "Moderation", h.page(c), err)
	}

	return response.SeeOther(c, "/admin")
}

func (h *AdminHandler) page(c echo.Context) *AdminPage {
	ctx := c.Request().Context()

	return &AdminPage{
		Stats:   h.adminUC.Stats(ctx),
		Pending: h.adminUC.ListPendingDeals(ctx),
		Reviews: h.adminUC.RecentReviews(ctx),
	}
}
