package handler

import (
	"net/http"

	"perkpass/internal/delivery/api/response"
	"perkpass/internal/domain/entity"
	"perkpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MemberHandlerParams holds dependencies for MemberHandler, injected by Fx.
type MemberHandlerParams struct {
	fx.In

	ProfileUC    usecase.ProfileUsecase
	MembershipUC usecase.MembershipUsecase
	DealUC       usecase.DealUsecase
}

// MemberHandler serves the signed-in supporter pages.
type MemberHandler struct {
	profileUC    usecase.ProfileUsecase
	membershipUC usecase.MembershipUsecase
	dealUC       usecase.DealUsecase
}

// NewMemberHandler is the constructor for MemberHandler
func NewMemberHandler(params MemberHandlerParams) *MemberHandler {
	return &MemberHandler{
		profileUC:    params.ProfileUC,
		membershipUC: params.MembershipUC,
		dealUC:       params.DealUC,
	}
}

// ProfileForm edits the display name.
type ProfileForm struct {
	FullName string `form:"full_name" validate:"required,max=120"`
}

// DashboardPage is the Data of the dashboard.
type DashboardPage struct {
	Profile     *entity.Profile
	Memberships []*usecase.MembershipView
}

// Dashboard shows the caller's memberships and profile.
func (h *MemberHandler) Dashboard(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	return response.Page(c, "dashboard", "Dashboard", h.dashboardPage(c, viewer))
}

// UpdateProfile saves the display name.
func (h *MemberHandler) UpdateProfile(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	var form ProfileForm
	err := c.Bind(&form)
	if err == nil {
		err = c.Validate(&form)
	}
	if err == nil {
		_, err = h.profileUC.UpdateProfile(c.Request().Context(), viewer.ID(), form.FullName)
	}
	if err != nil {
		return response.PageWithError(c, "dashboard", "Dashboard", h.dashboardPage(c, viewer), err)
	}

	return response.SeeOther(c, "/dashboard")
}

// MembershipCard returns the QR code of one of the caller's memberships.
func (h *MemberHandler) MembershipCard(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	membershipID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.membershipUC.MembershipCard(c.Request().Context(), viewer.ID(), membershipID)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Deals renders the members-only listing, or a call to action for non-members.
func (h *MemberHandler) Deals(c echo.Context) error {
	viewer, ok := signedIn(c)
	if !ok {
		return toLogin(c)
	}

	return response.Page(c, "deals", "Member deals", h.dealUC.ListMemberDeals(c.Request().Context(), viewer))
}

func (h *MemberHandler) dashboardPage(c echo.Context, viewer *entity.Viewer) *DashboardPage {
	ctx := c.Request().Context()

	profile := viewer.Profile
	if profile == nil {
		profile, _ = h.profileUC.GetProfile(ctx, viewer.ID())
	}

	return &DashboardPage{
		Profile:     profile,
		Memberships: h.membershipUC.ListMine(ctx, viewer.ID()),
	}
}
