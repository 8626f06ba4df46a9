// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"perkpass/internal/delivery/api/router/handler"
	"perkpass/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PublicHandler   *handler.PublicHandler
	MemberHandler   *handler.MemberHandler
	MerchantHandler *handler.MerchantHandler
	CampaignHandler *handler.CampaignHandler
	AdminHandler    *handler.AdminHandler
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	auth     *handler.AuthHandler
	public   *handler.PublicHandler
	member   *handler.MemberHandler
	merchant *handler.MerchantHandler
	campaign *handler.CampaignHandler
	admin    *handler.AdminHandler
	metrics  *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:     params.AuthHandler,
		public:   params.PublicHandler,
		member:   params.MemberHandler,
		merchant: params.MerchantHandler,
		campaign: params.CampaignHandler,
		admin:    params.AdminHandler,
		metrics:  params.Metrics,
	}
}

// RegisterRoutes sets up every route. Access control is not attached here: the guard
// middleware applies the route table to all of them before any handler runs.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", r.metrics.Handler())
	e.GET("/uploads/*", r.public.Upload)

	e.GET("/", r.public.Home)
	e.GET("/c/:slug", r.public.Campaign)
	e.POST("/c/:slug/join", r.public.Join)

	e.GET("/login", r.auth.ShowLogin)
	e.POST("/login", r.auth.Login)
	e.GET("/signup", r.auth.ShowSignup)
	e.POST("/signup", r.auth.Signup)
	e.POST("/logout", r.auth.Logout)

	dashboard := e.Group("/dashboard")
	{
		dashboard.GET("", r.member.Dashboard)
		dashboard.POST("/profile", r.member.UpdateProfile)
		dashboard.GET("/memberships/:id/card.png", r.member.MembershipCard)
	}

	e.GET("/deals", r.member.Deals)

	merchant := e.Group("/merchant")
	{
		merchant.GET("", r.merchant.Home)
		merchant.GET("/business", redirectTo("/merchant"))
		merchant.POST("/business", r.merchant.SaveBusiness)
		merchant.POST("/logo", r.merchant.UploadLogo)
		merchant.GET("/deals", redirectTo("/merchant"))
		merchant.POST("/deals", r.merchant.CreateDeal)
		merchant.POST("/deals/:id", r.merchant.UpdateDeal)
		merchant.POST("/deals/:id/toggle", r.merchant.ToggleDeal)
		merchant.GET("/verify", r.merchant.ShowVerify)
		merchant.POST("/verify", r.merchant.Verify)
	}

	campaigns := e.Group("/campaigns")
	{
		campaigns.GET("", r.campaign.List)
		campaigns.POST("", r.campaign.Create)
		campaigns.POST("/:id/logo", r.campaign.UploadLogo)
	}

	admin := e.Group("/admin")
	{
		admin.GET("", r.admin.Dashboard)
		admin.POST("/deals/:id/review", r.admin.Review)
	}
}

func redirectTo(location string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, location)
	}
}
