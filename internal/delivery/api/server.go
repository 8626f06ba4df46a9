package api

import (
	"log/slog"
	"net/http"
	"strings"

	"perkpass/config"
	"perkpass/internal/delivery"
	apimiddleware "perkpass/internal/delivery/api/middleware"
	"perkpass/internal/delivery/api/router"
	"perkpass/internal/delivery/api/validator"
	"perkpass/internal/delivery/api/view"
	"perkpass/internal/delivery/middleware"
	"perkpass/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const csrfFormField = "_csrf"

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Renderer     *view.Renderer
	Metrics      *metrics.Metrics
	Session      *middleware.SessionMiddleware
	Guard        *middleware.GuardMiddleware
	RouterParams router.RouterParams
}

// NewServer builds the site's echo instance and serves it over h2c.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	h2 := &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout}

	return delivery.NewEchoServer(params.Lc, "api", params.Cfg.HTTP.Port, newEcho(params), params.Logger,
		delivery.WithH2C(h2)), nil
}

// newEcho assembles the middleware chain and routes. Order matters: the
// request ID must exist before anything logs, and the guard must run before
// any handler reads data.
func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	timeouts := params.Cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		params.Metrics.Middleware,
		echomiddleware.Secure(),
		echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize),
		params.Session.Resolve,
		params.Guard.Enforce,
		echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
			Skipper:        skipCSRF,
			TokenLookup:    "form:" + csrfFormField,
			CookiePath:     "/",
			CookieSecure:   params.Cfg.Session != nil && params.Cfg.Session.Secure,
			CookieHTTPOnly: true,
			CookieSameSite: http.SameSiteLaxMode,
		}),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()
	e.Renderer = params.Renderer

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func skipCSRF(c echo.Context) bool {
	path := c.Request().URL.Path

	return path == "/health" || path == "/metrics" || strings.HasPrefix(path, "/uploads/")
}
