// Package worker serves the push endpoint that Pub/Sub delivers deal review
// events to.
package worker

import (
	"log/slog"
	"net/http"

	"perkpass/config"
	"perkpass/internal/delivery"
	"perkpass/internal/delivery/middleware"
	"perkpass/internal/delivery/worker/handler"
	"perkpass/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Metrics     *metrics.Metrics
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	return delivery.NewEchoServer(params.Lc, "worker", params.Cfg.HTTP.Port, newEcho(params), params.Logger), nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		params.Metrics.Middleware,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", params.Metrics.Handler())
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}
