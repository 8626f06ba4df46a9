package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/domain/policy"
	"perkpass/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GuardMiddlewareParams holds dependencies for GuardMiddleware, injected by Fx.
type GuardMiddlewareParams struct {
	fx.In

	Table   policy.Table
	Metrics service.AccessMetrics
	Logger  *slog.Logger
}

// GuardMiddleware applies the route access table before any handler runs.
type GuardMiddleware struct {
	table   policy.Table
	metrics service.AccessMetrics
	logger  *slog.Logger
}

// NewGuardMiddleware creates the guard middleware.
func NewGuardMiddleware(params GuardMiddlewareParams) *GuardMiddleware {
	return &GuardMiddleware{
		table:   params.Table,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Enforce redirects with 303 See Other when the viewer does not meet the route requirement.
// It must run after SessionMiddleware.Resolve.
func (m *GuardMiddleware) Enforce(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		subject := policy.Anonymous
		if viewer := deliverycontext.GetViewer(c); viewer.IsAuthenticated() {
			subject = policy.Subject{Authenticated: true, Capabilities: viewer.Capabilities}
		}

		requirement, decision := m.table.Evaluate(req.Method, req.URL.Path, subject)
		m.metrics.ObserveGuardDecision(requirement.String(), decision.Reason, decision.Allow)

		if decision.Allow {
			return next(c)
		}

		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Debug("Route guard redirect",
			slog.String("path", req.URL.Path),
			slog.String("requirement", requirement.String()),
			slog.String("reason", decision.Reason),
			slog.String("redirect_to", decision.RedirectTo),
		)

		return c.Redirect(http.StatusSeeOther, decision.RedirectTo)
	}
}
