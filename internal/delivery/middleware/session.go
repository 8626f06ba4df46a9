package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/domain/entity"
	"perkpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// sessionlessPrefixes are served without resolving the caller.
var sessionlessPrefixes = []string{"/uploads/", "/health", "/metrics"}

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	AccessUC usecase.AccessUsecase
	Cookies  *SessionCookies
	Logger   *slog.Logger
}

// SessionMiddleware resolves the caller from the session cookies on every request and
// classifies it once. Handlers and the guard read the result with GetViewer.
type SessionMiddleware struct {
	authUC   usecase.AuthUsecase
	accessUC usecase.AccessUsecase
	cookies  *SessionCookies
	logger   *slog.Logger
}

// NewSessionMiddleware creates the session middleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		authUC:   params.AuthUC,
		accessUC: params.AccessUC,
		cookies:  params.Cookies,
		logger:   params.Logger,
	}
}

// Resolve attaches a *entity.Viewer to the request, or leaves it anonymous.
// Cookie changes the identity service asks for are written before the handler runs.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		for _, prefix := range sessionlessPrefixes {
			if strings.HasPrefix(path, prefix) {
				return next(c)
			}
		}

		ctx := c.Request().Context()
		input := m.cookies.Read(c)
		if input.AccessToken == "" && input.RefreshToken == "" {
			return next(c)
		}

		out, err := m.authUC.ResolveSession(ctx, input)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Session could not be resolved, continuing anonymously",
				slog.Any("error", err),
			)

			return next(c)
		}

		switch {
		case out.Rotated != nil:
			m.cookies.Write(c, out.Rotated)
		case out.ClearCookies:
			m.cookies.Clear(c)
		}

		if out.Identity == nil {
			return next(c)
		}

		profile, caps := m.accessUC.Classify(ctx, out.Identity.ID)
		deliverycontext.SetViewer(c, &entity.Viewer{
			Identity:     out.Identity,
			Profile:      profile,
			Capabilities: caps,
		})

		return next(c)
	}
}
