package context

import (
	"context"

	"perkpass/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetViewer attaches the resolved caller to the echo context and to the
// request context, so both handlers and usecases can see it.
func SetViewer(c echo.Context, viewer *entity.Viewer) {
	c.Set(echoViewerKey, viewer)
	c.SetRequest(c.Request().WithContext(WithViewer(c.Request().Context(), viewer)))
}

// GetViewer returns nil for an anonymous caller.
func GetViewer(c echo.Context) *entity.Viewer {
	viewer, _ := c.Get(echoViewerKey).(*entity.Viewer)
	return viewer
}

func WithViewer(ctx context.Context, viewer *entity.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, viewer)
}

func GetViewerFromContext(ctx context.Context) *entity.Viewer {
	viewer, _ := ctx.Value(viewerKey).(*entity.Viewer)
	return viewer
}
