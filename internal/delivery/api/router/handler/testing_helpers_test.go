package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"perkpass/internal/delivery/api/validator"
	"perkpass/internal/delivery/api/view"
	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	renderer, err := view.NewRenderer(newTestLogger())
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()

	return e
}

func newGet(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec), rec
}

func newFormPost(e *echo.Echo, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withViewer(c echo.Context, caps entity.Capabilities) *entity.Viewer {
	viewer := &entity.Viewer{
		Identity:     &entity.Identity{ID: uuid.New(), Email: "viewer@example.com"},
		Profile:      &entity.Profile{FullName: "Viewer", Role: caps.Role},
		Capabilities: caps,
	}
	viewer.Profile.ID = viewer.Identity.ID
	deliverycontext.SetViewer(c, viewer)

	return viewer
}
