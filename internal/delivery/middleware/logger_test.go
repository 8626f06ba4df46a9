package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"perkpass/config"
	domainerrors "perkpass/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		path      string
		handler   echo.HandlerFunc
		wantLog   bool
		wantParts []string
	}{
		{
			name:    "success is quiet outside debug",
			path:    "/deals",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:      "success is logged in debug",
			debug:     true,
			path:      "/deals",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog:   true,
			wantParts: []string{"level=INFO", "status=200", "path=/deals"},
		},
		{
			name:    "health stays quiet in debug",
			debug:   true,
			path:    "/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:      "app error uses its status",
			path:      "/campaigns/x",
			handler:   func(echo.Context) error { return errors.Wrap(domainerrors.ErrCampaignNotFound, "load") },
			wantLog:   true,
			wantParts: []string{"level=WARN", "status=404", `error="load: Campaign not found"`},
		},
		{
			name:      "unknown error is a server error",
			path:      "/deals",
			handler:   func(echo.Context) error { return errors.New("boom") },
			wantLog:   true,
			wantParts: []string{"level=ERROR", "status=500", "error=boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())
			_ = mw.Handle(tt.handler)(c)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			for _, part := range tt.wantParts {
				assert.Contains(t, buf.String(), part)
			}
			assert.Contains(t, buf.String(), "request_id=")
			// Errors are logged by message; pkg/errors stack frames stay out of the line.
			assert.NotContains(t, buf.String(), ".go:")
		})
	}
}
