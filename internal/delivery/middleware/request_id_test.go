package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "perkpass/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "keeps inbound id", header: "req-123", wantSame: true},
		{name: "generates when missing", header: ""},
		{name: "replaces oversized id", header: strings.Repeat("x", maxRequestIDLength+1)},
		{name: "replaces id with spaces", header: "bad id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var ctxID string
			err := NewRequestIDMiddleware(newTestLogger()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)

			require.NoError(t, err)
			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			assert.NotEmpty(t, got)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}
