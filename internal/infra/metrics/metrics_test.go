package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"perkpass/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	return New(&config.Config{Metrics: &config.MetricsConfig{Namespace: "test"}})
}

func TestObserveGuardDecision(t *testing.T) {
	m := newTestMetrics()

	m.ObserveGuardDecision("member", "not_member", false)
	m.ObserveGuardDecision("member", "not_member", false)
	m.ObserveGuardDecision("member", "allowed", true)

	assert.InDelta(t, 2, testutil.ToFloat64(m.guardDecisions.WithLabelValues("member", "not_member", "false")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.guardDecisions.WithLabelValues("member", "allowed", "true")), 0)
}

func TestObserveClassifierFailure(t *testing.T) {
	m := newTestMetrics()

	m.ObserveClassifierFailure("merchant")

	assert.InDelta(t, 1, testutil.ToFloat64(m.classifierFailures.WithLabelValues("merchant")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.classifierFailures.WithLabelValues("member")), 0)
}

func TestMiddleware_RecordsMatchedRoute(t *testing.T) {
	m := newTestMetrics()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/c/:slug", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusForbidden)
	})

	for _, target := range []string{"/c/alpha", "/c/beta", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/c/:slug", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/boom", "403")), 0)
}

func TestHandler_ExposesNamespace(t *testing.T) {
	m := newTestMetrics()
	m.ObserveClassifierFailure("profile")

	e := echo.New()
	e.GET("/metrics", m.Handler())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `test_classifier_failures_total{check="profile"} 1`))
}

func TestNew_DefaultNamespace(t *testing.T) {
	m := New(&config.Config{})
	m.ObserveGuardDecision("public", "allowed", true)

	count, err := testutil.GatherAndCount(m.Registry(), "perkpass_guard_decisions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
