package metrics

import (
	"net/http"
	"strconv"
	"time"

	"perkpass/config"
	"perkpass/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Metrics owns the process registry and every collector the application reports.
type Metrics struct {
	registry *prometheus.Registry

	guardDecisions     *prometheus.CounterVec
	classifierFailures *prometheus.CounterVec
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
}

var _ service.AccessMetrics = (*Metrics)(nil)

// New builds the metric set on its own registry.
func New(cfg *config.Config) *Metrics {
	namespace := "perkpass"
	if cfg != nil && cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		guardDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "guard_decisions_total",
				Help:      "Route guard verdicts by requirement and reason",
			},
			[]string{"requirement", "reason", "allowed"},
		),
		classifierFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "classifier_failures_total",
				Help:      "Capability lookups that failed and were treated as negative",
			},
			[]string{"check"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
}

// Registry exposes the underlying registry for collectors registered elsewhere.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveGuardDecision(requirement, reason string, allowed bool) {
	m.guardDecisions.WithLabelValues(requirement, reason, strconv.FormatBool(allowed)).Inc()
}

func (m *Metrics) ObserveClassifierFailure(check string) {
	m.classifierFailures.WithLabelValues(check).Inc()
}

// Middleware records request count and latency keyed by the matched route template.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			} else if status < http.StatusBadRequest {
				status = http.StatusInternalServerError
			}
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		labels := []string{c.Request().Method, path, strconv.Itoa(status)}
		m.requestsTotal.WithLabelValues(labels...).Inc()
		m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry}))
}

// Module provides the metrics set along with the interfaces other layers consume.
var Module = fx.Options(
	fx.Provide(
		New,
		func(m *Metrics) prometheus.Registerer { return m.Registry() },
		func(m *Metrics) service.AccessMetrics { return m },
	),
)
