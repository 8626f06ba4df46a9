package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"perkpass/config"
	deliverycontext "perkpass/internal/delivery/context"
	domainerrors "perkpass/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoggerMiddleware writes one access log line per request. Outside debug mode
// only failed requests (status >= 400 or a returned error) are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	quiet  map[string]struct{}
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
		quiet:  map[string]struct{}{"/health": {}, "/metrics": {}},
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = errorStatus(err)
		}

		if m.shouldLog(c.Request().URL.Path, status, err) {
			m.write(c, status, time.Since(start), err)
		}

		return err
	}
}

func (m *LoggerMiddleware) shouldLog(path string, status int, err error) bool {
	if err != nil || status >= http.StatusBadRequest {
		return true
	}
	if _, ok := m.quiet[path]; ok {
		return false
	}

	return m.debug
}

func (m *LoggerMiddleware) write(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()
	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if viewer := deliverycontext.GetViewer(c); viewer.IsAuthenticated() {
		attrs = append(attrs,
			slog.String("user_id", viewer.ID().String()),
			slog.String("role", viewer.Capabilities.Role.String()),
		)
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	// The request-scoped logger already carries request_id.
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger.With(
		slog.String("request_id", deliverycontext.GetRequestID(c)),
	))
	logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)
}

// errorStatus predicts the status the error handler will write.
func errorStatus(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
