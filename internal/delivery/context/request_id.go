// Package context carries per-request values (request ID, scoped logger and
// the resolved viewer) across the echo and context.Context boundaries.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a request ID is read from and echoed back on.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	viewerKey
)

// echo.Context stores values by string.
const (
	echoRequestIDKey = "perkpass.request_id"
	echoViewerKey    = "perkpass.viewer"
)

// SetRequestID records the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the ID stored by SetRequestID. Requests that bypassed
// the request ID middleware get a fresh one so log lines are never unlabelled.
func GetRequestID(c echo.Context) string {
	if id, _ := c.Get(echoRequestIDKey).(string); id != "" {
		return id
	}

	return uuid.NewString()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)
	return logger
}

// GetLoggerOrDefault is GetLogger with a fallback for background work.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
