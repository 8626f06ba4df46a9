package middleware

import (
	"log/slog"
	"net/http"

	"perkpass/internal/delivery/api/response"
	deliverycontext "perkpass/internal/delivery/context"
	domainerrors "perkpass/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError renders the error page as Echo's HTTPErrorHandler.
// Internal details are never shown for 5xx errors.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if c.Response().Committed {
		logger.Warn("Error after response was committed", slog.Any("error", err))

		return
	}

	status, message := domainerrors.ErrInternalError.HTTPCode(), domainerrors.ErrInternalError.Message()

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.HTTPCode()
		if status < http.StatusInternalServerError {
			message = appErr.Message()
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = http.StatusText(status)
		if msg, ok := httpErr.Message.(string); ok && status < http.StatusInternalServerError {
			message = msg
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	if renderErr := response.ErrorPageFor(c, status, message); renderErr != nil {
		logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(status, message)
	}
}
