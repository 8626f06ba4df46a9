// Package response builds the HTML and JSON responses of the web application.
package response

import (
	"net/http"

	"perkpass/internal/delivery/api/validator"
	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

const genericFailure = "Something went wrong, please try again"

// PageData is passed to every page template.
type PageData struct {
	Title     string
	Viewer    *entity.Viewer
	CSRF      string
	RequestID string
	Error     string // Inline failure shown above the page content.
	Notice    string
	Data      any
}

// ErrorPage is the Data of the error page.
type ErrorPage struct {
	Status  int
	Message string
}

// newPageData fills the fields shared by all pages from the request.
func newPageData(c echo.Context, title string, data any) *PageData {
	page := &PageData{
		Title:     title,
		Viewer:    deliverycontext.GetViewer(c),
		RequestID: deliverycontext.GetRequestID(c),
		Data:      data,
	}
	if token, ok := c.Get(echomiddleware.DefaultCSRFConfig.ContextKey).(string); ok {
		page.CSRF = token
	}

	return page
}

// Page renders a page with status 200.
func Page(c echo.Context, page, title string, data any) error {
	return c.Render(http.StatusOK, page, newPageData(c, title, data))
}

// PageWithNotice renders a page with a confirmation banner.
func PageWithNotice(c echo.Context, page, title, notice string, data any) error {
	pd := newPageData(c, title, data)
	pd.Notice = notice

	return c.Render(http.StatusOK, page, pd)
}

// PageWithError re-renders a form page with the failure shown inline. The status follows
// the error: validation and domain errors keep their code, anything else is a 500.
func PageWithError(c echo.Context, page, title string, data any, err error) error {
	pd := newPageData(c, title, data)
	pd.Error = FormMessage(err)

	return c.Render(StatusOf(err), page, pd)
}

// FormMessage is the user-facing text for a failed form submission.
func FormMessage(err error) string {
	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return validator.Describe(err)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Details() != "" && appErr.HTTPCode() < http.StatusInternalServerError {
			return appErr.Message() + ": " + appErr.Details()
		}

		return appErr.Message()
	}

	return genericFailure
}

// StatusOf maps an error to the status the page is rendered with.
func StatusOf(err error) int {
	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusUnprocessableEntity
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// SeeOther redirects after a successful form post.
func SeeOther(c echo.Context, location string) error {
	return c.Redirect(http.StatusSeeOther, location)
}

// ErrorPageFor renders the standalone error page.
func ErrorPageFor(c echo.Context, status int, message string) error {
	return c.Render(status, "error", newPageData(c, http.StatusText(status), &ErrorPage{
		Status:  status,
		Message: message,
	}))
}

// SuccessResponse is the JSON envelope of the machine-facing endpoints.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a JSON response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}
