package handler

import (
	"net/http"

	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// signedIn returns the viewer of a guarded route. The guard has already rejected anonymous
// callers, so ok is false only for a route registered outside the table.
func signedIn(c echo.Context) (viewer *entity.Viewer, ok bool) {
	viewer = deliverycontext.GetViewer(c)

	return viewer, viewer.IsAuthenticated()
}

func toLogin(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, policy.LoginPath)
}

// pathID parses a uuid path parameter; malformed ids are reported as not found.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrNotFound)
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
