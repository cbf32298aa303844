package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing identity on a protected
// route means the middleware did not run, which is a wiring bug surfaced
// as an ordinary 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return user, nil
}

// viewerKey identifies the viewer for the view counter: the authenticated
// user id when present, the client IP otherwise.
func viewerKey(c echo.Context) string {
	if user, _ := c.Get("user").(*domain.User); user != nil {
		return user.ID
	}
	return c.RealIP()
}
