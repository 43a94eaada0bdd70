package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness probe used by load balancers.  It does not touch
// the row store: a spreadsheet outage must not take the site out of
// rotation, since visitors can still browse events.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
