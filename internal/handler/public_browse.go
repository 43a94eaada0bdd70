// Package handler exposes the HTTP handlers.  This file holds the public
// catalog routes: read-only event data that needs no session, suitable for
// caching.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-registration/internal/catalog"
)

// PublicHandler serves the event catalog to unauthenticated clients.
type PublicHandler struct {
	Catalog *catalog.Catalog
}

// ListEvents returns every event in gallery order.
// Response JSON contains an "items" array of events.
func (h *PublicHandler) ListEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.Events()})
}

// GetEvent returns one event including its rules.
func (h *PublicHandler) GetEvent(c echo.Context) error {
	ev, err := h.Catalog.Lookup(c.Param("name")) // Echo has already unescaped the path
	if err != nil {
		if errors.Is(err, catalog.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, ev)
}
