package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-registration/internal/model"
	"github.com/iliyamo/event-registration/internal/session"
	"github.com/iliyamo/event-registration/internal/utils"
)

// Context keys set by SessionAuth.
const (
	ctxSession   = "session"
	ctxSessionID = "session_id"
)

// SessionAuth returns an Echo middleware that validates a Bearer session
// token, loads the session it names from store and injects it into the
// request context.  Handlers read it back with CurrentSession.
func SessionAuth(secret string, store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			id, err := utils.ParseSessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			sess, err := store.Get(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, session.ErrSessionNotFound) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
				}
				c.Logger().Errorf("session store: %v", err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session store error"})
			}

			c.Set(ctxSession, sess)
			c.Set(ctxSessionID, sess.ID)
			return next(c)
		}
	}
}

// CurrentSession returns the session injected by SessionAuth, or nil.
func CurrentSession(c echo.Context) *model.Session {
	s, _ := c.Get(ctxSession).(*model.Session)
	return s
}
