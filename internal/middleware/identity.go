package middleware

// identity.go holds the helper that names the caller for rate-limit keys:
// the session id injected by SessionAuth, or "anon" before one exists.

import "github.com/labstack/echo/v4"

func sessionID(c echo.Context) string {
	if s, ok := c.Get(ctxSessionID).(string); ok && s != "" {
		return s
	}
	return "anon"
}
