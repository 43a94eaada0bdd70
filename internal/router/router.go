package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-registration/internal/config"
	"github.com/iliyamo/event-registration/internal/handler"
	"github.com/iliyamo/event-registration/internal/middleware"
)

// RegisterRoutes registers routes that need no session.  Currently it
// exposes only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the read-only catalog endpoints behind the
// Redis response cache.  A nil client disables caching.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	g := e.Group("/v1/events", middleware.NewRedisCache(cacheCfg, rdb))
	g.GET("", p.ListEvents)
	g.GET("/:name", p.GetEvent)
}

// RegisterSession registers session creation and every screen action.
// All /v1/session routes require a valid session token; submission is
// additionally rate limited per session.
func RegisterSession(e *echo.Echo, h *handler.SessionHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	e.POST("/v1/sessions", h.Create)

	g := e.Group("/v1/session", middleware.SessionAuth(h.Secret, h.Store))
	g.GET("", h.Current)
	g.POST("/gallery", h.Gallery)
	g.POST("/info", h.Info)
	g.POST("/form", h.Form)
	g.POST("/submit", h.Submit, middleware.NewTokenBucket(rlCfg, rdb))
}
