package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/miral0204/Youtube-Trend-Analysis/internal/handler"
	"github.com/miral0204/Youtube-Trend-Analysis/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Trending *handler.TrendingHandler
	Export   *handler.ExportHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Health check (before API group, no auth needed)
	app.Get("/health/live", h.Health.Live)

	// Prometheus scrape endpoint
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	// Trending routes. Runs spend upstream quota, so they carry the
	// tightest limit, keyed by credential; reads are limited per IP.
	api.Post("/trending/run", h.Trending.Run, middleware.NewRunRateLimiter().Handler())
	api.Get("/trending/latest", h.Trending.Latest, middleware.NewReadRateLimiter().Handler())
	api.Get("/trending/export", h.Export.Export, middleware.NewExportRateLimiter().Handler())
}
