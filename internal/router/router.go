package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/asal3ti/charizard/internal/handler"
	"github.com/asal3ti/charizard/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Health  *handler.HealthHandler
	Text    *handler.TextHandler
	Video   *handler.VideoHandler
	Channel *handler.ChannelHandler
	Stats   *handler.StatsHandler
	Search  *handler.SearchHandler
	AI      *handler.AIHandler
	Jobs    *handler.JobHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	analysis := middleware.NewAnalysisRateLimiter().Handler()
	search := middleware.NewSearchRateLimiter().Handler()
	ai := middleware.NewAIRateLimiter().Handler()
	jobs := middleware.NewJobRateLimiter().Handler()

	api := app.Group("/api")

	// Free-text analysis
	api.Post("/analyze/text", analysis, h.Text.Analyze)

	// Video routes
	api.Post("/videos/extract-id", h.Video.ExtractID)
	api.Get("/videos/:videoId", analysis, h.Video.Analyze)
	api.Get("/videos/:videoId/comments", analysis, h.Video.Comments)
	api.Get("/videos/:videoId/sponsorship", analysis, h.Video.Sponsorship)
	api.Get("/videos/:videoId/similar", search, h.Video.Similar)
	api.Get("/videos/:videoId/technical-insights", search, h.Video.TechnicalInsights)
	api.Get("/videos/:videoId/history", h.Video.History)

	// Channel routes
	api.Post("/channels/compare", analysis, h.Channel.Compare)
	api.Get("/channels/:channelId", analysis, h.Channel.Analyze)
	api.Get("/channels/:channelId/history", h.Channel.History)

	// Stored analytics
	api.Get("/stats", h.Stats.GetStats)
	api.Get("/history", h.Stats.Recent)

	// Search routes
	api.Get("/search/sponsored", search, h.Search.Sponsored)

	// AI routes
	api.Post("/ai/sentiment", ai, h.AI.Sentiment)
	api.Post("/ai/category", ai, h.AI.Category)
	api.Post("/ai/critique", ai, h.AI.Critique)
	api.Post("/ai/generate", ai, h.AI.Generate)
	api.Post("/ai/workflow", ai, h.AI.Workflow)

	// Async jobs
	api.Post("/jobs", jobs, h.Jobs.Create)
	api.Get("/jobs/:jobId", h.Jobs.Get)
}
