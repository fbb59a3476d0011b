package routes

import (
	"github.com/ankitcloud202/alramzbot/internal/application/usecases"
	"github.com/ankitcloud202/alramzbot/internal/config"
	"github.com/ankitcloud202/alramzbot/internal/domain/repositories"
	"github.com/ankitcloud202/alramzbot/internal/infrastructure/cache"
	"github.com/ankitcloud202/alramzbot/internal/infrastructure/callout"
	"github.com/ankitcloud202/alramzbot/internal/interfaces/http/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	supabase "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, use cases and handlers onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB, store *supabase.Client, cfg *config.Config, log *zap.Logger) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Infrastructure clients
	responseCache := cache.New()
	callClient := callout.NewClient(cfg.CallServiceURL, cfg.CallServiceTimeout)

	// Repositories
	responseRepo := repositories.NewResponseRepository(store, cfg.ResponsesTable, log)
	surveyRepo := repositories.NewSurveyRepository(db)
	callRepo := repositories.NewCallRepository(db)

	// Use Cases
	responseUseCase := usecases.NewResponseUseCase(responseRepo, responseCache, log, usecases.ResponseCacheConfig{
		TTL:                cfg.CacheTTL,
		FetchTimeout:       cfg.FetchTimeout,
		RefreshMinDuration: cfg.RefreshMinDuration,
	})
	callUseCase := usecases.NewCallUseCase(callClient, callRepo, log)
	surveyUseCase := usecases.NewSurveyUseCase(surveyRepo)

	// Handlers
	responseHandler := handlers.NewResponseHandler(responseUseCase)
	callHandler := handlers.NewCallHandler(callUseCase, callRepo)
	surveyHandler := handlers.NewSurveyHandler(surveyUseCase)
	flowHandler := handlers.NewFlowHandler()

	api := app.Group("/api")

	// Survey responses and derived views
	api.Get("/responses", responseHandler.GetResponses)
	api.Get("/responses/distribution", responseHandler.GetDistribution)
	api.Get("/responses/monthly", responseHandler.GetMonthlyAverages)
	api.Post("/responses/refresh", responseHandler.Refresh)

	// Outbound calls
	api.Post("/call", callHandler.TriggerCalls)
	api.Get("/calls", callHandler.GetCalls)

	// Survey definitions
	api.Post("/surveys", surveyHandler.CreateSurvey)
	api.Get("/surveys", surveyHandler.GetSurveys)
	api.Get("/surveys/:id", surveyHandler.GetSurvey)
	api.Delete("/surveys/:id", surveyHandler.DeleteSurvey)

	// IVR flow diagram
	api.Get("/flow", flowHandler.GetFlow)
}
