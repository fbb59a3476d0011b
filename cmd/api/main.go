package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ankitcloud202/alramzbot/internal/config"
	"github.com/ankitcloud202/alramzbot/internal/infrastructure/database"
	"github.com/ankitcloud202/alramzbot/internal/infrastructure/datastore"
	"github.com/ankitcloud202/alramzbot/internal/interfaces/http/middleware"
	"github.com/ankitcloud202/alramzbot/internal/interfaces/http/routes"
	"github.com/ankitcloud202/alramzbot/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading configuration: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync()

	// Initialize database
	db, err := database.Setup(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("error setting up database", zap.Error(err))
	}
	defer database.Close(db)

	// Managed data store holding the survey responses
	store, err := datastore.NewClient(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		zlog.Fatal("error creating data store client", zap.Error(err))
	}

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		Concurrency:  256 * 1024,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app, cfg.CORSOrigins)
	app.Use(middleware.RequestLogger(zlog))

	// Setup routes
	routes.SetupRoutes(app, db, store, cfg, zlog)

	// Start server
	go func() {
		zlog.Info("🚀 server is running", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		zlog.Error("shutdown failed", zap.Error(err))
	}
}
