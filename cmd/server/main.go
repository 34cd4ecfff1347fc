package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/chainraise/launchpad-api/internal/api"
	"github.com/chainraise/launchpad-api/internal/database"
	"github.com/chainraise/launchpad-api/internal/logger"
	"github.com/chainraise/launchpad-api/internal/middleware"
	"github.com/chainraise/launchpad-api/internal/services"
	"github.com/chainraise/launchpad-api/pkg/config"
)

func main() {
	log := logger.New()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment")
	}

	// Initialize configuration
	cfg := config.New()

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal("failed to run migrations", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := gin.New()

	if proxies := cfg.GetTrustedProxies(); len(proxies) > 0 {
		if err := r.SetTrustedProxies(proxies); err != nil {
			log.Fatal("invalid trusted proxies", err)
		}
	}

	// Add security middleware
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.InputValidationMiddleware(cfg))

	// Add rate limiting in production
	if cfg.EnableRateLimit {
		r.Use(middleware.RateLimitingMiddleware())
	}

	// Add recovery middleware
	r.Use(gin.Recovery())

	// Setup API routes
	pipeline, err := api.SetupRoutes(r, db.DB, cfg, log)
	if err != nil {
		log.Fatal("failed to setup API routes", err)
	}

	// Start the background rescore loop
	if err := pipeline.Start(services.PipelineConfigFromEnv(cfg)); err != nil {
		log.Fatal("failed to start rescore pipeline", err)
	}
	defer pipeline.Stop()

	// Start server
	log.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", err)
	}
}
