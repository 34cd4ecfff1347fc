package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chainraise/launchpad-api/internal/auth"
	"github.com/chainraise/launchpad-api/internal/database"
	"github.com/chainraise/launchpad-api/internal/logger"
	"github.com/chainraise/launchpad-api/internal/services"
	"github.com/chainraise/launchpad-api/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *sql.DB, cfg *config.Config, log logger.Logger) (*services.RescorePipeline, error) {
	dbWrapper := &database.DB{DB: db}

	svcs := services.NewServices(db, cfg, log)
	pipeline := services.NewRescorePipeline(svcs.Repos(), svcs.Trust, log)

	authHandler := NewAuthHandler(svcs.Auth)
	projectHandler := NewProjectHandler(svcs.Project, svcs.Trust, log)
	businessHandler := NewBusinessHandler(svcs.Business, svcs.Trust, log)
	scoreHandler := NewScoreHandler(svcs.Trust)
	adminHandler := NewAdminHandler(svcs.Project, svcs.Business, svcs.Trust, log)
	pipelineHandler := NewPipelineHandler(pipeline, cfg)

	// Liveness endpoint, no auth
	r.GET("/health", func(c *gin.Context) {
		if err := dbWrapper.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": dbWrapper.GetStats()})
	})

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/refresh", authHandler.RefreshToken)

		// Tier reference data is public: investors read it without accounts
		public.GET("/tiers", scoreHandler.GetTiers)
		public.GET("/tiers/:score", scoreHandler.GetTierForScore)
	}

	// Protected routes
	protected := r.Group("/api/v1")
	protected.Use(auth.JWTMiddleware(cfg.JWTSecret))
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.POST("/projects", projectHandler.Create)
		protected.GET("/projects", projectHandler.List)
		protected.GET("/projects/:id", projectHandler.Get)
		protected.PUT("/projects/:id", projectHandler.Update)
		protected.POST("/projects/:id/liquidity-lock", projectHandler.SetLiquidityLock)
		protected.POST("/projects/:id/vesting", projectHandler.SetVesting)
		protected.POST("/projects/:id/audit", projectHandler.SetAudit)
		protected.POST("/projects/:id/documents", projectHandler.AddDocument)

		protected.POST("/businesses", businessHandler.Create)
		protected.GET("/businesses", businessHandler.List)
		protected.GET("/businesses/:id", businessHandler.Get)
		protected.PUT("/businesses/:id", businessHandler.Update)
		protected.POST("/businesses/:id/documents", businessHandler.AddDocument)

		protected.GET("/scores/:kind/:id", scoreHandler.GetScore)
	}

	// Admin routes
	admin := r.Group("/api/v1/admin")
	admin.Use(auth.JWTMiddleware(cfg.JWTSecret))
	admin.Use(auth.AdminOnly())
	{
		admin.POST("/identity/:user_id/verify", adminHandler.VerifyIdentity)
		admin.POST("/scores/adjust", adminHandler.AdjustScore)
		admin.POST("/scores/events", adminHandler.RecordEvent)
		admin.POST("/penalties/:kind/:id/missed-report", adminHandler.PenalizeMissedReport)
		admin.POST("/penalties/:kind/:id/community-report", adminHandler.PenalizeCommunityReport)

		admin.POST("/projects/:id/contract-verified", adminHandler.SetContractVerified)
		admin.POST("/businesses/:id/kyb", adminHandler.SetKYBLevel)
		admin.POST("/businesses/:id/accounting-reviewed", adminHandler.SetAccountingReviewed)

		admin.GET("/pipeline/status", pipelineHandler.Status)
		admin.POST("/pipeline/start", pipelineHandler.Start)
		admin.POST("/pipeline/stop", pipelineHandler.Stop)
		admin.POST("/pipeline/run", pipelineHandler.RunOnce)
	}

	return pipeline, nil
}
