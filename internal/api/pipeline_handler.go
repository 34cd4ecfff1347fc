package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chainraise/launchpad-api/internal/services"
	"github.com/chainraise/launchpad-api/pkg/config"
)

// PipelineHandler controls the background rescore pipeline
type PipelineHandler struct {
	pipeline *services.RescorePipeline
	cfg      *config.Config
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(pipeline *services.RescorePipeline, cfg *config.Config) *PipelineHandler {
	return &PipelineHandler{pipeline: pipeline, cfg: cfg}
}

// Status reports whether the pipeline loop is running
func (h *PipelineHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"running":   h.pipeline.IsRunning(),
		"config":    services.PipelineConfigFromEnv(h.cfg),
		"timestamp": time.Now(),
	})
}

// Start begins the background rescore loop
func (h *PipelineHandler) Start(c *gin.Context) {
	pc := services.PipelineConfigFromEnv(h.cfg)
	if err := h.pipeline.Start(pc); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rescore pipeline started", "config": pc})
}

// Stop stops the background rescore loop
func (h *PipelineHandler) Stop(c *gin.Context) {
	if err := h.pipeline.Stop(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rescore pipeline stopped"})
}

// RunOnce executes a single rescore cycle synchronously
func (h *PipelineHandler) RunOnce(c *gin.Context) {
	stats, err := h.pipeline.RunOnce(services.PipelineConfigFromEnv(h.cfg))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Rescore cycle failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rescore cycle completed", "stats": stats})
}
