package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chainraise/launchpad-api/internal/services"
	"github.com/chainraise/launchpad-api/internal/trustscore"
)

// ScoreHandler exposes trust score reads and tier reference data
type ScoreHandler struct {
	trustService services.TrustService
}

// NewScoreHandler creates a new score handler with service injection
func NewScoreHandler(trustService services.TrustService) *ScoreHandler {
	return &ScoreHandler{trustService: trustService}
}

// GetScore recomputes and returns the trust score for an entity
func (h *ScoreHandler) GetScore(c *gin.Context) {
	kind := trustscore.EntityKind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entity kind must be project or business"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entity ID"})
		return
	}

	result, err := h.trustService.GetScore(kind, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTiers returns the full tier table
func (h *ScoreHandler) GetTiers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tiers":     h.trustService.TierTable(),
		"timestamp": time.Now(),
	})
}

// GetTierForScore classifies a numeric score into its tier
func (h *ScoreHandler) GetTierForScore(c *gin.Context) {
	score, err := strconv.Atoi(c.Param("score"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be an integer"})
		return
	}
	if score < trustscore.MinScore || score > trustscore.MaxScore {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be between 0 and 100"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": score, "tier": h.trustService.TierInfo(score)})
}
