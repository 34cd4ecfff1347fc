package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chainraise/launchpad-api/internal/auth"
	"github.com/chainraise/launchpad-api/internal/logger"
	"github.com/chainraise/launchpad-api/internal/models"
	"github.com/chainraise/launchpad-api/internal/services"
	"github.com/chainraise/launchpad-api/internal/trustscore"
)

// AdminHandler handles admin-only trust operations: identity
// verification, manual adjustments, penalties and verification flags
type AdminHandler struct {
	projectService  services.ProjectService
	businessService services.BusinessService
	trustService    services.TrustService
	logger          logger.Logger
}

// NewAdminHandler creates a new admin handler with service injection
func NewAdminHandler(projectService services.ProjectService, businessService services.BusinessService, trustService services.TrustService, log logger.Logger) *AdminHandler {
	return &AdminHandler{
		projectService:  projectService,
		businessService: businessService,
		trustService:    trustService,
		logger:          log,
	}
}

// VerifyIdentity marks a user's identity as verified and fans the
// event out to every entity they own
func (h *AdminHandler) VerifyIdentity(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req struct {
		Accredited bool `json:"accredited"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification format: " + err.Error()})
		return
	}

	if err := h.trustService.VerifyIdentity(userID, req.Accredited); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Identity verified",
		"user_id":   userID,
		"timestamp": time.Now(),
	})
}

// AdjustScore applies a manual score adjustment with an audit trail
func (h *AdminHandler) AdjustScore(c *gin.Context) {
	adminID, exists := auth.CurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var adj services.ScoreAdjustment
	if err := c.ShouldBindJSON(&adj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid adjustment format: " + err.Error()})
		return
	}

	result, err := h.trustService.AdminAdjust(adj, adminID.String())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PenalizeMissedReport applies the missed-report penalty to an entity
func (h *AdminHandler) PenalizeMissedReport(c *gin.Context) {
	kind, id, ok := parseEntityParams(c)
	if !ok {
		return
	}

	result, err := h.trustService.PenalizeMissedReport(kind, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PenalizeCommunityReport applies the upheld community-report penalty
func (h *AdminHandler) PenalizeCommunityReport(c *gin.Context) {
	kind, id, ok := parseEntityParams(c)
	if !ok {
		return
	}

	result, err := h.trustService.PenalizeCommunityReport(kind, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SetContractVerified flips a project's on-chain verification flag and
// refreshes its score
func (h *AdminHandler) SetContractVerified(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var req struct {
		Verified bool `json:"verified"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification format: " + err.Error()})
		return
	}

	project, err := h.projectService.SetContractVerified(id, req.Verified)
	if err != nil {
		respondError(c, err)
		return
	}

	score, err := h.trustService.Recompute(trustscore.KindProject, id)
	if err != nil {
		h.logger.Error("recompute after contract verification failed", err, "project_id", id.String())
		c.JSON(http.StatusOK, gin.H{"project": project})
		return
	}
	project.CurrentScore = score.CurrentScore

	c.JSON(http.StatusOK, gin.H{"project": project, "score": score})
}

// SetKYBLevel records a completed KYB verification and notifies the
// trust engine
func (h *AdminHandler) SetKYBLevel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	var req struct {
		Level models.KYBLevel `json:"level" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid KYB format: " + err.Error()})
		return
	}

	business, err := h.businessService.SetKYBLevel(id, req.Level)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.trustService.OnKYBVerified(id, req.Level); err != nil {
		h.logger.Error("KYB trigger failed", err, "business_id", id.String())
	}

	score, err := h.trustService.GetScore(trustscore.KindBusiness, id)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"business": business})
		return
	}
	business.CurrentScore = score.CurrentScore

	c.JSON(http.StatusOK, gin.H{"business": business, "score": score})
}

// SetAccountingReviewed flips a business's accounting review flag and
// refreshes its score
func (h *AdminHandler) SetAccountingReviewed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	var req struct {
		Reviewed bool `json:"reviewed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review format: " + err.Error()})
		return
	}

	business, err := h.businessService.SetAccountingReviewed(id, req.Reviewed)
	if err != nil {
		respondError(c, err)
		return
	}

	score, err := h.trustService.Recompute(trustscore.KindBusiness, id)
	if err != nil {
		h.logger.Error("recompute after accounting review failed", err, "business_id", id.String())
		c.JSON(http.StatusOK, gin.H{"business": business})
		return
	}
	business.CurrentScore = score.CurrentScore

	c.JSON(http.StatusOK, gin.H{"business": business, "score": score})
}

// RecordEvent appends an arbitrary ledger event and recomputes (admin tooling)
func (h *AdminHandler) RecordEvent(c *gin.Context) {
	adminID, exists := auth.CurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input services.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event format: " + err.Error()})
		return
	}
	if input.TriggeredBy == "" {
		input.TriggeredBy = adminID.String()
	}

	result, err := h.trustService.RecordEvent(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// parseEntityParams reads the kind and id route params shared by the
// penalty endpoints
func parseEntityParams(c *gin.Context) (trustscore.EntityKind, uuid.UUID, bool) {
	kind := trustscore.EntityKind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entity kind must be project or business"})
		return "", uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entity ID"})
		return "", uuid.Nil, false
	}

	return kind, id, true
}
