package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chainraise/launchpad-api/internal/logger"
	"github.com/chainraise/launchpad-api/internal/models"
	"github.com/chainraise/launchpad-api/internal/services"
	"github.com/chainraise/launchpad-api/internal/trustscore"
)

// ProjectHandler handles token-launch endpoints. Workflow endpoints
// update the project attributes first and then notify the trust engine,
// so a failed trigger never rolls back the attribute change.
type ProjectHandler struct {
	projectService services.ProjectService
	trustService   services.TrustService
	logger         logger.Logger
}

// NewProjectHandler creates a new project handler with service injection
func NewProjectHandler(projectService services.ProjectService, trustService services.TrustService, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		trustService:   trustService,
		logger:         log,
	}
}

// Create registers a new token launch for the authenticated user
func (h *ProjectHandler) Create(c *gin.Context) {
	requesterID, _, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var form models.ProjectForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project format: " + err.Error()})
		return
	}

	project, err := h.projectService.Create(requesterID, &form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// List returns the authenticated user's projects
func (h *ProjectHandler) List(c *gin.Context) {
	requesterID, _, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projects, err := h.projectService.ListByOwner(requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "count": len(projects)})
}

// Get returns a single project by id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// Update changes a project's profile attributes
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	requesterID, isAdmin, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var form models.ProjectForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project format: " + err.Error()})
		return
	}

	project, err := h.projectService.Update(id, requesterID, isAdmin, &form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// SetLiquidityLock records a liquidity lock and notifies the trust engine
func (h *ProjectHandler) SetLiquidityLock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	requesterID, isAdmin, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		Months int `json:"months"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lock format: " + err.Error()})
		return
	}

	project, err := h.projectService.SetLiquidityLock(id, requesterID, isAdmin, req.Months)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.trustService.OnLiquidityLocked(id, req.Months); err != nil {
		h.logger.Error("liquidity lock trigger failed", err, "project_id", id.String())
	}

	h.respondWithScore(c, project)
}

// SetVesting records a team vesting schedule and notifies the trust engine
func (h *ProjectHandler) SetVesting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	requesterID, isAdmin, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		Months int `json:"months"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vesting format: " + err.Error()})
		return
	}

	project, err := h.projectService.SetVesting(id, requesterID, isAdmin, req.Months)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.trustService.OnVestingConfigured(id, req.Months); err != nil {
		h.logger.Error("vesting trigger failed", err, "project_id", id.String())
	}

	h.respondWithScore(c, project)
}

// SetAudit records an external audit and notifies the trust engine
func (h *ProjectHandler) SetAudit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	requesterID, isAdmin, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		Provider  string `json:"provider" binding:"required"`
		ReportURL string `json:"report_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid audit format: " + err.Error()})
		return
	}

	project, err := h.projectService.SetAudit(id, requesterID, isAdmin, req.Provider, req.ReportURL)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.trustService.OnDocumentsUploaded(trustscore.KindProject, id, models.DocumentAudit); err != nil {
		h.logger.Error("audit trigger failed", err, "project_id", id.String())
	}

	h.respondWithScore(c, project)
}

// AddDocument stores document metadata and notifies the trust engine
func (h *ProjectHandler) AddDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	requesterID, isAdmin, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		Type     models.DocumentType `json:"type" binding:"required"`
		FileName string              `json:"file_name" binding:"required"`
		FileURL  string              `json:"file_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document format: " + err.Error()})
		return
	}

	doc, err := h.projectService.AddDocument(id, requesterID, isAdmin, req.Type, req.FileName, req.FileURL)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.trustService.OnDocumentsUploaded(trustscore.KindProject, id, req.Type); err != nil {
		h.logger.Error("document trigger failed", err, "project_id", id.String())
	}

	c.JSON(http.StatusCreated, gin.H{"document": doc, "timestamp": time.Now()})
}

// respondWithScore returns the updated project together with its fresh score
func (h *ProjectHandler) respondWithScore(c *gin.Context, project *models.Project) {
	score, err := h.trustService.GetScore(trustscore.KindProject, project.ID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"project": project})
		return
	}
	project.CurrentScore = score.CurrentScore
	c.JSON(http.StatusOK, gin.H{"project": project, "score": score})
}
