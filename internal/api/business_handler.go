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

// BusinessHandler handles tokenized business raise endpoints
type BusinessHandler struct {
	businessService services.BusinessService
	trustService    services.TrustService
	logger          logger.Logger
}

// NewBusinessHandler creates a new business handler with service injection
func NewBusinessHandler(businessService services.BusinessService, trustService services.TrustService, log logger.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
		trustService:    trustService,
		logger:          log,
	}
}

// Create registers a new business raise for the authenticated user
func (h *BusinessHandler) Create(c *gin.Context) {
	requesterID, _, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var form models.BusinessForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business format: " + err.Error()})
		return
	}

	business, err := h.businessService.Create(requesterID, &form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"business": business})
}

// List returns the authenticated user's businesses
func (h *BusinessHandler) List(c *gin.Context) {
	requesterID, _, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	businesses, err := h.businessService.ListByOwner(requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"businesses": businesses, "count": len(businesses)})
}

// Get returns a single business by id
func (h *BusinessHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	business, err := h.businessService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"business": business})
}

// Update changes a business's profile attributes
func (h *BusinessHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	requesterID, isAdmin, ok := requesterIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var form models.BusinessForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business format: " + err.Error()})
		return
	}

	business, err := h.businessService.Update(id, requesterID, isAdmin, &form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"business": business})
}

// AddDocument stores document metadata and notifies the trust engine
func (h *BusinessHandler) AddDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
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

	doc, err := h.businessService.AddDocument(id, requesterID, isAdmin, req.Type, req.FileName, req.FileURL)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.trustService.OnDocumentsUploaded(trustscore.KindBusiness, id, req.Type); err != nil {
		h.logger.Error("document trigger failed", err, "business_id", id.String())
	}

	c.JSON(http.StatusCreated, gin.H{"document": doc, "timestamp": time.Now()})
}
