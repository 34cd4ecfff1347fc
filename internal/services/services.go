package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/chainraise/launchpad-api/internal/logger"
	"github.com/chainraise/launchpad-api/internal/models"
	"github.com/chainraise/launchpad-api/internal/repository"
	"github.com/chainraise/launchpad-api/internal/trustscore"
	"github.com/chainraise/launchpad-api/pkg/config"
)

// Services contains all application services
type Services struct {
	Auth     AuthService
	Project  ProjectService
	Business BusinessService
	Trust    TrustService

	repos *repository.Repositories
}

// Repos exposes the repository aggregate for wiring that sits outside
// the service layer, such as the rescore pipeline.
func (s *Services) Repos() *repository.Repositories {
	return s.repos
}

// LoginResponse represents the response from login
type LoginResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
	ExpiresAt    time.Time   `json:"expires_at"`
}

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role,omitempty"`
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Register(req *RegisterRequest) (*models.User, error)
	ValidateToken(token string) (*models.User, error)
	RefreshToken(token string) (*LoginResponse, error)
}

// ProjectService defines the interface for token-launch business logic
type ProjectService interface {
	Create(ownerID uuid.UUID, form *models.ProjectForm) (*models.Project, error)
	GetByID(id uuid.UUID) (*models.Project, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Project, error)
	Update(id, requesterID uuid.UUID, isAdmin bool, form *models.ProjectForm) (*models.Project, error)
	SetLiquidityLock(id, requesterID uuid.UUID, isAdmin bool, months int) (*models.Project, error)
	SetVesting(id, requesterID uuid.UUID, isAdmin bool, months int) (*models.Project, error)
	SetAudit(id, requesterID uuid.UUID, isAdmin bool, provider, reportURL string) (*models.Project, error)
	SetContractVerified(id uuid.UUID, verified bool) (*models.Project, error)
	AddDocument(id, requesterID uuid.UUID, isAdmin bool, docType models.DocumentType, fileName, fileURL string) (*models.EntityDocument, error)
}

// BusinessService defines the interface for business-raise business logic
type BusinessService interface {
	Create(ownerID uuid.UUID, form *models.BusinessForm) (*models.Business, error)
	GetByID(id uuid.UUID) (*models.Business, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Business, error)
	Update(id, requesterID uuid.UUID, isAdmin bool, form *models.BusinessForm) (*models.Business, error)
	SetKYBLevel(id uuid.UUID, level models.KYBLevel) (*models.Business, error)
	SetAccountingReviewed(id uuid.UUID, reviewed bool) (*models.Business, error)
	AddDocument(id, requesterID uuid.UUID, isAdmin bool, docType models.DocumentType, fileName, fileURL string) (*models.EntityDocument, error)
}

// EventInput describes one score-affecting event to record
type EventInput struct {
	EntityID    uuid.UUID              `json:"entity_id"`
	EntityType  trustscore.EntityKind  `json:"entity_type"`
	Type        trustscore.EventType   `json:"event_type"`
	Points      int                    `json:"points"`
	Reason      string                 `json:"reason"`
	TriggeredBy string                 `json:"triggered_by,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// ScoreAdjustment is an admin-initiated manual score change
type ScoreAdjustment struct {
	EntityID   uuid.UUID             `json:"entity_id" binding:"required"`
	EntityType trustscore.EntityKind `json:"entity_type" binding:"required"`
	Points     int                   `json:"points" binding:"required"`
	Reason     string                `json:"reason" binding:"required"`
}

// TrustService defines the trust score engine surface: recomputation,
// the trigger dispatcher and tier reporting. Every mutation path
// appends a ledger event and recomputes as one operation.
type TrustService interface {
	// GetScore recomputes and returns the fresh result; there is no
	// cached-read path.
	GetScore(kind trustscore.EntityKind, id uuid.UUID) (*trustscore.ScoreResult, error)
	Recompute(kind trustscore.EntityKind, id uuid.UUID) (*trustscore.ScoreResult, error)
	RecordEvent(input EventInput) (*trustscore.ScoreResult, error)

	// Named system triggers. Each computes a point value from its
	// lookup table and is a no-op when that value is zero.
	VerifyIdentity(userID uuid.UUID, accredited bool) error
	OnIdentityVerified(userID uuid.UUID) error
	OnLiquidityLocked(projectID uuid.UUID, months int) error
	OnVestingConfigured(projectID uuid.UUID, months int) error
	OnKYBVerified(businessID uuid.UUID, level models.KYBLevel) error
	OnDocumentsUploaded(kind trustscore.EntityKind, entityID uuid.UUID, docType models.DocumentType) error

	AdminAdjust(adj ScoreAdjustment, adminID string) (*trustscore.ScoreResult, error)
	PenalizeMissedReport(kind trustscore.EntityKind, entityID uuid.UUID) (*trustscore.ScoreResult, error)
	PenalizeCommunityReport(kind trustscore.EntityKind, entityID uuid.UUID) (*trustscore.ScoreResult, error)

	TierInfo(score int) trustscore.TierInfo
	TierTable() []trustscore.TierInfo
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, cfg *config.Config, log logger.Logger) *Services {
	repos := repository.NewRepositories(db)
	trust := newTrustService(repos, log)

	return &Services{
		Auth:     newAuthService(repos, cfg),
		Project:  newProjectService(repos, log),
		Business: newBusinessService(repos, log),
		Trust:    trust,
		repos:    repos,
	}
}
