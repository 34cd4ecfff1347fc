package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/chainraise/launchpad-api/internal/models"
	"github.com/chainraise/launchpad-api/internal/trustscore"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
}

// ProjectRepository defines the interface for token-launch data access
type ProjectRepository interface {
	GetByID(id uuid.UUID) (*models.Project, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Project, error)
	Create(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error

	// UpdateScore persists the recomputed score fields only; entity
	// attributes are owned by CRUD, score fields by the engine.
	UpdateScore(id uuid.UUID, score int, updatedAt time.Time) error
	ListStaleScores(before time.Time, limit int) ([]uuid.UUID, error)
}

// BusinessRepository defines the interface for business-raise data access
type BusinessRepository interface {
	GetByID(id uuid.UUID) (*models.Business, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Business, error)
	Create(business *models.Business) error
	Update(business *models.Business) error
	Delete(id uuid.UUID) error

	UpdateScore(id uuid.UUID, score int, updatedAt time.Time) error
	ListStaleScores(before time.Time, limit int) ([]uuid.UUID, error)
}

// IdentityRepository defines the interface for identity-verification records
type IdentityRepository interface {
	GetByUserID(userID uuid.UUID) (*models.IdentityVerification, error)
	Upsert(record *models.IdentityVerification) error
}

// DocumentSummary aggregates the per-entity document facts rules consume
type DocumentSummary struct {
	Count                   int
	HasAudit                bool
	HasVerifiedAudit        bool
	HasFinancial            bool
	FounderKYCVerifiedCount int
}

// DocumentRepository defines the interface for entity document metadata
type DocumentRepository interface {
	Create(doc *models.EntityDocument) error
	ListByEntity(kind trustscore.EntityKind, entityID uuid.UUID) ([]models.EntityDocument, error)
	Summarize(kind trustscore.EntityKind, entityID uuid.UUID) (*DocumentSummary, error)
}

// LedgerRepository defines the interface for the append-only score ledger.
// Events are created once and never updated or deleted.
type LedgerRepository interface {
	Append(event *trustscore.ScoreEvent) error
	ListByEntity(kind trustscore.EntityKind, entityID uuid.UUID) ([]trustscore.ScoreEvent, error)
	ListNegativeByEntity(kind trustscore.EntityKind, entityID uuid.UUID) ([]trustscore.ScoreEvent, error)
	ListRecentByEntity(kind trustscore.EntityKind, entityID uuid.UUID, limit int) ([]trustscore.ScoreEvent, error)
}

// AuditEntry is one write-only audit-log line
type AuditEntry struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	EntityID  string    `json:"entity_id"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditRepository defines the write-only audit-log sink
type AuditRepository interface {
	Append(entry *AuditEntry) error
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	User     UserRepository
	Project  ProjectRepository
	Business BusinessRepository
	Identity IdentityRepository
	Document DocumentRepository
	Ledger   LedgerRepository
	Audit    AuditRepository
	Tx       TransactionManager
}
