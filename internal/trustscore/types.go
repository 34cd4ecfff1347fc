package trustscore

import (
	"time"

	"github.com/google/uuid"

	"github.com/chainraise/launchpad-api/internal/models"
)

// Score bounds. Every entity starts at BaseScore and the recomputed
// total is always clamped into [MinScore, MaxScore].
const (
	MinScore  = 0
	MaxScore  = 100
	BaseScore = 50
)

// EntityKind distinguishes the two scored entity variants
type EntityKind string

const (
	KindProject  EntityKind = "project"
	KindBusiness EntityKind = "business"
)

// Valid returns true for a recognized entity kind
func (k EntityKind) Valid() bool {
	return k == KindProject || k == KindBusiness
}

// EventType classifies score ledger events
type EventType string

const (
	EventIdentityVerified  EventType = "identity_verified"
	EventLiquidityLocked   EventType = "liquidity_locked"
	EventVestingConfigured EventType = "vesting_configured"
	EventProfileCompleted  EventType = "profile_completed"
	EventAuditSubmitted    EventType = "audit_submitted"
	EventDocumentsUploaded EventType = "documents_uploaded"
	EventKYBVerified       EventType = "kyb_verified"
	EventManualAdjustment  EventType = "manual_adjustment"
	EventPenaltyApplied    EventType = "penalty_applied"
	EventBonusApplied      EventType = "bonus_applied"
)

// Entity is the tagged union over the two scored variants. Exactly one
// of Project/Business is non-nil, matching Kind.
type Entity struct {
	Kind     EntityKind
	Project  *models.Project
	Business *models.Business
}

// ProjectEntity wraps a project for rule evaluation
func ProjectEntity(p *models.Project) Entity {
	return Entity{Kind: KindProject, Project: p}
}

// BusinessEntity wraps a business for rule evaluation
func BusinessEntity(b *models.Business) Entity {
	return Entity{Kind: KindBusiness, Business: b}
}

// ID returns the underlying entity id
func (e Entity) ID() uuid.UUID {
	if e.Kind == KindProject {
		return e.Project.ID
	}
	return e.Business.ID
}

// OwnerID returns the owning user's id
func (e Entity) OwnerID() uuid.UUID {
	if e.Kind == KindProject {
		return e.Project.OwnerID
	}
	return e.Business.OwnerID
}

// Context carries the derived facts rules need beyond the entity row
// itself. It is a read-only snapshot assembled fresh for every
// recomputation and never cached.
type Context struct {
	Identity *models.IdentityVerification

	DocumentCount            int
	HasAuditDocument         bool
	HasVerifiedAuditDocument bool
	HasFinancialDocument     bool

	// Business-only founder KYC facts
	FounderCount            int
	FounderKYCVerifiedCount int
}

// ScoreEvent is one immutable row of the append-only score ledger
type ScoreEvent struct {
	ID          int64                  `json:"id"`
	EntityKind  EntityKind             `json:"entity_kind"`
	EntityID    uuid.UUID              `json:"entity_id"`
	Type        EventType              `json:"event_type"`
	Points      int                    `json:"points"`
	Reason      string                 `json:"reason"`
	TriggeredBy string                 `json:"triggered_by,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ScoreFactor is one row of the per-rule breakdown, produced fresh on
// every recomputation for transparency
type ScoreFactor struct {
	Name        string `json:"name"`
	Points      int    `json:"points"`
	MaxPoints   int    `json:"maxPoints"`
	Achieved    bool   `json:"achieved"`
	Description string `json:"description"`
}

// HistoryEntry is a ledger event annotated for reporting. Score is the
// current total at the time the result was built, not a point-in-time
// value; reconstructing past scores would need historical snapshots.
type HistoryEntry struct {
	Date      time.Time `json:"date"`
	Score     int       `json:"score"`
	EventType EventType `json:"eventType"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
}

// ScoreResult is the full outcome of one recomputation
type ScoreResult struct {
	EntityID     uuid.UUID      `json:"entityId"`
	EntityType   EntityKind     `json:"entityType"`
	CurrentScore int            `json:"currentScore"`
	Tier         Tier           `json:"tier"`
	Factors      []ScoreFactor  `json:"factors"`
	LastUpdated  time.Time      `json:"lastUpdated"`
	History      []HistoryEntry `json:"history"`
}

// Clamp bounds a raw total into the valid score range
func Clamp(total int) int {
	if total < MinScore {
		return MinScore
	}
	if total > MaxScore {
		return MaxScore
	}
	return total
}
