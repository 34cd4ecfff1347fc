package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/chainraise/launchpad-api/internal/errors"
	"github.com/chainraise/launchpad-api/internal/logger"
	"github.com/chainraise/launchpad-api/internal/models"
	"github.com/chainraise/launchpad-api/internal/repository"
	"github.com/chainraise/launchpad-api/internal/trustscore"
)

// historyLimit bounds the ledger tail returned with every ScoreResult
const historyLimit = 10

// trustServiceImpl implements TrustService
type trustServiceImpl struct {
	repos  *repository.Repositories
	engine *trustscore.Engine
	logger logger.Logger
	locks  *entityLocks
}

// newTrustService creates a new trust score service implementation
func newTrustService(repos *repository.Repositories, log logger.Logger) TrustService {
	return &trustServiceImpl{
		repos:  repos,
		engine: trustscore.NewEngine(),
		logger: log,
		locks:  newEntityLocks(),
	}
}

// GetScore recomputes and returns the current score for an entity
func (s *trustServiceImpl) GetScore(kind trustscore.EntityKind, id uuid.UUID) (*trustscore.ScoreResult, error) {
	return s.Recompute(kind, id)
}

// Recompute rebuilds the score from live attributes and the negative
// side of the ledger, persists it, and returns the full result
func (s *trustServiceImpl) Recompute(kind trustscore.EntityKind, id uuid.UUID) (*trustscore.ScoreResult, error) {
	if !kind.Valid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown entity type %q", kind), nil)
	}

	lock := s.locks.acquire(kind, id)
	defer lock.Unlock()

	return s.recomputeLocked(kind, id)
}

// recomputeLocked performs the read-modify-write. The caller must hold
// the entity's lock.
func (s *trustServiceImpl) recomputeLocked(kind trustscore.EntityKind, id uuid.UUID) (*trustscore.ScoreResult, error) {
	entity, err := s.loadEntity(kind, id)
	if err != nil {
		return nil, err
	}

	ctx, err := s.buildContext(entity)
	if err != nil {
		return nil, err
	}

	factors, rulePoints := s.engine.Evaluate(entity, ctx)

	// Only negative ledger events persist across recomputations.
	// Positive events are audit records; their effect is re-derived
	// from live attributes by the rule table, so a positive event with
	// no matching rule has no lasting effect on the score.
	negatives, err := s.repos.Ledger.ListNegativeByEntity(kind, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger events: %w", err)
	}

	total := trustscore.BaseScore + rulePoints
	for _, ev := range negatives {
		total += ev.Points
	}
	total = trustscore.Clamp(total)

	now := time.Now()
	if err := s.updateEntityScore(kind, id, total, now); err != nil {
		return nil, err
	}

	recent, err := s.repos.Ledger.ListRecentByEntity(kind, id, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent ledger events: %w", err)
	}

	// History entries carry the current total, not a point-in-time
	// value; reconstructing past scores would need snapshots.
	history := make([]trustscore.HistoryEntry, 0, len(recent))
	for _, ev := range recent {
		history = append(history, trustscore.HistoryEntry{
			Date:      ev.CreatedAt,
			Score:     total,
			EventType: ev.Type,
			Points:    ev.Points,
			Reason:    ev.Reason,
		})
	}

	s.audit("score_recomputed", trustscore.ActorSystem, id.String(),
		fmt.Sprintf("%s score recomputed to %d", kind, total))

	return &trustscore.ScoreResult{
		EntityID:     id,
		EntityType:   kind,
		CurrentScore: total,
		Tier:         trustscore.Classify(total),
		Factors:      factors,
		LastUpdated:  now,
		History:      history,
	}, nil
}

// loadEntity fetches the entity row and wraps it in the tagged union
func (s *trustServiceImpl) loadEntity(kind trustscore.EntityKind, id uuid.UUID) (trustscore.Entity, error) {
	switch kind {
	case trustscore.KindProject:
		project, err := s.repos.Project.GetByID(id)
		if err != nil {
			return trustscore.Entity{}, err
		}
		return trustscore.ProjectEntity(project), nil
	default:
		business, err := s.repos.Business.GetByID(id)
		if err != nil {
			return trustscore.Entity{}, err
		}
		return trustscore.BusinessEntity(business), nil
	}
}

// buildContext assembles the rule evaluation snapshot from related
// records. It is rebuilt on every recomputation, never cached.
func (s *trustServiceImpl) buildContext(entity trustscore.Entity) (*trustscore.Context, error) {
	ctx := &trustscore.Context{}

	identity, err := s.repos.Identity.GetByUserID(entity.OwnerID())
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load identity verification: %w", err)
	}
	ctx.Identity = identity

	summary, err := s.repos.Document.Summarize(entity.Kind, entity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to summarize documents: %w", err)
	}
	ctx.DocumentCount = summary.Count
	ctx.HasAuditDocument = summary.HasAudit
	ctx.HasVerifiedAuditDocument = summary.HasVerifiedAudit
	ctx.HasFinancialDocument = summary.HasFinancial

	if entity.Kind == trustscore.KindBusiness {
		ctx.FounderCount = entity.Business.FounderCount
		ctx.FounderKYCVerifiedCount = summary.FounderKYCVerifiedCount
	}

	return ctx, nil
}

// updateEntityScore persists the recomputed score fields
func (s *trustServiceImpl) updateEntityScore(kind trustscore.EntityKind, id uuid.UUID, score int, at time.Time) error {
	if kind == trustscore.KindProject {
		return s.repos.Project.UpdateScore(id, score, at)
	}
	return s.repos.Business.UpdateScore(id, score, at)
}

// RecordEvent appends one ledger event and recomputes the score as a
// single operation under the entity's lock
func (s *trustServiceImpl) RecordEvent(input EventInput) (*trustscore.ScoreResult, error) {
	if !input.EntityType.Valid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown entity type %q", input.EntityType), nil)
	}
	if input.EntityID == uuid.Nil {
		return nil, apperrors.InvalidInput("entity id is required", nil)
	}

	lock := s.locks.acquire(input.EntityType, input.EntityID)
	defer lock.Unlock()

	event := &trustscore.ScoreEvent{
		EntityKind:  input.EntityType,
		EntityID:    input.EntityID,
		Type:        input.Type,
		Points:      input.Points,
		Reason:      input.Reason,
		TriggeredBy: input.TriggeredBy,
		Metadata:    input.Metadata,
	}
	if err := s.repos.Ledger.Append(event); err != nil {
		return nil, fmt.Errorf("failed to record score event: %w", err)
	}

	s.audit("event_recorded", input.TriggeredBy, input.EntityID.String(),
		fmt.Sprintf("%s %+d: %s", input.Type, input.Points, input.Reason))

	return s.recomputeLocked(input.EntityType, input.EntityID)
}

// VerifyIdentity marks a user's identity as verified and fans the
// bonus out to every entity they own
func (s *trustServiceImpl) VerifyIdentity(userID uuid.UUID, accredited bool) error {
	if _, err := s.repos.User.GetByID(userID); err != nil {
		return err
	}

	now := time.Now()
	record := &models.IdentityVerification{
		UserID:      userID,
		Status:      models.VerificationVerified,
		Accredited:  accredited,
		KYCVerified: true,
		VerifiedAt:  &now,
	}
	if err := s.repos.Identity.Upsert(record); err != nil {
		return fmt.Errorf("failed to store identity verification: %w", err)
	}

	return s.OnIdentityVerified(userID)
}

// OnIdentityVerified records an identity bonus for every project and
// business owned by the user, recomputing each. A single verification
// can therefore trigger many recomputations.
func (s *trustServiceImpl) OnIdentityVerified(userID uuid.UUID) error {
	projects, err := s.repos.Project.ListByOwner(userID)
	if err != nil {
		return fmt.Errorf("failed to list projects for identity fan-out: %w", err)
	}
	businesses, err := s.repos.Business.ListByOwner(userID)
	if err != nil {
		return fmt.Errorf("failed to list businesses for identity fan-out: %w", err)
	}

	var firstErr error
	record := func(kind trustscore.EntityKind, entityID uuid.UUID) {
		_, err := s.RecordEvent(EventInput{
			EntityID:    entityID,
			EntityType:  kind,
			Type:        trustscore.EventIdentityVerified,
			Points:      trustscore.IdentityVerifiedEventPoints,
			Reason:      "Owner identity verified",
			TriggeredBy: trustscore.ActorSystem,
		})
		if err != nil {
			s.logger.Error("identity fan-out recompute failed", err,
				"entity_type", string(kind), "entity_id", entityID.String())
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	for _, p := range projects {
		record(trustscore.KindProject, p.ID)
	}
	for _, b := range businesses {
		record(trustscore.KindBusiness, b.ID)
	}
	return firstErr
}

// OnLiquidityLocked records the lock bonus for a project. Durations
// below the first threshold are no-ops.
func (s *trustServiceImpl) OnLiquidityLocked(projectID uuid.UUID, months int) error {
	points := trustscore.LiquidityLockEventPoints(months)
	if points == 0 {
		return nil
	}
	_, err := s.RecordEvent(EventInput{
		EntityID:    projectID,
		EntityType:  trustscore.KindProject,
		Type:        trustscore.EventLiquidityLocked,
		Points:      points,
		Reason:      fmt.Sprintf("Liquidity locked for %d months", months),
		TriggeredBy: trustscore.ActorSystem,
		Metadata:    map[string]interface{}{"months": months},
	})
	return err
}

// OnVestingConfigured records the vesting bonus for a project
func (s *trustServiceImpl) OnVestingConfigured(projectID uuid.UUID, months int) error {
	points := trustscore.VestingEventPoints(months)
	if points == 0 {
		return nil
	}
	_, err := s.RecordEvent(EventInput{
		EntityID:    projectID,
		EntityType:  trustscore.KindProject,
		Type:        trustscore.EventVestingConfigured,
		Points:      points,
		Reason:      fmt.Sprintf("Team vesting configured for %d months", months),
		TriggeredBy: trustscore.ActorSystem,
		Metadata:    map[string]interface{}{"months": months},
	})
	return err
}

// OnKYBVerified records the KYB bonus for a business
func (s *trustServiceImpl) OnKYBVerified(businessID uuid.UUID, level models.KYBLevel) error {
	points := trustscore.KYBEventPoints(level)
	if points == 0 {
		return nil
	}
	_, err := s.RecordEvent(EventInput{
		EntityID:    businessID,
		EntityType:  trustscore.KindBusiness,
		Type:        trustscore.EventKYBVerified,
		Points:      points,
		Reason:      fmt.Sprintf("KYB verification completed at %s level", level),
		TriggeredBy: trustscore.ActorSystem,
		Metadata:    map[string]interface{}{"level": string(level)},
	})
	return err
}

// OnDocumentsUploaded records the document bonus for an entity
func (s *trustServiceImpl) OnDocumentsUploaded(kind trustscore.EntityKind, entityID uuid.UUID, docType models.DocumentType) error {
	points := trustscore.DocumentEventPoints(docType)
	if points == 0 {
		return nil
	}
	_, err := s.RecordEvent(EventInput{
		EntityID:    entityID,
		EntityType:  kind,
		Type:        trustscore.EventDocumentsUploaded,
		Points:      points,
		Reason:      fmt.Sprintf("Uploaded %s document", docType),
		TriggeredBy: trustscore.ActorSystem,
		Metadata:    map[string]interface{}{"document_type": string(docType)},
	})
	return err
}

// AdminAdjust records a manual adjustment with arbitrary signed points.
// The returned result reflects the adjustment, but a positive
// adjustment evaporates on the next recomputation since only negative
// ledger events persist.
func (s *trustServiceImpl) AdminAdjust(adj ScoreAdjustment, adminID string) (*trustscore.ScoreResult, error) {
	if adj.EntityID == uuid.Nil {
		return nil, apperrors.InvalidInput("entity id is required", nil)
	}
	if !adj.EntityType.Valid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown entity type %q", adj.EntityType), nil)
	}
	if adj.Points == 0 {
		return nil, apperrors.InvalidInput("points must be non-zero", nil)
	}
	if adj.Reason == "" {
		return nil, apperrors.InvalidInput("reason is required", nil)
	}

	return s.RecordEvent(EventInput{
		EntityID:    adj.EntityID,
		EntityType:  adj.EntityType,
		Type:        trustscore.EventManualAdjustment,
		Points:      adj.Points,
		Reason:      adj.Reason,
		TriggeredBy: adminID,
	})
}

// PenalizeMissedReport applies the fixed penalty for a missed
// scheduled report
func (s *trustServiceImpl) PenalizeMissedReport(kind trustscore.EntityKind, entityID uuid.UUID) (*trustscore.ScoreResult, error) {
	return s.RecordEvent(EventInput{
		EntityID:    entityID,
		EntityType:  kind,
		Type:        trustscore.EventPenaltyApplied,
		Points:      trustscore.MissedReportPenalty,
		Reason:      "Missed scheduled report",
		TriggeredBy: trustscore.ActorSystem,
	})
}

// PenalizeCommunityReport applies the fixed penalty for an upheld
// community report
func (s *trustServiceImpl) PenalizeCommunityReport(kind trustscore.EntityKind, entityID uuid.UUID) (*trustscore.ScoreResult, error) {
	return s.RecordEvent(EventInput{
		EntityID:    entityID,
		EntityType:  kind,
		Type:        trustscore.EventPenaltyApplied,
		Points:      trustscore.CommunityReportPenalty,
		Reason:      "Community report upheld",
		TriggeredBy: trustscore.ActorGovernance,
	})
}

// TierInfo returns the reputation band for a score
func (s *trustServiceImpl) TierInfo(score int) trustscore.TierInfo {
	return trustscore.ClassifyInfo(score)
}

// TierTable returns the static band listing
func (s *trustServiceImpl) TierTable() []trustscore.TierInfo {
	return trustscore.TierTable()
}

// audit writes a fire-and-forget audit line. Failures are logged and
// swallowed; the audit sink must never abort the triggering operation.
func (s *trustServiceImpl) audit(action, actor, entityID, detail string) {
	entry := &repository.AuditEntry{
		Category: "trust_score",
		Action:   action,
		Actor:    actor,
		EntityID: entityID,
		Detail:   detail,
	}
	if err := s.repos.Audit.Append(entry); err != nil {
		s.logger.Warn("audit log write failed",
			"action", action, "entity_id", entityID, "error", err.Error())
	}
}
