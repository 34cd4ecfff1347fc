package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/chainraise/launchpad-api/internal/errors"
	"github.com/chainraise/launchpad-api/internal/models"
	"github.com/chainraise/launchpad-api/internal/repository"
	"github.com/chainraise/launchpad-api/internal/trustscore"
)

// nopLogger silences service logging in tests
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})         {}
func (nopLogger) Error(string, error, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})         {}
func (nopLogger) Debug(string, ...interface{})        {}
func (nopLogger) Fatal(string, error, ...interface{}) {}

// mockUserRepo is an in-memory UserRepository
type mockUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (m *mockUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found", nil)
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("user not found", nil)
}

func (m *mockUserRepo) Create(u *models.User) error { m.users[u.ID] = u; return nil }
func (m *mockUserRepo) Update(u *models.User) error { m.users[u.ID] = u; return nil }

// mockProjectRepo is an in-memory ProjectRepository
type mockProjectRepo struct {
	projects     map[uuid.UUID]*models.Project
	scoreUpdates int
}

func (m *mockProjectRepo) GetByID(id uuid.UUID) (*models.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, apperrors.NotFound(fmt.Sprintf("project %s not found", id), nil)
	}
	copied := *p
	return &copied, nil
}

func (m *mockProjectRepo) ListByOwner(ownerID uuid.UUID) ([]models.Project, error) {
	var out []models.Project
	for _, p := range m.projects {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProjectRepo) Create(p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.projects[p.ID] = p
	return nil
}

func (m *mockProjectRepo) Update(p *models.Project) error {
	m.projects[p.ID] = p
	return nil
}

func (m *mockProjectRepo) Delete(id uuid.UUID) error {
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepo) UpdateScore(id uuid.UUID, score int, updatedAt time.Time) error {
	p, ok := m.projects[id]
	if !ok {
		return apperrors.NotFound("project not found", nil)
	}
	p.CurrentScore = score
	p.ScoreUpdatedAt = &updatedAt
	m.scoreUpdates++
	return nil
}

func (m *mockProjectRepo) ListStaleScores(before time.Time, limit int) ([]uuid.UUID, error) {
	return nil, nil
}

// mockBusinessRepo is an in-memory BusinessRepository
type mockBusinessRepo struct {
	businesses map[uuid.UUID]*models.Business
}

func (m *mockBusinessRepo) GetByID(id uuid.UUID) (*models.Business, error) {
	b, ok := m.businesses[id]
	if !ok {
		return nil, apperrors.NotFound(fmt.Sprintf("business %s not found", id), nil)
	}
	copied := *b
	return &copied, nil
}

func (m *mockBusinessRepo) ListByOwner(ownerID uuid.UUID) ([]models.Business, error) {
	var out []models.Business
	for _, b := range m.businesses {
		if b.OwnerID == ownerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBusinessRepo) Create(b *models.Business) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	m.businesses[b.ID] = b
	return nil
}

func (m *mockBusinessRepo) Update(b *models.Business) error {
	m.businesses[b.ID] = b
	return nil
}

func (m *mockBusinessRepo) Delete(id uuid.UUID) error {
	delete(m.businesses, id)
	return nil
}

func (m *mockBusinessRepo) UpdateScore(id uuid.UUID, score int, updatedAt time.Time) error {
	b, ok := m.businesses[id]
	if !ok {
		return apperrors.NotFound("business not found", nil)
	}
	b.CurrentScore = score
	b.ScoreUpdatedAt = &updatedAt
	return nil
}

func (m *mockBusinessRepo) ListStaleScores(before time.Time, limit int) ([]uuid.UUID, error) {
	return nil, nil
}

// mockIdentityRepo is an in-memory IdentityRepository
type mockIdentityRepo struct {
	records map[uuid.UUID]*models.IdentityVerification
}

func (m *mockIdentityRepo) GetByUserID(userID uuid.UUID) (*models.IdentityVerification, error) {
	r, ok := m.records[userID]
	if !ok {
		return nil, apperrors.NotFound("identity verification not found", nil)
	}
	return r, nil
}

func (m *mockIdentityRepo) Upsert(r *models.IdentityVerification) error {
	m.records[r.UserID] = r
	return nil
}

// mockDocumentRepo is an in-memory DocumentRepository
type mockDocumentRepo struct {
	docs []models.EntityDocument
}

func (m *mockDocumentRepo) Create(d *models.EntityDocument) error {
	m.docs = append(m.docs, *d)
	return nil
}

func (m *mockDocumentRepo) ListByEntity(kind trustscore.EntityKind, entityID uuid.UUID) ([]models.EntityDocument, error) {
	var out []models.EntityDocument
	for _, d := range m.docs {
		if d.EntityKind == string(kind) && d.EntityID == entityID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDocumentRepo) Summarize(kind trustscore.EntityKind, entityID uuid.UUID) (*repository.DocumentSummary, error) {
	summary := &repository.DocumentSummary{}
	for _, d := range m.docs {
		if d.EntityKind != string(kind) || d.EntityID != entityID {
			continue
		}
		summary.Count++
		switch d.Type {
		case models.DocumentAudit:
			summary.HasAudit = true
			if d.Verified {
				summary.HasVerifiedAudit = true
			}
		case models.DocumentFinancial:
			summary.HasFinancial = true
		case models.DocumentFounderKYC:
			if d.Verified {
				summary.FounderKYCVerifiedCount++
			}
		}
	}
	return summary, nil
}

// mockLedgerRepo is an in-memory append-only ledger
type mockLedgerRepo struct {
	events []trustscore.ScoreEvent
	nextID int64
}

func (m *mockLedgerRepo) Append(ev *trustscore.ScoreEvent) error {
	m.nextID++
	ev.ID = m.nextID
	ev.CreatedAt = time.Now()
	m.events = append(m.events, *ev)
	return nil
}

func (m *mockLedgerRepo) ListByEntity(kind trustscore.EntityKind, entityID uuid.UUID) ([]trustscore.ScoreEvent, error) {
	var out []trustscore.ScoreEvent
	for _, ev := range m.events {
		if ev.EntityKind == kind && ev.EntityID == entityID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockLedgerRepo) ListNegativeByEntity(kind trustscore.EntityKind, entityID uuid.UUID) ([]trustscore.ScoreEvent, error) {
	var out []trustscore.ScoreEvent
	for _, ev := range m.events {
		if ev.EntityKind == kind && ev.EntityID == entityID && ev.Points < 0 {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockLedgerRepo) ListRecentByEntity(kind trustscore.EntityKind, entityID uuid.UUID, limit int) ([]trustscore.ScoreEvent, error) {
	all, _ := m.ListByEntity(kind, entityID)
	var out []trustscore.ScoreEvent
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

// mockAuditRepo counts audit writes and can be made to fail
type mockAuditRepo struct {
	entries []repository.AuditEntry
	fail    bool
}

func (m *mockAuditRepo) Append(e *repository.AuditEntry) error {
	if m.fail {
		return apperrors.StorageFailure("audit sink unavailable", nil)
	}
	m.entries = append(m.entries, *e)
	return nil
}

type trustFixture struct {
	users      *mockUserRepo
	projects   *mockProjectRepo
	businesses *mockBusinessRepo
	identities *mockIdentityRepo
	documents  *mockDocumentRepo
	ledger     *mockLedgerRepo
	audits     *mockAuditRepo
	trust      TrustService
}

func newTrustFixture() *trustFixture {
	f := &trustFixture{
		users:      &mockUserRepo{users: make(map[uuid.UUID]*models.User)},
		projects:   &mockProjectRepo{projects: make(map[uuid.UUID]*models.Project)},
		businesses: &mockBusinessRepo{businesses: make(map[uuid.UUID]*models.Business)},
		identities: &mockIdentityRepo{records: make(map[uuid.UUID]*models.IdentityVerification)},
		documents:  &mockDocumentRepo{},
		ledger:     &mockLedgerRepo{},
		audits:     &mockAuditRepo{},
	}
	repos := &repository.Repositories{
		User:     f.users,
		Project:  f.projects,
		Business: f.businesses,
		Identity: f.identities,
		Document: f.documents,
		Ledger:   f.ledger,
		Audit:    f.audits,
	}
	f.trust = newTrustService(repos, nopLogger{})
	return f
}

func (f *trustFixture) addProject(p *models.Project) *models.Project {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.OwnerID == uuid.Nil {
		p.OwnerID = uuid.New()
	}
	f.projects.projects[p.ID] = p
	return p
}

func (f *trustFixture) addBusiness(b *models.Business) *models.Business {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.OwnerID == uuid.Nil {
		b.OwnerID = uuid.New()
	}
	f.businesses.businesses[b.ID] = b
	return b
}

func (f *trustFixture) verifyOwner(userID uuid.UUID) {
	now := time.Now()
	f.identities.records[userID] = &models.IdentityVerification{
		UserID:      userID,
		Status:      models.VerificationVerified,
		KYCVerified: true,
		VerifiedAt:  &now,
	}
}

func TestRecomputeFreshProjectIsNeutralBase(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{})

	result, err := f.trust.Recompute(trustscore.KindProject, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CurrentScore != trustscore.BaseScore {
		t.Errorf("fresh project score = %d, want %d", result.CurrentScore, trustscore.BaseScore)
	}
	if result.Tier != trustscore.TierNeutral {
		t.Errorf("fresh project tier = %s, want NEUTRAL", result.Tier)
	}
	for _, factor := range result.Factors {
		if factor.Achieved {
			t.Errorf("factor %s achieved on a fresh project", factor.Name)
		}
	}
	if f.projects.projects[p.ID].CurrentScore != trustscore.BaseScore {
		t.Error("recomputed score was not persisted")
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{LiquidityLockMonths: 12})
	f.verifyOwner(p.OwnerID)

	first, err := f.trust.Recompute(trustscore.KindProject, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ledgerLen := len(f.ledger.events)

	second, err := f.trust.Recompute(trustscore.KindProject, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.CurrentScore != second.CurrentScore {
		t.Errorf("score changed between recomputations: %d then %d", first.CurrentScore, second.CurrentScore)
	}
	if len(f.ledger.events) != ledgerLen {
		t.Error("recompute appended ledger events")
	}
}

func TestNegativeEventsPersistAcrossRecompute(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{})

	result, err := f.trust.PenalizeMissedReport(trustscore.KindProject, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentScore != 35 {
		t.Errorf("score after penalty = %d, want 35", result.CurrentScore)
	}

	// Penalty must survive an unrelated recompute
	again, err := f.trust.Recompute(trustscore.KindProject, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.CurrentScore != 35 {
		t.Errorf("score after recompute = %d, want 35", again.CurrentScore)
	}
	if again.Tier != trustscore.TierCaution {
		t.Errorf("tier = %s, want CAUTION", again.Tier)
	}
}

func TestPositiveAdjustmentsDoNotRaiseScore(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{})

	result, err := f.trust.AdminAdjust(ScoreAdjustment{
		EntityID:   p.ID,
		EntityType: trustscore.KindProject,
		Points:     20,
		Reason:     "goodwill bonus",
	}, uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Positive ledger events are audit records only: the total is
	// rebuilt from attributes plus negative events, so the bonus never
	// shows up in the score.
	if result.CurrentScore != trustscore.BaseScore {
		t.Errorf("score after positive adjustment = %d, want %d", result.CurrentScore, trustscore.BaseScore)
	}

	events, _ := f.ledger.ListByEntity(trustscore.KindProject, p.ID)
	if len(events) != 1 || events[0].Points != 20 {
		t.Error("positive adjustment missing from the ledger")
	}
}

func TestNegativeAdjustmentLowersScore(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{})

	result, err := f.trust.AdminAdjust(ScoreAdjustment{
		EntityID:   p.ID,
		EntityType: trustscore.KindProject,
		Points:     -25,
		Reason:     "misleading marketing",
	}, uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentScore != 25 {
		t.Errorf("score after -25 adjustment = %d, want 25", result.CurrentScore)
	}
	if result.Tier != trustscore.TierHighRisk {
		t.Errorf("tier = %s, want HIGH_RISK", result.Tier)
	}
}

func TestStrongProjectClampsAtMax(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{
		LiquidityLockMonths: 12,
		TeamVestingMonths:   24,
		AuditProvider:       "CertiK",
		AuditReportURL:      "https://certik.com/report",
	})
	f.verifyOwner(p.OwnerID)

	// 50 base + 20 identity + 20 lock + 15 vesting + 10 audit = 115
	result, err := f.trust.Recompute(trustscore.KindProject, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentScore != trustscore.MaxScore {
		t.Errorf("score = %d, want clamped %d", result.CurrentScore, trustscore.MaxScore)
	}
	if result.Tier != trustscore.TierExcellent {
		t.Errorf("tier = %s, want EXCELLENT", result.Tier)
	}
}

func TestTwoMissedReportsReachHighRisk(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{})

	if _, err := f.trust.PenalizeMissedReport(trustscore.KindProject, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := f.trust.PenalizeMissedReport(trustscore.KindProject, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CurrentScore != 20 {
		t.Errorf("score after two missed reports = %d, want 20", result.CurrentScore)
	}
	if result.Tier != trustscore.TierHighRisk {
		t.Errorf("tier = %s, want HIGH_RISK", result.Tier)
	}
}

func TestCommunityReportPenalty(t *testing.T) {
	f := newTrustFixture()
	b := f.addBusiness(&models.Business{})

	result, err := f.trust.PenalizeCommunityReport(trustscore.KindBusiness, b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentScore != 40 {
		t.Errorf("score after community report = %d, want 40", result.CurrentScore)
	}

	events, _ := f.ledger.ListByEntity(trustscore.KindBusiness, b.ID)
	if len(events) != 1 {
		t.Fatalf("expected 1 ledger event, got %d", len(events))
	}
	if events[0].TriggeredBy != trustscore.ActorGovernance {
		t.Errorf("penalty actor = %q, want %q", events[0].TriggeredBy, trustscore.ActorGovernance)
	}
}

func TestVerifyIdentityFansOutToAllOwnedEntities(t *testing.T) {
	f := newTrustFixture()
	owner := uuid.New()
	f.users.users[owner] = &models.User{ID: owner, Email: "founder@arc.io"}

	p1 := f.addProject(&models.Project{OwnerID: owner})
	p2 := f.addProject(&models.Project{OwnerID: owner})
	b := f.addBusiness(&models.Business{OwnerID: owner})
	other := f.addProject(&models.Project{}) // different owner, untouched

	if err := f.trust.VerifyIdentity(owner, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.identities.records[owner].IsVerified() {
		t.Error("identity record not marked verified")
	}

	for _, id := range []uuid.UUID{p1.ID, p2.ID} {
		events, _ := f.ledger.ListByEntity(trustscore.KindProject, id)
		if len(events) != 1 || events[0].Type != trustscore.EventIdentityVerified {
			t.Errorf("project %s missing identity event", id)
		}
		if f.projects.projects[id].CurrentScore != 70 {
			t.Errorf("project %s score = %d, want 70", id, f.projects.projects[id].CurrentScore)
		}
	}

	events, _ := f.ledger.ListByEntity(trustscore.KindBusiness, b.ID)
	if len(events) != 1 {
		t.Errorf("business missing identity event")
	}

	untouched, _ := f.ledger.ListByEntity(trustscore.KindProject, other.ID)
	if len(untouched) != 0 {
		t.Error("fan-out touched an entity with a different owner")
	}
}

func TestVerifyIdentityUnknownUser(t *testing.T) {
	f := newTrustFixture()

	err := f.trust.VerifyIdentity(uuid.New(), false)
	if !apperrors.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestZeroPointTriggersAreNoOps(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{})
	b := f.addBusiness(&models.Business{})

	if err := f.trust.OnLiquidityLocked(p.ID, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.trust.OnVestingConfigured(p.ID, 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.trust.OnKYBVerified(b.ID, models.KYBNone); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.ledger.events) != 0 {
		t.Errorf("zero-point triggers appended %d ledger events", len(f.ledger.events))
	}
	if f.projects.scoreUpdates != 0 {
		t.Error("zero-point trigger caused a recompute")
	}
}

func TestLiquidityLockTriggerRecordsAndRecomputes(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{LiquidityLockMonths: 12})

	if err := f.trust.OnLiquidityLocked(p.ID, 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, _ := f.ledger.ListByEntity(trustscore.KindProject, p.ID)
	if len(events) != 1 {
		t.Fatalf("expected 1 ledger event, got %d", len(events))
	}
	if events[0].Points != 20 || events[0].Type != trustscore.EventLiquidityLocked {
		t.Errorf("unexpected event %+v", events[0])
	}

	// base 50 + lock rule 20
	if got := f.projects.projects[p.ID].CurrentScore; got != 70 {
		t.Errorf("score = %d, want 70", got)
	}
}

func TestAdminAdjustValidation(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{})

	tests := []struct {
		name string
		adj  ScoreAdjustment
	}{
		{"missing entity id", ScoreAdjustment{EntityType: trustscore.KindProject, Points: 5, Reason: "r"}},
		{"bad entity type", ScoreAdjustment{EntityID: p.ID, EntityType: "token", Points: 5, Reason: "r"}},
		{"zero points", ScoreAdjustment{EntityID: p.ID, EntityType: trustscore.KindProject, Reason: "r"}},
		{"missing reason", ScoreAdjustment{EntityID: p.ID, EntityType: trustscore.KindProject, Points: 5}},
	}

	for _, tt := range tests {
		if _, err := f.trust.AdminAdjust(tt.adj, "admin"); !apperrors.IsInvalidInput(err) {
			t.Errorf("%s: expected InvalidInput, got %v", tt.name, err)
		}
	}
	if len(f.ledger.events) != 0 {
		t.Error("invalid adjustments reached the ledger")
	}
}

func TestRecomputeUnknownKind(t *testing.T) {
	f := newTrustFixture()

	if _, err := f.trust.Recompute("token", uuid.New()); !apperrors.IsInvalidInput(err) {
		t.Errorf("expected InvalidInput, got %v", err)
	}
}

func TestRecomputeMissingEntity(t *testing.T) {
	f := newTrustFixture()

	if _, err := f.trust.Recompute(trustscore.KindProject, uuid.New()); !apperrors.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestAuditFailureDoesNotAbortRecompute(t *testing.T) {
	f := newTrustFixture()
	f.audits.fail = true
	p := f.addProject(&models.Project{})

	result, err := f.trust.Recompute(trustscore.KindProject, p.ID)
	if err != nil {
		t.Fatalf("recompute failed on audit sink error: %v", err)
	}
	if result.CurrentScore != trustscore.BaseScore {
		t.Errorf("score = %d, want %d", result.CurrentScore, trustscore.BaseScore)
	}
}

func TestHistoryCarriesCurrentScore(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{})

	if _, err := f.trust.PenalizeMissedReport(trustscore.KindProject, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := f.trust.PenalizeCommunityReport(trustscore.KindProject, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(result.History))
	}
	for _, entry := range result.History {
		if entry.Score != result.CurrentScore {
			t.Errorf("history entry score = %d, want current total %d", entry.Score, result.CurrentScore)
		}
	}
}

func TestHistoryIsBounded(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{})

	var result *trustscore.ScoreResult
	var err error
	for i := 0; i < historyLimit+5; i++ {
		result, err = f.trust.RecordEvent(EventInput{
			EntityID:   p.ID,
			EntityType: trustscore.KindProject,
			Type:       trustscore.EventBonusApplied,
			Points:     1,
			Reason:     fmt.Sprintf("event %d", i),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(result.History) != historyLimit {
		t.Errorf("history length = %d, want %d", len(result.History), historyLimit)
	}
}

func TestGetScoreRecomputesEveryTime(t *testing.T) {
	f := newTrustFixture()
	p := f.addProject(&models.Project{})

	if _, err := f.trust.GetScore(trustscore.KindProject, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Changing an attribute must be reflected immediately, not cached
	f.projects.projects[p.ID].ContractVerified = true
	result, err := f.trust.GetScore(trustscore.KindProject, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentScore != trustscore.BaseScore+5 {
		t.Errorf("score = %d, want %d", result.CurrentScore, trustscore.BaseScore+5)
	}
}

func TestFinancialDocumentFeedsBusinessRules(t *testing.T) {
	f := newTrustFixture()
	b := f.addBusiness(&models.Business{})
	f.documents.docs = append(f.documents.docs, models.EntityDocument{
		EntityKind: string(trustscore.KindBusiness),
		EntityID:   b.ID,
		Type:       models.DocumentFinancial,
	})

	result, err := f.trust.Recompute(trustscore.KindBusiness, b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentScore != trustscore.BaseScore+10 {
		t.Errorf("score = %d, want %d", result.CurrentScore, trustscore.BaseScore+10)
	}
}
