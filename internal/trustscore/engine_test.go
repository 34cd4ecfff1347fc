package trustscore

import (
	"testing"

	"github.com/chainraise/launchpad-api/internal/models"
)

func TestEvaluateFreshProject(t *testing.T) {
	engine := NewEngine()
	e := ProjectEntity(&models.Project{})

	factors, total := engine.Evaluate(e, &Context{})
	if total != 0 {
		t.Errorf("fresh project rule points = %d, want 0", total)
	}
	if len(factors) != len(ProjectRules()) {
		t.Errorf("expected %d factors, got %d", len(ProjectRules()), len(factors))
	}
	for _, f := range factors {
		if f.Achieved {
			t.Errorf("factor %s achieved on a fresh project", f.Name)
		}
		if f.Points != 0 {
			t.Errorf("factor %s = %d points on a fresh project", f.Name, f.Points)
		}
	}
}

func TestEvaluateFullProject(t *testing.T) {
	engine := NewEngine()
	e := ProjectEntity(&models.Project{
		Name: "Arc", TokenSymbol: "ARC", Description: "L2 rollup",
		Website: "https://arc.io", WhitepaperURL: "https://arc.io/wp",
		TwitterURL:          "https://x.com/arc",
		LiquidityLockMonths: 12,
		TeamVestingMonths:   24,
		AuditProvider:       "CertiK", AuditReportURL: "https://certik.com/arc",
		ContractVerified: true,
	})
	ctx := &Context{Identity: verifiedIdentity()}

	_, total := engine.Evaluate(e, ctx)

	// 20 identity + 20 lock + 15 vesting + 10 profile + 10 audit + 5 wp/socials + 5 contract
	if total != 85 {
		t.Errorf("full project rule points = %d, want 85", total)
	}
}

func TestEvaluateFullBusiness(t *testing.T) {
	engine := NewEngine()
	e := BusinessEntity(&models.Business{
		LegalName: "Arc LLC", Description: "d", Website: "w", Industry: "fintech",
		KYBLevel:           models.KYBEnhanced,
		RegistrationNumber: "C-123",
		FounderCount:       2,
		AccountingReviewed: true,
	})
	ctx := &Context{
		Identity:                verifiedIdentity(),
		HasFinancialDocument:    true,
		FounderCount:            2,
		FounderKYCVerifiedCount: 2,
	}

	_, total := engine.Evaluate(e, ctx)

	// 20 identity + 25 KYB + 10 financial + 10 registration + 10 profile + 10 founder KYC + 5 accounting
	if total != 90 {
		t.Errorf("full business rule points = %d, want 90", total)
	}
}

func TestEvaluateFactorOrderIsStable(t *testing.T) {
	engine := NewEngine()
	e := ProjectEntity(&models.Project{})

	first, _ := engine.Evaluate(e, &Context{})
	second, _ := engine.Evaluate(e, &Context{})

	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("factor order changed between evaluations at index %d", i)
		}
	}
}

func TestRulesForUnknownKind(t *testing.T) {
	engine := NewEngine()
	if rules := engine.Rules(EntityKind("token")); rules != nil {
		t.Errorf("expected nil rules for unknown kind, got %d", len(rules))
	}
}
