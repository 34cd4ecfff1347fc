package trustscore

import (
	"testing"
	"time"

	"github.com/chainraise/launchpad-api/internal/models"
)

func verifiedIdentity() *models.IdentityVerification {
	now := time.Now()
	return &models.IdentityVerification{
		Status:      models.VerificationVerified,
		KYCVerified: true,
		VerifiedAt:  &now,
	}
}

func ruleByName(t *testing.T, rules []Rule, name string) Rule {
	t.Helper()
	for _, r := range rules {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("rule %q not found", name)
	return Rule{}
}

func TestLiquidityLockNeverDoubleCounts(t *testing.T) {
	rule := ruleByName(t, ProjectRules(), "liquidity_lock")
	ctx := &Context{}

	tests := []struct {
		months int
		want   int
	}{
		{0, 0},
		{5, 0},
		{6, 12},
		{11, 12},
		{12, 20},
		{36, 20},
	}

	for _, tt := range tests {
		e := ProjectEntity(&models.Project{LiquidityLockMonths: tt.months})
		if got := rule.Evaluate(e, ctx); got != tt.want {
			t.Errorf("liquidity lock %d months = %d points, want %d", tt.months, got, tt.want)
		}
	}
}

func TestVestingThresholds(t *testing.T) {
	rule := ruleByName(t, ProjectRules(), "team_vesting")
	ctx := &Context{}

	tests := []struct {
		months int
		want   int
	}{
		{0, 0},
		{11, 0},
		{12, 9},
		{23, 9},
		{24, 15},
		{48, 15},
	}

	for _, tt := range tests {
		e := ProjectEntity(&models.Project{TeamVestingMonths: tt.months})
		if got := rule.Evaluate(e, ctx); got != tt.want {
			t.Errorf("vesting %d months = %d points, want %d", tt.months, got, tt.want)
		}
	}
}

func TestRulePointsAreMonotonicInDuration(t *testing.T) {
	lock := ruleByName(t, ProjectRules(), "liquidity_lock")
	ctx := &Context{}

	prev := 0
	for months := 0; months <= 36; months++ {
		e := ProjectEntity(&models.Project{LiquidityLockMonths: months})
		got := lock.Evaluate(e, ctx)
		if got < prev {
			t.Fatalf("points decreased from %d to %d at %d months", prev, got, months)
		}
		prev = got
	}
}

func TestProjectProfileProportional(t *testing.T) {
	rule := ruleByName(t, ProjectRules(), "profile_completeness")
	ctx := &Context{}

	full := ProjectEntity(&models.Project{
		Name: "Arc", TokenSymbol: "ARC", Description: "d",
		Website: "https://arc.io", WhitepaperURL: "https://arc.io/wp",
	})
	if got := rule.Evaluate(full, ctx); got != 10 {
		t.Errorf("full profile = %d, want 10", got)
	}

	// 3 of 5 fields: floor(3*10/5) = 6
	partial := ProjectEntity(&models.Project{Name: "Arc", TokenSymbol: "ARC", Description: "d"})
	if got := rule.Evaluate(partial, ctx); got != 6 {
		t.Errorf("partial profile = %d, want 6", got)
	}

	empty := ProjectEntity(&models.Project{})
	if got := rule.Evaluate(empty, ctx); got != 0 {
		t.Errorf("empty profile = %d, want 0", got)
	}
}

func TestWhitepaperSocialsCap(t *testing.T) {
	rule := ruleByName(t, ProjectRules(), "whitepaper_socials")
	ctx := &Context{}

	tests := []struct {
		name    string
		project *models.Project
		want    int
	}{
		{"neither", &models.Project{}, 0},
		{"whitepaper only", &models.Project{WhitepaperURL: "https://x/wp"}, 2},
		{"social only", &models.Project{TwitterURL: "https://x/t"}, 3},
		{"both", &models.Project{WhitepaperURL: "https://x/wp", DiscordURL: "https://x/d"}, 5},
		{"all socials still capped", &models.Project{
			WhitepaperURL: "https://x/wp",
			TwitterURL:    "https://x/t",
			TelegramURL:   "https://x/tg",
			DiscordURL:    "https://x/d",
		}, 5},
	}

	for _, tt := range tests {
		if got := rule.Evaluate(ProjectEntity(tt.project), ctx); got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestExternalAuditRequiresProviderAndReport(t *testing.T) {
	rule := ruleByName(t, ProjectRules(), "external_audit")
	ctx := &Context{}

	providerOnly := ProjectEntity(&models.Project{AuditProvider: "CertiK"})
	if got := rule.Evaluate(providerOnly, ctx); got != 0 {
		t.Errorf("provider without report = %d, want 0", got)
	}

	both := ProjectEntity(&models.Project{AuditProvider: "CertiK", AuditReportURL: "https://x/report"})
	if got := rule.Evaluate(both, ctx); got != 10 {
		t.Errorf("provider with report = %d, want 10", got)
	}
}

func TestIdentityRuleHandlesMissingRecord(t *testing.T) {
	rule := ruleByName(t, ProjectRules(), "identity_verification")
	e := ProjectEntity(&models.Project{})

	if got := rule.Evaluate(e, &Context{}); got != 0 {
		t.Errorf("nil identity = %d, want 0", got)
	}
	if got := rule.Evaluate(e, &Context{Identity: verifiedIdentity()}); got != 20 {
		t.Errorf("verified identity = %d, want 20", got)
	}

	pending := &models.IdentityVerification{Status: models.VerificationPending}
	if got := rule.Evaluate(e, &Context{Identity: pending}); got != 0 {
		t.Errorf("pending identity = %d, want 0", got)
	}
}

func TestKYBLevelsAreCumulative(t *testing.T) {
	rule := ruleByName(t, BusinessRules(), "kyb_verification")
	ctx := &Context{}

	tests := []struct {
		level models.KYBLevel
		want  int
	}{
		{models.KYBNone, 0},
		{models.KYBBasic, 10},
		{models.KYBStandard, 18},
		{models.KYBEnhanced, 25},
	}

	for _, tt := range tests {
		e := BusinessEntity(&models.Business{KYBLevel: tt.level})
		if got := rule.Evaluate(e, ctx); got != tt.want {
			t.Errorf("KYB %s = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestFounderKYCProportional(t *testing.T) {
	rule := ruleByName(t, BusinessRules(), "founder_kyc")
	e := BusinessEntity(&models.Business{FounderCount: 4})

	tests := []struct {
		verified int
		total    int
		want     int
	}{
		{0, 4, 0},
		{1, 4, 2},
		{2, 4, 5},
		{4, 4, 10},
		{0, 0, 0},  // no founders recorded
		{5, 4, 10}, // over-counting is clamped to total
	}

	for _, tt := range tests {
		ctx := &Context{FounderCount: tt.total, FounderKYCVerifiedCount: tt.verified}
		if got := rule.Evaluate(e, ctx); got != tt.want {
			t.Errorf("founder KYC %d/%d = %d, want %d", tt.verified, tt.total, got, tt.want)
		}
	}
}

func TestBusinessRegistrationEitherField(t *testing.T) {
	rule := ruleByName(t, BusinessRules(), "business_registration")
	ctx := &Context{}

	if got := rule.Evaluate(BusinessEntity(&models.Business{}), ctx); got != 0 {
		t.Errorf("no registration = %d, want 0", got)
	}
	if got := rule.Evaluate(BusinessEntity(&models.Business{RegistrationNumber: "C-123"}), ctx); got != 10 {
		t.Errorf("registration number = %d, want 10", got)
	}
	if got := rule.Evaluate(BusinessEntity(&models.Business{EIN: "12-3456789"}), ctx); got != 10 {
		t.Errorf("EIN = %d, want 10", got)
	}
}

func TestRulesStayWithinMaxPoints(t *testing.T) {
	// A maxed-out entity must not push any rule past its declared bound
	maxProject := ProjectEntity(&models.Project{
		Name: "Arc", TokenSymbol: "ARC", Description: "d",
		Website: "https://arc.io", WhitepaperURL: "https://arc.io/wp",
		TwitterURL: "t", TelegramURL: "tg", DiscordURL: "dc",
		LiquidityLockMonths: 60, TeamVestingMonths: 60,
		AuditProvider: "CertiK", AuditReportURL: "r",
		ContractVerified: true,
	})
	maxBusiness := BusinessEntity(&models.Business{
		LegalName: "Arc LLC", Description: "d", Website: "w", Industry: "fintech",
		KYBLevel: models.KYBEnhanced, RegistrationNumber: "C-1", EIN: "12-3456789",
		FounderCount: 3, AccountingReviewed: true,
	})
	ctx := &Context{
		Identity:                verifiedIdentity(),
		HasFinancialDocument:    true,
		FounderCount:            3,
		FounderKYCVerifiedCount: 3,
	}

	for _, tc := range []struct {
		rules  []Rule
		entity Entity
	}{
		{ProjectRules(), maxProject},
		{BusinessRules(), maxBusiness},
	} {
		for _, rule := range tc.rules {
			got := rule.Evaluate(tc.entity, ctx)
			if got < 0 || got > rule.MaxPoints {
				t.Errorf("rule %s returned %d, outside [0, %d]", rule.Name, got, rule.MaxPoints)
			}
		}
	}
}
