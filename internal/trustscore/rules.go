package trustscore

// Rule is a named, bounded scoring check. Evaluate must be pure and
// return a value in [0, MaxPoints]; only the final total is clamped,
// so a misbehaving rule is a bug in the rule, not something the engine
// corrects at runtime.
type Rule struct {
	Name        string
	MaxPoints   int
	Description string
	Evaluate    func(e Entity, ctx *Context) int
}

// Liquidity-lock bonuses: the 6-month bonus plus the 12-month increment
// sum to the full 12-month bonus, so longer locks never double-count.
const (
	liquidityLock6moPoints  = 12
	liquidityLock12moPoints = 8
	liquidityLockMaxPoints  = liquidityLock6moPoints + liquidityLock12moPoints

	vesting12moPoints = 9
	vesting24moPoints = 6
	vestingMaxPoints  = vesting12moPoints + vesting24moPoints
)

const (
	identityVerifiedPoints = 20
	externalAuditPoints    = 10
	contractVerifiedPoints = 5

	profileMaxPoints          = 10
	whitepaperPoints          = 2
	socialLinkPoints          = 3
	whitepaperSocialMaxPoints = 5

	kybBasicPoints    = 10
	kybStandardPoints = 8
	kybEnhancedPoints = 7
	kybMaxPoints      = kybBasicPoints + kybStandardPoints + kybEnhancedPoints

	financialDocsPoints      = 10
	registrationPoints       = 10
	founderKYCMaxPoints      = 10
	accountingReviewedPoints = 5
)

// identityVerifiedRule is shared by both entity kinds: the owning
// user's identity record must be verified.
func identityVerifiedRule() Rule {
	return Rule{
		Name:        "identity_verification",
		MaxPoints:   identityVerifiedPoints,
		Description: "Owner completed identity verification",
		Evaluate: func(e Entity, ctx *Context) int {
			if ctx.Identity.IsVerified() {
				return identityVerifiedPoints
			}
			return 0
		},
	}
}

// proportional awards floor(completed/total * max) for profile-style rules
func proportional(completed, total, max int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed > total {
		completed = total
	}
	return completed * max / total
}

// ProjectRules returns the scoring table for token launches. The slice
// order is fixed: it drives factor display order, never the total.
func ProjectRules() []Rule {
	return []Rule{
		identityVerifiedRule(),
		{
			Name:        "liquidity_lock",
			MaxPoints:   liquidityLockMaxPoints,
			Description: "Liquidity locked for 6+ months, full credit at 12+",
			Evaluate: func(e Entity, ctx *Context) int {
				points := 0
				if e.Project.LiquidityLockMonths >= 6 {
					points += liquidityLock6moPoints
				}
				if e.Project.LiquidityLockMonths >= 12 {
					points += liquidityLock12moPoints
				}
				return points
			},
		},
		{
			Name:        "team_vesting",
			MaxPoints:   vestingMaxPoints,
			Description: "Team tokens vest over 12+ months, full credit at 24+",
			Evaluate: func(e Entity, ctx *Context) int {
				points := 0
				if e.Project.TeamVestingMonths >= 12 {
					points += vesting12moPoints
				}
				if e.Project.TeamVestingMonths >= 24 {
					points += vesting24moPoints
				}
				return points
			},
		},
		{
			Name:        "profile_completeness",
			MaxPoints:   profileMaxPoints,
			Description: "Required profile fields filled in",
			Evaluate: func(e Entity, ctx *Context) int {
				p := e.Project
				fields := []string{p.Name, p.TokenSymbol, p.Description, p.Website, p.WhitepaperURL}
				completed := 0
				for _, f := range fields {
					if f != "" {
						completed++
					}
				}
				return proportional(completed, len(fields), profileMaxPoints)
			},
		},
		{
			Name:        "external_audit",
			MaxPoints:   externalAuditPoints,
			Description: "Contract audited by a named provider with a published report",
			Evaluate: func(e Entity, ctx *Context) int {
				if e.Project.HasAudit() {
					return externalAuditPoints
				}
				return 0
			},
		},
		{
			Name:        "whitepaper_socials",
			MaxPoints:   whitepaperSocialMaxPoints,
			Description: "Whitepaper published and community channels linked",
			Evaluate: func(e Entity, ctx *Context) int {
				points := 0
				if e.Project.WhitepaperURL != "" {
					points += whitepaperPoints
				}
				if e.Project.HasSocialLink() {
					points += socialLinkPoints
				}
				if points > whitepaperSocialMaxPoints {
					points = whitepaperSocialMaxPoints
				}
				return points
			},
		},
		{
			Name:        "contract_verified",
			MaxPoints:   contractVerifiedPoints,
			Description: "Token contract source verified on-chain",
			Evaluate: func(e Entity, ctx *Context) int {
				if e.Project.ContractVerified {
					return contractVerifiedPoints
				}
				return 0
			},
		},
	}
}

// kybLevelPoints awards cumulative credit per completed KYB stage
func kybLevelPoints(level string) int {
	points := 0
	switch level {
	case "enhanced":
		points += kybEnhancedPoints
		fallthrough
	case "standard":
		points += kybStandardPoints
		fallthrough
	case "basic":
		points += kybBasicPoints
	}
	return points
}

// BusinessRules returns the scoring table for tokenized business raises
func BusinessRules() []Rule {
	return []Rule{
		identityVerifiedRule(),
		{
			Name:        "kyb_verification",
			MaxPoints:   kybMaxPoints,
			Description: "Business KYB verification depth (basic, standard, enhanced)",
			Evaluate: func(e Entity, ctx *Context) int {
				return kybLevelPoints(string(e.Business.KYBLevel))
			},
		},
		{
			Name:        "financial_documents",
			MaxPoints:   financialDocsPoints,
			Description: "Financial statements on file",
			Evaluate: func(e Entity, ctx *Context) int {
				if ctx.HasFinancialDocument {
					return financialDocsPoints
				}
				return 0
			},
		},
		{
			Name:        "business_registration",
			MaxPoints:   registrationPoints,
			Description: "Registration number or EIN on file",
			Evaluate: func(e Entity, ctx *Context) int {
				if e.Business.HasRegistration() {
					return registrationPoints
				}
				return 0
			},
		},
		{
			Name:        "profile_completeness",
			MaxPoints:   profileMaxPoints,
			Description: "Required profile fields filled in",
			Evaluate: func(e Entity, ctx *Context) int {
				b := e.Business
				fields := []string{b.LegalName, b.Description, b.Website, b.Industry}
				completed := 0
				for _, f := range fields {
					if f != "" {
						completed++
					}
				}
				return proportional(completed, len(fields), profileMaxPoints)
			},
		},
		{
			Name:        "founder_kyc",
			MaxPoints:   founderKYCMaxPoints,
			Description: "Share of founders with completed KYC",
			Evaluate: func(e Entity, ctx *Context) int {
				return proportional(ctx.FounderKYCVerifiedCount, ctx.FounderCount, founderKYCMaxPoints)
			},
		},
		{
			Name:        "accounting_reviewed",
			MaxPoints:   accountingReviewedPoints,
			Description: "Accounting externally reviewed",
			Evaluate: func(e Entity, ctx *Context) int {
				if e.Business.AccountingReviewed {
					return accountingReviewedPoints
				}
				return 0
			},
		},
	}
}
