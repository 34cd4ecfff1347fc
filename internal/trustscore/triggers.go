package trustscore

import "github.com/chainraise/launchpad-api/internal/models"

// Point values recorded on ledger events by the named system triggers.
// A trigger whose computed value is zero appends nothing and does not
// recompute.
const (
	IdentityVerifiedEventPoints = identityVerifiedPoints

	MissedReportPenalty    = -15
	CommunityReportPenalty = -10
)

// Actor identities stamped on system-originated ledger events
const (
	ActorSystem     = "system"
	ActorGovernance = "governance"
)

// LiquidityLockEventPoints returns the ledger points for a liquidity
// lock of the given duration
func LiquidityLockEventPoints(months int) int {
	switch {
	case months >= 12:
		return liquidityLockMaxPoints
	case months >= 6:
		return liquidityLock6moPoints
	default:
		return 0
	}
}

// VestingEventPoints returns the ledger points for a vesting schedule
// of the given duration
func VestingEventPoints(months int) int {
	switch {
	case months >= 24:
		return vestingMaxPoints
	case months >= 12:
		return vesting12moPoints
	default:
		return 0
	}
}

// KYBEventPoints returns the ledger points for reaching a KYB level
func KYBEventPoints(level models.KYBLevel) int {
	return kybLevelPoints(string(level))
}

// DocumentEventPoints returns the ledger points for an uploaded
// document of the given type
func DocumentEventPoints(docType models.DocumentType) int {
	switch docType {
	case models.DocumentAudit:
		return externalAuditPoints
	case models.DocumentFinancial:
		return financialDocsPoints
	case models.DocumentLegal, models.DocumentRegistration, models.DocumentFounderKYC:
		return 5
	case models.DocumentWhitepaper:
		return whitepaperPoints
	default:
		return 0
	}
}
