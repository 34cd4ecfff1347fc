package trustscore

// Tier is one of five discrete reputation bands derived from the score
type Tier string

const (
	TierExcellent Tier = "EXCELLENT"
	TierGood      Tier = "GOOD"
	TierNeutral   Tier = "NEUTRAL"
	TierCaution   Tier = "CAUTION"
	TierHighRisk  Tier = "HIGH_RISK"
)

// TierInfo describes one reputation band
type TierInfo struct {
	Tier        Tier   `json:"tier"`
	MinScore    int    `json:"min_score"`
	MaxScore    int    `json:"max_score"`
	Description string `json:"description"`
}

// tierTable is ordered by descending threshold; Classify walks it top down
var tierTable = []TierInfo{
	{TierExcellent, 85, 100, "Outstanding standing with strong verification and transparency"},
	{TierGood, 70, 84, "Solid reputation with most trust signals in place"},
	{TierNeutral, 50, 69, "Baseline standing with a limited track record"},
	{TierCaution, 30, 49, "Below baseline, missing key verifications or carrying penalties"},
	{TierHighRisk, 0, 29, "Serious negative signals, engage with extreme caution"},
}

// Classify maps a score to its reputation tier
func Classify(score int) Tier {
	for _, info := range tierTable {
		if score >= info.MinScore {
			return info.Tier
		}
	}
	return TierHighRisk
}

// ClassifyInfo returns the full band description for a score
func ClassifyInfo(score int) TierInfo {
	for _, info := range tierTable {
		if score >= info.MinScore {
			return info
		}
	}
	return tierTable[len(tierTable)-1]
}

// TierTable returns the static band listing, highest first
func TierTable() []TierInfo {
	table := make([]TierInfo, len(tierTable))
	copy(table, tierTable)
	return table
}
