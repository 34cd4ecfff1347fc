package trustscore

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{100, TierExcellent},
		{85, TierExcellent},
		{84, TierGood},
		{70, TierGood},
		{69, TierNeutral},
		{50, TierNeutral},
		{49, TierCaution},
		{30, TierCaution},
		{29, TierHighRisk},
		{0, TierHighRisk},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestClassifyInfoBounds(t *testing.T) {
	info := ClassifyInfo(77)
	if info.Tier != TierGood {
		t.Fatalf("expected GOOD tier, got %s", info.Tier)
	}
	if 77 < info.MinScore || 77 > info.MaxScore {
		t.Errorf("score 77 outside reported band [%d, %d]", info.MinScore, info.MaxScore)
	}
}

func TestTierTableCoversFullRange(t *testing.T) {
	table := TierTable()
	if len(table) != 5 {
		t.Fatalf("expected 5 tiers, got %d", len(table))
	}

	// Bands must be contiguous from MaxScore down to MinScore
	if table[0].MaxScore != MaxScore {
		t.Errorf("top band should reach %d, got %d", MaxScore, table[0].MaxScore)
	}
	for i := 1; i < len(table); i++ {
		if table[i].MaxScore != table[i-1].MinScore-1 {
			t.Errorf("gap between %s and %s", table[i-1].Tier, table[i].Tier)
		}
	}
	if table[len(table)-1].MinScore != MinScore {
		t.Errorf("bottom band should reach %d, got %d", MinScore, table[len(table)-1].MinScore)
	}
}

func TestTierTableReturnsCopy(t *testing.T) {
	table := TierTable()
	table[0].MinScore = -1

	if TierTable()[0].MinScore == -1 {
		t.Error("TierTable exposed internal state")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		raw  int
		want int
	}{
		{-30, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{115, 100},
	}

	for _, tt := range tests {
		if got := Clamp(tt.raw); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
