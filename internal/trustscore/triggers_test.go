package trustscore

import (
	"testing"

	"github.com/chainraise/launchpad-api/internal/models"
)

func TestLiquidityLockEventPoints(t *testing.T) {
	tests := []struct {
		months int
		want   int
	}{
		{0, 0},
		{5, 0},
		{6, 12},
		{12, 20},
		{24, 20},
	}

	for _, tt := range tests {
		if got := LiquidityLockEventPoints(tt.months); got != tt.want {
			t.Errorf("LiquidityLockEventPoints(%d) = %d, want %d", tt.months, got, tt.want)
		}
	}
}

func TestVestingEventPoints(t *testing.T) {
	tests := []struct {
		months int
		want   int
	}{
		{0, 0},
		{11, 0},
		{12, 9},
		{24, 15},
	}

	for _, tt := range tests {
		if got := VestingEventPoints(tt.months); got != tt.want {
			t.Errorf("VestingEventPoints(%d) = %d, want %d", tt.months, got, tt.want)
		}
	}
}

func TestKYBEventPoints(t *testing.T) {
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
		if got := KYBEventPoints(tt.level); got != tt.want {
			t.Errorf("KYBEventPoints(%s) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestDocumentEventPoints(t *testing.T) {
	tests := []struct {
		docType models.DocumentType
		want    int
	}{
		{models.DocumentAudit, 10},
		{models.DocumentFinancial, 10},
		{models.DocumentLegal, 5},
		{models.DocumentRegistration, 5},
		{models.DocumentFounderKYC, 5},
		{models.DocumentWhitepaper, 2},
		{models.DocumentType("poster"), 0},
	}

	for _, tt := range tests {
		if got := DocumentEventPoints(tt.docType); got != tt.want {
			t.Errorf("DocumentEventPoints(%s) = %d, want %d", tt.docType, got, tt.want)
		}
	}
}
