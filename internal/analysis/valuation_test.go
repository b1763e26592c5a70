package analysis

import (
	"math"
	"testing"

	"github.com/chandeepa/cse-research/internal/models"
)

func TestAssessValuationAllSignals(t *testing.T) {
	rec := models.CompanyRecord{
		"symbol":            "DEEP.N0000",
		"last_traded_price": 50.0,
		"eps":               10.0,
		"eps_growth":        10.0,
		"pe_ratio":          8.0,
		"pb_ratio":          1.0,
		"dividend_yield":    6.0,
		"roe":               20.0,
		"debt_equity":       0.2,
	}

	v := AssessValuation(rec, DefaultThresholds(), models.DefaultAssumptions())

	// EPS 10, growth 10%, bond yield 4.4 -> 10 * (8.5 + 20)
	if v.IntrinsicValue != 285 {
		t.Errorf("IntrinsicValue = %v, want 285", v.IntrinsicValue)
	}
	if v.MarginOfSafety < 82 || v.MarginOfSafety > 83 {
		t.Errorf("MarginOfSafety = %v, want ~82.46", v.MarginOfSafety)
	}
	if v.Count != 6 {
		t.Errorf("Count = %d, want 6", v.Count)
	}
	if v.Status != "Strongly Undervalued" {
		t.Errorf("Status = %q, want Strongly Undervalued", v.Status)
	}
	if got := len(v.Names()); got != 6 {
		t.Errorf("len(Names()) = %d, want 6", got)
	}
}

func TestAssessValuationEmptyRecord(t *testing.T) {
	rec := models.CompanyRecord{"symbol": "TEST"}

	v := AssessValuation(rec, DefaultThresholds(), models.DefaultAssumptions())

	if v.Count != 0 {
		t.Errorf("Count = %d, want 0", v.Count)
	}
	if v.Status != "Potentially Overvalued" {
		t.Errorf("Status = %q, want Potentially Overvalued", v.Status)
	}
	if v.IntrinsicValue != 0 {
		t.Errorf("IntrinsicValue = %v, want 0", v.IntrinsicValue)
	}
	if names := v.Names(); len(names) != 0 {
		t.Errorf("Names() = %v, want none", names)
	}
}

func TestAssessValuationExcludesBadInputs(t *testing.T) {
	// Negative P/E is a loss-maker, not a bargain; NaN leverage is
	// unknown, not low.
	rec := models.CompanyRecord{
		"symbol":      "LOSS.N0000",
		"pe_ratio":    -5.0,
		"pb_ratio":    -1.0,
		"debt_equity": math.NaN(),
	}

	v := AssessValuation(rec, DefaultThresholds(), models.DefaultAssumptions())

	if v.UndervaluedPE || v.UndervaluedPB || v.LowDebt {
		t.Errorf("unexpected signals: %+v", v)
	}
	if v.Count != 0 {
		t.Errorf("Count = %d, want 0", v.Count)
	}
}

func TestAssessValuationStatusBands(t *testing.T) {
	cases := []struct {
		name string
		rec  models.CompanyRecord
		want string
	}{
		{
			name: "one signal",
			rec:  models.CompanyRecord{"symbol": "A", "roe": 20.0},
			want: "Neutral",
		},
		{
			name: "two signals",
			rec:  models.CompanyRecord{"symbol": "B", "roe": 20.0, "debt_equity": 0.1},
			want: "Fairly Valued",
		},
		{
			name: "three signals",
			rec:  models.CompanyRecord{"symbol": "C", "roe": 20.0, "debt_equity": 0.1, "dividend_yield": 5.0},
			want: "Undervalued",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := AssessValuation(tc.rec, DefaultThresholds(), models.DefaultAssumptions())
			if v.Status != tc.want {
				t.Errorf("Status = %q, want %q", v.Status, tc.want)
			}
		})
	}
}

func TestMarginOfSafetyBoundaryNotFlagged(t *testing.T) {
	// Intrinsic 100 vs price 70 is exactly 30% margin; the Graham signal
	// requires strictly more.
	rec := models.CompanyRecord{
		"symbol":            "EDGE.N0000",
		"last_traded_price": 70.0,
		"eps":               100.0 / 28.5,
		"eps_growth":        10.0,
	}

	v := AssessValuation(rec, DefaultThresholds(), models.DefaultAssumptions())

	if v.UndervaluedGraham {
		t.Errorf("Graham signal flagged at exactly 30%% margin (MoS=%v)", v.MarginOfSafety)
	}
}
