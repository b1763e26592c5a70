package analysis

import (
	"math"
	"testing"

	"github.com/chandeepa/cse-research/internal/models"
)

func TestGradeFromComposite_Ladder(t *testing.T) {
	cases := []struct {
		composite float64
		want      models.Grade
	}{
		{95, models.GradeA}, {80, models.GradeA},
		{79, models.GradeB}, {65, models.GradeB},
		{64, models.GradeC}, {50, models.GradeC},
		{49, models.GradeD}, {35, models.GradeD},
		{34, models.GradeF}, {0, models.GradeF},
	}
	for _, tc := range cases {
		if got := GradeFromComposite(tc.composite); got != tc.want {
			t.Errorf("GradeFromComposite(%v) = %v, want %v", tc.composite, got, tc.want)
		}
	}
}

func TestGradeMonotonicity(t *testing.T) {
	// higher composite never yields a worse grade with fixed adjustments
	piotroski, altman := 5, 2.5
	prev := AdjustGrade(GradeFromComposite(0), piotroski, altman)
	for composite := 1.0; composite <= 100; composite++ {
		g := AdjustGrade(GradeFromComposite(composite), piotroski, altman)
		if g > prev {
			t.Fatalf("grade worsened from %v to %v at composite %v", prev, g, composite)
		}
		prev = g
	}
}

func TestAdjustGrade_PiotroskiUpgrade(t *testing.T) {
	if got := AdjustGrade(models.GradeB, 7, 3.0); got != models.GradeA {
		t.Errorf("strong Piotroski should lift B to A, got %v", got)
	}
	if got := AdjustGrade(models.GradeC, 8, 3.0); got != models.GradeB {
		t.Errorf("strong Piotroski should lift C to B, got %v", got)
	}
	// A and D are not upgraded
	if got := AdjustGrade(models.GradeA, 9, 3.0); got != models.GradeA {
		t.Errorf("A should stay A, got %v", got)
	}
	if got := AdjustGrade(models.GradeD, 9, 3.0); got != models.GradeD {
		t.Errorf("D is outside the upgrade band, got %v", got)
	}
}

func TestAdjustGrade_Downgrades(t *testing.T) {
	if got := AdjustGrade(models.GradeA, 2, 3.0); got != models.GradeB {
		t.Errorf("weak Piotroski should drop A to B, got %v", got)
	}
	if got := AdjustGrade(models.GradeD, 2, 3.0); got != models.GradeD {
		t.Errorf("D is outside the Piotroski downgrade band, got %v", got)
	}
	if got := AdjustGrade(models.GradeB, 5, 1.5); got != models.GradeC {
		t.Errorf("distress Altman should drop B to C, got %v", got)
	}
	if got := AdjustGrade(models.GradeF, 5, 1.0); got != models.GradeF {
		t.Errorf("F saturates, got %v", got)
	}
	// both adjustments stack
	if got := AdjustGrade(models.GradeB, 2, 1.5); got != models.GradeD {
		t.Errorf("stacked downgrades should give D, got %v", got)
	}
}

func TestRecommend_PriorityOrder(t *testing.T) {
	// distress overrides arbitrarily strong scores
	if got := Recommend(100, 9, 1.49, 100); got != models.RecAvoidDistress {
		t.Errorf("Recommend with Altman<1.5 = %q, want distress avoid", got)
	}
	if got := Recommend(100, 2, 3.0, 100); got != models.RecAvoidWeak {
		t.Errorf("Recommend with Piotroski<=2 = %q, want weak avoid", got)
	}
	if got := Recommend(80, 8, 3.0, 25); got != models.RecStrongBuy {
		t.Errorf("Recommend = %q, want Strong Buy", got)
	}
	if got := Recommend(70, 6, 3.0, 5); got != models.RecBuy {
		t.Errorf("Recommend = %q, want Buy", got)
	}
	if got := Recommend(55, 5, 3.0, -10); got != models.RecHold {
		t.Errorf("Recommend = %q, want Hold", got)
	}
	if got := Recommend(40, 4, 3.0, 0); got != models.RecWeakHold {
		t.Errorf("Recommend = %q, want Weak Hold", got)
	}
	if got := Recommend(20, 4, 3.0, 0); got != models.RecSellAvoid {
		t.Errorf("Recommend = %q, want Sell / Avoid", got)
	}
}

func TestGrahamNumber_Example(t *testing.T) {
	rec := models.CompanyRecord{"symbol": "G", "eps": 10.0, "nav": 40.0}
	got := GrahamNumber(rec)
	want := math.Round(math.Sqrt(9000)*100) / 100 // 94.87
	if got != want {
		t.Errorf("GrahamNumber = %v, want %v", got, want)
	}

	rec["last_traded_price"] = 75.0
	upside := GrahamUpside(rec, got)
	wantUpside := math.Round((want-75)/75*100*100) / 100
	if upside != wantUpside {
		t.Errorf("GrahamUpside = %v, want %v", upside, wantUpside)
	}
}

func TestGrahamNumber_UndefinedWithoutPositiveInputs(t *testing.T) {
	if got := GrahamNumber(models.CompanyRecord{"symbol": "X", "eps": -5.0, "nav": 40.0}); got != 0 {
		t.Errorf("GrahamNumber with negative EPS = %v, want 0", got)
	}
	if got := GrahamNumber(models.CompanyRecord{"symbol": "X", "eps": 10.0}); got != 0 {
		t.Errorf("GrahamNumber without NAV = %v, want 0", got)
	}
}

func TestAltmanZScore_EmptyRecord(t *testing.T) {
	// defaults: ta=1, cr=1, no liabilities -> D clamps to 5, z = 3.0
	got := AltmanZScore(models.CompanyRecord{"symbol": "TEST"})
	if got != 3.0 {
		t.Errorf("AltmanZScore(empty) = %v, want 3.0", got)
	}
}

func TestAltmanZScore_ComponentClamps(t *testing.T) {
	// absurd market cap cannot push D past its clamp
	rec := models.CompanyRecord{
		"symbol": "CLAMP", "total_assets": 100.0, "total_liabilities": 1.0,
		"market_cap": 1e12, "revenue": 1e12, "current_ratio": 50.0,
	}
	got := AltmanZScore(rec)
	// A=0.5, B=0, C=0, D=5, E=2 -> 1.2*.5 + 0.6*5 + 2 = 5.6
	if got != 5.6 {
		t.Errorf("AltmanZScore = %v, want 5.6 with all clamps active", got)
	}
}

func TestAltmanZone(t *testing.T) {
	if z := AltmanZone(3.5); z != "Safe" {
		t.Errorf("zone(3.5) = %q", z)
	}
	if z := AltmanZone(2.0); z != "Grey" {
		t.Errorf("zone(2.0) = %q", z)
	}
	if z := AltmanZone(1.0); z != "Distress" {
		t.Errorf("zone(1.0) = %q", z)
	}
}

func TestPiotroskiScore_Range(t *testing.T) {
	if got := PiotroskiScore(models.CompanyRecord{"symbol": "TEST"}); got != 0 {
		t.Errorf("empty record Piotroski = %d, want 0", got)
	}

	strong := models.CompanyRecord{
		"symbol": "STRONG", "net_profit": 100.0, "eps": 12.0,
		"operating_cash_flow": 120.0, "roa": 10.0, "roe": 22.0,
		"debt_equity": 0.2, "current_ratio": 2.5, "gross_margin": 35.0,
		"asset_turnover": 1.1,
	}
	if got := PiotroskiScore(strong); got != 9 {
		t.Errorf("strong record Piotroski = %d, want 9", got)
	}
}

func TestMagicFormulaRank_Defaults(t *testing.T) {
	// defaults pe=20, roe=10, de=0.5:
	// ey=5 -> 12.5 pts; roc=6.67 -> 11.11 pts; rank = 100-23 = 77
	if got := MagicFormulaRank(models.CompanyRecord{"symbol": "TEST"}); got != 77 {
		t.Errorf("default rank = %d, want 77", got)
	}

	great := models.CompanyRecord{
		"symbol": "GREAT", "pe_ratio": 4.0, "roe": 40.0, "debt_equity": 0.1,
	}
	// ey=25 capped at 20 -> 50; roc=36.4 capped at 30 -> 50; rank = max(1, 100-100)
	if got := MagicFormulaRank(great); got != 1 {
		t.Errorf("great rank = %d, want 1", got)
	}
}

func TestClassify_EmptyRecordCascade(t *testing.T) {
	rec := DeriveRatios(models.CompanyRecord{"symbol": "TEST"}, models.DefaultAssumptions())
	s := NewComprehensiveStrategy()
	composite := s.Composite(s.Score(rec))

	inv, grade, recommendation := Classify(rec, composite)

	if inv.Piotroski != 0 {
		t.Errorf("Piotroski = %d, want 0", inv.Piotroski)
	}
	if inv.AltmanZ != 3.0 {
		t.Errorf("AltmanZ = %v, want 3.0", inv.AltmanZ)
	}
	if grade != models.GradeF {
		t.Errorf("grade = %v, want F", grade)
	}
	if recommendation != models.RecAvoidWeak {
		t.Errorf("recommendation = %q, want weak-financials avoid", recommendation)
	}
}
