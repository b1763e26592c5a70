package analysis

import (
	"math"
	"testing"

	"github.com/chandeepa/cse-research/internal/models"
)

func deriveTest(rec models.CompanyRecord) models.CompanyRecord {
	return DeriveRatios(rec, models.DefaultAssumptions())
}

func TestDeriveRatios_Deterministic(t *testing.T) {
	rec := models.CompanyRecord{
		"symbol": "JKH.N0000", "last_traded_price": 150.0, "eps": 12.5,
		"market_cap": 2_000_000_000.0, "revenue": 800_000_000.0,
		"operating_income": 120_000_000.0, "net_profit": 90_000_000.0,
		"total_assets": 1_500_000_000.0, "total_liabilities": 600_000_000.0,
		"shareholders_equity": 900_000_000.0, "total_debt": 300_000_000.0,
		"operating_cash_flow": 110_000_000.0, "free_cash_flow": 70_000_000.0,
		"pe_ratio": 12.0, "roe": 10.0, "roa": 6.0,
	}

	first := deriveTest(rec)
	second := deriveTest(rec)

	for key, v1 := range first {
		f1, ok1 := models.CoerceFloat(v1)
		f2, ok2 := models.CoerceFloat(second[key])
		if ok1 != ok2 {
			t.Errorf("key %s: coercibility differs between runs", key)
			continue
		}
		if !ok1 {
			continue
		}
		if math.IsNaN(f1) != math.IsNaN(f2) || (!math.IsNaN(f1) && f1 != f2) {
			t.Errorf("key %s: %v != %v across identical runs", key, f1, f2)
		}
	}
}

func TestDeriveRatios_DoesNotMutateInput(t *testing.T) {
	rec := models.CompanyRecord{"symbol": "TEST", "revenue": 100.0}
	_ = deriveTest(rec)
	if len(rec) != 2 {
		t.Errorf("input record gained keys: %d", len(rec))
	}
}

func TestDeriveRatios_EmptyRecordIsTotal(t *testing.T) {
	out := deriveTest(models.CompanyRecord{"symbol": "TEST"})

	// every ratio present, no panics, sentinels in place
	wantKeys := []string{
		"peg_ratio", "enterprise_value", "ebitda", "ev_ebitda", "ps_ratio",
		"earnings_yield", "fcf_yield", "operating_margin", "roic", "roce",
		"quick_ratio", "cash_ratio", "working_capital", "interest_coverage",
		"debt_to_assets", "debt_to_ebitda", "equity_multiplier", "net_debt",
		"fixed_asset_turnover", "inventory_turnover", "days_inventory",
		"cash_conversion_cycle", "ocf_margin", "cf_to_debt", "accruals_ratio",
		"earnings_quality", "beneish_m_score", "manipulation_risk",
		"sustainable_growth_rate", "payout_ratio", "dividend_safety",
	}
	for _, key := range wantKeys {
		if _, ok := out[key]; !ok {
			t.Errorf("missing derived key %s", key)
		}
	}

	if v := out.FloatOr("interest_coverage", 0); v != 999 {
		t.Errorf("interest_coverage for no-debt record = %v, want 999", v)
	}
	if v := out.FloatOr("cf_to_debt", 0); v != 999 {
		t.Errorf("cf_to_debt for no-debt record = %v, want 999", v)
	}
	if peg, _ := out.Float("peg_ratio"); peg != 0 {
		// default growth 10%, pe 0 -> peg 0/10 = 0
		t.Errorf("peg_ratio = %v, want 0", peg)
	}
	if ev, _ := out.Float("ev_ebitda"); !math.IsNaN(ev) {
		t.Errorf("ev_ebitda with no ebitda = %v, want NaN", ev)
	}
}

func TestDeriveRatios_InterestCoverageSentinel(t *testing.T) {
	out := deriveTest(models.CompanyRecord{
		"symbol": "NODEBT", "operating_income": 50.0, "total_debt": 0.0,
	})
	if v := out.FloatOr("interest_coverage", 0); v != 999 {
		t.Errorf("interest_coverage = %v, want 999 sentinel", v)
	}

	out = deriveTest(models.CompanyRecord{
		"symbol": "LEVERED", "operating_income": 80.0, "total_debt": 100.0,
	})
	// interest estimated at 8% of debt: 80 / 8 = 10
	if v := out.FloatOr("interest_coverage", 0); v != 10 {
		t.Errorf("interest_coverage = %v, want 10", v)
	}
}

func TestDeriveRatios_LiquidityFallbackChain(t *testing.T) {
	out := deriveTest(models.CompanyRecord{
		"symbol": "EST", "total_assets": 1000.0, "total_liabilities": 400.0,
	})

	// ca = 400, cl = 140, inventory = 100, cash = 60
	ca, cl := 400.0, 140.0
	wantQuick := (ca - ca*0.25) / cl
	if v := out.FloatOr("quick_ratio", 0); math.Abs(v-wantQuick) > 1e-9 {
		t.Errorf("quick_ratio = %v, want %v", v, wantQuick)
	}
	wantCash := (ca * 0.15) / cl
	if v := out.FloatOr("cash_ratio", 0); math.Abs(v-wantCash) > 1e-9 {
		t.Errorf("cash_ratio = %v, want %v", v, wantCash)
	}
	if v := out.FloatOr("working_capital", 0); v != ca-cl {
		t.Errorf("working_capital = %v, want %v", v, ca-cl)
	}
}

func TestDeriveRatios_ExplicitInputsBeatProxies(t *testing.T) {
	out := deriveTest(models.CompanyRecord{
		"symbol": "REAL", "total_assets": 1000.0, "total_liabilities": 400.0,
		"current_assets": 500.0, "current_liabilities": 200.0,
		"inventory": 50.0, "cash": 120.0,
	})

	wantQuick := (500.0 - 50.0) / 200.0
	if v := out.FloatOr("quick_ratio", 0); math.Abs(v-wantQuick) > 1e-9 {
		t.Errorf("quick_ratio = %v, want %v from explicit inputs", v, wantQuick)
	}
	wantCash := 120.0 / 200.0
	if v := out.FloatOr("cash_ratio", 0); math.Abs(v-wantCash) > 1e-9 {
		t.Errorf("cash_ratio = %v, want %v from explicit inputs", v, wantCash)
	}
}

func TestDeriveRatios_CashConversionCycle(t *testing.T) {
	out := deriveTest(models.CompanyRecord{
		"symbol": "CCC", "revenue": 1200.0, "total_assets": 1000.0,
	})

	di := out.FloatOr("days_inventory", -1)
	dso := out.FloatOr("days_sales_outstanding", -1)
	dp := out.FloatOr("days_payables", -1)
	ccc := out.FloatOr("cash_conversion_cycle", math.NaN())

	if math.Abs(ccc-(di+dso-dp)) > 1e-9 {
		t.Errorf("cash_conversion_cycle = %v, want di+dso-dp = %v", ccc, di+dso-dp)
	}

	// receivables proxy rev/12 gives turnover 12 -> dso = 365/12
	if math.Abs(dso-365.0/12) > 1e-9 {
		t.Errorf("days_sales_outstanding = %v, want %v", dso, 365.0/12)
	}
	// payables proxy cogs/10 gives turnover 10 -> dp = 36.5
	if math.Abs(dp-36.5) > 1e-9 {
		t.Errorf("days_payables = %v, want 36.5", dp)
	}
}

func TestDeriveRatios_EarningsQuality(t *testing.T) {
	// zero profit and cash flow: base score only
	out := deriveTest(models.CompanyRecord{
		"symbol": "ZERO", "operating_cash_flow": 0.0, "net_profit": 0.0,
		"total_assets": 100.0,
	})
	if v := out.FloatOr("accruals_ratio", -1); v != 0 {
		t.Errorf("accruals_ratio = %v, want 0", v)
	}
	if v := out.FloatOr("earnings_quality", 0); v != 50 {
		t.Errorf("earnings_quality = %v, want base 50", v)
	}

	// cash-backed earnings: low accruals plus strong fcf conversion
	out = deriveTest(models.CompanyRecord{
		"symbol": "CASHY", "operating_cash_flow": 110.0, "net_profit": 100.0,
		"free_cash_flow": 90.0, "total_assets": 1000.0,
	})
	// accruals = -0.01 (+15+5), fcf/ni = 90% (+20) -> 90
	if v := out.FloatOr("earnings_quality", 0); v != 90 {
		t.Errorf("earnings_quality = %v, want 90", v)
	}
}

func TestDeriveRatios_BeneishBands(t *testing.T) {
	// all-fixed terms with zero accruals and no leverage:
	// m = -4.84 + .92 + .528 + .404 + .9812 + .115 - .172 = -2.0638
	out := deriveTest(models.CompanyRecord{"symbol": "B"})
	m := out.FloatOr("beneish_m_score", 0)
	if math.Abs(m-(-2.0638)) > 1e-6 {
		t.Errorf("beneish_m_score = %v, want -2.0638", m)
	}
	if risk := out.String("manipulation_risk"); risk != "Possible" {
		t.Errorf("manipulation_risk = %q, want Possible", risk)
	}

	if got := ClassifyManipulationRisk(-3.0); got != "Low" {
		t.Errorf("risk(-3.0) = %q, want Low", got)
	}
	if got := ClassifyManipulationRisk(-2.0); got != "Possible" {
		t.Errorf("risk(-2.0) = %q, want Possible", got)
	}
	if got := ClassifyManipulationRisk(-1.0); got != "Likely" {
		t.Errorf("risk(-1.0) = %q, want Likely", got)
	}
}

func TestDeriveRatios_SustainableGrowthUsesInputPayout(t *testing.T) {
	// sustainable growth reads the raw payout_ratio fraction (default
	// 0.4), not the percentage derived later from dps/eps.
	out := deriveTest(models.CompanyRecord{"symbol": "G", "roe": 20.0})
	if v := out.FloatOr("sustainable_growth_rate", 0); math.Abs(v-12.0) > 1e-9 {
		t.Errorf("sustainable_growth_rate = %v, want 20*(1-0.4)=12", v)
	}

	out = deriveTest(models.CompanyRecord{"symbol": "G2", "roe": 20.0, "payout_ratio": 0.25})
	if v := out.FloatOr("sustainable_growth_rate", 0); math.Abs(v-15.0) > 1e-9 {
		t.Errorf("sustainable_growth_rate = %v, want 20*0.75=15", v)
	}
}

func TestDeriveRatios_DividendSafety(t *testing.T) {
	out := deriveTest(models.CompanyRecord{
		"symbol": "DIV", "eps": 10.0, "dividend_per_share": 3.0,
	})
	// payout 30% (+15+10), coverage 3.33 (+15), no fcf coverage -> 90
	if v := out.FloatOr("dividend_safety", 0); v != 90 {
		t.Errorf("dividend_safety = %v, want 90", v)
	}
	if v := out.FloatOr("payout_ratio", 0); math.Abs(v-30.0) > 1e-9 {
		t.Errorf("payout_ratio = %v, want 30", v)
	}
}
