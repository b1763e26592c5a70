package analysis

import (
	"math"

	"github.com/chandeepa/cse-research/internal/models"
)

// ValuationThresholds are the screening cut-offs for the valuation
// signal checks.
type ValuationThresholds struct {
	PEMax            float64
	PBMax            float64
	DebtEquityMax    float64
	DividendYieldMin float64
	ROEMin           float64
	PEGMax           float64
	MarketCapMin     float64
}

// DefaultThresholds returns the standard CSE screening thresholds.
func DefaultThresholds() ValuationThresholds {
	return ValuationThresholds{
		PEMax:            15,
		PBMax:            1.5,
		DebtEquityMax:    0.5,
		DividendYieldMin: 4.0,
		ROEMin:           15,
		PEGMax:           1.0,
		MarketCapMin:     100_000_000,
	}
}

// ValuationSignals counts independent undervaluation indicators and
// bands them into an overall assessment.
type ValuationSignals struct {
	UndervaluedPE     bool    `json:"is_undervalued_pe"`
	UndervaluedPB     bool    `json:"is_undervalued_pb"`
	UndervaluedGraham bool    `json:"is_undervalued_graham"`
	HighDividend      bool    `json:"has_high_dividend"`
	GoodROE           bool    `json:"has_good_roe"`
	LowDebt           bool    `json:"has_low_debt"`
	IntrinsicValue    float64 `json:"intrinsic_value_graham"`
	MarginOfSafety    float64 `json:"margin_of_safety"`
	Count             int     `json:"value_signals_count"`
	Status            string  `json:"valuation_status"`
}

// Names returns the triggered signal labels for display.
func (v ValuationSignals) Names() []string {
	var names []string
	if v.UndervaluedPE {
		names = append(names, "undervalued_pe")
	}
	if v.UndervaluedPB {
		names = append(names, "undervalued_pb")
	}
	if v.UndervaluedGraham {
		names = append(names, "undervalued_graham")
	}
	if v.HighDividend {
		names = append(names, "high_dividend")
	}
	if v.GoodROE {
		names = append(names, "good_roe")
	}
	if v.LowDebt {
		names = append(names, "low_debt")
	}
	return names
}

// AssessValuation evaluates the six valuation signals against the
// thresholds. Growth defaults to a conservative 5% when missing, which
// only affects the Graham intrinsic value leg.
func AssessValuation(rec models.CompanyRecord, t ValuationThresholds, a models.MarketAssumptions) ValuationSignals {
	var v ValuationSignals

	price := rec.FloatOr("last_traded_price", 0)
	eps := rec.FloatOr("eps", 0)
	growth := rec.FloatOr("eps_growth", 5)

	if eps > 0 {
		v.IntrinsicValue = GrahamIntrinsicValue(eps, growth, a)
		if price > 0 && v.IntrinsicValue > 0 {
			v.MarginOfSafety = MarginOfSafety(price, v.IntrinsicValue)
		}
	}

	if pe, ok := rec.Float("pe_ratio"); ok && pe > 0 && pe < t.PEMax {
		v.UndervaluedPE = true
		v.Count++
	}
	if pb, ok := rec.Float("pb_ratio"); ok && pb > 0 && pb < t.PBMax {
		v.UndervaluedPB = true
		v.Count++
	}
	if v.MarginOfSafety > 30 {
		v.UndervaluedGraham = true
		v.Count++
	}
	if dy, ok := rec.Float("dividend_yield"); ok && dy > t.DividendYieldMin {
		v.HighDividend = true
		v.Count++
	}
	if roe, ok := rec.Float("roe"); ok && roe > t.ROEMin {
		v.GoodROE = true
		v.Count++
	}
	if de, ok := rec.Float("debt_equity"); ok && !math.IsNaN(de) && de < t.DebtEquityMax {
		v.LowDebt = true
		v.Count++
	}

	switch {
	case v.Count >= 4:
		v.Status = "Strongly Undervalued"
	case v.Count >= 3:
		v.Status = "Undervalued"
	case v.Count >= 2:
		v.Status = "Fairly Valued"
	case v.Count >= 1:
		v.Status = "Neutral"
	default:
		v.Status = "Potentially Overvalued"
	}

	return v
}
