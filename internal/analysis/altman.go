package analysis

import (
	"math"

	"github.com/chandeepa/cse-research/internal/models"
)

// Altman Z-Score zone boundaries for manufacturing companies.
const (
	AltmanDistress = 1.81
	AltmanSafe     = 2.99
)

// AltmanZScore computes a simplified bankruptcy risk score from proxy
// components. Each component is clamped to a fixed range before the
// standard 1.2/1.4/3.3/0.6/1.0 weighting, which keeps one pathological
// input from dominating the score.
func AltmanZScore(rec models.CompanyRecord) float64 {
	totalAssets := rec.FloatOr("total_assets", 1)
	totalLiabilities := rec.FloatOr("total_liabilities", 0)
	marketCap := rec.FloatOr("market_cap", 0)
	revenue := rec.FloatOr("revenue", 0)
	equity := rec.FloatOr("shareholders_equity", 0)
	currentRatio := rec.FloatOr("current_ratio", 1)
	operatingIncome := rec.FloatOr("operating_income", 0)
	netProfit := rec.FloatOr("net_profit", 0)

	if totalAssets <= 0 {
		return 0
	}

	// A: working capital / total assets, proxied from the current ratio
	a := clamp((currentRatio-1)*0.3, -0.3, 0.5)

	// B: retained earnings / total assets, assuming 70% of equity retained
	b := 0.0
	if equity > 0 {
		b = clamp((equity/totalAssets)*0.7, 0, 0.5)
	}

	// C: EBIT / total assets, falling back to scaled net profit
	c := 0.0
	if operatingIncome > 0 {
		c = operatingIncome / totalAssets
	} else if netProfit > 0 {
		c = (netProfit / totalAssets) * 1.3
	}
	c = clamp(c, -0.1, 0.3)

	// D: market value of equity / total liabilities
	d := 5.0
	if totalLiabilities > 0 {
		d = marketCap / totalLiabilities
	}
	d = clamp(d, 0, 5)

	// E: sales / total assets
	e := 0.0
	if revenue > 0 {
		e = revenue / totalAssets
	}
	e = clamp(e, 0, 2)

	z := 1.2*a + 1.4*b + 3.3*c + 0.6*d + 1.0*e
	return math.Round(z*100) / 100
}

// AltmanZone labels a Z-Score as Safe, Grey, or Distress.
func AltmanZone(z float64) string {
	switch {
	case z > AltmanSafe:
		return "Safe"
	case z > AltmanDistress:
		return "Grey"
	default:
		return "Distress"
	}
}
