package analysis

import (
	"math"

	"github.com/chandeepa/cse-research/internal/models"
)

// GrahamNumber computes Benjamin Graham's fair value heuristic,
// sqrt(22.5 x EPS x NAV). The 22.5 multiplier is Graham's maximum P/E
// of 15 times his maximum P/B of 1.5. Defined only when both EPS and
// NAV are positive; otherwise 0.
func GrahamNumber(rec models.CompanyRecord) float64 {
	eps := rec.FloatOr("eps", 0)
	nav := rec.FloatOr("nav", 0)

	if eps > 0 && nav > 0 {
		return round2(math.Sqrt(22.5 * eps * nav))
	}
	return 0
}

// GrahamUpside returns the percentage gap between the Graham number and
// the current price. Positive means the price sits below fair value.
func GrahamUpside(rec models.CompanyRecord, grahamNumber float64) float64 {
	price := rec.FloatOr("last_traded_price", 0)

	if price > 0 && grahamNumber > 0 {
		return round2((grahamNumber - price) / price * 100)
	}
	return 0
}

// GrahamIntrinsicValue applies Graham's growth formula,
// V = EPS x (8.5 + 2g) x 4.4/Y, where Y is the prevailing AAA corporate
// bond yield in percent.
func GrahamIntrinsicValue(eps, growthRate float64, a models.MarketAssumptions) float64 {
	if eps <= 0 {
		return 0
	}
	yield := a.BondYield
	if yield <= 0 {
		yield = 4.4
	}
	return round2(eps * (8.5 + 2*growthRate) * (4.4 / yield))
}

// IntrinsicValueDCF projects free cash flow over a fixed horizon and
// discounts it with a perpetuity terminal value.
func IntrinsicValueDCF(freeCashFlow, growthRate, discountRate, terminalGrowth float64, years int, sharesOutstanding float64) float64 {
	if freeCashFlow <= 0 {
		return 0
	}
	if sharesOutstanding <= 0 {
		sharesOutstanding = 1
	}
	if discountRate <= terminalGrowth {
		return 0
	}

	presentValue := 0.0
	for year := 1; year <= years; year++ {
		projected := freeCashFlow * math.Pow(1+growthRate, float64(year))
		presentValue += projected / math.Pow(1+discountRate, float64(year))
	}

	terminalFCF := freeCashFlow * math.Pow(1+growthRate, float64(years)) * (1 + terminalGrowth)
	terminalValue := terminalFCF / (discountRate - terminalGrowth)
	presentValue += terminalValue / math.Pow(1+discountRate, float64(years))

	return round2(presentValue / sharesOutstanding)
}

// MarginOfSafety is the percentage discount of the current price to an
// intrinsic value estimate. Zero when the estimate is unusable.
func MarginOfSafety(currentPrice, intrinsicValue float64) float64 {
	if intrinsicValue <= 0 {
		return 0
	}
	return round2((intrinsicValue - currentPrice) / intrinsicValue * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
