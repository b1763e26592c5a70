package analysis

import (
	"math"

	"github.com/chandeepa/cse-research/internal/models"
)

// Comprehensive strategy composite weights.
var comprehensiveWeights = map[string]float64{
	"value":    0.25,
	"quality":  0.25,
	"safety":   0.20,
	"dividend": 0.15,
	"growth":   0.10,
	"momentum": 0.05,
}

// ComprehensiveStrategy scores each record in isolation through fixed
// threshold ladders. Every ladder checks its highest band first; a
// record that misses every band contributes zero points. Missing inputs
// take the per-ladder defaults, which are deliberately pessimistic for
// valuation metrics (P/E 30, P/B 3) and neutral for balance-sheet ones.
type ComprehensiveStrategy struct{}

// NewComprehensiveStrategy returns the threshold-ladder strategy.
func NewComprehensiveStrategy() *ComprehensiveStrategy {
	return &ComprehensiveStrategy{}
}

func (s *ComprehensiveStrategy) Name() string { return "comprehensive" }

func (s *ComprehensiveStrategy) Score(rec models.CompanyRecord) models.ScoreSet {
	return models.ScoreSet{
		Value:    valueScore(rec),
		Quality:  qualityScore(rec),
		Safety:   safetyScore(rec),
		Dividend: dividendScore(rec),
		Growth:   growthScore(rec),
		Momentum: momentumScore(rec),
	}
}

// Composite is the fixed-weight sum truncated to an integer value.
func (s *ComprehensiveStrategy) Composite(set models.ScoreSet) float64 {
	composite := set.Value*comprehensiveWeights["value"] +
		set.Quality*comprehensiveWeights["quality"] +
		set.Safety*comprehensiveWeights["safety"] +
		set.Dividend*comprehensiveWeights["dividend"] +
		set.Growth*comprehensiveWeights["growth"] +
		set.Momentum*comprehensiveWeights["momentum"]
	return float64(int(math.Min(composite, 100)))
}

func valueScore(rec models.CompanyRecord) float64 {
	pe := rec.FloatOr("pe_ratio", 30)
	pb := rec.FloatOr("pb_ratio", 3)
	divYield := rec.FloatOr("dividend_yield", 0)

	score := 0.0

	// Only the top band requires a positive ratio; the lower bands fall
	// through on the upper bound alone.
	switch {
	case pe > 0 && pe <= 8:
		score += 35
	case pe <= 10:
		score += 30
	case pe <= 12:
		score += 25
	case pe <= 15:
		score += 20
	case pe <= 20:
		score += 15
	case pe <= 25:
		score += 10
	case pe <= 30:
		score += 5
	}

	switch {
	case pb > 0 && pb <= 0.7:
		score += 35
	case pb <= 1.0:
		score += 30
	case pb <= 1.2:
		score += 25
	case pb <= 1.5:
		score += 20
	case pb <= 2.0:
		score += 15
	case pb <= 2.5:
		score += 10
	case pb <= 3.0:
		score += 5
	}

	switch {
	case divYield >= 8:
		score += 30
	case divYield >= 6:
		score += 25
	case divYield >= 5:
		score += 20
	case divYield >= 4:
		score += 15
	case divYield >= 3:
		score += 10
	case divYield >= 2:
		score += 5
	}

	return math.Min(score, 100)
}

func qualityScore(rec models.CompanyRecord) float64 {
	roe := rec.FloatOr("roe", 0)
	roa := rec.FloatOr("roa", 0)
	grossMargin := rec.FloatOr("gross_margin", 0)
	netMargin := rec.FloatOr("net_margin", 0)
	assetTurnover := rec.FloatOr("asset_turnover", 0)

	score := 0.0

	switch {
	case roe >= 25:
		score += 30
	case roe >= 20:
		score += 25
	case roe >= 15:
		score += 20
	case roe >= 10:
		score += 15
	case roe >= 5:
		score += 10
	case roe > 0:
		score += 5
	}

	switch {
	case roa >= 15:
		score += 20
	case roa >= 10:
		score += 15
	case roa >= 7:
		score += 10
	case roa >= 5:
		score += 7
	case roa > 0:
		score += 3
	}

	switch {
	case grossMargin >= 40:
		score += 20
	case grossMargin >= 30:
		score += 15
	case grossMargin >= 20:
		score += 10
	case grossMargin >= 15:
		score += 5
	}

	switch {
	case netMargin >= 20:
		score += 20
	case netMargin >= 15:
		score += 15
	case netMargin >= 10:
		score += 10
	case netMargin >= 5:
		score += 5
	}

	switch {
	case assetTurnover >= 1.5:
		score += 10
	case assetTurnover >= 1.0:
		score += 7
	case assetTurnover >= 0.5:
		score += 4
	}

	return math.Min(score, 100)
}

func safetyScore(rec models.CompanyRecord) float64 {
	debtEquity := rec.FloatOr("debt_equity", 1)
	currentRatio := rec.FloatOr("current_ratio", 1)
	eps := rec.FloatOr("eps", 0)

	score := 0.0

	switch {
	case debtEquity <= 0.2:
		score += 40
	case debtEquity <= 0.3:
		score += 35
	case debtEquity <= 0.5:
		score += 30
	case debtEquity <= 0.7:
		score += 25
	case debtEquity <= 1.0:
		score += 20
	case debtEquity <= 1.5:
		score += 10
	}

	switch {
	case currentRatio >= 2.5:
		score += 30
	case currentRatio >= 2.0:
		score += 25
	case currentRatio >= 1.5:
		score += 20
	case currentRatio >= 1.2:
		score += 15
	case currentRatio >= 1.0:
		score += 10
	case currentRatio >= 0.8:
		score += 5
	}

	switch {
	case eps > 10:
		score += 30
	case eps > 5:
		score += 25
	case eps > 2:
		score += 20
	case eps > 0:
		score += 15
	}

	return math.Min(score, 100)
}

func dividendScore(rec models.CompanyRecord) float64 {
	divYield := rec.FloatOr("dividend_yield", 0)
	dps := rec.FloatOr("dividend_per_share", 0)
	eps := rec.FloatOr("eps", 0)

	payout := 0.0
	if eps > 0 && dps > 0 {
		payout = dps / eps * 100
	}

	score := 0.0

	switch {
	case divYield >= 8:
		score += 50
	case divYield >= 6:
		score += 45
	case divYield >= 5:
		score += 40
	case divYield >= 4:
		score += 35
	case divYield >= 3:
		score += 25
	case divYield >= 2:
		score += 15
	case divYield >= 1:
		score += 5
	}

	// Sweet spot 30-50%: sustainable but still growing.
	switch {
	case payout >= 30 && payout <= 50:
		score += 30
	case payout >= 20 && payout <= 60:
		score += 25
	case payout >= 10 && payout <= 70:
		score += 20
	case payout > 70 && payout <= 80:
		score += 10
	case payout > 0:
		score += 5
	}

	if divYield > 0 && dps > 0 {
		score += 20
	}

	return math.Min(score, 100)
}

func growthScore(rec models.CompanyRecord) float64 {
	roe := rec.FloatOr("roe", 0)
	pe := rec.FloatOr("pe_ratio", 20)
	dps := rec.FloatOr("dividend_per_share", 0)
	eps := rec.FloatOr("eps", 0)

	payout := 0.5
	if eps > 0 && dps > 0 {
		payout = dps / eps
	}
	retention := 1 - payout

	sustainableGrowth := 0.0
	if roe > 0 {
		sustainableGrowth = roe * retention
	}

	score := 0.0

	switch {
	case roe >= 25:
		score += 35
	case roe >= 20:
		score += 30
	case roe >= 15:
		score += 25
	case roe >= 12:
		score += 20
	case roe >= 10:
		score += 15
	case roe >= 5:
		score += 10
	}

	switch {
	case sustainableGrowth >= 20:
		score += 35
	case sustainableGrowth >= 15:
		score += 30
	case sustainableGrowth >= 12:
		score += 25
	case sustainableGrowth >= 10:
		score += 20
	case sustainableGrowth >= 8:
		score += 15
	case sustainableGrowth >= 5:
		score += 10
	}

	pegProxy := pe / 10
	if sustainableGrowth > 0 {
		pegProxy = pe / math.Max(sustainableGrowth, 5)
	}

	switch {
	case pegProxy <= 0.5:
		score += 30
	case pegProxy <= 1.0:
		score += 25
	case pegProxy <= 1.5:
		score += 20
	case pegProxy <= 2.0:
		score += 15
	case pegProxy <= 2.5:
		score += 10
	}

	return math.Min(score, 100)
}

func momentumScore(rec models.CompanyRecord) float64 {
	price := rec.FloatOr("last_traded_price", 0)
	high52 := rec.FloatOr("52_week_high", price*1.2)
	low52 := rec.FloatOr("52_week_low", price*0.8)
	changePct := rec.FloatOr("change_percent", 0)

	score := 0.0

	// Sweet spot is the middle of the 52-week range; both extremes are
	// penalized, the high end harder than the low.
	if high52 > low52 {
		position := (price - low52) / (high52 - low52) * 100
		switch {
		case position >= 40 && position <= 60:
			score += 50
		case position >= 30 && position <= 70:
			score += 40
		case position >= 20 && position <= 80:
			score += 30
		case position <= 20:
			score += 35
		case position >= 80:
			score += 20
		}
	}

	switch {
	case changePct >= 3:
		score += 30
	case changePct >= 2:
		score += 25
	case changePct >= 1:
		score += 20
	case changePct >= 0:
		score += 15
	case changePct >= -1:
		score += 10
	case changePct >= -2:
		score += 5
	}

	if high52 > 0 {
		discount := (high52 - price) / high52 * 100
		switch {
		case discount >= 20 && discount <= 40:
			score += 20
		case discount >= 10 && discount <= 50:
			score += 15
		case discount < 10:
			score += 10
		case discount > 50:
			score += 5
		}
	}

	return math.Min(score, 100)
}
