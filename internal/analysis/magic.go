package analysis

import "github.com/chandeepa/cse-research/internal/models"

// MagicFormulaRank scores a company on Joel Greenblatt's two factors,
// earnings yield and return on capital, and converts the combined score
// to a 1-100 rank where lower is better. Return on capital is proxied
// from ROE deflated by leverage since true invested capital is rarely
// reported here.
func MagicFormulaRank(rec models.CompanyRecord) int {
	pe := rec.FloatOr("pe_ratio", 20)
	roe := rec.FloatOr("roe", 10)
	debtEquity := rec.FloatOr("debt_equity", 0.5)

	earningsYield := 0.0
	if pe > 0 {
		earningsYield = (1 / pe) * 100
	}

	roc := roe
	if debtEquity > 0 {
		roc = roe / (1 + debtEquity)
	}

	eyScore := min(earningsYield, 20) / 20 * 50
	rocScore := min(roc, 30) / 30 * 50

	rank := 100 - int(eyScore+rocScore)
	if rank < 1 {
		return 1
	}
	if rank > 100 {
		return 100
	}
	return rank
}
