package analysis

import "github.com/chandeepa/cse-research/internal/models"

// PiotroskiScore computes a 0-9 financial strength score. Single-period
// data cannot observe year-over-year improvement, so several signals use
// level proxies: positive ROA stands in for improving ROA, low leverage
// for falling leverage, and sound financials for absence of dilution.
func PiotroskiScore(rec models.CompanyRecord) int {
	netProfit := rec.FloatOr("net_profit", 0)
	eps := rec.FloatOr("eps", 0)
	operatingCF := rec.FloatOr("operating_cash_flow", 0)
	roa := rec.FloatOr("roa", 0)
	roe := rec.FloatOr("roe", 0)
	debtEquity := rec.FloatOr("debt_equity", 1)
	currentRatio := rec.FloatOr("current_ratio", 1)
	grossMargin := rec.FloatOr("gross_margin", 0)
	assetTurnover := rec.FloatOr("asset_turnover", 0)

	score := 0

	// Profitability signals
	if netProfit > 0 || eps > 0 {
		score++
	}
	if operatingCF > 0 {
		score++
	}
	if roa > 0 {
		score++
	}
	if operatingCF > netProfit && netProfit > 0 {
		score++
	} else if operatingCF > 0 && eps > 0 {
		score++
	}

	// Leverage and liquidity signals
	if debtEquity < 0.5 {
		score++
	}
	if currentRatio > 1.0 {
		score++
	}
	if debtEquity < 1 && roe > 10 {
		score++
	}

	// Efficiency signals
	if grossMargin > 20 {
		score++
	}
	if assetTurnover > 0.5 {
		score++
	}

	if score > 9 {
		return 9
	}
	return score
}
