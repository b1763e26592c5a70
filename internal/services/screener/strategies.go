package screener

import (
	"math"

	"github.com/chandeepa/cse-research/internal/models"
)

// strategyDef describes one named screen: conjunctive criteria, an
// optional extra filter for conditions criteria cannot express, and a
// result ordering.
type strategyDef struct {
	name        string
	description string
	criteria    []models.ScreenCriterion
	filter      func(models.CompanyRecord) bool
	sort        func([]models.CompanyRecord) func(a, b int) bool
}

func byColumnAsc(col string) func([]models.CompanyRecord) func(a, b int) bool {
	return func(recs []models.CompanyRecord) func(a, b int) bool {
		return func(a, b int) bool {
			return recs[a].FloatOr(col, math.MaxFloat64) < recs[b].FloatOr(col, math.MaxFloat64)
		}
	}
}

func byColumnDesc(col string) func([]models.CompanyRecord) func(a, b int) bool {
	return func(recs []models.CompanyRecord) func(a, b int) bool {
		return func(a, b int) bool {
			return recs[a].FloatOr(col, -math.MaxFloat64) > recs[b].FloatOr(col, -math.MaxFloat64)
		}
	}
}

// pctAboveLow is the price premium over the 52-week low, in percent.
func pctAboveLow(rec models.CompanyRecord) float64 {
	price := rec.FloatOr("last_traded_price", 0)
	low := rec.FloatOr("52_week_low", 0)
	if price <= 0 || low <= 0 {
		return math.MaxFloat64
	}
	return (price - low) / low * 100
}

func (s *Service) strategyDefs() map[string]strategyDef {
	t := s.config.Thresholds

	return map[string]strategyDef{
		"value": {
			name:        "value",
			description: "Profitable companies trading below earnings and book value thresholds",
			criteria: []models.ScreenCriterion{
				{Column: "eps", Op: models.OpGT, Value: 0},
				{Column: "pe_ratio", Op: models.OpGT, Value: 0},
				{Column: "pe_ratio", Op: models.OpLT, Value: t.PEMax},
				{Column: "pb_ratio", Op: models.OpLT, Value: t.PBMax},
			},
			sort: byColumnAsc("pe_ratio"),
		},
		"dividend": {
			name:        "dividend",
			description: "Profitable companies paying a high dividend yield",
			criteria: []models.ScreenCriterion{
				{Column: "eps", Op: models.OpGT, Value: 0},
				{Column: "dividend_yield", Op: models.OpGT, Value: t.DividendYieldMin},
			},
			sort: byColumnDesc("dividend_yield"),
		},
		"growth": {
			name:        "growth",
			description: "Profitable companies with strong return on equity",
			criteria: []models.ScreenCriterion{
				{Column: "eps", Op: models.OpGT, Value: 0},
				{Column: "roe", Op: models.OpGT, Value: t.ROEMin},
			},
			sort: byColumnDesc("roe"),
		},
		"garp": {
			name:        "garp",
			description: "Growth at a reasonable price: decent returns without a stretched multiple",
			criteria: []models.ScreenCriterion{
				{Column: "eps", Op: models.OpGT, Value: 0},
				{Column: "roe", Op: models.OpGT, Value: 10},
				{Column: "pe_ratio", Op: models.OpGT, Value: 0},
				{Column: "pe_ratio", Op: models.OpLT, Value: 25},
				{Column: "peg_ratio", Op: models.OpGT, Value: 0},
				{Column: "peg_ratio", Op: models.OpLT, Value: t.PEGMax},
			},
			sort: byColumnAsc("peg_ratio"),
		},
		"quality": {
			name:        "quality",
			description: "High-return companies with conservative balance sheets",
			criteria: []models.ScreenCriterion{
				{Column: "eps", Op: models.OpGT, Value: 0},
				{Column: "roe", Op: models.OpGT, Value: t.ROEMin},
				{Column: "debt_equity", Op: models.OpLT, Value: t.DebtEquityMax},
			},
			sort: byColumnDesc("roe"),
		},
		"momentum": {
			name:        "momentum",
			description: "Companies with positive recent price movement",
			criteria: []models.ScreenCriterion{
				{Column: "change_percent", Op: models.OpGT, Value: 0},
			},
			sort: byColumnDesc("change_percent"),
		},
		"bargain": {
			name:        "bargain",
			description: "Deep value: profitable companies below book at single-digit multiples",
			criteria: []models.ScreenCriterion{
				{Column: "eps", Op: models.OpGT, Value: 0},
				{Column: "pe_ratio", Op: models.OpGT, Value: 0},
				{Column: "pe_ratio", Op: models.OpLT, Value: 10},
				{Column: "pb_ratio", Op: models.OpLT, Value: 1},
			},
			sort: byColumnAsc("pb_ratio"),
		},
		"blue_chip": {
			name:        "blue_chip",
			description: "Large profitable companies by market capitalisation",
			criteria: []models.ScreenCriterion{
				{Column: "market_cap", Op: models.OpGT, Value: t.MarketCapMin},
				{Column: "eps", Op: models.OpGT, Value: 0},
			},
			sort: byColumnDesc("market_cap"),
		},
		"52_week_low": {
			name:        "52_week_low",
			description: "Companies trading within 10% of their 52-week low",
			filter: func(rec models.CompanyRecord) bool {
				return pctAboveLow(rec) <= 10
			},
			sort: func(recs []models.CompanyRecord) func(a, b int) bool {
				return func(a, b int) bool {
					return pctAboveLow(recs[a]) < pctAboveLow(recs[b])
				}
			},
		},
	}
}
