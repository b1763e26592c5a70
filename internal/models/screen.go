package models

import "time"

// ScreenOp is a comparison operator for a screening criterion.
type ScreenOp string

const (
	OpGT      ScreenOp = "gt"
	OpLT      ScreenOp = "lt"
	OpGTE     ScreenOp = "gte"
	OpLTE     ScreenOp = "lte"
	OpEQ      ScreenOp = "eq"
	OpBetween ScreenOp = "between"
)

// ScreenCriterion is a single column comparison. Criteria in a screen
// are conjunctive: a company must pass every criterion.
type ScreenCriterion struct {
	Column string   `json:"column"`
	Op     ScreenOp `json:"op"`
	Value  float64  `json:"value"`
	// Value2 is the upper bound for the between operator.
	Value2 float64 `json:"value2,omitempty"`
}

// ScreenRequest is a custom screen submitted over the API.
type ScreenRequest struct {
	Name     string            `json:"name,omitempty"`
	Criteria []ScreenCriterion `json:"criteria"`
	Sector   string            `json:"sector,omitempty"`
	Limit    int               `json:"limit,omitempty"`
}

// ScreenResult is the outcome of running one screen.
type ScreenResult struct {
	Strategy    string          `json:"strategy"`
	Description string          `json:"description,omitempty"`
	Total       int             `json:"total_screened"`
	Matched     int             `json:"matched"`
	Companies   []CompanyRecord `json:"companies"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// StrategyOverlap summarises how often each company appears across a
// set of named screening strategies.
type StrategyOverlap struct {
	Symbol     string   `json:"symbol"`
	Name       string   `json:"name"`
	Sector     string   `json:"sector"`
	Strategies []string `json:"strategies"`
	Count      int      `json:"count"`
}

// SectorSummary aggregates per-sector statistics across analyses.
type SectorSummary struct {
	Sector       string  `json:"sector"`
	Companies    int     `json:"companies"`
	AvgComposite float64 `json:"avg_composite"`
	AvgPE        float64 `json:"avg_pe,omitempty"`
	AvgDividend  float64 `json:"avg_dividend_yield,omitempty"`
	TopSymbol    string  `json:"top_symbol,omitempty"`
	TopScore     int     `json:"top_score,omitempty"`
}

// RankingEntry is one row of a ranked listing.
type RankingEntry struct {
	Rank           int     `json:"rank"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Sector         string  `json:"sector"`
	Score          float64 `json:"score"`
	Composite      int     `json:"composite_score"`
	Grade          Grade   `json:"grade"`
	Recommendation string  `json:"recommendation"`
}

// RankingResult is a ranked listing for one category or strategy.
type RankingResult struct {
	Category    string         `json:"category"`
	Entries     []RankingEntry `json:"entries"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// PortfolioSuggestion is a suggested holding from the portfolio builder.
type PortfolioSuggestion struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Sector    string  `json:"sector"`
	Composite int     `json:"composite_score"`
	Grade     Grade   `json:"grade"`
	Weight    float64 `json:"weight"`
	Rationale string  `json:"rationale,omitempty"`
}
