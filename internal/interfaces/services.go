// Package interfaces defines service contracts for the CSE research toolkit
package interfaces

import (
	"context"

	"github.com/chandeepa/cse-research/internal/models"
)

// AnalyzerService runs the full derive, score, and classify pipeline.
type AnalyzerService interface {
	// AnalyzeAll runs the pipeline over a universe of records and returns
	// analyses sorted by composite score, best first.
	AnalyzeAll(ctx context.Context, records []models.CompanyRecord, opts AnalyzeOptions) ([]models.Analysis, error)

	// AnalyzeOne runs the pipeline for a single record using the
	// comprehensive strategy.
	AnalyzeOne(ctx context.Context, rec models.CompanyRecord) (*models.Analysis, error)
}

// AnalyzeOptions configures an analysis pass.
type AnalyzeOptions struct {
	// Strategy selects the scoring strategy: "comprehensive" (default)
	// or "ranker".
	Strategy string
	// IncludeRecords attaches the enriched records to the output rows.
	IncludeRecords bool
	// Workers bounds the per-record scoring concurrency. Zero uses the
	// service default.
	Workers int
}

// ScreenerService filters a universe against criteria or named strategies.
type ScreenerService interface {
	// Screen applies conjunctive criteria in order.
	Screen(ctx context.Context, records []models.CompanyRecord, criteria []models.ScreenCriterion) ([]models.CompanyRecord, error)

	// RunStrategy runs one named screening strategy.
	RunStrategy(ctx context.Context, records []models.CompanyRecord, name string) (*models.ScreenResult, error)

	// RunAllStrategies runs every named strategy.
	RunAllStrategies(ctx context.Context, records []models.CompanyRecord) (map[string]*models.ScreenResult, error)

	// StrategyOverlap summarises which companies pass multiple strategies.
	StrategyOverlap(ctx context.Context, records []models.CompanyRecord) ([]models.StrategyOverlap, error)

	// ScreenSector runs a strategy within a single sector.
	ScreenSector(ctx context.Context, records []models.CompanyRecord, sector, strategy string) (*models.ScreenResult, error)

	// CompareSectors aggregates metrics per sector.
	CompareSectors(ctx context.Context, analyses []models.Analysis) ([]models.SectorSummary, error)

	// Strategies lists the available strategy names.
	Strategies() []string
}

// RankingService produces ranked listings and portfolio suggestions.
type RankingService interface {
	// TopStocks returns the top n analyses for a category ("composite"
	// or a component score name).
	TopStocks(ctx context.Context, analyses []models.Analysis, category string, n int) (*models.RankingResult, error)

	// RankBySector ranks companies within each sector.
	RankBySector(ctx context.Context, analyses []models.Analysis) (map[string]*models.RankingResult, error)

	// BestCategory labels each company with its strongest component.
	BestCategory(ctx context.Context, analyses []models.Analysis) (map[string]string, error)

	// SuggestPortfolio builds a diversified suggestion list.
	SuggestPortfolio(ctx context.Context, analyses []models.Analysis, opts PortfolioOptions) ([]models.PortfolioSuggestion, error)
}

// PortfolioOptions configures portfolio suggestions.
type PortfolioOptions struct {
	// Goal selects the build: "balanced", "income", "growth", or "value".
	Goal string
	// Stocks is the target number of holdings.
	Stocks int
	// MaxPerSector caps holdings per sector for the balanced build.
	MaxPerSector int
}

// ReportService renders analysis output for export.
type ReportService interface {
	// WriteCSV writes analyses as CSV rows.
	WriteCSV(ctx context.Context, analyses []models.Analysis, path string) error

	// WriteSummary writes a plain-text summary report.
	WriteSummary(ctx context.Context, analyses []models.Analysis, path string) error

	// WriteScoreChart renders the composite score distribution as a PNG.
	WriteScoreChart(ctx context.Context, analyses []models.Analysis, path string) error
}
