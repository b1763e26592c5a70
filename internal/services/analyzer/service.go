// Package analyzer orchestrates the derive, score, and classify pipeline.
package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/chandeepa/cse-research/internal/analysis"
	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/interfaces"
	"github.com/chandeepa/cse-research/internal/models"
)

const defaultWorkers = 8

// Service implements interfaces.AnalyzerService.
type Service struct {
	config *common.Config
	logger *common.Logger
}

// NewService creates an analyzer service.
func NewService(config *common.Config, logger *common.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// AnalyzeAll runs the pipeline over the universe and returns analyses
// sorted by composite score descending, symbol ascending on ties.
func (s *Service) AnalyzeAll(ctx context.Context, records []models.CompanyRecord, opts interfaces.AnalyzeOptions) ([]models.Analysis, error) {
	if len(records) == 0 {
		return []models.Analysis{}, nil
	}

	strategy, err := s.buildStrategy(opts.Strategy, records)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(records) {
		workers = len(records)
	}

	s.logger.Info().
		Str("strategy", strategy.Name()).
		Int("companies", len(records)).
		Int("workers", workers).
		Msg("Starting analysis run")

	results := make([]models.Analysis, len(records))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, rec models.CompanyRecord) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.analyzeRecord(rec, strategy, opts.IncludeRecords)
		}(i, rec)
	}
	wg.Wait()

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Composite != results[b].Composite {
			return results[a].Composite > results[b].Composite
		}
		return results[a].Symbol < results[b].Symbol
	})

	s.logger.Info().
		Int("analyzed", len(results)).
		Msg("Analysis run complete")

	return results, nil
}

// AnalyzeOne runs the comprehensive pipeline for a single record.
func (s *Service) AnalyzeOne(ctx context.Context, rec models.CompanyRecord) (*models.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a := s.analyzeRecord(rec, analysis.NewComprehensiveStrategy(), true)
	return &a, nil
}

func (s *Service) analyzeRecord(rec models.CompanyRecord, strategy analysis.ScoringStrategy, includeRecord bool) models.Analysis {
	enriched := analysis.DeriveRatios(rec, s.assumptions())

	scores := strategy.Score(enriched)
	composite := strategy.Composite(scores)

	investment, grade, recommendation := analysis.Classify(enriched, composite)
	signals := analysis.AssessValuation(enriched, s.thresholds(), s.assumptions())

	a := models.Analysis{
		Symbol:         enriched.Symbol(),
		Name:           enriched.Name(),
		Sector:         enriched.Sector(),
		Scores:         scores,
		Investment:     investment,
		Composite:      int(composite),
		Grade:          grade,
		Recommendation: recommendation,
		Signals:        signals.Names(),
		ValueAssess:    signals.Status,
	}
	if includeRecord {
		a.Record = enriched
	}
	return a
}

func (s *Service) buildStrategy(name string, records []models.CompanyRecord) (analysis.ScoringStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "comprehensive":
		return analysis.NewComprehensiveStrategy(), nil
	case "ranker":
		enriched := make([]models.CompanyRecord, len(records))
		for i, rec := range records {
			enriched[i] = analysis.DeriveRatios(rec, s.assumptions())
		}
		return analysis.NewRankerStrategy(enriched), nil
	default:
		return nil, fmt.Errorf("unknown scoring strategy: %s", name)
	}
}

func (s *Service) assumptions() models.MarketAssumptions {
	a := s.config.Assumptions
	return models.MarketAssumptions{
		TaxRate:          a.TaxRate,
		RiskFreeRate:     a.RiskFreeRate,
		BondYield:        a.BondYield,
		DefaultEPSGrowth: a.DefaultEPSGrowth,
		DefaultPayout:    a.DefaultPayout,
	}
}

func (s *Service) thresholds() analysis.ValuationThresholds {
	t := s.config.Thresholds
	return analysis.ValuationThresholds{
		PEMax:            t.PEMax,
		PBMax:            t.PBMax,
		DebtEquityMax:    t.DebtEquityMax,
		DividendYieldMin: t.DividendYieldMin,
		ROEMin:           t.ROEMin,
		PEGMax:           t.PEGMax,
		MarketCapMin:     t.MarketCapMin,
	}
}
