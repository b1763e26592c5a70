// Package screener filters the company universe against criteria and
// named strategies.
package screener

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/models"
)

// Service implements interfaces.ScreenerService.
type Service struct {
	config *common.Config
	logger *common.Logger
}

// NewService creates a screener service.
func NewService(config *common.Config, logger *common.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// Screen applies the criteria as a conjunction, in order. Records with
// a missing or non-finite value for a criterion column are excluded by
// that criterion.
func (s *Service) Screen(ctx context.Context, records []models.CompanyRecord, criteria []models.ScreenCriterion) ([]models.CompanyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := records
	for _, c := range criteria {
		var next []models.CompanyRecord
		for _, rec := range matched {
			ok, err := matches(rec, c)
			if err != nil {
				return nil, err
			}
			if ok {
				next = append(next, rec)
			}
		}
		s.logger.Debug().
			Str("column", c.Column).
			Str("op", string(c.Op)).
			Int("remaining", len(next)).
			Msg("Applied screen criterion")
		matched = next
	}
	if matched == nil {
		matched = []models.CompanyRecord{}
	}
	return matched, nil
}

func matches(rec models.CompanyRecord, c models.ScreenCriterion) (bool, error) {
	v, ok := rec.Float(c.Column)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return false, nil
	}
	switch c.Op {
	case models.OpGT:
		return v > c.Value, nil
	case models.OpLT:
		return v < c.Value, nil
	case models.OpGTE:
		return v >= c.Value, nil
	case models.OpLTE:
		return v <= c.Value, nil
	case models.OpEQ:
		return v == c.Value, nil
	case models.OpBetween:
		return v >= c.Value && v <= c.Value2, nil
	default:
		return false, fmt.Errorf("unknown screen operator: %s", c.Op)
	}
}

// RunStrategy runs one named screening strategy.
func (s *Service) RunStrategy(ctx context.Context, records []models.CompanyRecord, name string) (*models.ScreenResult, error) {
	def, ok := s.strategyDefs()[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown screening strategy: %s", name)
	}
	return s.runDef(ctx, records, def)
}

// RunAllStrategies runs every named strategy over the same universe.
func (s *Service) RunAllStrategies(ctx context.Context, records []models.CompanyRecord) (map[string]*models.ScreenResult, error) {
	out := make(map[string]*models.ScreenResult)
	for name, def := range s.strategyDefs() {
		res, err := s.runDef(ctx, records, def)
		if err != nil {
			return nil, err
		}
		out[name] = res
	}
	return out, nil
}

// StrategyOverlap reports which companies pass multiple strategies,
// sorted by pass count descending.
func (s *Service) StrategyOverlap(ctx context.Context, records []models.CompanyRecord) ([]models.StrategyOverlap, error) {
	results, err := s.RunAllStrategies(ctx, records)
	if err != nil {
		return nil, err
	}

	bySymbol := make(map[string]*models.StrategyOverlap)
	for name, res := range results {
		for _, rec := range res.Companies {
			sym := rec.Symbol()
			o, ok := bySymbol[sym]
			if !ok {
				o = &models.StrategyOverlap{
					Symbol: sym,
					Name:   rec.Name(),
					Sector: rec.Sector(),
				}
				bySymbol[sym] = o
			}
			o.Strategies = append(o.Strategies, name)
			o.Count++
		}
	}

	out := make([]models.StrategyOverlap, 0, len(bySymbol))
	for _, o := range bySymbol {
		sort.Strings(o.Strategies)
		out = append(out, *o)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Symbol < out[b].Symbol
	})
	return out, nil
}

// ScreenSector runs a strategy restricted to companies whose sector
// contains the given name, case-insensitively.
func (s *Service) ScreenSector(ctx context.Context, records []models.CompanyRecord, sector, strategy string) (*models.ScreenResult, error) {
	needle := strings.ToLower(strings.TrimSpace(sector))
	var scoped []models.CompanyRecord
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Sector()), needle) {
			scoped = append(scoped, rec)
		}
	}

	res, err := s.RunStrategy(ctx, scoped, strategy)
	if err != nil {
		return nil, err
	}
	res.Strategy = fmt.Sprintf("%s (%s)", res.Strategy, sector)
	return res, nil
}

// CompareSectors aggregates composite, P/E, and yield averages per
// sector, sorted by average composite descending.
func (s *Service) CompareSectors(ctx context.Context, analyses []models.Analysis) ([]models.SectorSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type acc struct {
		summary  models.SectorSummary
		peSum    float64
		peN      int
		dySum    float64
		dyN      int
		scoreSum int
	}
	sectors := make(map[string]*acc)

	for _, a := range analyses {
		sec := a.Sector
		ac, ok := sectors[sec]
		if !ok {
			ac = &acc{summary: models.SectorSummary{Sector: sec}}
			sectors[sec] = ac
		}
		ac.summary.Companies++
		ac.scoreSum += a.Composite
		if a.Composite > ac.summary.TopScore || ac.summary.TopSymbol == "" {
			ac.summary.TopScore = a.Composite
			ac.summary.TopSymbol = a.Symbol
		}
		if a.Record != nil {
			if pe, ok := a.Record.Float("pe_ratio"); ok && pe > 0 {
				ac.peSum += pe
				ac.peN++
			}
			if dy, ok := a.Record.Float("dividend_yield"); ok && dy > 0 {
				ac.dySum += dy
				ac.dyN++
			}
		}
	}

	out := make([]models.SectorSummary, 0, len(sectors))
	for _, ac := range sectors {
		ac.summary.AvgComposite = round2(float64(ac.scoreSum) / float64(ac.summary.Companies))
		if ac.peN > 0 {
			ac.summary.AvgPE = round2(ac.peSum / float64(ac.peN))
		}
		if ac.dyN > 0 {
			ac.summary.AvgDividend = round2(ac.dySum / float64(ac.dyN))
		}
		out = append(out, ac.summary)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].AvgComposite != out[b].AvgComposite {
			return out[a].AvgComposite > out[b].AvgComposite
		}
		return out[a].Sector < out[b].Sector
	})
	return out, nil
}

// Strategies lists the available strategy names, sorted.
func (s *Service) Strategies() []string {
	defs := s.strategyDefs()
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Service) runDef(ctx context.Context, records []models.CompanyRecord, def strategyDef) (*models.ScreenResult, error) {
	matched, err := s.Screen(ctx, records, def.criteria)
	if err != nil {
		return nil, err
	}
	if def.filter != nil {
		var next []models.CompanyRecord
		for _, rec := range matched {
			if def.filter(rec) {
				next = append(next, rec)
			}
		}
		if next == nil {
			next = []models.CompanyRecord{}
		}
		matched = next
	}
	if def.sort != nil {
		sort.SliceStable(matched, def.sort(matched))
	}

	s.logger.Info().
		Str("strategy", def.name).
		Int("screened", len(records)).
		Int("matched", len(matched)).
		Msg("Screen complete")

	return &models.ScreenResult{
		Strategy:    def.name,
		Description: def.description,
		Total:       len(records),
		Matched:     len(matched),
		Companies:   matched,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
