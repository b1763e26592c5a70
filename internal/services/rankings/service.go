// Package rankings produces ranked listings and portfolio suggestions
// from completed analyses.
package rankings

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/interfaces"
	"github.com/chandeepa/cse-research/internal/models"
)

const (
	defaultPortfolioSize = 10
	defaultMaxPerSector  = 3
)

// Service implements interfaces.RankingService.
type Service struct {
	config *common.Config
	logger *common.Logger
}

// NewService creates a ranking service.
func NewService(config *common.Config, logger *common.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// categoryScore extracts the ranking key for a category. "composite"
// uses the composite score; any other category must name a component
// score.
func categoryScore(a models.Analysis, category string) (float64, bool) {
	if category == "composite" {
		return float64(a.Composite), true
	}
	return a.Scores.Component(category)
}

// TopStocks returns the top n analyses for a category, best first.
func (s *Service) TopStocks(ctx context.Context, analyses []models.Analysis, category string, n int) (*models.RankingResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = "composite"
	}
	if _, ok := categoryScore(models.Analysis{}, category); !ok {
		return nil, fmt.Errorf("unknown ranking category: %s", category)
	}

	ranked := make([]models.Analysis, len(analyses))
	copy(ranked, analyses)
	sort.SliceStable(ranked, func(a, b int) bool {
		sa, _ := categoryScore(ranked[a], category)
		sb, _ := categoryScore(ranked[b], category)
		if sa != sb {
			return sa > sb
		}
		return ranked[a].Symbol < ranked[b].Symbol
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	entries := make([]models.RankingEntry, len(ranked))
	for i, a := range ranked {
		score, _ := categoryScore(a, category)
		entries[i] = models.RankingEntry{
			Rank:           i + 1,
			Symbol:         a.Symbol,
			Name:           a.Name,
			Sector:         a.Sector,
			Score:          score,
			Composite:      a.Composite,
			Grade:          a.Grade,
			Recommendation: a.Recommendation,
		}
	}

	return &models.RankingResult{
		Category:    category,
		Entries:     entries,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// RankBySector ranks companies by composite score within each sector.
func (s *Service) RankBySector(ctx context.Context, analyses []models.Analysis) (map[string]*models.RankingResult, error) {
	bySector := make(map[string][]models.Analysis)
	for _, a := range analyses {
		bySector[a.Sector] = append(bySector[a.Sector], a)
	}

	out := make(map[string]*models.RankingResult, len(bySector))
	for sector, group := range bySector {
		res, err := s.TopStocks(ctx, group, "composite", 0)
		if err != nil {
			return nil, err
		}
		res.Category = sector
		out[sector] = res
	}
	return out, nil
}

// BestCategory labels each company with the component score it ranks
// highest on.
func (s *Service) BestCategory(ctx context.Context, analyses []models.Analysis) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	categories := []string{
		"value_score", "quality_score", "safety_score",
		"dividend_score", "growth_score", "momentum_score",
	}

	out := make(map[string]string, len(analyses))
	for _, a := range analyses {
		best := categories[0]
		bestScore, _ := a.Scores.Component(best)
		for _, c := range categories[1:] {
			if score, _ := a.Scores.Component(c); score > bestScore {
				best, bestScore = c, score
			}
		}
		out[a.Symbol] = strings.TrimSuffix(best, "_score")
	}
	return out, nil
}

// SuggestPortfolio builds a suggestion list for a goal. The balanced
// build caps holdings per sector; the income, growth, and value builds
// pick the top scorers on the matching component among investable
// grades.
func (s *Service) SuggestPortfolio(ctx context.Context, analyses []models.Analysis, opts interfaces.PortfolioOptions) ([]models.PortfolioSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	size := opts.Stocks
	if size <= 0 {
		size = defaultPortfolioSize
	}
	maxPerSector := opts.MaxPerSector
	if maxPerSector <= 0 {
		maxPerSector = defaultMaxPerSector
	}

	goal := strings.ToLower(strings.TrimSpace(opts.Goal))
	if goal == "" {
		goal = "balanced"
	}

	// Distressed and weak companies never enter a suggestion.
	var pool []models.Analysis
	for _, a := range analyses {
		if a.Recommendation == models.RecAvoidDistress ||
			a.Recommendation == models.RecAvoidWeak ||
			a.Grade > models.GradeC {
			continue
		}
		pool = append(pool, a)
	}

	var picks []models.Analysis
	switch goal {
	case "balanced":
		sortByComposite(pool)
		perSector := make(map[string]int)
		for _, a := range pool {
			if len(picks) >= size {
				break
			}
			if perSector[a.Sector] >= maxPerSector {
				continue
			}
			perSector[a.Sector]++
			picks = append(picks, a)
		}
	case "income":
		picks = topByComponent(pool, "dividend_score", size)
	case "growth":
		picks = topByComponent(pool, "growth_score", size)
	case "value":
		picks = topByComponent(pool, "value_score", size)
	default:
		return nil, fmt.Errorf("unknown portfolio goal: %s", goal)
	}

	if len(picks) == 0 {
		return []models.PortfolioSuggestion{}, nil
	}

	weight := round2(100 / float64(len(picks)))
	out := make([]models.PortfolioSuggestion, len(picks))
	for i, a := range picks {
		out[i] = models.PortfolioSuggestion{
			Symbol:    a.Symbol,
			Name:      a.Name,
			Sector:    a.Sector,
			Composite: a.Composite,
			Grade:     a.Grade,
			Weight:    weight,
			Rationale: rationale(goal, a),
		}
	}

	s.logger.Info().
		Str("goal", goal).
		Int("holdings", len(out)).
		Msg("Portfolio suggestion built")

	return out, nil
}

func sortByComposite(pool []models.Analysis) {
	sort.SliceStable(pool, func(a, b int) bool {
		if pool[a].Composite != pool[b].Composite {
			return pool[a].Composite > pool[b].Composite
		}
		return pool[a].Symbol < pool[b].Symbol
	})
}

func topByComponent(pool []models.Analysis, component string, size int) []models.Analysis {
	sorted := make([]models.Analysis, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(a, b int) bool {
		sa, _ := sorted[a].Scores.Component(component)
		sb, _ := sorted[b].Scores.Component(component)
		if sa != sb {
			return sa > sb
		}
		return sorted[a].Symbol < sorted[b].Symbol
	})
	if size < len(sorted) {
		sorted = sorted[:size]
	}
	return sorted
}

func rationale(goal string, a models.Analysis) string {
	switch goal {
	case "income":
		return fmt.Sprintf("Dividend score %.0f, grade %s", a.Scores.Dividend, a.Grade)
	case "growth":
		return fmt.Sprintf("Growth score %.0f, grade %s", a.Scores.Growth, a.Grade)
	case "value":
		return fmt.Sprintf("Value score %.0f, grade %s", a.Scores.Value, a.Grade)
	default:
		return fmt.Sprintf("Composite %d, grade %s", a.Composite, a.Grade)
	}
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
