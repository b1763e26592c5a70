// Package report renders analysis output to CSV, text, and chart files.
package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/models"
)

// Service implements interfaces.ReportService.
type Service struct {
	config *common.Config
	logger *common.Logger
}

// NewService creates a report service.
func NewService(config *common.Config, logger *common.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

var csvHeader = []string{
	"symbol", "name", "sector",
	"composite_score", "grade", "recommendation",
	"value_score", "quality_score", "safety_score",
	"dividend_score", "growth_score", "momentum_score",
	"piotroski_score", "altman_z_score", "beneish_m_score",
	"graham_number", "graham_upside", "magic_formula_rank",
	"valuation_status",
}

// WriteCSV writes the analyses to a CSV file, one row per company in
// the given order.
func (s *Service) WriteCSV(ctx context.Context, analyses []models.Analysis, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	if err := CSVTo(f, analyses); err != nil {
		return err
	}

	s.logger.Info().
		Str("path", path).
		Int("rows", len(analyses)).
		Msg("CSV report written")
	return nil
}

// CSVTo streams the analyses as CSV to a writer.
func CSVTo(out io.Writer, analyses []models.Analysis) error {
	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, a := range analyses {
		row := []string{
			a.Symbol, a.Name, a.Sector,
			strconv.Itoa(a.Composite), a.Grade.String(), a.Recommendation,
			formatScore(a.Scores.Value), formatScore(a.Scores.Quality), formatScore(a.Scores.Safety),
			formatScore(a.Scores.Dividend), formatScore(a.Scores.Growth), formatScore(a.Scores.Momentum),
			strconv.Itoa(a.Investment.Piotroski),
			strconv.FormatFloat(a.Investment.AltmanZ, 'f', 2, 64),
			strconv.FormatFloat(a.Investment.BeneishM, 'f', 2, 64),
			strconv.FormatFloat(a.Investment.GrahamNumber, 'f', 2, 64),
			strconv.FormatFloat(a.Investment.GrahamUpside, 'f', 2, 64),
			strconv.Itoa(a.Investment.MagicFormulaRank),
			a.ValueAssess,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", a.Symbol, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}

// WriteSummary writes a plain-text summary: counts per grade and
// recommendation, plus the top ten companies.
func (s *Service) WriteSummary(ctx context.Context, analyses []models.Analysis, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CSE Research Summary\n")
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Companies analyzed: %d\n\n", len(analyses))

	grades := map[string]int{}
	recs := map[string]int{}
	for _, a := range analyses {
		grades[a.Grade.String()]++
		recs[a.Recommendation]++
	}

	fmt.Fprintf(&b, "Grade distribution:\n")
	for _, g := range []string{"A", "B", "C", "D", "F"} {
		if n := grades[g]; n > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", g, n)
		}
	}

	fmt.Fprintf(&b, "\nRecommendations:\n")
	for _, r := range []string{
		models.RecStrongBuy, models.RecBuy, models.RecHold, models.RecWeakHold,
		models.RecSellAvoid, models.RecAvoidDistress, models.RecAvoidWeak,
	} {
		if n := recs[r]; n > 0 {
			fmt.Fprintf(&b, "  %-30s %d\n", r, n)
		}
	}

	fmt.Fprintf(&b, "\nTop companies by composite score:\n")
	top := analyses
	if len(top) > 10 {
		top = top[:10]
	}
	for i, a := range top {
		fmt.Fprintf(&b, "  %2d. %-12s %-30s %3d  %s  %s\n",
			i+1, a.Symbol, a.Name, a.Composite, a.Grade, a.Recommendation)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	s.logger.Info().
		Str("path", path).
		Msg("Summary report written")
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
