package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/chandeepa/cse-research/internal/models"
)

// scoreBuckets are the composite score histogram bins, aligned with the
// grade ladder boundaries.
var scoreBuckets = []struct {
	label string
	lo    int
	hi    int
}{
	{"0-34", 0, 34},
	{"35-49", 35, 49},
	{"50-64", 50, 64},
	{"65-79", 65, 79},
	{"80-100", 80, 100},
}

// RenderScoreChart renders the composite score distribution as a PNG
// bar chart. Returns raw PNG bytes.
func RenderScoreChart(analyses []models.Analysis) ([]byte, error) {
	if len(analyses) == 0 {
		return nil, fmt.Errorf("no analyses to chart")
	}

	counts := make([]int, len(scoreBuckets))
	for _, a := range analyses {
		for i, b := range scoreBuckets {
			if a.Composite >= b.lo && a.Composite <= b.hi {
				counts[i]++
				break
			}
		}
	}

	bars := make([]chart.Value, len(scoreBuckets))
	for i, b := range scoreBuckets {
		bars[i] = chart.Value{
			Label: b.label,
			Value: float64(counts[i]),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("2563eb"), // blue-600
				StrokeColor: drawing.ColorFromHex("1e40af"), // blue-800
				StrokeWidth: 1,
			},
		}
	}

	graph := chart.BarChart{
		Title:  "Composite Score Distribution",
		Width:  700,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		BarWidth: 80,
		XAxis: chart.Style{
			FontSize: 10,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteScoreChart renders the composite score distribution to a PNG file.
func (s *Service) WriteScoreChart(ctx context.Context, analyses []models.Analysis, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	png, err := RenderScoreChart(analyses)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, png, 0644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	s.logger.Info().
		Str("path", path).
		Msg("Score chart written")
	return nil
}
