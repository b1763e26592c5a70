// Package reportpdf extracts labeled financial line items from annual
// report PDFs.
package reportpdf

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/models"
)

// lineItemLabels maps statement captions to canonical record keys.
// Matching is case-insensitive on the start of a line; the first number
// following the caption is taken as the current-year figure.
var lineItemLabels = []struct {
	label string
	key   string
}{
	{"revenue", "revenue"},
	{"turnover", "revenue"},
	{"gross profit", "gross_profit"},
	{"operating profit", "operating_income"},
	{"profit from operations", "operating_income"},
	{"profit for the year", "net_profit"},
	{"profit after tax", "net_profit"},
	{"total assets", "total_assets"},
	{"total liabilities", "total_liabilities"},
	{"total equity", "shareholders_equity"},
	{"shareholders' funds", "shareholders_equity"},
	{"cash generated from operations", "operating_cash_flow"},
	{"net cash from operating activities", "operating_cash_flow"},
	{"dividends paid", "dividends_paid"},
	{"basic earnings per share", "eps"},
	{"earnings per share", "eps"},
	{"net assets per share", "nav"},
}

// numberPattern matches the first figure on a line: optional
// parentheses for negatives, thousands separators, decimals.
var numberPattern = regexp.MustCompile(`\(?-?[\d,]+(?:\.\d+)?\)?`)

// Extractor implements interfaces.ReportExtractor over local PDF files.
type Extractor struct {
	logger *common.Logger
}

// NewExtractor creates a report extractor.
func NewExtractor(logger *common.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract parses a PDF file and returns the line items it could
// identify. Extraction is best-effort; items the report does not state
// in a recognisable form are simply absent from the result.
func (e *Extractor) Extract(path string) (map[string]float64, error) {
	text, err := extractText(path)
	if err != nil {
		return nil, err
	}

	items := ParseLineItems(text)

	e.logger.Debug().
		Str("path", path).
		Int("items", len(items)).
		Msg("Annual report parsed")
	return items, nil
}

// extractText pulls plain text from every page of a PDF.
func extractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	totalPages := r.NumPage()

	for i := 1; i <= totalPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// ParseLineItems scans statement text for labeled figures. The first
// match per canonical key wins, so income-statement captions beat
// repeated notes further into the document.
func ParseLineItems(text string) map[string]float64 {
	items := make(map[string]float64)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)

		for _, li := range lineItemLabels {
			if _, done := items[li.key]; done {
				continue
			}
			if !strings.HasPrefix(lower, li.label) {
				continue
			}
			rest := trimmed[len(li.label):]
			if v, ok := parseFigure(rest); ok {
				items[li.key] = v
			}
			break
		}
	}

	return items
}

// parseFigure extracts the first number from a caption remainder.
// Parenthesised figures are negative, per statement convention.
func parseFigure(s string) (float64, bool) {
	match := numberPattern.FindString(s)
	if match == "" {
		return 0, false
	}

	negative := strings.HasPrefix(match, "(") && strings.HasSuffix(match, ")")
	match = strings.Trim(match, "()")

	v, ok := models.CoerceFloat(match)
	if !ok {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}
