package interfaces

import (
	"context"

	"github.com/chandeepa/cse-research/internal/models"
)

// CSEClient fetches market data from the Colombo Stock Exchange.
type CSEClient interface {
	// TradeSummary returns the daily trade summary for all listed
	// companies.
	TradeSummary(ctx context.Context) ([]models.CompanyRecord, error)

	// CompanyInfo returns the detail record for one symbol.
	CompanyInfo(ctx context.Context, symbol string) (models.CompanyRecord, error)

	// MarketStatus reports whether the market is open.
	MarketStatus(ctx context.Context) (string, error)
}

// ReportExtractor pulls labeled line items out of published annual
// report PDFs.
type ReportExtractor interface {
	// Extract parses a PDF file and returns the line items it could
	// identify, keyed by canonical field name.
	Extract(path string) (map[string]float64, error)
}
