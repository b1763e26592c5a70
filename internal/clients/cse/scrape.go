package cse

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/chandeepa/cse-research/internal/models"
)

// profileFieldLabels maps the labels on the company profile page to
// canonical record keys. Matching is case-insensitive on a normalised
// label.
var profileFieldLabels = map[string]string{
	"last traded price":  "last_traded_price",
	"market cap":         "market_cap",
	"earnings per share": "eps",
	"eps":                "eps",
	"net asset value":    "nav",
	"p/e ratio":          "pe_ratio",
	"p/bv ratio":         "pb_ratio",
	"dividend yield":     "dividend_yield",
	"dividend per share": "dividend_per_share",
	"52 week high":       "52_week_high",
	"52 week low":        "52_week_low",
	"shares in issue":    "shares_outstanding",
}

// ScrapeCompanyProfile parses fundamentals off the public company
// profile page. Used as a fallback when the JSON API omits a symbol.
// Values the page does not carry stay absent from the record.
func (c *Client) ScrapeCompanyProfile(ctx context.Context, symbol string) (models.CompanyRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	pageURL := fmt.Sprintf("%s/../pages/company-profile/company-profile.component.html?symbol=%s",
		c.baseURL, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    "profile page unavailable",
			Endpoint:   "company-profile",
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile page: %w", err)
	}

	rec := ParseCompanyProfile(doc)
	rec["symbol"] = symbol

	c.logger.Debug().
		Str("symbol", symbol).
		Int("fields", len(rec)).
		Msg("Company profile scraped")
	return rec, nil
}

// ParseCompanyProfile extracts labeled values from a profile document.
// The page lays fundamentals out as label/value table cell pairs.
func ParseCompanyProfile(doc *goquery.Document) models.CompanyRecord {
	rec := models.CompanyRecord{}

	if name := strings.TrimSpace(doc.Find("h1, .company-name").First().Text()); name != "" {
		rec["name"] = name
	}
	if sector := strings.TrimSpace(doc.Find(".sector-name, .company-sector").First().Text()); sector != "" {
		rec["sector"] = sector
	}

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		label := normaliseLabel(cells.Eq(0).Text())
		key, ok := profileFieldLabels[label]
		if !ok {
			return
		}
		if v, ok := models.CoerceFloat(strings.TrimSpace(cells.Eq(1).Text())); ok {
			rec[key] = v
		}
	})

	return rec
}

func normaliseLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ":")
	s = strings.Join(strings.Fields(s), " ")
	// Labels sometimes carry a currency suffix like "(rs.)".
	if i := strings.Index(s, "("); i > 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}
