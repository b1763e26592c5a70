// Package cse provides a client for the Colombo Stock Exchange public API
package cse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/models"
)

const (
	DefaultBaseURL   = "https://www.cse.lk/api"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 2 // requests per second; the exchange API is unofficial
)

// Client implements the CSEClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new CSE client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("CSE API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// post performs a rate-limited form POST. The exchange API takes its
// parameters form-encoded and answers JSON.
func (c *Client) post(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var body io.Reader
	if params != nil {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", c.baseURL+path).Msg("CSE API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(raw),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// tradeSummaryResponse mirrors the tradeSummary payload. Numeric fields
// arrive as numbers or formatted strings depending on the endpoint mood.
type tradeSummaryResponse struct {
	ReqTradeSummery []map[string]any `json:"reqTradeSummery"`
}

// TradeSummary returns the daily trade summary for all listed companies.
func (c *Client) TradeSummary(ctx context.Context) ([]models.CompanyRecord, error) {
	var payload tradeSummaryResponse
	if err := c.post(ctx, "/tradeSummary", nil, &payload); err != nil {
		return nil, err
	}

	records := make([]models.CompanyRecord, 0, len(payload.ReqTradeSummery))
	for _, row := range payload.ReqTradeSummery {
		rec := models.CompanyRecord{}
		setString(rec, "symbol", row, "symbol")
		setString(rec, "name", row, "name")
		setFloat(rec, "last_traded_price", row, "lastTradedPrice", "price")
		setFloat(rec, "change_percent", row, "percentageChange", "change")
		setFloat(rec, "market_cap", row, "marketCap")
		setFloat(rec, "52_week_high", row, "high52Week", "hi52wk")
		setFloat(rec, "52_week_low", row, "low52Week", "lo52wk")
		setFloat(rec, "volume", row, "tradeVolume", "volume")
		if rec.Symbol() == "" {
			continue
		}
		records = append(records, rec)
	}

	c.logger.Info().Int("companies", len(records)).Msg("Trade summary fetched")
	return records, nil
}

// companyInfoResponse mirrors the companyInfoSummery payload.
type companyInfoResponse struct {
	ReqSymbolInfo map[string]any `json:"reqSymbolInfo"`
	ReqLogo       map[string]any `json:"reqLogo"`
}

// CompanyInfo returns the detail record for one symbol.
func (c *Client) CompanyInfo(ctx context.Context, symbol string) (models.CompanyRecord, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var payload companyInfoResponse
	if err := c.post(ctx, "/companyInfoSummery", params, &payload); err != nil {
		return nil, err
	}
	if len(payload.ReqSymbolInfo) == 0 {
		return nil, fmt.Errorf("no company info for symbol %s", symbol)
	}

	row := payload.ReqSymbolInfo
	rec := models.CompanyRecord{"symbol": symbol}
	setString(rec, "name", row, "name")
	setString(rec, "sector", row, "sectorName", "sector")
	setFloat(rec, "last_traded_price", row, "lastTradedPriceValue", "lastTradedPrice")
	setFloat(rec, "change_percent", row, "changePercentage")
	setFloat(rec, "market_cap", row, "marketCap")
	setFloat(rec, "eps", row, "eps")
	setFloat(rec, "nav", row, "nav", "bookValuePerShare")
	setFloat(rec, "pe_ratio", row, "per", "peRatio")
	setFloat(rec, "pb_ratio", row, "pbr", "pbRatio")
	setFloat(rec, "dividend_yield", row, "dividendYield", "dy")
	setFloat(rec, "dividend_per_share", row, "dividendPerShare", "dps")
	setFloat(rec, "52_week_high", row, "hiTrade52Wk", "high52Week")
	setFloat(rec, "52_week_low", row, "lowTrade52Wk", "low52Week")
	setFloat(rec, "shares_outstanding", row, "sharesIssued")

	return rec, nil
}

// marketStatusResponse mirrors the marketStatus payload.
type marketStatusResponse struct {
	Status string `json:"status"`
}

// MarketStatus reports whether the market is open.
func (c *Client) MarketStatus(ctx context.Context) (string, error) {
	var payload marketStatusResponse
	if err := c.post(ctx, "/marketStatus", nil, &payload); err != nil {
		return "", err
	}
	return payload.Status, nil
}

// setFloat copies the first present alias into the record under the
// canonical key, coercing formatted strings on the way.
func setFloat(rec models.CompanyRecord, key string, row map[string]any, aliases ...string) {
	for _, alias := range aliases {
		raw, ok := row[alias]
		if !ok || raw == nil {
			continue
		}
		if v, ok := models.CoerceFloat(raw); ok {
			rec[key] = v
			return
		}
	}
}

func setString(rec models.CompanyRecord, key string, row map[string]any, aliases ...string) {
	for _, alias := range aliases {
		if s, ok := row[alias].(string); ok && s != "" {
			rec[key] = strings.TrimSpace(s)
			return
		}
	}
}
