// Package models defines the core data structures for CSE company research
package models

import (
	"strconv"
	"strings"
	"time"
)

// CompanyRecord is a single company's raw and derived metrics keyed by
// metric name. Values arrive from scraped JSON, CSV imports, and PDF
// extraction, so numerics may be float64, int, or formatted strings.
type CompanyRecord map[string]any

// Symbol returns the company's ticker symbol, or "" when absent.
func (r CompanyRecord) Symbol() string {
	if s, ok := r["symbol"].(string); ok {
		return s
	}
	return ""
}

// Name returns the company's display name, falling back to the symbol.
func (r CompanyRecord) Name() string {
	if s, ok := r["name"].(string); ok && s != "" {
		return s
	}
	return r.Symbol()
}

// Sector returns the company's sector classification, or "Unknown".
func (r CompanyRecord) Sector() string {
	if s, ok := r["sector"].(string); ok && s != "" {
		return s
	}
	return "Unknown"
}

// Has reports whether the record carries a non-nil value for key.
func (r CompanyRecord) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Float returns the metric as a float64 and whether the value was
// present and coercible.
func (r CompanyRecord) Float(key string) (float64, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, false
	}
	return CoerceFloat(v)
}

// FloatOr returns the metric as a float64, or def when the value is
// absent or not coercible.
func (r CompanyRecord) FloatOr(key string, def float64) float64 {
	if v, ok := r.Float(key); ok {
		return v
	}
	return def
}

// String returns the metric as a string, or "" when absent.
func (r CompanyRecord) String(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// Set stores a metric value, returning the record for chaining.
func (r CompanyRecord) Set(key string, value any) CompanyRecord {
	r[key] = value
	return r
}

// Clone returns a shallow copy of the record.
func (r CompanyRecord) Clone() CompanyRecord {
	out := make(CompanyRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// CoerceFloat converts scraped values to float64. Strings are cleaned of
// thousands separators, percent signs, and currency noise before parsing.
func CoerceFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		s := strings.TrimSpace(x)
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSuffix(s, "%")
		s = strings.TrimPrefix(s, "Rs.")
		s = strings.TrimPrefix(s, "LKR")
		s = strings.TrimSpace(s)
		if s == "" || s == "-" || strings.EqualFold(s, "n/a") {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// CompanySnapshot is the persisted form of a company record with
// collection metadata.
type CompanySnapshot struct {
	Symbol      string        `json:"symbol"`
	CollectedAt time.Time     `json:"collected_at"`
	Source      string        `json:"source"`
	Record      CompanyRecord `json:"record"`
}

// FetchMeta records the outcome of the latest exchange fetch.
type FetchMeta struct {
	FetchedAt time.Time `json:"fetched_at"`
	Count     int       `json:"count"`
	Source    string    `json:"source"`
}
