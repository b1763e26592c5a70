package models

import (
	"encoding/json"
	"math"
)

// RatioKind distinguishes a computed ratio value from its sentinel states.
type RatioKind int

const (
	// RatioDefined means the ratio was computed from real or proxied inputs.
	RatioDefined RatioKind = iota
	// RatioUndefined means the ratio could not be computed (zero denominator
	// with no sensible substitute). Exported as NaN.
	RatioUndefined
	// RatioNoLeverage marks coverage ratios for companies carrying no debt,
	// where the ratio is effectively infinite. Exported as 999.
	RatioNoLeverage
)

// NoLeverageSentinel is the exported value for coverage ratios of
// debt-free companies.
const NoLeverageSentinel = 999.0

// Ratio is a derived financial ratio with an explicit sentinel state.
type Ratio struct {
	Value float64
	Kind  RatioKind
}

// Defined returns a computed ratio.
func Defined(v float64) Ratio {
	return Ratio{Value: v, Kind: RatioDefined}
}

// Undefined returns the not-computable sentinel.
func Undefined() Ratio {
	return Ratio{Kind: RatioUndefined}
}

// NoLeverage returns the debt-free coverage sentinel.
func NoLeverage() Ratio {
	return Ratio{Kind: RatioNoLeverage}
}

// IsDefined reports whether the ratio holds a computed value.
func (r Ratio) IsDefined() bool {
	return r.Kind == RatioDefined
}

// Float exports the ratio for storage and comparison: the computed value,
// NaN for undefined, or 999 for the no-leverage sentinel. Comparisons
// against NaN are always false, so undefined ratios fall out of threshold
// checks without special casing.
func (r Ratio) Float() float64 {
	switch r.Kind {
	case RatioUndefined:
		return math.NaN()
	case RatioNoLeverage:
		return NoLeverageSentinel
	default:
		return r.Value
	}
}

// MarshalJSON encodes undefined ratios as null since JSON has no NaN.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.Kind == RatioUndefined {
		return []byte("null"), nil
	}
	return json.Marshal(r.Float())
}

// Round returns the ratio rounded to n decimal places; sentinels pass
// through unchanged.
func (r Ratio) Round(n int) Ratio {
	if r.Kind != RatioDefined {
		return r
	}
	pow := math.Pow(10, float64(n))
	return Defined(math.Round(r.Value*pow) / pow)
}
