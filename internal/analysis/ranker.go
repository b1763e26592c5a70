package analysis

import (
	"math"
	"sort"

	"github.com/chandeepa/cse-research/internal/models"
)

// Ranker strategy composite weights.
var rankerWeights = map[string]float64{
	"value_score":    0.25,
	"growth_score":   0.20,
	"dividend_score": 0.15,
	"quality_score":  0.20,
	"momentum_score": 0.10,
	"safety_score":   0.10,
}

// columnStats holds the cross-sectional distribution of one input
// column over the fitted universe.
type columnStats struct {
	min, max float64
	// sorted valid values, for percentile ranking
	sorted []float64
	count  int
}

func (c *columnStats) normalize(v float64, higherIsBetter bool) float64 {
	if c.count == 0 {
		return 0
	}
	if c.max == c.min {
		return 50
	}
	n := (v - c.min) / (c.max - c.min) * 100
	if !higherIsBetter {
		n = 100 - n
	}
	return n
}

// percentile returns the average rank of v among the fitted values on a
// 0-100 scale, matching a pandas pct rank with average tie-breaking.
func (c *columnStats) percentile(v float64) float64 {
	if c.count == 0 {
		return 0
	}
	below := sort.SearchFloat64s(c.sorted, v)
	upTo := sort.Search(len(c.sorted), func(i int) bool { return c.sorted[i] > v })
	avgRank := (float64(below+1) + float64(upTo)) / 2
	return avgRank / float64(c.count) * 100
}

// RankerStrategy scores records relative to a fitted universe: each
// component normalizes its inputs against the cross-sectional min and
// max (or percentile rank) observed at construction. Unlike the
// comprehensive strategy, scores here are only meaningful within the
// universe the ranker was fitted on.
type RankerStrategy struct {
	pe     columnStats
	pb     columnStats
	eps    columnStats
	roe    columnStats
	growth columnStats
	yield  columnStats
	debt   columnStats
	mcap   columnStats
	change columnStats
}

// NewRankerStrategy fits the cross-sectional statistics over the given
// universe of records. An empty universe yields a ranker that scores
// everything zero.
func NewRankerStrategy(records []models.CompanyRecord) *RankerStrategy {
	r := &RankerStrategy{}
	r.pe = fitColumn(records, "pe_ratio", positiveOnly)
	r.pb = fitColumn(records, "pb_ratio", positiveOnly)
	r.eps = fitColumn(records, "eps", positiveOnly)
	r.roe = fitColumn(records, "roe", positiveOnly)
	r.growth = fitColumn(records, "eps_growth", anyFinite)
	r.yield = fitColumn(records, "dividend_yield", positiveOnly)
	r.debt = fitColumn(records, "debt_equity", nonNegative)
	r.mcap = fitColumn(records, "market_cap", positiveOnly)
	r.change = fitColumn(records, "change_percent", anyFinite)
	return r
}

func positiveOnly(v float64) bool { return !math.IsNaN(v) && v > 0 }
func nonNegative(v float64) bool  { return !math.IsNaN(v) && v >= 0 }
func anyFinite(v float64) bool    { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func fitColumn(records []models.CompanyRecord, key string, valid func(float64) bool) columnStats {
	var stats columnStats
	for _, rec := range records {
		v, ok := rec.Float(key)
		if !ok || !valid(v) {
			continue
		}
		if stats.count == 0 {
			stats.min, stats.max = v, v
		} else {
			stats.min = math.Min(stats.min, v)
			stats.max = math.Max(stats.max, v)
		}
		stats.sorted = append(stats.sorted, v)
		stats.count++
	}
	sort.Float64s(stats.sorted)
	return stats
}

func (r *RankerStrategy) Name() string { return "ranker" }

func (r *RankerStrategy) Score(rec models.CompanyRecord) models.ScoreSet {
	return models.ScoreSet{
		Value:    r.valueScore(rec),
		Growth:   r.growthScore(rec),
		Dividend: r.dividendScore(rec),
		Quality:  r.qualityScore(rec),
		Momentum: r.momentumScore(rec),
		Safety:   r.safetyScore(rec),
	}
}

// Composite is a plain weighted sum; components are already 0-100.
func (r *RankerStrategy) Composite(set models.ScoreSet) float64 {
	return set.Value*rankerWeights["value_score"] +
		set.Growth*rankerWeights["growth_score"] +
		set.Dividend*rankerWeights["dividend_score"] +
		set.Quality*rankerWeights["quality_score"] +
		set.Momentum*rankerWeights["momentum_score"] +
		set.Safety*rankerWeights["safety_score"]
}

// component accumulates weighted normalized inputs and averages by the
// weight of the columns that exist in the fitted universe.
type component struct {
	score      float64
	weightsSum float64
}

func (c *component) add(stats *columnStats, rec models.CompanyRecord, key string, weight float64, higherIsBetter bool, valid func(float64) bool) {
	if stats.count == 0 {
		return
	}
	c.weightsSum += weight
	v, ok := rec.Float(key)
	if !ok || !valid(v) {
		return
	}
	c.score += stats.normalize(v, higherIsBetter) * weight
}

func (c *component) addPercentile(stats *columnStats, rec models.CompanyRecord, key string, weight float64, valid func(float64) bool) {
	if stats.count == 0 {
		return
	}
	c.weightsSum += weight
	v, ok := rec.Float(key)
	if !ok || !valid(v) {
		return
	}
	c.score += stats.percentile(v) * weight
}

func (c *component) result() float64 {
	if c.weightsSum == 0 {
		return 0
	}
	return clamp(c.score/c.weightsSum, 0, 100)
}

func (r *RankerStrategy) valueScore(rec models.CompanyRecord) float64 {
	var c component
	c.add(&r.pe, rec, "pe_ratio", 0.35, false, positiveOnly)
	c.add(&r.pb, rec, "pb_ratio", 0.35, false, positiveOnly)
	c.add(&r.eps, rec, "eps", 0.30, true, positiveOnly)
	return c.result()
}

func (r *RankerStrategy) growthScore(rec models.CompanyRecord) float64 {
	var c component
	c.add(&r.roe, rec, "roe", 0.50, true, positiveOnly)
	c.add(&r.growth, rec, "eps_growth", 0.50, true, anyFinite)
	return c.result()
}

func (r *RankerStrategy) dividendScore(rec models.CompanyRecord) float64 {
	var c component
	c.add(&r.yield, rec, "dividend_yield", 1.0, true, positiveOnly)
	return c.result()
}

func (r *RankerStrategy) qualityScore(rec models.CompanyRecord) float64 {
	var c component
	c.add(&r.roe, rec, "roe", 0.50, true, positiveOnly)
	c.add(&r.debt, rec, "debt_equity", 0.50, false, nonNegative)
	return c.result()
}

func (r *RankerStrategy) momentumScore(rec models.CompanyRecord) float64 {
	var c component
	c.addPercentile(&r.change, rec, "change_percent", 1.0, anyFinite)
	return c.result()
}

func (r *RankerStrategy) safetyScore(rec models.CompanyRecord) float64 {
	var c component
	c.add(&r.mcap, rec, "market_cap", 0.50, true, positiveOnly)
	c.add(&r.debt, rec, "debt_equity", 0.50, false, nonNegative)
	return c.result()
}
