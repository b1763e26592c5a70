package analysis

import "github.com/chandeepa/cse-research/internal/models"

// ScoringStrategy maps a company record to the six component scores and
// folds them into a composite. The comprehensive and ranker strategies
// use different formulas and weightings; they are deliberately kept as
// separate implementations rather than reconciled.
type ScoringStrategy interface {
	// Name identifies the strategy ("comprehensive" or "ranker").
	Name() string
	// Score computes the component scores for one record. Each component
	// is in [0,100].
	Score(rec models.CompanyRecord) models.ScoreSet
	// Composite folds component scores into a single [0,100] value using
	// the strategy's weighting.
	Composite(s models.ScoreSet) float64
}
