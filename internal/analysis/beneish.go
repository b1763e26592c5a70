package analysis

import "github.com/chandeepa/cse-research/internal/models"

// Manipulation risk bands for the Beneish M-Score.
const (
	beneishPossible = -2.22
	beneishLikely   = -1.78
)

// Single-period Beneish indices. A full M-Score needs two years of
// statements; with one period the ratio indices are held at parity and
// sales growth assumed at 10%, leaving the accrual and leverage terms
// to carry the signal.
const (
	beneishDSRI = 1.0
	beneishGMI  = 1.0
	beneishAQI  = 1.0
	beneishSGI  = 1.1
	beneishDEPI = 1.0
	beneishSGAI = 1.0
)

func deriveBeneish(out models.CompanyRecord) {
	lvgi := out.FloatOr("equity_multiplier", 0) / 2
	tata := out.FloatOr("accruals_ratio", 0)

	m := -4.84 +
		0.920*beneishDSRI +
		0.528*beneishGMI +
		0.404*beneishAQI +
		0.892*beneishSGI +
		0.115*beneishDEPI -
		0.172*beneishSGAI +
		4.679*tata -
		0.327*lvgi

	out["beneish_m_score"] = m
	out["manipulation_risk"] = ClassifyManipulationRisk(m)
}

// ClassifyManipulationRisk bands an M-Score into Low, Possible, or
// Likely earnings manipulation.
func ClassifyManipulationRisk(m float64) string {
	switch {
	case m > beneishLikely:
		return "Likely"
	case m > beneishPossible:
		return "Possible"
	default:
		return "Low"
	}
}
