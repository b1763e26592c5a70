package analysis

import "github.com/chandeepa/cse-research/internal/models"

// GradeFromComposite maps a composite score onto the base letter grade.
func GradeFromComposite(composite float64) models.Grade {
	switch {
	case composite >= 80:
		return models.GradeA
	case composite >= 65:
		return models.GradeB
	case composite >= 50:
		return models.GradeC
	case composite >= 35:
		return models.GradeD
	default:
		return models.GradeF
	}
}

// AdjustGrade applies the Piotroski and Altman adjustments to a base
// grade. A strong Piotroski score lifts a middling grade one step; a
// weak one, or a distress-zone Altman score, pushes it down one step.
// Stepping saturates at A and F.
func AdjustGrade(grade models.Grade, piotroski int, altman float64) models.Grade {
	if piotroski >= 7 && (grade == models.GradeB || grade == models.GradeC) {
		grade = grade.Upgrade()
	} else if piotroski <= 3 && grade <= models.GradeC {
		grade = grade.Downgrade()
	}

	if altman < AltmanDistress && grade != models.GradeF {
		grade = grade.Downgrade()
	}

	return grade
}

// Recommend runs the recommendation cascade in fixed priority order;
// the first matching rule wins. Bankruptcy risk is checked before
// anything else and overrides arbitrarily strong scores.
func Recommend(composite float64, piotroski int, altman, grahamUpside float64) string {
	switch {
	case altman < 1.5:
		return models.RecAvoidDistress
	case piotroski <= 2:
		return models.RecAvoidWeak
	case composite >= 75 && piotroski >= 7 && grahamUpside > 20:
		return models.RecStrongBuy
	case composite >= 65 && piotroski >= 6 && grahamUpside > 0:
		return models.RecBuy
	case composite >= 50 && piotroski >= 5:
		return models.RecHold
	case composite >= 35:
		return models.RecWeakHold
	default:
		return models.RecSellAvoid
	}
}

// Classify computes the special scores, grade, and recommendation for a
// derived record, given its composite score.
func Classify(rec models.CompanyRecord, composite float64) (models.InvestmentScores, models.Grade, string) {
	piotroski := PiotroskiScore(rec)
	altman := AltmanZScore(rec)
	graham := GrahamNumber(rec)
	upside := GrahamUpside(rec, graham)
	beneish := rec.FloatOr("beneish_m_score", 0)

	inv := models.InvestmentScores{
		Piotroski:        piotroski,
		AltmanZ:          altman,
		BeneishM:         beneish,
		EarningsRisk:     rec.String("manipulation_risk"),
		GrahamNumber:     graham,
		GrahamUpside:     upside,
		MagicFormulaRank: MagicFormulaRank(rec),
	}

	grade := AdjustGrade(GradeFromComposite(composite), piotroski, altman)
	recommendation := Recommend(composite, piotroski, altman, upside)

	return inv, grade, recommendation
}
