package models

import (
	"encoding/json"
	"fmt"
)

// ScoreSet holds the six strategy component scores, each on a 0-100 scale.
type ScoreSet struct {
	Value    float64 `json:"value_score"`
	Quality  float64 `json:"quality_score"`
	Safety   float64 `json:"safety_score"`
	Dividend float64 `json:"dividend_score"`
	Growth   float64 `json:"growth_score"`
	Momentum float64 `json:"momentum_score"`
}

// Component returns a named component score and whether the name is known.
func (s ScoreSet) Component(name string) (float64, bool) {
	switch name {
	case "value_score":
		return s.Value, true
	case "quality_score":
		return s.Quality, true
	case "safety_score":
		return s.Safety, true
	case "dividend_score":
		return s.Dividend, true
	case "growth_score":
		return s.Growth, true
	case "momentum_score":
		return s.Momentum, true
	default:
		return 0, false
	}
}

// InvestmentScores bundles the specialist investment signals computed
// alongside the component scores.
type InvestmentScores struct {
	Piotroski        int     `json:"piotroski_score"`
	AltmanZ          float64 `json:"altman_z_score"`
	BeneishM         float64 `json:"beneish_m_score"`
	EarningsRisk     string  `json:"earnings_manipulation_risk"`
	GrahamNumber     float64 `json:"graham_number"`
	GrahamUpside     float64 `json:"graham_upside"`
	MagicFormulaRank int     `json:"magic_formula_rank"`
}

// Grade is an ordered investment grade from A (best) to F (worst).
type Grade int

const (
	GradeA Grade = iota
	GradeB
	GradeC
	GradeD
	GradeF
)

var gradeLetters = [...]string{"A", "B", "C", "D", "F"}

// String returns the letter form of the grade.
func (g Grade) String() string {
	if g < GradeA || g > GradeF {
		return "F"
	}
	return gradeLetters[g]
}

// ParseGrade converts a letter to a Grade, defaulting unknown input to F.
func ParseGrade(s string) Grade {
	for i, l := range gradeLetters {
		if l == s {
			return Grade(i)
		}
	}
	return GradeF
}

// Upgrade moves the grade one step toward A, saturating at A.
func (g Grade) Upgrade() Grade {
	if g <= GradeA {
		return GradeA
	}
	return g - 1
}

// Downgrade moves the grade one step toward F, saturating at F.
func (g Grade) Downgrade() Grade {
	if g >= GradeF {
		return GradeF
	}
	return g + 1
}

// MarshalJSON encodes the grade as its letter.
func (g Grade) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// UnmarshalJSON decodes a letter grade.
func (g *Grade) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("grade must be a string: %w", err)
	}
	*g = ParseGrade(s)
	return nil
}

// Recommendation labels produced by the classification cascade, ordered
// from strongest to weakest conviction.
const (
	RecStrongBuy     = "Strong Buy"
	RecBuy           = "Buy"
	RecHold          = "Hold"
	RecWeakHold      = "Weak Hold"
	RecSellAvoid     = "Sell / Avoid"
	RecAvoidDistress = "Avoid - High Bankruptcy Risk"
	RecAvoidWeak     = "Avoid - Weak Financials"
)

// Analysis is the full output row for a single company after the
// derive, score, and classify stages.
type Analysis struct {
	Symbol         string           `json:"symbol"`
	Name           string           `json:"name"`
	Sector         string           `json:"sector"`
	Scores         ScoreSet         `json:"scores"`
	Investment     InvestmentScores `json:"investment"`
	Composite      int              `json:"composite_score"`
	Grade          Grade            `json:"grade"`
	Recommendation string           `json:"recommendation"`
	Signals        []string         `json:"valuation_signals,omitempty"`
	ValueAssess    string           `json:"value_assessment,omitempty"`
	Record         CompanyRecord    `json:"record,omitempty"`
}
