package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestRatio_FloatSentinels(t *testing.T) {
	if v := Defined(1.25).Float(); v != 1.25 {
		t.Errorf("Defined(1.25).Float() = %v", v)
	}
	if v := Undefined().Float(); !math.IsNaN(v) {
		t.Errorf("Undefined().Float() = %v, want NaN", v)
	}
	if v := NoLeverage().Float(); v != 999 {
		t.Errorf("NoLeverage().Float() = %v, want 999", v)
	}
}

func TestRatio_UndefinedFailsThresholds(t *testing.T) {
	// NaN comparisons are false both ways, so an undefined ratio never
	// passes a threshold check.
	v := Undefined().Float()
	if v < 15 {
		t.Error("NaN < 15 should be false")
	}
	if v > 15 {
		t.Error("NaN > 15 should be false")
	}
}

func TestRatio_Round(t *testing.T) {
	if got := Defined(1.23456).Round(2).Float(); got != 1.23 {
		t.Errorf("Round(2) = %v, want 1.23", got)
	}
	if got := Undefined().Round(2); got.Kind != RatioUndefined {
		t.Error("rounding an undefined ratio should keep the sentinel")
	}
	if got := NoLeverage().Round(2).Float(); got != 999 {
		t.Errorf("rounding no-leverage = %v, want 999", got)
	}
}

func TestRatio_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Undefined())
	if err != nil {
		t.Fatalf("marshal undefined: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("undefined ratio marshals to %s, want null", b)
	}

	b, err = json.Marshal(NoLeverage())
	if err != nil {
		t.Fatalf("marshal no-leverage: %v", err)
	}
	if string(b) != "999" {
		t.Errorf("no-leverage ratio marshals to %s, want 999", b)
	}
}

func TestGrade_Saturation(t *testing.T) {
	if GradeA.Upgrade() != GradeA {
		t.Error("upgrading A should stay A")
	}
	if GradeF.Downgrade() != GradeF {
		t.Error("downgrading F should stay F")
	}
	if GradeC.Upgrade() != GradeB {
		t.Errorf("C upgraded = %v, want B", GradeC.Upgrade())
	}
	if GradeC.Downgrade() != GradeD {
		t.Errorf("C downgraded = %v, want D", GradeC.Downgrade())
	}
}

func TestGrade_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(GradeB)
	if err != nil {
		t.Fatalf("marshal grade: %v", err)
	}
	if string(b) != `"B"` {
		t.Errorf("GradeB marshals to %s", b)
	}

	var g Grade
	if err := json.Unmarshal([]byte(`"D"`), &g); err != nil {
		t.Fatalf("unmarshal grade: %v", err)
	}
	if g != GradeD {
		t.Errorf("unmarshalled grade = %v, want D", g)
	}
}
