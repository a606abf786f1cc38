// ABOUTME: Tests for weight unit conversion.
// ABOUTME: Verifies round-trip safety within floating-point tolerance.
package models

import (
	"math"
	"testing"
)

func TestWeightUnitRoundTrip(t *testing.T) {
	values := []float64{0, 0.5, 20, 97.3, 225}
	const tolerance = 1e-6

	for _, unit := range []WeightUnit{UnitKilograms, UnitPounds} {
		for _, v := range values {
			got := unit.ToDisplay(unit.ToStorage(v))
			if math.Abs(got-v) > tolerance {
				t.Errorf("%s round trip of %v = %v", unit, v, got)
			}
		}
	}
}

func TestKgToLbs(t *testing.T) {
	lbs := KgToLbs(100)
	if math.Abs(lbs-220.462) > 1e-3 {
		t.Errorf("KgToLbs(100) = %v, want 220.462", lbs)
	}

	kg := LbsToKg(lbs)
	if math.Abs(kg-100) > 1e-6 {
		t.Errorf("LbsToKg round trip = %v, want 100", kg)
	}
}

func TestKilogramsDisplayIsIdentity(t *testing.T) {
	if UnitKilograms.ToDisplay(97.3) != 97.3 {
		t.Error("kg display must not convert")
	}
	if UnitKilograms.ToStorage(97.3) != 97.3 {
		t.Error("kg storage must not convert")
	}
}

func TestIsValidWeightUnit(t *testing.T) {
	if !IsValidWeightUnit("kg") || !IsValidWeightUnit("lbs") {
		t.Error("expected kg and lbs to be valid")
	}
	if IsValidWeightUnit("stone") {
		t.Error("expected stone to be invalid")
	}
}
