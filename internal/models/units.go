// ABOUTME: Weight unit preference and kg/lbs conversion.
// ABOUTME: Kilograms are the canonical storage unit; conversion is display-only.
package models

// WeightUnit selects how weights are displayed. Storage is always kilograms.
type WeightUnit string

const (
	UnitKilograms WeightUnit = "kg"
	UnitPounds    WeightUnit = "lbs"
)

const lbsPerKg = 2.20462

// IsValidWeightUnit checks if a string is a valid weight unit.
func IsValidWeightUnit(s string) bool {
	return s == string(UnitKilograms) || s == string(UnitPounds)
}

// KgToLbs converts kilograms to pounds.
func KgToLbs(kg float64) float64 {
	return kg * lbsPerKg
}

// LbsToKg converts pounds to kilograms.
func LbsToKg(lbs float64) float64 {
	return lbs / lbsPerKg
}

// ToDisplay converts a canonical kilogram value into the given display unit.
func (u WeightUnit) ToDisplay(kg float64) float64 {
	if u == UnitPounds {
		return KgToLbs(kg)
	}
	return kg
}

// ToStorage converts a display value in the given unit back to kilograms.
func (u WeightUnit) ToStorage(display float64) float64 {
	if u == UnitPounds {
		return LbsToKg(display)
	}
	return display
}
