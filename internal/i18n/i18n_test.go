// ABOUTME: Tests for the localization lookup.
// ABOUTME: Verifies translation, fallback to English, and key passthrough.
package i18n

import "testing"

func TestLookupTranslates(t *testing.T) {
	if got := Lookup("de", "muscle.legs"); got != "Beine" {
		t.Errorf("de muscle.legs = %s", got)
	}
	if got := Lookup("en", "muscle.legs"); got != "Legs" {
		t.Errorf("en muscle.legs = %s", got)
	}
}

func TestLookupFallsBackToEnglish(t *testing.T) {
	// Unknown language: English catalog answers
	if got := Lookup("fr", "stat.steps"); got != "Steps" {
		t.Errorf("fr stat.steps = %s", got)
	}
	// Key missing from the de catalog but present in en
	if got := Lookup("de", "exercise.burpees"); got != "exercise.burpees" {
		t.Errorf("expected passthrough, got %s", got)
	}
}

func TestLookupPassthroughForUnknownKey(t *testing.T) {
	if got := Lookup("en", "My Custom Move"); got != "My Custom Move" {
		t.Errorf("unknown key did not pass through: %s", got)
	}
}

func TestExerciseKey(t *testing.T) {
	if got := ExerciseKey("Bench Press"); got != "exercise.bench_press" {
		t.Errorf("ExerciseKey = %s", got)
	}
	if got := Lookup("de", ExerciseKey("Squat")); got != "Kniebeuge" {
		t.Errorf("Squat in de = %s", got)
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("en") || !IsSupported("de") {
		t.Error("expected en and de to be supported")
	}
	if IsSupported("xx") {
		t.Error("xx should not be supported")
	}
}
