// ABOUTME: Tests for WorkoutProgram model and ExerciseSetting codec.
// ABOUTME: Validates completion semantics, icon selection, and blob round-trips.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewWorkoutProgram(t *testing.T) {
	p := NewWorkoutProgram("Leg Day")

	if p.Name != "Leg Day" {
		t.Errorf("Name = %s, want Leg Day", p.Name)
	}
	if !p.UsePresetIcon {
		t.Error("expected new programs to use a preset icon")
	}
	if p.PresetIconName == nil || *p.PresetIconName != DefaultPresetIcon {
		t.Errorf("PresetIconName = %v, want %s", p.PresetIconName, DefaultPresetIcon)
	}
	if p.CompletionCount != 0 {
		t.Errorf("CompletionCount = %d, want 0", p.CompletionCount)
	}
	if p.LastCompletedAt != nil {
		t.Error("expected LastCompletedAt to start unset")
	}
}

func TestProgramValidate(t *testing.T) {
	p := NewWorkoutProgram("")
	if err := p.Validate(); err == nil {
		t.Error("expected validation error for empty name")
	}
}

func TestMarkCompleted(t *testing.T) {
	p := NewWorkoutProgram("Push Day")
	before := p.LastModifiedAt

	at := time.Now().Add(time.Hour)
	p.MarkCompleted(at)
	p.MarkCompleted(at.Add(time.Hour))

	if p.CompletionCount != 2 {
		t.Errorf("CompletionCount = %d, want 2", p.CompletionCount)
	}
	if p.LastCompletedAt == nil || !p.LastCompletedAt.Equal(at.Add(time.Hour)) {
		t.Errorf("LastCompletedAt = %v", p.LastCompletedAt)
	}
	if !p.LastModifiedAt.Equal(before) {
		t.Error("completion must not touch last-modified")
	}
}

func TestTouchRefreshesLastModified(t *testing.T) {
	p := NewWorkoutProgram("Pull Day")
	before := p.LastModifiedAt

	time.Sleep(2 * time.Millisecond)
	p.Touch()

	if !p.LastModifiedAt.After(before) {
		t.Error("expected Touch to advance last-modified")
	}
}

func TestIconSelection(t *testing.T) {
	p := NewWorkoutProgram("Cardio")

	p.SetCustomImage([]byte{0xff, 0xd8, 0xff})
	if p.UsePresetIcon {
		t.Error("expected custom image to become active")
	}
	if len(p.ImageData) != 3 {
		t.Errorf("ImageData length = %d, want 3", len(p.ImageData))
	}

	// Switching back to a preset keeps the image data around, inactive.
	p.SetPresetIcon("heart.fill")
	if !p.UsePresetIcon {
		t.Error("expected preset icon to become active")
	}
	if len(p.ImageData) != 3 {
		t.Error("expected inactive image data to be retained")
	}
}

func TestAddAndRemoveExercise(t *testing.T) {
	p := NewWorkoutProgram("Full Body")
	a := uuid.New()
	b := uuid.New()

	s := p.AddExercise(a)
	p.AddExercise(b)

	if s.Sets != 3 || s.Reps != 10 || s.WeightKg != 0 || s.RestSeconds != 60 || s.Notes != "" {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if len(p.ExerciseIDs) != 2 || len(p.Settings) != 2 {
		t.Fatalf("lists = %d ids, %d settings", len(p.ExerciseIDs), len(p.Settings))
	}

	p.RemoveExercise(a)
	if len(p.ExerciseIDs) != 1 || p.ExerciseIDs[0] != b {
		t.Errorf("ExerciseIDs after remove = %v", p.ExerciseIDs)
	}
	if len(p.Settings) != 1 || p.Settings[0].ExerciseID != b {
		t.Errorf("Settings after remove = %v", p.Settings)
	}

	// Removing an id that is not present is a no-op.
	p.RemoveExercise(a)
	if len(p.ExerciseIDs) != 1 {
		t.Error("expected second remove to be a no-op")
	}
}

func TestAddExerciseReturnsLiveEntry(t *testing.T) {
	p := NewWorkoutProgram("Leg Day")
	id := uuid.New()

	s := p.AddExercise(id)
	s.Sets = 4
	s.Reps = 8
	s.WeightKg = 60
	s.RestSeconds = 90

	got := p.Settings[0]
	if got.Sets != 4 || got.Reps != 8 || got.WeightKg != 60 || got.RestSeconds != 90 {
		t.Errorf("edits through the returned entry were lost: %+v", got)
	}
}

func TestSettingFor(t *testing.T) {
	p := NewWorkoutProgram("Arms")
	id := uuid.New()
	p.AddExercise(id)

	s := p.SettingFor(id)
	if s == nil {
		t.Fatal("expected settings entry")
	}
	s.Sets = 5
	if p.Settings[0].Sets != 5 {
		t.Error("expected SettingFor to return a mutable reference")
	}

	if p.SettingFor(uuid.New()) != nil {
		t.Error("expected nil for unknown exercise id")
	}
}

func TestSettingsCodecRoundTrip(t *testing.T) {
	settings := []ExerciseSetting{
		*NewExerciseSetting(uuid.New()),
		{ID: uuid.New(), ExerciseID: uuid.New(), Sets: 4, Reps: 8, WeightKg: 60, RestSeconds: 90, Notes: "slow eccentric"},
	}

	blob, err := EncodeSettings(settings)
	if err != nil {
		t.Fatalf("EncodeSettings failed: %v", err)
	}

	decoded, err := DecodeSettings(blob)
	if err != nil {
		t.Fatalf("DecodeSettings failed: %v", err)
	}
	if len(decoded) != len(settings) {
		t.Fatalf("decoded %d entries, want %d", len(decoded), len(settings))
	}
	for i := range settings {
		if decoded[i] != settings[i] {
			t.Errorf("entry %d mismatch: got %+v, want %+v", i, decoded[i], settings[i])
		}
	}
}

func TestDecodeSettingsEmptyAndCorrupt(t *testing.T) {
	decoded, err := DecodeSettings(nil)
	if err != nil || decoded != nil {
		t.Errorf("empty blob: got %v, %v", decoded, err)
	}

	if _, err := DecodeSettings([]byte("{not json")); err == nil {
		t.Error("expected error for corrupt blob")
	}
}
