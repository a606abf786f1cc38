// ABOUTME: Tests for the daily activity providers.
// ABOUTME: Covers static summaries and file-backed lookup with missing data.
package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStaticProvider(t *testing.T) {
	p := &StaticProvider{Summary: Summary{Steps: 8000, ActiveEnergy: 450, ExerciseMinutes: 30}}

	day := time.Date(2026, 8, 27, 15, 30, 0, 0, time.UTC)
	s, err := p.DailySummary(context.Background(), day)
	if err != nil {
		t.Fatalf("DailySummary failed: %v", err)
	}
	if s.Steps != 8000 || s.ActiveEnergy != 450 || s.ExerciseMinutes != 30 {
		t.Errorf("summary = %+v", s)
	}
	if s.Date.Hour() != 0 {
		t.Errorf("date not normalized to day start: %v", s.Date)
	}
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.json")
	content := `{
  "2026-08-27": {"steps": 12345, "active_energy": 600.5, "exercise_minutes": 45},
  "2026-08-26": {"steps": 2000, "active_energy": 100, "exercise_minutes": 5}
}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p := NewFileProvider(path)
	day := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)

	s, err := p.DailySummary(context.Background(), day)
	if err != nil {
		t.Fatalf("DailySummary failed: %v", err)
	}
	if s.Steps != 12345 || s.ActiveEnergy != 600.5 || s.ExerciseMinutes != 45 {
		t.Errorf("summary = %+v", s)
	}
}

func TestFileProviderMissingDayIsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.json")
	if err := os.WriteFile(path, []byte(`{}`), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p := NewFileProvider(path)
	s, err := p.DailySummary(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("DailySummary failed: %v", err)
	}
	if s.Steps != 0 || s.ActiveEnergy != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestFileProviderMissingFileIsZero(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "nope.json"))
	s, err := p.DailySummary(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("DailySummary failed: %v", err)
	}
	if s.Steps != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestFileProviderCorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p := NewFileProvider(path)
	if _, err := p.DailySummary(context.Background(), time.Now()); err == nil {
		t.Error("expected parse error")
	}
}

func TestFileProviderHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewFileProvider("irrelevant")
	if _, err := p.DailySummary(ctx, time.Now()); err == nil {
		t.Error("expected context error")
	}
}
