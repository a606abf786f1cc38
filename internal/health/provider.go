// ABOUTME: Daily activity feed abstraction for home-screen stats.
// ABOUTME: Providers supply steps, active energy, and exercise minutes for a given day.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Summary holds one day of activity data.
type Summary struct {
	Date            time.Time `json:"date"`
	Steps           int       `json:"steps"`
	ActiveEnergy    float64   `json:"active_energy"`
	ExerciseMinutes float64   `json:"exercise_minutes"`
}

// Provider supplies daily activity summaries. On platforms without a
// native feed the file provider reads exported data instead.
type Provider interface {
	DailySummary(ctx context.Context, day time.Time) (*Summary, error)
}

// StaticProvider returns a fixed summary for every day. Useful for
// tests and demos.
type StaticProvider struct {
	Summary Summary
}

var _ Provider = (*StaticProvider)(nil)

// DailySummary returns the fixed summary stamped with the requested day.
func (p *StaticProvider) DailySummary(ctx context.Context, day time.Time) (*Summary, error) {
	s := p.Summary
	s.Date = dayStart(day)
	return &s, nil
}

// FileProvider reads daily summaries from a JSON file keyed by date
// (YYYY-MM-DD). Missing days yield a zero summary, not an error.
type FileProvider struct {
	Path string
}

var _ Provider = (*FileProvider)(nil)

// NewFileProvider creates a provider reading from the given file.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// DailySummary looks up the requested day in the file. The file is
// re-read on every call so external updates are picked up.
func (p *FileProvider) DailySummary(ctx context.Context, day time.Time) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Summary{Date: dayStart(day)}, nil
		}
		return nil, fmt.Errorf("read activity file: %w", err)
	}

	var byDate map[string]Summary
	if err := json.Unmarshal(raw, &byDate); err != nil {
		return nil, fmt.Errorf("parse activity file: %w", err)
	}

	key := dayStart(day).Format("2006-01-02")
	s, ok := byDate[key]
	if !ok {
		return &Summary{Date: dayStart(day)}, nil
	}
	s.Date = dayStart(day)
	return &s, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
