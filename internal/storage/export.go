// ABOUTME: Export and import functionality for fitness data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats over any Repository.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for fitness data.
type ExportData struct {
	Version    string                   `json:"version" yaml:"version"`
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool       string                   `json:"tool" yaml:"tool"`
	Exercises  []*models.Exercise       `json:"exercises" yaml:"exercises"`
	Programs   []*models.WorkoutProgram `json:"programs" yaml:"programs"`
}

// GetAllData retrieves all data for export.
func GetAllData(repo Repository) (*ExportData, error) {
	exercises, err := repo.ListExercises(ExerciseFilter{}, Sort{})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	programs, err := repo.ListPrograms(ProgramFilter{}, Sort{})
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fittrack",
		Exercises:  exercises,
		Programs:   programs,
	}, nil
}

// ImportData imports data from an export file. Records keep their
// original ids; collisions with existing records fail the import.
func ImportData(repo Repository, data *ExportData) error {
	for _, e := range data.Exercises {
		if err := repo.CreateExercise(e); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}
	for _, p := range data.Programs {
		if err := repo.CreateProgram(p); err != nil {
			return fmt.Errorf("import program: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports data from JSON bytes.
func ImportJSON(repo Repository, raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return ImportData(repo, &data)
}

// ExportYAML exports all data as YAML, with exercises grouped by
// muscle group for readability.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                    `yaml:"version"`
		ExportedAt string                    `yaml:"exported_at"`
		Tool       string                    `yaml:"tool"`
		Exercises  map[string][]yamlExercise `yaml:"exercises"`
		Programs   []yamlProgram             `yaml:"programs"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Exercises:  make(map[string][]yamlExercise),
		Programs:   make([]yamlProgram, 0, len(data.Programs)),
	}

	for _, e := range data.Exercises {
		ye := yamlExercise{
			ID:       e.ID.String()[:8],
			Name:     e.Name,
			Favorite: e.IsFavorite,
			Custom:   e.IsCustom,
		}
		group := "untagged"
		if len(e.MuscleGroups) > 0 {
			group = string(e.MuscleGroups[0])
		}
		yamlData.Exercises[group] = append(yamlData.Exercises[group], ye)
	}

	for _, p := range data.Programs {
		yp := yamlProgram{
			ID:          p.ID.String()[:8],
			Name:        p.Name,
			Completions: p.CompletionCount,
		}
		if p.DurationMinutes != nil {
			yp.DurationMinutes = *p.DurationMinutes
		}
		for _, s := range p.Settings {
			yp.Entries = append(yp.Entries, yamlEntry{
				ExerciseID:  s.ExerciseID.String()[:8],
				Sets:        s.Sets,
				Reps:        s.Reps,
				WeightKg:    s.WeightKg,
				RestSeconds: s.RestSeconds,
				Notes:       s.Notes,
			})
		}
		yamlData.Programs = append(yamlData.Programs, yp)
	}

	return yaml.Marshal(yamlData)
}

type yamlExercise struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Favorite bool   `yaml:"favorite,omitempty"`
	Custom   bool   `yaml:"custom,omitempty"`
}

type yamlProgram struct {
	ID              string      `yaml:"id"`
	Name            string      `yaml:"name"`
	DurationMinutes int         `yaml:"duration_minutes,omitempty"`
	Completions     int         `yaml:"completions"`
	Entries         []yamlEntry `yaml:"entries,omitempty"`
}

type yamlEntry struct {
	ExerciseID  string  `yaml:"exercise_id"`
	Sets        int     `yaml:"sets"`
	Reps        int     `yaml:"reps"`
	WeightKg    float64 `yaml:"weight_kg"`
	RestSeconds int     `yaml:"rest_seconds"`
	Notes       string  `yaml:"notes,omitempty"`
}

// ExportMarkdown exports the library and programs as Markdown.
func ExportMarkdown(repo Repository) (string, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Fittrack Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	// Exercise library grouped by primary muscle group
	grouped := make(map[string][]*models.Exercise)
	for _, e := range data.Exercises {
		group := "untagged"
		if len(e.MuscleGroups) > 0 {
			group = string(e.MuscleGroups[0])
		}
		grouped[group] = append(grouped[group], e)
	}

	var groups []string
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	sb.WriteString("## Exercise Library\n\n")
	for _, g := range groups {
		sb.WriteString(fmt.Sprintf("### %s\n\n", g))
		sb.WriteString("| Name | Favorite | Custom |\n")
		sb.WriteString("|------|----------|--------|\n")
		for _, e := range grouped[g] {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				e.Name, checkmark(e.IsFavorite), checkmark(e.IsCustom)))
		}
		sb.WriteString("\n")
	}

	if len(data.Programs) > 0 {
		sb.WriteString("## Programs\n\n")
		for _, p := range data.Programs {
			sb.WriteString(fmt.Sprintf("### %s\n\n", p.Name))
			if p.Description != "" {
				sb.WriteString(p.Description + "\n\n")
			}
			sb.WriteString(fmt.Sprintf("Completed %d times", p.CompletionCount))
			if p.LastCompletedAt != nil {
				sb.WriteString(fmt.Sprintf(", last on %s", p.LastCompletedAt.Format("2006-01-02")))
			}
			sb.WriteString("\n\n")

			if len(p.Settings) > 0 {
				resolved, err := repo.ResolveExercises(p)
				if err != nil {
					return "", err
				}
				names := make(map[string]string)
				for _, e := range resolved {
					names[e.ID.String()] = e.Name
				}

				sb.WriteString("| Exercise | Sets | Reps | Weight (kg) | Rest (s) | Notes |\n")
				sb.WriteString("|----------|------|------|-------------|----------|-------|\n")
				for _, s := range p.Settings {
					name, ok := names[s.ExerciseID.String()]
					if !ok {
						// Dangling reference: the exercise was deleted.
						continue
					}
					sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.1f | %d | %s |\n",
						name, s.Sets, s.Reps, s.WeightKg, s.RestSeconds, s.Notes))
				}
				sb.WriteString("\n")
			}
		}
	}

	return sb.String(), nil
}

func checkmark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
