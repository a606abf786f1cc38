// ABOUTME: WorkoutProgram model and per-exercise settings.
// ABOUTME: Programs hold an ordered exercise list plus sets/reps/weight/rest per entry.
package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyName is returned when a record is saved without a name.
var ErrEmptyName = errors.New("name must not be empty")

// DefaultPresetIcon is the symbol used for new programs with no custom image.
const DefaultPresetIcon = "figure.strengthtraining.traditional"

// WorkoutProgram is a named ordered collection of exercises with per-exercise settings.
type WorkoutProgram struct {
	ID              uuid.UUID         `json:"id" yaml:"id"`
	Name            string            `json:"name" yaml:"name"`
	Description     string            `json:"description,omitempty" yaml:"description,omitempty"`
	ImageData       []byte            `json:"image_data,omitempty" yaml:"image_data,omitempty"`
	UsePresetIcon   bool              `json:"use_preset_icon" yaml:"use_preset_icon"`
	PresetIconName  *string           `json:"preset_icon_name,omitempty" yaml:"preset_icon_name,omitempty"`
	ExerciseIDs     []uuid.UUID       `json:"exercise_ids" yaml:"exercise_ids"`
	Settings        []ExerciseSetting `json:"exercise_settings" yaml:"exercise_settings"`
	DurationMinutes *int              `json:"duration_minutes,omitempty" yaml:"duration_minutes,omitempty"`
	CreatedAt       time.Time         `json:"created_at" yaml:"created_at"`
	LastModifiedAt  time.Time         `json:"last_modified_at" yaml:"last_modified_at"`
	CompletionCount int               `json:"completion_count" yaml:"completion_count"`
	LastCompletedAt *time.Time        `json:"last_completed_at,omitempty" yaml:"last_completed_at,omitempty"`
}

// NewWorkoutProgram creates a program with generated UUID and the default preset icon.
func NewWorkoutProgram(name string) *WorkoutProgram {
	now := time.Now()
	icon := DefaultPresetIcon
	return &WorkoutProgram{
		ID:             uuid.New(),
		Name:           name,
		UsePresetIcon:  true,
		PresetIconName: &icon,
		CreatedAt:      now,
		LastModifiedAt: now,
	}
}

// WithDescription sets the description.
func (p *WorkoutProgram) WithDescription(desc string) *WorkoutProgram {
	p.Description = desc
	return p
}

// WithDuration sets the planned duration in minutes.
func (p *WorkoutProgram) WithDuration(minutes int) *WorkoutProgram {
	p.DurationMinutes = &minutes
	return p
}

// Validate checks the program invariants before persisting.
func (p *WorkoutProgram) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// SetPresetIcon selects a preset symbol as the active visual.
// Any custom image data stays on the record but is not rendered.
func (p *WorkoutProgram) SetPresetIcon(name string) {
	p.UsePresetIcon = true
	p.PresetIconName = &name
}

// SetCustomImage selects a custom image as the active visual.
func (p *WorkoutProgram) SetCustomImage(data []byte) {
	p.ImageData = data
	p.UsePresetIcon = false
}

// Touch refreshes the last-modified timestamp. Called on structural
// edits (name, exercise list, settings) but never on completion.
func (p *WorkoutProgram) Touch() {
	p.LastModifiedAt = time.Now()
}

// MarkCompleted records one completion at the given time. The counter
// only ever increases and last-modified is left alone.
func (p *WorkoutProgram) MarkCompleted(at time.Time) {
	p.CompletionCount++
	p.LastCompletedAt = &at
}

// AddExercise appends an exercise with default settings and returns the
// new entry. The returned pointer aliases the program's settings list so
// edits made through it are saved with the program.
func (p *WorkoutProgram) AddExercise(exerciseID uuid.UUID) *ExerciseSetting {
	p.ExerciseIDs = append(p.ExerciseIDs, exerciseID)
	p.Settings = append(p.Settings, *NewExerciseSetting(exerciseID))
	return &p.Settings[len(p.Settings)-1]
}

// RemoveExercise drops an exercise and its settings entry from the program.
// Removing an id that is not present is a no-op.
func (p *WorkoutProgram) RemoveExercise(exerciseID uuid.UUID) {
	ids := p.ExerciseIDs[:0]
	for _, id := range p.ExerciseIDs {
		if id != exerciseID {
			ids = append(ids, id)
		}
	}
	p.ExerciseIDs = ids

	settings := p.Settings[:0]
	for _, s := range p.Settings {
		if s.ExerciseID != exerciseID {
			settings = append(settings, s)
		}
	}
	p.Settings = settings
}

// SettingFor returns the settings entry for an exercise id, or nil.
func (p *WorkoutProgram) SettingFor(exerciseID uuid.UUID) *ExerciseSetting {
	for i := range p.Settings {
		if p.Settings[i].ExerciseID == exerciseID {
			return &p.Settings[i]
		}
	}
	return nil
}

// ExerciseSetting holds per-exercise configuration inside a program.
// Weight is always stored in kilograms; display conversion happens at
// the presentation boundary.
type ExerciseSetting struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	ExerciseID  uuid.UUID `json:"exercise_id" yaml:"exercise_id"`
	Sets        int       `json:"sets" yaml:"sets"`
	Reps        int       `json:"reps" yaml:"reps"`
	WeightKg    float64   `json:"weight_kg" yaml:"weight_kg"`
	RestSeconds int       `json:"rest_seconds" yaml:"rest_seconds"`
	Notes       string    `json:"notes" yaml:"notes"`
}

// NewExerciseSetting creates a settings entry with default values.
func NewExerciseSetting(exerciseID uuid.UUID) *ExerciseSetting {
	return &ExerciseSetting{
		ID:          uuid.New(),
		ExerciseID:  exerciseID,
		Sets:        3,
		Reps:        10,
		WeightKg:    0,
		RestSeconds: 60,
		Notes:       "",
	}
}

// EncodeSettings serializes an ordered settings list to its blob form.
func EncodeSettings(settings []ExerciseSetting) ([]byte, error) {
	return json.Marshal(settings)
}

// DecodeSettings deserializes a settings blob. Empty input yields an
// empty list; a corrupt payload is an error the caller maps to defaults.
func DecodeSettings(data []byte) ([]ExerciseSetting, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var settings []ExerciseSetting
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}
