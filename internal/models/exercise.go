// ABOUTME: Exercise model for the exercise library.
// ABOUTME: Covers preset (seeded) and custom (user-created) exercises.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise represents a single exercise in the library.
type Exercise struct {
	ID           uuid.UUID     `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`
	Instructions string        `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	MuscleGroups []MuscleGroup `json:"muscle_groups" yaml:"muscle_groups"`
	IsFavorite   bool          `json:"is_favorite" yaml:"is_favorite"`
	ImageURL     *string       `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	VideoURL     *string       `json:"video_url,omitempty" yaml:"video_url,omitempty"`
	CreatedAt    time.Time     `json:"created_at" yaml:"created_at"`
	IsCustom     bool          `json:"is_custom" yaml:"is_custom"`
}

// NewExercise creates a custom exercise with generated UUID and current timestamp.
// Preset exercises come from the seed catalog and set IsCustom false explicitly.
func NewExercise(name string, groups ...MuscleGroup) *Exercise {
	return &Exercise{
		ID:           uuid.New(),
		Name:         name,
		MuscleGroups: groups,
		IsCustom:     true,
		CreatedAt:    time.Now(),
	}
}

// WithDescription sets the description.
func (e *Exercise) WithDescription(desc string) *Exercise {
	e.Description = desc
	return e
}

// WithInstructions sets the instructions.
func (e *Exercise) WithInstructions(instructions string) *Exercise {
	e.Instructions = instructions
	return e
}

// WithImageURL sets the placeholder image reference.
func (e *Exercise) WithImageURL(url string) *Exercise {
	e.ImageURL = &url
	return e
}

// WithVideoURL sets the placeholder video reference.
func (e *Exercise) WithVideoURL(url string) *Exercise {
	e.VideoURL = &url
	return e
}

// Validate checks the exercise invariants before persisting.
func (e *Exercise) Validate() error {
	if e.Name == "" {
		return ErrEmptyName
	}
	return nil
}
