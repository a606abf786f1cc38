// ABOUTME: Repository interface for the local fitness store.
// ABOUTME: Defines CRUD, query, and observation contracts for exercises and programs.
package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

// ExerciseFilter narrows an exercise query. Zero value matches everything.
type ExerciseFilter struct {
	// NameContains matches case-insensitively on a substring of the name.
	NameContains string
	// MuscleGroup matches exercises tagged with the given group.
	MuscleGroup *models.MuscleGroup
	// FavoritesOnly keeps only favorited exercises.
	FavoritesOnly bool
	// CustomOnly keeps only user-created exercises.
	CustomOnly bool
}

// ProgramFilter narrows a program query. Zero value matches everything.
type ProgramFilter struct {
	NameContains string
}

// Sort selects a single sort field and direction. The zero value sorts
// by name ascending.
type Sort struct {
	Field string
	Desc  bool
}

// Sortable field names accepted by both store implementations.
const (
	SortByName         = "name"
	SortByCreatedAt    = "created_at"
	SortByLastModified = "last_modified_at"
	SortByCompletions  = "completion_count"
)

// Repository defines the storage interface for the fitness data layer.
// Implementations are constructed explicitly and passed by handle; there
// are no ambient shared instances.
type Repository interface {
	// Exercise operations. Identifiers are caller-generated; Create
	// returns ErrConflict on collision. Update is a full-record replace
	// and returns ErrNotFound for a missing target. Delete is a
	// tolerant no-op for missing ids.
	CreateExercise(e *models.Exercise) error
	GetExercise(id uuid.UUID) (*models.Exercise, error)
	UpdateExercise(e *models.Exercise) error
	DeleteExercise(id uuid.UUID) error
	ListExercises(filter ExerciseFilter, sort Sort) ([]*models.Exercise, error)
	CountExercises() (int, error)

	// Program operations. UpdateProgram persists whatever timestamps the
	// record carries; structural edits go through models.Touch first.
	// MarkProgramCompleted bumps the completion counter and stamps
	// last-completed without touching last-modified.
	CreateProgram(p *models.WorkoutProgram) error
	GetProgram(id uuid.UUID) (*models.WorkoutProgram, error)
	UpdateProgram(p *models.WorkoutProgram) error
	DeleteProgram(id uuid.UUID) error
	ListPrograms(filter ProgramFilter, sort Sort) ([]*models.WorkoutProgram, error)
	MarkProgramCompleted(id uuid.UUID, at time.Time) error

	// ResolveExercises joins a program's exercise-id list against the
	// exercise table, silently omitting ids that no longer resolve.
	ResolveExercises(p *models.WorkoutProgram) ([]*models.Exercise, error)

	// Observation. Subscriptions deliver the current snapshot
	// immediately and a fresh full snapshot after every mutation, in
	// mutation order. Cancel the subscription to stop delivery.
	WatchExercises(filter ExerciseFilter, sort Sort) (*ExerciseSubscription, error)
	WatchPrograms(filter ProgramFilter, sort Sort) (*ProgramSubscription, error)

	// Lifecycle
	Close() error
}
