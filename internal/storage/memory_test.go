// ABOUTME: Tests for the in-memory Repository implementation.
// ABOUTME: Checks behavioral parity with the SQLite store on the shared contract.
package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

func TestMemoryStoreExerciseLifecycle(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	e := models.NewExercise("Squat", models.MuscleLegs, models.MuscleCore)
	if err := store.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	if err := store.CreateExercise(e); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	got, err := store.GetExercise(e.ID)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if got.Name != "Squat" || len(got.MuscleGroups) != 2 {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	// Returned records are copies, not aliases into the store.
	got.Name = "Mutated"
	again, _ := store.GetExercise(e.ID)
	if again.Name != "Squat" {
		t.Error("store state leaked through returned pointer")
	}

	e.IsFavorite = true
	if err := store.UpdateExercise(e); err != nil {
		t.Fatalf("UpdateExercise failed: %v", err)
	}
	updated, _ := store.GetExercise(e.ID)
	if !updated.IsFavorite {
		t.Error("update did not persist")
	}

	if err := store.DeleteExercise(e.ID); err != nil {
		t.Fatalf("DeleteExercise failed: %v", err)
	}
	if err := store.DeleteExercise(e.ID); err != nil {
		t.Errorf("second delete errored: %v", err)
	}
	if _, err := store.GetExercise(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreListFilters(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	bench := models.NewExercise("Bench Press", models.MuscleChest)
	squat := models.NewExercise("Squat", models.MuscleLegs)
	squat.IsFavorite = true
	for _, e := range []*models.Exercise{bench, squat} {
		if err := store.CreateExercise(e); err != nil {
			t.Fatalf("CreateExercise failed: %v", err)
		}
	}

	all, err := store.ListExercises(ExerciseFilter{}, Sort{})
	if err != nil {
		t.Fatalf("ListExercises failed: %v", err)
	}
	if len(all) != 2 || all[0].Name != "Bench Press" {
		t.Errorf("default sort: %v", all)
	}

	favs, _ := store.ListExercises(ExerciseFilter{FavoritesOnly: true}, Sort{})
	if len(favs) != 1 || favs[0].Name != "Squat" {
		t.Errorf("favorites filter: %v", favs)
	}

	chest := models.MuscleChest
	chestOnly, _ := store.ListExercises(ExerciseFilter{MuscleGroup: &chest}, Sort{})
	if len(chestOnly) != 1 || chestOnly[0].Name != "Bench Press" {
		t.Errorf("muscle group filter: %v", chestOnly)
	}
}

func TestMemoryStoreProgramLifecycle(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	squat := models.NewExercise("Squat", models.MuscleLegs)
	if err := store.CreateExercise(squat); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	p := models.NewWorkoutProgram("Leg Day")
	p.AddExercise(squat.ID)
	p.AddExercise(uuid.New()) // dangling on purpose
	if err := store.CreateProgram(p); err != nil {
		t.Fatalf("CreateProgram failed: %v", err)
	}

	got, err := store.GetProgram(p.ID)
	if err != nil {
		t.Fatalf("GetProgram failed: %v", err)
	}
	if len(got.ExerciseIDs) != 2 || len(got.Settings) != 2 {
		t.Fatalf("roster mismatch: %d ids, %d settings", len(got.ExerciseIDs), len(got.Settings))
	}

	resolved, err := store.ResolveExercises(got)
	if err != nil {
		t.Fatalf("ResolveExercises failed: %v", err)
	}
	if len(resolved) != 1 || resolved[0].Name != "Squat" {
		t.Errorf("resolved = %v", resolved)
	}

	at := time.Now()
	if err := store.MarkProgramCompleted(p.ID, at); err != nil {
		t.Fatalf("MarkProgramCompleted failed: %v", err)
	}
	completed, _ := store.GetProgram(p.ID)
	if completed.CompletionCount != 1 || completed.LastCompletedAt == nil {
		t.Errorf("completion not recorded: %+v", completed)
	}
	if !completed.LastModifiedAt.Equal(p.LastModifiedAt) {
		t.Error("last-modified moved on completion")
	}

	if err := store.DeleteProgram(p.ID); err != nil {
		t.Fatalf("DeleteProgram failed: %v", err)
	}
	if _, err := store.GetProgram(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreWatch(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	sub, err := store.WatchExercises(ExerciseFilter{}, Sort{})
	if err != nil {
		t.Fatalf("WatchExercises failed: %v", err)
	}
	defer sub.Cancel()

	if snap := recvExercises(t, sub); len(snap) != 0 {
		t.Fatalf("expected empty initial snapshot, got %d", len(snap))
	}

	if err := store.CreateExercise(models.NewExercise("Plank", models.MuscleCore)); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	if snap := recvExercises(t, sub); len(snap) != 1 {
		t.Errorf("expected 1 after create, got %d", len(snap))
	}
}

func TestMemoryStoreSeeds(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	inserted, err := Seed(store)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if inserted != PresetCatalogSize() {
		t.Errorf("inserted %d, want %d", inserted, PresetCatalogSize())
	}
}
