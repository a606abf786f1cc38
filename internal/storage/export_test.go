// ABOUTME: Tests for export and import functionality.
// ABOUTME: Verifies JSON round-trips, YAML grouping, and Markdown output.
package storage

import (
	"strings"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func seedExportFixture(t *testing.T, repo Repository) (*models.Exercise, *models.WorkoutProgram) {
	t.Helper()

	squat := models.NewExercise("Squat", models.MuscleLegs, models.MuscleCore).
		WithDescription("Fundamental leg strength builder")
	if err := repo.CreateExercise(squat); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	p := models.NewWorkoutProgram("Leg Day").WithDuration(45)
	s := p.AddExercise(squat.ID)
	s.WeightKg = 80
	s.Notes = "pause at bottom"
	if err := repo.CreateProgram(p); err != nil {
		t.Fatalf("CreateProgram failed: %v", err)
	}

	return squat, p
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	squat, program := seedExportFixture(t, db)

	raw, err := ExportJSON(db)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if !strings.Contains(string(raw), "\"tool\": \"fittrack\"") {
		t.Error("export missing tool marker")
	}

	// Import into a fresh store keeps ids and field values
	fresh := NewMemoryStore()
	defer fresh.Close()
	if err := ImportJSON(fresh, raw); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	gotEx, err := fresh.GetExercise(squat.ID)
	if err != nil {
		t.Fatalf("imported exercise missing: %v", err)
	}
	if gotEx.Name != "Squat" || gotEx.Description != squat.Description {
		t.Errorf("imported exercise mismatch: %+v", gotEx)
	}

	gotP, err := fresh.GetProgram(program.ID)
	if err != nil {
		t.Fatalf("imported program missing: %v", err)
	}
	if len(gotP.Settings) != 1 || gotP.Settings[0].WeightKg != 80 || gotP.Settings[0].Notes != "pause at bottom" {
		t.Errorf("imported settings mismatch: %+v", gotP.Settings)
	}
}

func TestImportCollisionFails(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	seedExportFixture(t, db)

	raw, err := ExportJSON(db)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	// Importing into the same store collides on every id.
	if err := ImportJSON(db, raw); err == nil {
		t.Error("expected collision error on self-import")
	}
}

func TestExportYAMLGroupsByMuscle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	seedExportFixture(t, db)

	raw, err := ExportYAML(db)
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, "legs:") {
		t.Errorf("expected legs group in YAML:\n%s", out)
	}
	if !strings.Contains(out, "name: Squat") {
		t.Error("exercise missing from YAML")
	}
	if !strings.Contains(out, "name: Leg Day") {
		t.Error("program missing from YAML")
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	seedExportFixture(t, db)

	out, err := ExportMarkdown(db)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if !strings.Contains(out, "## Exercise Library") {
		t.Error("missing library section")
	}
	if !strings.Contains(out, "### legs") {
		t.Error("missing muscle group heading")
	}
	if !strings.Contains(out, "### Leg Day") {
		t.Error("missing program heading")
	}
	if !strings.Contains(out, "| Squat | 3 | 10 | 80.0 | 60 | pause at bottom |") {
		t.Errorf("missing settings row:\n%s", out)
	}
}

func TestExportMarkdownSkipsDanglingRows(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	squat, _ := seedExportFixture(t, db)

	if err := db.DeleteExercise(squat.ID); err != nil {
		t.Fatalf("DeleteExercise failed: %v", err)
	}

	out, err := ExportMarkdown(db)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if strings.Contains(out, "| Squat |") {
		t.Error("dangling settings row rendered")
	}
}
