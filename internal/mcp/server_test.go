// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupServer builds a server over an in-memory store.
func setupServer(t *testing.T) (*Server, storage.Repository) {
	t.Helper()

	store := storage.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	server, err := NewServer(store)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server, store
}

func TestNewServer(t *testing.T) {
	server, _ := setupServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
}

func TestHandleAddExercise(t *testing.T) {
	server, repo := setupServer(t)
	ctx := context.Background()

	_, output, err := server.handleAddExercise(ctx, &mcp.CallToolRequest{}, addExerciseInput{
		Name:         "Goblet Squat",
		Description:  "Squat holding a dumbbell at the chest",
		MuscleGroups: []string{"legs", "core", "bogus"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.ID == "" || output.Message == "" {
		t.Error("Expected non-empty ID and message")
	}

	// Unknown tags are dropped, valid ones kept
	created, err := repo.ListExercises(storage.ExerciseFilter{NameContains: "goblet"}, storage.Sort{})
	if err != nil || len(created) != 1 {
		t.Fatalf("created exercise not found: %v", err)
	}
	if len(created[0].MuscleGroups) != 2 {
		t.Errorf("MuscleGroups = %v", created[0].MuscleGroups)
	}
	if !created[0].IsCustom {
		t.Error("tool-created exercises must be custom")
	}
}

func TestHandleAddExerciseEmptyName(t *testing.T) {
	server, _ := setupServer(t)
	ctx := context.Background()

	_, _, err := server.handleAddExercise(ctx, &mcp.CallToolRequest{}, addExerciseInput{})
	if err == nil {
		t.Error("Expected error for empty name")
	}
}

func TestHandleListExercises(t *testing.T) {
	server, repo := setupServer(t)
	ctx := context.Background()

	squat := models.NewExercise("Squat", models.MuscleLegs)
	bench := models.NewExercise("Bench Press", models.MuscleChest)
	bench.IsFavorite = true
	repo.CreateExercise(squat)
	repo.CreateExercise(bench)

	tests := []struct {
		name  string
		input listExercisesInput
	}{
		{"list all", listExercisesInput{}},
		{"filter by group", listExercisesInput{MuscleGroup: "legs"}},
		{"filter by name", listExercisesInput{Name: "bench"}},
		{"favorites only", listExercisesInput{FavoritesOnly: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleListExercises(ctx, &mcp.CallToolRequest{}, tt.input)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if output == nil {
				t.Error("Expected non-nil output")
			}
		})
	}
}

func TestHandleListExercisesInvalidGroup(t *testing.T) {
	server, _ := setupServer(t)
	ctx := context.Background()

	_, _, err := server.handleListExercises(ctx, &mcp.CallToolRequest{}, listExercisesInput{
		MuscleGroup: "wings",
	})
	if err == nil {
		t.Error("Expected error for unknown muscle group")
	}
}

func TestHandleToggleFavorite(t *testing.T) {
	server, repo := setupServer(t)
	ctx := context.Background()

	e := models.NewExercise("Deadlift", models.MuscleBack)
	repo.CreateExercise(e)

	// Toggle on, by id prefix
	_, output, err := server.handleToggleFavorite(ctx, &mcp.CallToolRequest{}, exerciseRefInput{
		ID: e.ID.String()[:8],
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output.Message, "favorited") {
		t.Errorf("Message = %s", output.Message)
	}

	got, _ := repo.GetExercise(e.ID)
	if !got.IsFavorite {
		t.Error("favorite flag not set")
	}

	// Toggle off
	if _, _, err := server.handleToggleFavorite(ctx, &mcp.CallToolRequest{}, exerciseRefInput{ID: e.ID.String()}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, _ = repo.GetExercise(e.ID)
	if got.IsFavorite {
		t.Error("favorite flag not cleared")
	}
}

func TestHandleToggleFavoriteNotFound(t *testing.T) {
	server, _ := setupServer(t)
	ctx := context.Background()

	_, _, err := server.handleToggleFavorite(ctx, &mcp.CallToolRequest{}, exerciseRefInput{ID: "ffffffff"})
	if err == nil {
		t.Error("Expected error for nonexistent exercise")
	}
}

func TestHandleCreateProgram(t *testing.T) {
	server, _ := setupServer(t)
	ctx := context.Background()

	_, output, err := server.handleCreateProgram(ctx, &mcp.CallToolRequest{}, createProgramInput{
		Name:            "Leg Day",
		Description:     "Lower body strength",
		DurationMinutes: 45,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Name != "Leg Day" || output.ID == "" {
		t.Errorf("output = %+v", output)
	}
}

func TestHandleAddProgramExerciseAndUpdateSetting(t *testing.T) {
	server, repo := setupServer(t)
	ctx := context.Background()

	squat := models.NewExercise("Squat", models.MuscleLegs)
	repo.CreateExercise(squat)
	p := models.NewWorkoutProgram("Leg Day")
	repo.CreateProgram(p)

	_, output, err := server.handleAddProgramExercise(ctx, &mcp.CallToolRequest{}, addProgramExerciseInput{
		ProgramID:  p.ID.String()[:8],
		ExerciseID: squat.ID.String()[:8],
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}

	got, _ := repo.GetProgram(p.ID)
	if len(got.ExerciseIDs) != 1 || got.Settings[0].Sets != 3 {
		t.Fatalf("program state after add: %+v", got)
	}

	sets, weight := 5, 100.0
	_, out2, err := server.handleUpdateExerciseSetting(ctx, &mcp.CallToolRequest{}, updateSettingInput{
		ProgramID:  p.ID.String(),
		ExerciseID: squat.ID.String(),
		Sets:       &sets,
		WeightKg:   &weight,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out2.Message, "5x10") {
		t.Errorf("Message = %s", out2.Message)
	}

	got, _ = repo.GetProgram(p.ID)
	s := got.SettingFor(squat.ID)
	if s == nil || s.Sets != 5 || s.WeightKg != 100 || s.Reps != 10 {
		t.Errorf("setting = %+v", s)
	}
}

func TestHandleUpdateSettingNotInProgram(t *testing.T) {
	server, repo := setupServer(t)
	ctx := context.Background()

	e := models.NewExercise("Plank", models.MuscleCore)
	repo.CreateExercise(e)
	p := models.NewWorkoutProgram("Core Day")
	repo.CreateProgram(p)

	sets := 4
	_, _, err := server.handleUpdateExerciseSetting(ctx, &mcp.CallToolRequest{}, updateSettingInput{
		ProgramID:  p.ID.String(),
		ExerciseID: e.ID.String(),
		Sets:       &sets,
	})
	if err == nil {
		t.Error("Expected error for exercise not in program")
	}
}

func TestHandleCompleteProgram(t *testing.T) {
	server, repo := setupServer(t)
	ctx := context.Background()

	p := models.NewWorkoutProgram("Full Body")
	repo.CreateProgram(p)

	_, output, err := server.handleCompleteProgram(ctx, &mcp.CallToolRequest{}, programRefInput{
		ID: p.ID.String()[:8],
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output.Message, "1 total") {
		t.Errorf("Message = %s", output.Message)
	}

	got, _ := repo.GetProgram(p.ID)
	if got.CompletionCount != 1 || got.LastCompletedAt == nil {
		t.Errorf("completion not recorded: %+v", got)
	}
}

func TestHandleGetProgramResolvesExercises(t *testing.T) {
	server, repo := setupServer(t)
	ctx := context.Background()

	squat := models.NewExercise("Squat", models.MuscleLegs)
	repo.CreateExercise(squat)
	p := models.NewWorkoutProgram("Leg Day")
	p.AddExercise(squat.ID)
	repo.CreateProgram(p)

	_, output, err := server.handleGetProgram(ctx, &mcp.CallToolRequest{}, programRefInput{
		ID: p.ID.String()[:8],
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	result, ok := output.(map[string]interface{})
	if !ok {
		t.Fatal("Expected map output")
	}
	exercises, ok := result["exercises"].([]*models.Exercise)
	if !ok || len(exercises) != 1 || exercises[0].Name != "Squat" {
		t.Errorf("exercises = %v", result["exercises"])
	}
}

func TestHandleDeleteProgram(t *testing.T) {
	server, repo := setupServer(t)
	ctx := context.Background()

	p := models.NewWorkoutProgram("Temporary")
	repo.CreateProgram(p)

	_, output, err := server.handleDeleteProgram(ctx, &mcp.CallToolRequest{}, programRefInput{
		ID: p.ID.String()[:8],
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}

	if _, err := repo.GetProgram(p.ID); err == nil {
		t.Error("Expected program to be deleted")
	}
}

func TestHandleListProgramsEmpty(t *testing.T) {
	server, _ := setupServer(t)
	ctx := context.Background()

	_, output, err := server.handleListPrograms(ctx, &mcp.CallToolRequest{}, listProgramsInput{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if output == nil {
		t.Error("Expected non-nil output")
	}
}

func TestFindExerciseAmbiguousPrefix(t *testing.T) {
	server, repo := setupServer(t)

	a := models.NewExercise("One", models.MuscleCore)
	b := models.NewExercise("Two", models.MuscleCore)
	repo.CreateExercise(a)
	repo.CreateExercise(b)

	// The empty prefix matches everything.
	if _, err := server.findExercise(""); err == nil {
		t.Error("Expected ambiguity error")
	}
}

func TestHandleLibraryResource(t *testing.T) {
	server, repo := setupServer(t)
	ctx := context.Background()

	repo.CreateExercise(models.NewExercise("Squat", models.MuscleLegs))
	repo.CreateExercise(models.NewExercise("Bench Press", models.MuscleChest))

	result, err := server.handleLibraryResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Contents) == 0 {
		t.Fatal("Expected non-empty contents")
	}
	if result.Contents[0].URI != "fittrack://library" {
		t.Errorf("URI = %s", result.Contents[0].URI)
	}
	if !strings.Contains(result.Contents[0].Text, "legs") {
		t.Error("Expected legs group in library")
	}
}

func TestHandleProgramsResource(t *testing.T) {
	server, repo := setupServer(t)
	ctx := context.Background()

	p := models.NewWorkoutProgram("Leg Day")
	repo.CreateProgram(p)
	repo.MarkProgramCompleted(p.ID, time.Now())

	result, err := server.handleProgramsResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	text := result.Contents[0].Text
	if !strings.Contains(text, "Leg Day") || !strings.Contains(text, "\"completions\": 1") {
		t.Errorf("programs resource = %s", text)
	}
}

func TestHandleTodayResource(t *testing.T) {
	server, repo := setupServer(t)
	ctx := context.Background()

	done := models.NewWorkoutProgram("Done Today")
	old := models.NewWorkoutProgram("Done Last Week")
	repo.CreateProgram(done)
	repo.CreateProgram(old)
	repo.MarkProgramCompleted(done.ID, time.Now())
	repo.MarkProgramCompleted(old.ID, time.Now().Add(-7*24*time.Hour))

	fav := models.NewExercise("Deadlift", models.MuscleBack)
	fav.IsFavorite = true
	repo.CreateExercise(fav)

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	text := result.Contents[0].Text
	if !strings.Contains(text, "Done Today") {
		t.Error("Expected today's completion in resource")
	}
	if strings.Contains(text, "Done Last Week") {
		t.Error("Old completion leaked into today resource")
	}
	if !strings.Contains(text, "Deadlift") {
		t.Error("Expected favorites in today resource")
	}
}

func TestHandleTodayResourceEmpty(t *testing.T) {
	server, _ := setupServer(t)
	ctx := context.Background()

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("Expected non-nil result")
	}
}
