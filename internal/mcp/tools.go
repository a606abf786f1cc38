// ABOUTME: MCP tool implementations for the fitness store.
// ABOUTME: Provides exercise library and workout program operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List exercises, optionally filtered by muscle group, favorites, or name",
	}, s.handleListExercises)

	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Create a custom exercise in the library",
	}, s.handleAddExercise)

	// toggle_favorite
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_favorite",
		Description: "Toggle the favorite flag on an exercise",
	}, s.handleToggleFavorite)

	// create_program
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_program",
		Description: "Create a new workout program",
	}, s.handleCreateProgram)

	// add_program_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_program_exercise",
		Description: "Append an exercise to a program with default settings",
	}, s.handleAddProgramExercise)

	// update_exercise_setting
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_exercise_setting",
		Description: "Update sets, reps, weight, rest, or notes for an exercise in a program",
	}, s.handleUpdateExerciseSetting)

	// complete_program
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_program",
		Description: "Record a completion of a workout program",
	}, s.handleCompleteProgram)

	// list_programs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_programs",
		Description: "List workout programs",
	}, s.handleListPrograms)

	// get_program
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_program",
		Description: "Get a program with its resolved exercises and settings",
	}, s.handleGetProgram)

	// delete_program
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_program",
		Description: "Delete a workout program",
	}, s.handleDeleteProgram)
}

// Tool input/output types

type listExercisesInput struct {
	MuscleGroup   string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (chest, back, legs, shoulders, arms, core, cardio, full_body)"`
	Name          string `json:"name,omitempty" jsonschema:"Case-insensitive name substring filter"`
	FavoritesOnly bool   `json:"favorites_only,omitempty" jsonschema:"Only favorited exercises"`
	CustomOnly    bool   `json:"custom_only,omitempty" jsonschema:"Only user-created exercises"`
}

type addExerciseInput struct {
	Name         string   `json:"name" jsonschema:"Exercise name"`
	Description  string   `json:"description,omitempty" jsonschema:"Short description"`
	Instructions string   `json:"instructions,omitempty" jsonschema:"How to perform the exercise"`
	MuscleGroups []string `json:"muscle_groups,omitempty" jsonschema:"Muscle group tags"`
}

type exerciseOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type exerciseRefInput struct {
	ID string `json:"id" jsonschema:"Exercise ID or prefix"`
}

type createProgramInput struct {
	Name            string `json:"name" jsonschema:"Program name"`
	Description     string `json:"description,omitempty" jsonschema:"Program description"`
	DurationMinutes int    `json:"duration_minutes,omitempty" jsonschema:"Planned duration in minutes"`
}

type programOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type addProgramExerciseInput struct {
	ProgramID  string `json:"program_id" jsonschema:"Program ID or prefix"`
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise ID or prefix"`
}

type updateSettingInput struct {
	ProgramID   string   `json:"program_id" jsonschema:"Program ID or prefix"`
	ExerciseID  string   `json:"exercise_id" jsonschema:"Exercise ID or prefix"`
	Sets        *int     `json:"sets,omitempty" jsonschema:"Number of sets"`
	Reps        *int     `json:"reps,omitempty" jsonschema:"Repetitions per set"`
	WeightKg    *float64 `json:"weight_kg,omitempty" jsonschema:"Weight in kilograms"`
	RestSeconds *int     `json:"rest_seconds,omitempty" jsonschema:"Rest between sets in seconds"`
	Notes       *string  `json:"notes,omitempty" jsonschema:"Free-form notes"`
}

type programRefInput struct {
	ID string `json:"id" jsonschema:"Program ID or prefix"`
}

type listProgramsInput struct {
	Name string `json:"name,omitempty" jsonschema:"Case-insensitive name substring filter"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	filter := storage.ExerciseFilter{
		NameContains:  input.Name,
		FavoritesOnly: input.FavoritesOnly,
		CustomOnly:    input.CustomOnly,
	}
	if input.MuscleGroup != "" {
		if !models.IsValidMuscleGroup(input.MuscleGroup) {
			return nil, nil, fmt.Errorf("unknown muscle group: %s", input.MuscleGroup)
		}
		mg := models.MuscleGroup(input.MuscleGroup)
		filter.MuscleGroup = &mg
	}

	exercises, err := s.repo.ListExercises(filter, storage.Sort{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	if len(exercises) == 0 {
		return nil, map[string]interface{}{"message": "No exercises found."}, nil
	}
	return nil, exercises, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	groups := models.ParseMuscleGroups(input.MuscleGroups)
	e := models.NewExercise(input.Name, groups...)
	if input.Description != "" {
		e.WithDescription(input.Description)
	}
	if input.Instructions != "" {
		e.WithInstructions(input.Instructions)
	}

	if err := s.repo.CreateExercise(e); err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to create exercise: %w", err)
	}

	return nil, exerciseOutput{
		ID:      e.ID.String()[:8],
		Name:    e.Name,
		Message: fmt.Sprintf("Added exercise %s (ID: %s)", e.Name, e.ID.String()[:8]),
	}, nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, req *mcp.CallToolRequest, input exerciseRefInput) (*mcp.CallToolResult, exerciseOutput, error) {
	e, err := s.findExercise(input.ID)
	if err != nil {
		return nil, exerciseOutput{}, err
	}

	e.IsFavorite = !e.IsFavorite
	if err := s.repo.UpdateExercise(e); err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to update exercise: %w", err)
	}

	state := "unfavorited"
	if e.IsFavorite {
		state = "favorited"
	}
	return nil, exerciseOutput{
		ID:      e.ID.String()[:8],
		Name:    e.Name,
		Message: fmt.Sprintf("%s %s", e.Name, state),
	}, nil
}

func (s *Server) handleCreateProgram(ctx context.Context, req *mcp.CallToolRequest, input createProgramInput) (*mcp.CallToolResult, programOutput, error) {
	p := models.NewWorkoutProgram(input.Name)
	if input.Description != "" {
		p.WithDescription(input.Description)
	}
	if input.DurationMinutes > 0 {
		p.WithDuration(input.DurationMinutes)
	}

	if err := s.repo.CreateProgram(p); err != nil {
		return nil, programOutput{}, fmt.Errorf("failed to create program: %w", err)
	}

	return nil, programOutput{
		ID:      p.ID.String()[:8],
		Name:    p.Name,
		Message: fmt.Sprintf("Created program %s (ID: %s)", p.Name, p.ID.String()[:8]),
	}, nil
}

func (s *Server) handleAddProgramExercise(ctx context.Context, req *mcp.CallToolRequest, input addProgramExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.findProgram(input.ProgramID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	e, err := s.findExercise(input.ExerciseID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	p.AddExercise(e.ID)
	p.Touch()
	if err := s.repo.UpdateProgram(p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update program: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s to %s", e.Name, p.Name),
	}, nil
}

func (s *Server) handleUpdateExerciseSetting(ctx context.Context, req *mcp.CallToolRequest, input updateSettingInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.findProgram(input.ProgramID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	e, err := s.findExercise(input.ExerciseID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	setting := p.SettingFor(e.ID)
	if setting == nil {
		return nil, simpleOutput{}, fmt.Errorf("%s is not part of %s", e.Name, p.Name)
	}

	if input.Sets != nil {
		setting.Sets = *input.Sets
	}
	if input.Reps != nil {
		setting.Reps = *input.Reps
	}
	if input.WeightKg != nil {
		setting.WeightKg = *input.WeightKg
	}
	if input.RestSeconds != nil {
		setting.RestSeconds = *input.RestSeconds
	}
	if input.Notes != nil {
		setting.Notes = *input.Notes
	}

	p.Touch()
	if err := s.repo.UpdateProgram(p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update program: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated %s in %s: %dx%d @ %.1f kg, %ds rest",
			e.Name, p.Name, setting.Sets, setting.Reps, setting.WeightKg, setting.RestSeconds),
	}, nil
}

func (s *Server) handleCompleteProgram(ctx context.Context, req *mcp.CallToolRequest, input programRefInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.findProgram(input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.repo.MarkProgramCompleted(p.ID, time.Now()); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to record completion: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Completed %s (%d total)", p.Name, p.CompletionCount+1),
	}, nil
}

func (s *Server) handleListPrograms(ctx context.Context, req *mcp.CallToolRequest, input listProgramsInput) (*mcp.CallToolResult, any, error) {
	programs, err := s.repo.ListPrograms(storage.ProgramFilter{NameContains: input.Name}, storage.Sort{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list programs: %w", err)
	}

	if len(programs) == 0 {
		return nil, map[string]interface{}{"message": "No programs found."}, nil
	}
	return nil, programs, nil
}

func (s *Server) handleGetProgram(ctx context.Context, req *mcp.CallToolRequest, input programRefInput) (*mcp.CallToolResult, any, error) {
	p, err := s.findProgram(input.ID)
	if err != nil {
		return nil, nil, err
	}

	resolved, err := s.repo.ResolveExercises(p)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve exercises: %w", err)
	}

	return nil, map[string]interface{}{
		"program":   p,
		"exercises": resolved,
	}, nil
}

func (s *Server) handleDeleteProgram(ctx context.Context, req *mcp.CallToolRequest, input programRefInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.findProgram(input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.repo.DeleteProgram(p.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete program: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted program: %s", p.Name),
	}, nil
}
