// ABOUTME: MCP resource implementations for the fitness store.
// ABOUTME: Provides fittrack://library, fittrack://programs, and fittrack://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fittrack://library - Exercise library grouped by muscle group
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://library",
		Name:        "Exercise Library",
		Description: "All exercises grouped by primary muscle group",
		MIMEType:    "application/json",
	}, s.handleLibraryResource)

	// fittrack://programs - All programs with completion stats
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://programs",
		Name:        "Workout Programs",
		Description: "All workout programs with exercise counts and completions",
		MIMEType:    "application/json",
	}, s.handleProgramsResource)

	// fittrack://today - Programs completed today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://today",
		Name:        "Today's Training",
		Description: "Programs completed today plus favorite exercises",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleLibraryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	exercises, err := s.repo.ListExercises(storage.ExerciseFilter{}, storage.Sort{})
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	grouped := make(map[string][]*models.Exercise)
	for _, e := range exercises {
		group := "untagged"
		if len(e.MuscleGroups) > 0 {
			group = string(e.MuscleGroups[0])
		}
		grouped[group] = append(grouped[group], e)
	}

	result := map[string]interface{}{
		"total":  len(exercises),
		"groups": grouped,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://library",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleProgramsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	programs, err := s.repo.ListPrograms(storage.ProgramFilter{}, storage.Sort{})
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}

	summaries := make([]map[string]interface{}, 0, len(programs))
	for _, p := range programs {
		entry := map[string]interface{}{
			"id":             p.ID.String(),
			"name":           p.Name,
			"exercise_count": len(p.ExerciseIDs),
			"completions":    p.CompletionCount,
			"last_modified":  p.LastModifiedAt.Format(time.RFC3339),
		}
		if p.LastCompletedAt != nil {
			entry["last_completed"] = p.LastCompletedAt.Format(time.RFC3339)
		}
		if p.DurationMinutes != nil {
			entry["duration_minutes"] = *p.DurationMinutes
		}
		summaries = append(summaries, entry)
	}

	data, err := json.MarshalIndent(map[string]interface{}{
		"total":    len(programs),
		"programs": summaries,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://programs",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	programs, err := s.repo.ListPrograms(storage.ProgramFilter{}, storage.Sort{})
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}

	var completedToday []*models.WorkoutProgram
	for _, p := range programs {
		if p.LastCompletedAt != nil && !p.LastCompletedAt.Before(todayStart) {
			completedToday = append(completedToday, p)
		}
	}

	favorites, err := s.repo.ListExercises(storage.ExerciseFilter{FavoritesOnly: true}, storage.Sort{})
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	result := map[string]interface{}{
		"date":            todayStart.Format("2006-01-02"),
		"completed":       completedToday,
		"favorites":       favorites,
		"completed_count": len(completedToday),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
