// ABOUTME: MCP server setup for the fitness store.
// ABOUTME: Wraps the MCP server with a storage Repository connection.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fittrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// findExercise resolves a full UUID or an id prefix to an exercise.
func (s *Server) findExercise(ref string) (*models.Exercise, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return s.repo.GetExercise(id)
	}

	all, err := s.repo.ListExercises(storage.ExerciseFilter{}, storage.Sort{})
	if err != nil {
		return nil, err
	}
	var match *models.Exercise
	for _, e := range all {
		if strings.HasPrefix(e.ID.String(), ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous exercise id prefix: %s", ref)
			}
			match = e
		}
	}
	if match == nil {
		return nil, fmt.Errorf("exercise %s: %w", ref, storage.ErrNotFound)
	}
	return match, nil
}

// findProgram resolves a full UUID or an id prefix to a program.
func (s *Server) findProgram(ref string) (*models.WorkoutProgram, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return s.repo.GetProgram(id)
	}

	all, err := s.repo.ListPrograms(storage.ProgramFilter{}, storage.Sort{})
	if err != nil {
		return nil, err
	}
	var match *models.WorkoutProgram
	for _, p := range all {
		if strings.HasPrefix(p.ID.String(), ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous program id prefix: %s", ref)
			}
			match = p
		}
	}
	if match == nil {
		return nil, fmt.Errorf("program %s: %w", ref, storage.ErrNotFound)
	}
	return match, nil
}
