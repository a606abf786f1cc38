// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fittrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your fitness data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fittrack": {
        "command": "fittrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_exercises           Browse the exercise library
  add_exercise             Create a custom exercise
  toggle_favorite          Toggle the favorite flag on an exercise
  create_program           Create a workout program
  add_program_exercise     Append an exercise to a program
  update_exercise_setting  Tune sets/reps/weight/rest/notes
  complete_program         Record a completed session
  list_programs            List programs
  get_program              Get a program with resolved exercises
  delete_program           Delete a program

AVAILABLE RESOURCES:

  fittrack://library       Exercise library grouped by muscle group
  fittrack://programs      Programs with completion stats
  fittrack://today         Today's completions and favorites`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
