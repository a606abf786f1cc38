// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Opens config, storage, and preferences in PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/prefs"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	repo      storage.Repository
	prefStore *prefs.Store
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal workout program tracker",
	Long: `Fittrack is a CLI tool for building workout programs from an exercise library.

WHAT IT MANAGES:

  Exercises      a library of preset and custom exercises tagged by muscle group
  Programs       ordered exercise lists with per-exercise sets/reps/weight/rest
  Stats          configurable home stats fed from a daily activity file
  Preferences    weight unit (kg/lbs), language, home stat selection

QUICK START:

  $ fittrack exercise list                  # Browse the exercise library
  $ fittrack program add "Leg Day"          # Create a program
  $ fittrack program exercise add <p> <e>   # Add an exercise to it
  $ fittrack program set <p> <e> --sets 5   # Tune sets/reps/weight
  $ fittrack program complete <p>           # Record a completed session
  $ fittrack stats                          # Today's activity overview

The library is seeded with 30 common exercises on first run. Weights are
stored in kilograms; set the display unit with 'fittrack prefs unit lbs'.

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Programs and exercises live in SQLite at ~/.local/share/fittrack/fittrack.db.
  Preferences live in a separate key-value store under the same directory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		prefStore, err = prefs.Open(cfg.PrefsDir())
		if err != nil {
			return fmt.Errorf("failed to open preferences: %w", err)
		}

		// First run: populate the exercise library
		if _, err := storage.Seed(repo); err != nil {
			return fmt.Errorf("failed to seed exercise library: %w", err)
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if prefStore != nil {
			if err := prefStore.Close(); err != nil {
				return err
			}
		}
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
