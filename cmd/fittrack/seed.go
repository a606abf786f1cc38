// ABOUTME: CLI command for the preset exercise seed loader.
// ABOUTME: Reports whether the library was populated or already had exercises.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the preset exercise library",
	Long: `Populate the exercise library with the built-in preset catalog.

Seeding only runs against an empty library; any existing exercise,
preset or custom, leaves the library untouched. This also happens
automatically on first use, so running it by hand is only needed after
wiping the data directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inserted, err := storage.Seed(repo)
		if err != nil {
			return fmt.Errorf("failed to seed exercise library: %w", err)
		}

		if inserted > 0 {
			color.Green("✓ Seeded %d preset exercises", inserted)
			return nil
		}

		count, err := repo.CountExercises()
		if err != nil {
			return err
		}
		fmt.Printf("Library already populated (%d exercises).\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
