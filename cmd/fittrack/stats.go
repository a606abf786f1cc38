// ABOUTME: CLI command showing today's home stats.
// ABOUTME: Combines the enabled stat selection with the daily activity feed.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/health"
	"github.com/harperreed/fittrack/internal/i18n"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show today's activity stats",
	Long: `Show today's activity stats for your enabled home stats.

Steps, calories burned, and activity time come from the daily activity
file when one is configured (activity_file in the config). Stats without
a feed show only their goal.

Pick which stats appear and their order with 'fittrack prefs stats'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := prefStore.EnabledStats()
		if err != nil {
			return fmt.Errorf("failed to read preferences: %w", err)
		}
		lang, _ := prefStore.Language()

		var provider health.Provider
		if path := cfg.GetActivityFile(); path != "" {
			provider = health.NewFileProvider(path)
		} else {
			provider = &health.StaticProvider{}
		}

		summary, err := provider.DailySummary(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to read activity feed: %w", err)
		}

		fmt.Printf("Stats for %s\n\n", summary.Date.Format("2006-01-02"))

		faint := color.New(color.Faint)
		for _, st := range enabled {
			name := i18n.Lookup(lang, "stat."+string(st))
			value := statValue(st, summary)
			goal := faint.Sprintf("goal %s %s", models.StatGoals[st], models.StatUnits[st])
			fmt.Printf("  %s %s  %s\n", padRight(name, 20), padRight(value, 12), goal)
		}
		return nil
	},
}

// statValue renders the feed value for a stat, or a dash when the feed
// has nothing for it.
func statValue(st models.StatType, s *health.Summary) string {
	switch st {
	case models.StatSteps:
		return fmt.Sprintf("%d", s.Steps)
	case models.StatCaloriesBurned:
		return fmt.Sprintf("%.0f kcal", s.ActiveEnergy)
	case models.StatActivityTime:
		return fmt.Sprintf("%.0f min", s.ExerciseMinutes)
	default:
		return "-"
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
