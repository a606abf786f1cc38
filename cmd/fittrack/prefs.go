// ABOUTME: CLI commands for user preferences.
// ABOUTME: Supports weight unit, language, and home stat selection.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/i18n"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show and change preferences",
	Long: `Show and change user preferences.

PREFERENCES:

  unit     Weight display unit: kg (default) or lbs. Stored weights never
           change; only display and input conversion do.
  lang     UI language for muscle group, stat, and preset exercise names.
  stats    Which stats appear on the stats view and in what order.

EXAMPLES:

  fittrack prefs                      # Show all preferences
  fittrack prefs unit lbs             # Display weights in pounds
  fittrack prefs lang de              # Switch to German
  fittrack prefs stats toggle water   # Enable or disable a stat
  fittrack prefs stats move steps 0   # Move a stat to the front`,
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := prefStore.WeightUnit()
		if err != nil {
			return err
		}
		lang, err := prefStore.Language()
		if err != nil {
			return err
		}
		stats, err := prefStore.EnabledStats()
		if err != nil {
			return err
		}

		fmt.Printf("Weight unit: %s\n", unit)
		fmt.Printf("Language: %s\n", lang)
		names := make([]string, len(stats))
		for i, st := range stats {
			names[i] = string(st)
		}
		fmt.Printf("Home stats: %s\n", strings.Join(names, ", "))
		return nil
	},
}

var prefsUnitCmd = &cobra.Command{
	Use:       "unit <kg|lbs>",
	Short:     "Set the weight display unit",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"kg", "lbs"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidWeightUnit(args[0]) {
			return fmt.Errorf("unknown unit: %s (use kg or lbs)", args[0])
		}
		if err := prefStore.SetWeightUnit(models.WeightUnit(args[0])); err != nil {
			return err
		}
		color.Green("✓ Weight unit set to %s", args[0])
		return nil
	},
}

var prefsLangCmd = &cobra.Command{
	Use:   "lang <code>",
	Short: "Set the UI language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !i18n.IsSupported(args[0]) {
			return fmt.Errorf("unsupported language: %s (available: %s)",
				args[0], strings.Join(i18n.Languages(), ", "))
		}
		if err := prefStore.SetLanguage(args[0]); err != nil {
			return err
		}
		color.Green("✓ Language set to %s", args[0])
		return nil
	},
}

var prefsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Configure home stats",
}

var prefsStatsToggleCmd = &cobra.Command{
	Use:   "toggle <stat>",
	Short: "Enable or disable a home stat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidStatType(args[0]) {
			return fmt.Errorf("unknown stat: %s", args[0])
		}
		if err := prefStore.ToggleStat(models.StatType(args[0])); err != nil {
			return err
		}
		color.Green("✓ Toggled %s", args[0])
		return nil
	},
}

var prefsStatsMoveCmd = &cobra.Command{
	Use:   "move <stat> <index>",
	Short: "Reposition an enabled home stat",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidStatType(args[0]) {
			return fmt.Errorf("unknown stat: %s", args[0])
		}
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index: %s", args[1])
		}
		if err := prefStore.MoveStat(models.StatType(args[0]), idx); err != nil {
			return err
		}
		color.Green("✓ Moved %s to position %d", args[0], idx)
		return nil
	},
}

func init() {
	prefsStatsCmd.AddCommand(prefsStatsToggleCmd)
	prefsStatsCmd.AddCommand(prefsStatsMoveCmd)

	prefsCmd.AddCommand(prefsUnitCmd)
	prefsCmd.AddCommand(prefsLangCmd)
	prefsCmd.AddCommand(prefsStatsCmd)
	rootCmd.AddCommand(prefsCmd)
}
