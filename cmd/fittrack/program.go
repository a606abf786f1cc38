// ABOUTME: CLI commands for workout programs.
// ABOUTME: Supports add, list, show, exercise roster edits, settings, and completion.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	programDescription string
	programDuration    int
	programFilterName  string
	programSortBy      string
	programIcon        string

	settingSets   int
	settingReps   int
	settingWeight float64
	settingRest   int
	settingNotes  string
)

var programCmd = &cobra.Command{
	Use:     "program",
	Aliases: []string{"p"},
	Short:   "Manage workout programs",
	Long: `Build and run workout programs.

A program is an ordered list of exercises, each with its own sets, reps,
weight, rest, and notes. New entries start at 3 sets of 10 with 60s rest.

WORKFLOW:

  1. Create a program:        fittrack program add "Leg Day"
  2. Add exercises:           fittrack program exercise add <program> <exercise>
  3. Tune settings:           fittrack program set <program> <exercise> --sets 5 --weight 100
  4. Record a session:        fittrack program complete <program>

Weights given to --weight are read in your display unit (kg by default,
see 'fittrack prefs unit') and stored in kilograms.`,
}

var programAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.NewWorkoutProgram(args[0])
		if programDescription != "" {
			p.WithDescription(programDescription)
		}
		if programDuration > 0 {
			p.WithDuration(programDuration)
		}
		if programIcon != "" {
			p.SetPresetIcon(programIcon)
		}

		if err := repo.CreateProgram(p); err != nil {
			return fmt.Errorf("failed to create program: %w", err)
		}

		color.Green("✓ Created %s", p.Name)
		fmt.Printf("  ID: %s\n", p.ID.String()[:8])
		return nil
	},
}

var programListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		sort := storage.Sort{}
		switch programSortBy {
		case "", "name":
		case "created":
			sort.Field = storage.SortByCreatedAt
			sort.Desc = true
		case "modified":
			sort.Field = storage.SortByLastModified
			sort.Desc = true
		case "completions":
			sort.Field = storage.SortByCompletions
			sort.Desc = true
		default:
			return fmt.Errorf("unknown sort: %s (use name, created, modified, completions)", programSortBy)
		}

		programs, err := repo.ListPrograms(storage.ProgramFilter{NameContains: programFilterName}, sort)
		if err != nil {
			return fmt.Errorf("failed to list programs: %w", err)
		}

		if len(programs) == 0 {
			fmt.Println("No programs found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range programs {
			completions := ""
			if p.CompletionCount > 0 {
				completions = fmt.Sprintf("%d done", p.CompletionCount)
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(p.ID.String()[:8]),
				padRight(p.Name, 24),
				faint.Sprintf("%d exercises", len(p.ExerciseIDs)),
				completions)
		}
		return nil
	},
}

var programShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a program with its exercises and settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findProgram(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Program: %s\n", p.Name)
		if p.Description != "" {
			fmt.Printf("Description: %s\n", p.Description)
		}
		if p.DurationMinutes != nil {
			fmt.Printf("Duration: %d min\n", *p.DurationMinutes)
		}
		if p.UsePresetIcon && p.PresetIconName != nil {
			fmt.Printf("Icon: %s\n", *p.PresetIconName)
		}
		fmt.Printf("Completed: %d times", p.CompletionCount)
		if p.LastCompletedAt != nil {
			fmt.Printf(", last on %s", p.LastCompletedAt.Format("2006-01-02"))
		}
		fmt.Println()

		if len(p.ExerciseIDs) == 0 {
			fmt.Println("\nNo exercises yet.")
			return nil
		}

		resolved, err := repo.ResolveExercises(p)
		if err != nil {
			return fmt.Errorf("failed to resolve exercises: %w", err)
		}
		names := make(map[uuid.UUID]string, len(resolved))
		for _, e := range resolved {
			names[e.ID] = e.Name
		}

		unit, _ := prefStore.WeightUnit()
		faint := color.New(color.Faint)
		fmt.Println("\nExercises:")
		for i, id := range p.ExerciseIDs {
			name, ok := names[id]
			if !ok {
				// Reference to a deleted exercise; keep the slot visible.
				continue
			}
			s := p.SettingFor(id)
			line := fmt.Sprintf("  %d. %s", i+1, padRight(name, 22))
			if s != nil {
				line += fmt.Sprintf(" %dx%d @ %.1f %s, %ds rest",
					s.Sets, s.Reps, unit.ToDisplay(s.WeightKg), unit, s.RestSeconds)
				if s.Notes != "" {
					line += faint.Sprintf(" (%s)", truncate(s.Notes, 30))
				}
			}
			fmt.Println(line)
		}
		return nil
	},
}

var programExerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Edit a program's exercise roster",
}

var programExerciseAddCmd = &cobra.Command{
	Use:   "add <program-id> <exercise-id>",
	Short: "Append an exercise to a program",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findProgram(args[0])
		if err != nil {
			return err
		}
		e, err := findExercise(args[1])
		if err != nil {
			return err
		}

		p.AddExercise(e.ID)
		p.Touch()
		if err := repo.UpdateProgram(p); err != nil {
			return fmt.Errorf("failed to update program: %w", err)
		}

		color.Green("✓ Added %s to %s", e.Name, p.Name)
		return nil
	},
}

var programExerciseRemoveCmd = &cobra.Command{
	Use:     "remove <program-id> <exercise-id>",
	Aliases: []string{"rm"},
	Short:   "Remove an exercise from a program",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findProgram(args[0])
		if err != nil {
			return err
		}
		e, err := findExercise(args[1])
		if err != nil {
			return err
		}

		p.RemoveExercise(e.ID)
		p.Touch()
		if err := repo.UpdateProgram(p); err != nil {
			return fmt.Errorf("failed to update program: %w", err)
		}

		color.Green("✓ Removed %s from %s", e.Name, p.Name)
		return nil
	},
}

var programSetCmd = &cobra.Command{
	Use:   "set <program-id> <exercise-id>",
	Short: "Update settings for an exercise in a program",
	Long: `Update sets, reps, weight, rest, or notes for one program entry.

The weight flag is read in your display unit and stored in kilograms.

Examples:
  fittrack program set abc123 def456 --sets 5 --reps 5 --weight 100
  fittrack program set abc123 def456 --rest 120 --notes "pause at bottom"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findProgram(args[0])
		if err != nil {
			return err
		}
		e, err := findExercise(args[1])
		if err != nil {
			return err
		}

		s := p.SettingFor(e.ID)
		if s == nil {
			return fmt.Errorf("%s is not part of %s", e.Name, p.Name)
		}

		unit, _ := prefStore.WeightUnit()
		if cmd.Flags().Changed("sets") {
			s.Sets = settingSets
		}
		if cmd.Flags().Changed("reps") {
			s.Reps = settingReps
		}
		if cmd.Flags().Changed("weight") {
			s.WeightKg = unit.ToStorage(settingWeight)
		}
		if cmd.Flags().Changed("rest") {
			s.RestSeconds = settingRest
		}
		if cmd.Flags().Changed("notes") {
			s.Notes = settingNotes
		}

		p.Touch()
		if err := repo.UpdateProgram(p); err != nil {
			return fmt.Errorf("failed to update program: %w", err)
		}

		color.Green("✓ Updated %s in %s", e.Name, p.Name)
		fmt.Printf("  %dx%d @ %.1f %s, %ds rest\n",
			s.Sets, s.Reps, unit.ToDisplay(s.WeightKg), unit, s.RestSeconds)
		return nil
	},
}

var programCompleteCmd = &cobra.Command{
	Use:     "complete <id>",
	Aliases: []string{"done"},
	Short:   "Record a completed session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findProgram(args[0])
		if err != nil {
			return err
		}

		if err := repo.MarkProgramCompleted(p.ID, time.Now()); err != nil {
			return fmt.Errorf("failed to record completion: %w", err)
		}

		color.Green("✓ Completed %s (%d total)", p.Name, p.CompletionCount+1)
		return nil
	},
}

var programRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a program",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findProgram(args[0])
		if err != nil {
			return err
		}

		old := p.Name
		p.Name = args[1]
		p.Touch()
		if err := repo.UpdateProgram(p); err != nil {
			return fmt.Errorf("failed to update program: %w", err)
		}

		color.Green("✓ Renamed %s to %s", old, p.Name)
		return nil
	},
}

var programDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a program",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findProgram(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteProgram(p.ID); err != nil {
			return fmt.Errorf("failed to delete program: %w", err)
		}

		color.Green("✓ Deleted %s", p.Name)
		return nil
	},
}

// findProgram resolves a full UUID or id prefix against the programs.
func findProgram(ref string) (*models.WorkoutProgram, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return repo.GetProgram(id)
	}

	all, err := repo.ListPrograms(storage.ProgramFilter{}, storage.Sort{})
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
		return nil, fmt.Errorf("program not found: %s", ref)
	}
	return match, nil
}

func init() {
	programAddCmd.Flags().StringVar(&programDescription, "description", "", "program description")
	programAddCmd.Flags().IntVarP(&programDuration, "duration", "d", 0, "planned duration in minutes")
	programAddCmd.Flags().StringVar(&programIcon, "icon", "", "preset icon name")

	programListCmd.Flags().StringVar(&programFilterName, "name", "", "filter by name substring")
	programListCmd.Flags().StringVar(&programSortBy, "sort", "", "sort by name, created, modified, or completions")

	programSetCmd.Flags().IntVar(&settingSets, "sets", 0, "number of sets")
	programSetCmd.Flags().IntVar(&settingReps, "reps", 0, "repetitions per set")
	programSetCmd.Flags().Float64Var(&settingWeight, "weight", 0, "weight in your display unit")
	programSetCmd.Flags().IntVar(&settingRest, "rest", 0, "rest between sets in seconds")
	programSetCmd.Flags().StringVar(&settingNotes, "notes", "", "free-form notes")

	programExerciseCmd.AddCommand(programExerciseAddCmd)
	programExerciseCmd.AddCommand(programExerciseRemoveCmd)

	programCmd.AddCommand(programAddCmd)
	programCmd.AddCommand(programListCmd)
	programCmd.AddCommand(programShowCmd)
	programCmd.AddCommand(programExerciseCmd)
	programCmd.AddCommand(programSetCmd)
	programCmd.AddCommand(programCompleteCmd)
	programCmd.AddCommand(programRenameCmd)
	programCmd.AddCommand(programDeleteCmd)
	rootCmd.AddCommand(programCmd)
}
