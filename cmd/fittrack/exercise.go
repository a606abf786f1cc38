// ABOUTME: CLI commands for the exercise library.
// ABOUTME: Supports add, list, show, favorite, and delete subcommands.
package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/i18n"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exerciseGroups        []string
	exerciseNewName       string
	exerciseDescription   string
	exerciseInstructions  string
	exerciseFilterGroup   string
	exerciseFilterName    string
	exerciseFavoritesOnly bool
	exerciseCustomOnly    bool
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex", "e"},
	Short:   "Manage the exercise library",
	Long: `Browse and edit the exercise library.

The library starts with 30 preset exercises covering all muscle groups.
Presets cannot be distinguished from custom exercises in programs; the
custom flag only marks where an exercise came from.

MUSCLE GROUPS:

  chest, back, legs, shoulders, arms, core, cardio, full_body

EXAMPLES:

  fittrack exercise list                      # Whole library
  fittrack exercise list -g legs              # Leg exercises only
  fittrack exercise list --favorites          # Favorites
  fittrack exercise add "Goblet Squat" -g legs -g core
  fittrack exercise favorite abc123           # Toggle favorite by id prefix`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom exercise",
	Long: `Add a custom exercise to the library.

Examples:
  fittrack exercise add "Goblet Squat" -g legs -g core
  fittrack exercise add "Box Jumps" -g legs -g cardio --description "Explosive plyometric jump"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groups := models.ParseMuscleGroups(exerciseGroups)
		e := models.NewExercise(args[0], groups...)
		if exerciseDescription != "" {
			e.WithDescription(exerciseDescription)
		}
		if exerciseInstructions != "" {
			e.WithInstructions(exerciseInstructions)
		}

		if err := repo.CreateExercise(e); err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		color.Green("✓ Added %s", e.Name)
		fmt.Printf("  ID: %s\n", e.ID.String()[:8])
		if len(e.MuscleGroups) > 0 {
			fmt.Printf("  Groups: %s\n", joinGroups(e.MuscleGroups))
		}
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := storage.ExerciseFilter{
			NameContains:  exerciseFilterName,
			FavoritesOnly: exerciseFavoritesOnly,
			CustomOnly:    exerciseCustomOnly,
		}
		if exerciseFilterGroup != "" {
			if !models.IsValidMuscleGroup(exerciseFilterGroup) {
				return fmt.Errorf("unknown muscle group: %s", exerciseFilterGroup)
			}
			mg := models.MuscleGroup(exerciseFilterGroup)
			filter.MuscleGroup = &mg
		}

		exercises, err := repo.ListExercises(filter, storage.Sort{})
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		lang, _ := prefStore.Language()
		faint := color.New(color.Faint)
		for _, e := range exercises {
			marker := " "
			if e.IsFavorite {
				marker = color.YellowString("★")
			}
			custom := ""
			if e.IsCustom {
				custom = faint.Sprint(" (custom)")
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(e.ID.String()[:8]),
				marker,
				padRight(displayName(lang, e), 24),
				faint.Sprint(joinGroups(e.MuscleGroups)),
				custom)
		}
		return nil
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show exercise details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := findExercise(args[0])
		if err != nil {
			return err
		}

		lang, _ := prefStore.Language()
		fmt.Printf("Exercise: %s\n", displayName(lang, e))
		fmt.Printf("ID: %s\n", e.ID.String())
		fmt.Printf("Groups: %s\n", joinGroups(e.MuscleGroups))
		if e.Description != "" {
			fmt.Printf("Description: %s\n", e.Description)
		}
		if e.Instructions != "" {
			fmt.Printf("Instructions: %s\n", e.Instructions)
		}
		fmt.Printf("Favorite: %v\n", e.IsFavorite)
		fmt.Printf("Custom: %v\n", e.IsCustom)
		return nil
	},
}

var exerciseFavoriteCmd = &cobra.Command{
	Use:     "favorite <id>",
	Aliases: []string{"fav"},
	Short:   "Toggle the favorite flag on an exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := findExercise(args[0])
		if err != nil {
			return err
		}

		e.IsFavorite = !e.IsFavorite
		if err := repo.UpdateExercise(e); err != nil {
			return fmt.Errorf("failed to update exercise: %w", err)
		}

		if e.IsFavorite {
			color.Green("★ %s favorited", e.Name)
		} else {
			fmt.Printf("%s unfavorited\n", e.Name)
		}
		return nil
	},
}

var exerciseEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an exercise",
	Long: `Edit an exercise's name, description, instructions, or muscle groups.

Only the fields you pass change; muscle groups given with -g replace the
existing set.

Examples:
  fittrack exercise edit abc123 --name "Paused Squat"
  fittrack exercise edit abc123 -g legs -g core`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := findExercise(args[0])
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("name") {
			e.Name = exerciseNewName
		}
		if cmd.Flags().Changed("description") {
			e.Description = exerciseDescription
		}
		if cmd.Flags().Changed("instructions") {
			e.Instructions = exerciseInstructions
		}
		if cmd.Flags().Changed("group") {
			e.MuscleGroups = models.ParseMuscleGroups(exerciseGroups)
		}

		if err := repo.UpdateExercise(e); err != nil {
			return fmt.Errorf("failed to update exercise: %w", err)
		}

		color.Green("✓ Updated %s", e.Name)
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise",
	Long: `Delete an exercise from the library.

Programs referencing the exercise keep their entry; the reference simply
stops resolving and is omitted from program views.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := findExercise(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteExercise(e.ID); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}

		color.Green("✓ Deleted %s", e.Name)
		return nil
	},
}

// findExercise resolves a full UUID or id prefix against the library.
func findExercise(ref string) (*models.Exercise, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return repo.GetExercise(id)
	}

	all, err := repo.ListExercises(storage.ExerciseFilter{}, storage.Sort{})
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
		return nil, fmt.Errorf("exercise not found: %s", ref)
	}
	return match, nil
}

// displayName localizes preset names; custom names are user content.
// Presets without a translation keep their stored English name.
func displayName(lang string, e *models.Exercise) string {
	if e.IsCustom {
		return e.Name
	}
	key := i18n.ExerciseKey(e.Name)
	if translated := i18n.Lookup(lang, key); translated != key {
		return translated
	}
	return e.Name
}

func joinGroups(groups []models.MuscleGroup) string {
	tags := models.MuscleGroupTags(groups)
	return strings.Join(tags, ", ")
}

// truncate and padRight measure in runes so localized names with
// multi-byte characters keep columns aligned.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

func init() {
	exerciseAddCmd.Flags().StringArrayVarP(&exerciseGroups, "group", "g", nil, "muscle group tag (repeatable)")
	exerciseAddCmd.Flags().StringVar(&exerciseDescription, "description", "", "short description")
	exerciseAddCmd.Flags().StringVar(&exerciseInstructions, "instructions", "", "how to perform the exercise")

	exerciseEditCmd.Flags().StringVar(&exerciseNewName, "name", "", "new name")
	exerciseEditCmd.Flags().StringArrayVarP(&exerciseGroups, "group", "g", nil, "muscle group tag (repeatable, replaces existing)")
	exerciseEditCmd.Flags().StringVar(&exerciseDescription, "description", "", "short description")
	exerciseEditCmd.Flags().StringVar(&exerciseInstructions, "instructions", "", "how to perform the exercise")

	exerciseListCmd.Flags().StringVarP(&exerciseFilterGroup, "group", "g", "", "filter by muscle group")
	exerciseListCmd.Flags().StringVar(&exerciseFilterName, "name", "", "filter by name substring")
	exerciseListCmd.Flags().BoolVar(&exerciseFavoritesOnly, "favorites", false, "only favorites")
	exerciseListCmd.Flags().BoolVar(&exerciseCustomOnly, "custom", false, "only custom exercises")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	exerciseCmd.AddCommand(exerciseFavoriteCmd)
	exerciseCmd.AddCommand(exerciseEditCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
