// ABOUTME: Seed loader for the preset exercise catalog.
// ABOUTME: Inserts the fixed catalog once, guarded by a store-empty check.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

// seedEntry describes one preset exercise in the catalog.
type seedEntry struct {
	name         string
	description  string
	instructions string
	groups       []models.MuscleGroup
	imageRef     string
}

// presetCatalog is the fixed exercise catalog inserted on first run.
// Names double as localization keys for preset display.
var presetCatalog = []seedEntry{
	// Chest
	{"Bench Press", "Classic chest building compound exercise",
		"Lie on bench, lower bar to chest, press up explosively. Keep shoulder blades retracted.",
		[]models.MuscleGroup{models.MuscleChest, models.MuscleArms}, "exercisedb://bench-press"},
	{"Push-ups", "Bodyweight chest and triceps exercise",
		"Keep body straight, lower chest to ground, push back up. Engage core throughout.",
		[]models.MuscleGroup{models.MuscleChest, models.MuscleArms, models.MuscleCore}, "exercisedb://push-ups"},
	{"Dumbbell Flyes", "Isolation exercise for chest development",
		"Lie on bench, arms slightly bent, lower dumbbells in arc motion, squeeze chest at top.",
		[]models.MuscleGroup{models.MuscleChest}, "exercisedb://dumbbell-flyes"},
	{"Incline Bench Press", "Targets upper chest muscles",
		"Set bench to 30-45 degrees, press bar or dumbbells upward focusing on upper chest.",
		[]models.MuscleGroup{models.MuscleChest, models.MuscleShoulders}, "exercisedb://incline-bench"},

	// Back
	{"Deadlift", "King of all exercises, full posterior chain",
		"Hip hinge, grip bar, keep back neutral, drive through heels to stand. Control descent.",
		[]models.MuscleGroup{models.MuscleBack, models.MuscleLegs, models.MuscleCore}, "exercisedb://deadlift"},
	{"Pull-ups", "Bodyweight back and biceps builder",
		"Hang from bar, pull chin over bar, control descent. Engage lats throughout movement.",
		[]models.MuscleGroup{models.MuscleBack, models.MuscleArms}, "exercisedb://pull-ups"},
	{"Bent Over Row", "Compound back thickness exercise",
		"Hip hinge, pull bar/dumbbells to lower chest, squeeze shoulder blades. Keep back neutral.",
		[]models.MuscleGroup{models.MuscleBack, models.MuscleArms}, "exercisedb://bent-over-row"},
	{"Lat Pulldown", "Cable exercise for lat development",
		"Pull bar to upper chest, focus on pulling with elbows. Control the return.",
		[]models.MuscleGroup{models.MuscleBack, models.MuscleArms}, "exercisedb://lat-pulldown"},

	// Legs
	{"Squat", "Fundamental leg strength builder",
		"Bar on upper back, descend with knees tracking over toes, drive through heels to stand.",
		[]models.MuscleGroup{models.MuscleLegs, models.MuscleCore}, "exercisedb://squat"},
	{"Lunges", "Unilateral leg exercise for balance and strength",
		"Step forward, lower back knee toward ground, drive through front heel to return.",
		[]models.MuscleGroup{models.MuscleLegs, models.MuscleCore}, "exercisedb://lunges"},
	{"Leg Press", "Machine-based quad and glute developer",
		"Feet shoulder-width on platform, lower with control, press through full foot.",
		[]models.MuscleGroup{models.MuscleLegs}, "exercisedb://leg-press"},
	{"Romanian Deadlift", "Hamstring and glute focused hinge movement",
		"Slight knee bend, push hips back, lower bar along legs. Feel hamstring stretch.",
		[]models.MuscleGroup{models.MuscleLegs, models.MuscleBack}, "exercisedb://romanian-deadlift"},

	// Shoulders
	{"Overhead Press", "Primary shoulder mass builder",
		"Press bar or dumbbells overhead, lock out at top. Keep core braced.",
		[]models.MuscleGroup{models.MuscleShoulders, models.MuscleArms}, "exercisedb://overhead-press"},
	{"Lateral Raise", "Isolation for side delts",
		"Raise dumbbells to sides until parallel with ground. Control the descent.",
		[]models.MuscleGroup{models.MuscleShoulders}, "exercisedb://lateral-raise"},
	{"Face Pulls", "Rear delt and upper back exercise",
		"Pull rope to face, rotate hands apart at end. Squeeze shoulder blades.",
		[]models.MuscleGroup{models.MuscleShoulders, models.MuscleBack}, "exercisedb://face-pulls"},

	// Arms
	{"Barbell Curl", "Classic bicep mass builder",
		"Curl bar with supinated grip, keep elbows stable. Control the eccentric.",
		[]models.MuscleGroup{models.MuscleArms}, "exercisedb://barbell-curl"},
	{"Tricep Dips", "Compound tricep exercise",
		"Lower body by bending elbows, press back up. Keep torso upright.",
		[]models.MuscleGroup{models.MuscleArms, models.MuscleChest}, "exercisedb://tricep-dips"},
	{"Hammer Curls", "Bicep and forearm developer",
		"Curl dumbbells with neutral grip. Keep elbows at sides throughout.",
		[]models.MuscleGroup{models.MuscleArms}, "exercisedb://hammer-curls"},
	{"Tricep Pushdown", "Cable isolation for triceps",
		"Push cable attachment down, fully extend arms. Keep elbows stable.",
		[]models.MuscleGroup{models.MuscleArms}, "exercisedb://tricep-pushdown"},

	// Core
	{"Plank", "Isometric core strength exercise",
		"Hold straight body position on forearms. Engage entire core, don't sag hips.",
		[]models.MuscleGroup{models.MuscleCore}, "exercisedb://plank"},
	{"Russian Twists", "Oblique and core rotational exercise",
		"Seated position, rotate torso side to side. Can hold weight for added resistance.",
		[]models.MuscleGroup{models.MuscleCore}, "exercisedb://russian-twists"},
	{"Hanging Leg Raises", "Advanced lower abs exercise",
		"Hang from bar, raise legs to parallel or higher. Control the descent.",
		[]models.MuscleGroup{models.MuscleCore, models.MuscleArms}, "exercisedb://hanging-leg-raises"},
	{"Cable Crunches", "Weighted ab exercise",
		"Kneel below cable, crunch down by flexing abs. Keep hips stationary.",
		[]models.MuscleGroup{models.MuscleCore}, "exercisedb://cable-crunches"},

	// Cardio
	{"Running", "Classic cardiovascular exercise",
		"Maintain steady pace, focus on breathing rhythm. Land midfoot with each stride.",
		[]models.MuscleGroup{models.MuscleCardio, models.MuscleLegs}, "exercisedb://running"},
	{"Cycling", "Low-impact cardio option",
		"Maintain consistent cadence, adjust resistance as needed. Keep core engaged.",
		[]models.MuscleGroup{models.MuscleCardio, models.MuscleLegs}, "exercisedb://cycling"},
	{"Jump Rope", "High-intensity cardio and coordination",
		"Jump with light feet, rotate rope with wrists. Maintain rhythm.",
		[]models.MuscleGroup{models.MuscleCardio, models.MuscleLegs}, "exercisedb://jump-rope"},
	{"Burpees", "Full body cardio and strength",
		"Drop to plank, push-up, jump feet to hands, explosive jump. Repeat.",
		[]models.MuscleGroup{models.MuscleCardio, models.MuscleFullBody}, "exercisedb://burpees"},

	// Full body
	{"Clean and Press", "Olympic lift variation for full body power",
		"Clean bar to shoulders, press overhead. Explosive hip extension on clean.",
		[]models.MuscleGroup{models.MuscleFullBody, models.MuscleShoulders}, "exercisedb://clean-press"},
	{"Kettlebell Swings", "Dynamic hip hinge movement",
		"Hip hinge, swing kettlebell between legs, thrust hips to swing to shoulder height.",
		[]models.MuscleGroup{models.MuscleFullBody, models.MuscleCardio}, "exercisedb://kettlebell-swings"},
	{"Turkish Get-Up", "Complex full body stability exercise",
		"From lying to standing while holding weight overhead. Reverse to return.",
		[]models.MuscleGroup{models.MuscleFullBody, models.MuscleCore}, "exercisedb://turkish-getup"},
}

// Seed inserts the preset catalog if the store holds no exercises.
// Returns the number of exercises inserted (zero when seeding was
// skipped). The guard is intentionally weak: any existing exercise,
// preset or custom, suppresses seeding.
func Seed(repo Repository) (int, error) {
	count, err := repo.CountExercises()
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now()
	for _, entry := range presetCatalog {
		url := entry.imageRef
		e := &models.Exercise{
			ID:           uuid.New(),
			Name:         entry.name,
			Description:  entry.description,
			Instructions: entry.instructions,
			MuscleGroups: entry.groups,
			ImageURL:     &url,
			CreatedAt:    now,
			IsCustom:     false,
		}
		if err := repo.CreateExercise(e); err != nil {
			return 0, fmt.Errorf("seed %s: %w", entry.name, err)
		}
	}
	return len(presetCatalog), nil
}

// PresetCatalogSize reports how many exercises a full seed inserts.
func PresetCatalogSize() int {
	return len(presetCatalog)
}
