// ABOUTME: Minimal string localization for display names.
// ABOUTME: Unknown keys and unknown languages pass through unchanged.
package i18n

import "strings"

// Lookup translates a key for the given language. Unknown languages
// fall back to English; a key absent from every catalog is returned
// verbatim so new strings degrade gracefully.
func Lookup(lang, key string) string {
	if catalog, ok := catalogs[lang]; ok {
		if v, ok := catalog[key]; ok {
			return v
		}
	}
	if v, ok := catalogs["en"][key]; ok {
		return v
	}
	return key
}

// Languages lists the language codes with a catalog.
func Languages() []string {
	return []string{"en", "de"}
}

// IsSupported reports whether a language has a catalog.
func IsSupported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// ExerciseKey derives the localization key for a preset exercise name.
// Custom exercise names are user content and are never translated.
func ExerciseKey(name string) string {
	return "exercise." + strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

var catalogs = map[string]map[string]string{
	"en": {
		// Muscle groups
		"muscle.chest":     "Chest",
		"muscle.back":      "Back",
		"muscle.legs":      "Legs",
		"muscle.shoulders": "Shoulders",
		"muscle.arms":      "Arms",
		"muscle.core":      "Core",
		"muscle.cardio":    "Cardio",
		"muscle.full_body": "Full Body",

		// Home stats
		"stat.steps":           "Steps",
		"stat.calories_burned": "Calories Burned",
		"stat.activity_time":   "Activity Time",
		"stat.water":           "Water",
		"stat.calories_eaten":  "Calories Eaten",
		"stat.distance":        "Distance",
		"stat.heart_rate":      "Heart Rate",
		"stat.sleep":           "Sleep",

		// Common labels
		"label.sets":      "Sets",
		"label.reps":      "Reps",
		"label.weight":    "Weight",
		"label.rest":      "Rest",
		"label.favorites": "Favorites",
		"label.completed": "Completed",
	},
	"de": {
		"muscle.chest":     "Brust",
		"muscle.back":      "Rücken",
		"muscle.legs":      "Beine",
		"muscle.shoulders": "Schultern",
		"muscle.arms":      "Arme",
		"muscle.core":      "Rumpf",
		"muscle.cardio":    "Ausdauer",
		"muscle.full_body": "Ganzkörper",

		"stat.steps":           "Schritte",
		"stat.calories_burned": "Verbrannte Kalorien",
		"stat.activity_time":   "Aktivitätszeit",
		"stat.water":           "Wasser",
		"stat.calories_eaten":  "Aufgenommene Kalorien",
		"stat.distance":        "Distanz",
		"stat.heart_rate":      "Herzfrequenz",
		"stat.sleep":           "Schlaf",

		"label.sets":      "Sätze",
		"label.reps":      "Wiederholungen",
		"label.weight":    "Gewicht",
		"label.rest":      "Pause",
		"label.favorites": "Favoriten",
		"label.completed": "Abgeschlossen",

		"exercise.bench_press": "Bankdrücken",
		"exercise.push-ups":    "Liegestütze",
		"exercise.squat":       "Kniebeuge",
		"exercise.deadlift":    "Kreuzheben",
		"exercise.pull-ups":    "Klimmzüge",
		"exercise.lunges":      "Ausfallschritte",
		"exercise.plank":       "Unterarmstütz",
		"exercise.running":     "Laufen",
		"exercise.cycling":     "Radfahren",
	},
}
