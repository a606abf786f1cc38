// ABOUTME: StatType enum for configurable home-screen statistics.
// ABOUTME: Defines display order defaults, units, and goal values.
package models

// StatType identifies a statistic that can be shown on the home screen.
type StatType string

const (
	StatSteps          StatType = "steps"
	StatCaloriesBurned StatType = "calories_burned"
	StatActivityTime   StatType = "activity_time"
	StatWater          StatType = "water"
	StatCaloriesEaten  StatType = "calories_eaten"
	StatDistance       StatType = "distance"
	StatHeartRate      StatType = "heart_rate"
	StatSleep          StatType = "sleep"
)

// AllStatTypes returns all valid stat types.
var AllStatTypes = []StatType{
	StatSteps, StatCaloriesBurned, StatActivityTime, StatWater,
	StatCaloriesEaten, StatDistance, StatHeartRate, StatSleep,
}

// DefaultHomeStats is the ordered set shown when the user has not
// customized the home screen.
var DefaultHomeStats = []StatType{
	StatSteps, StatCaloriesBurned, StatActivityTime, StatWater,
}

// StatUnits maps stat types to their display units.
var StatUnits = map[StatType]string{
	StatSteps:          "",
	StatCaloriesBurned: "kcal",
	StatActivityTime:   "min",
	StatWater:          "glasses",
	StatCaloriesEaten:  "kcal",
	StatDistance:       "km",
	StatHeartRate:      "bpm",
	StatSleep:          "h",
}

// StatGoals maps stat types to their default goal values.
var StatGoals = map[StatType]string{
	StatSteps:          "10,000",
	StatCaloriesBurned: "2,500",
	StatActivityTime:   "60",
	StatWater:          "8",
	StatCaloriesEaten:  "2,000",
	StatDistance:       "5.0",
	StatHeartRate:      "70",
	StatSleep:          "8",
}

// IsValidStatType checks if a string is a valid stat type.
func IsValidStatType(s string) bool {
	for _, st := range AllStatTypes {
		if string(st) == s {
			return true
		}
	}
	return false
}

// ParseStatTypes converts raw tags to stat types, dropping unknown tags
// and preserving order.
func ParseStatTypes(raw []string) []StatType {
	var stats []StatType
	for _, r := range raw {
		if IsValidStatType(r) {
			stats = append(stats, StatType(r))
		}
	}
	return stats
}
