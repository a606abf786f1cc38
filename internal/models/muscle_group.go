// ABOUTME: MuscleGroup enum for exercise categorization.
// ABOUTME: Raw values match the persisted tag format; unknown tags are dropped on decode.
package models

// MuscleGroup tags an exercise with the body area it trains.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleLegs      MuscleGroup = "legs"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleCore      MuscleGroup = "core"
	MuscleCardio    MuscleGroup = "cardio"
	MuscleFullBody  MuscleGroup = "full_body"
)

// AllMuscleGroups returns all valid muscle groups.
var AllMuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleLegs, MuscleShoulders,
	MuscleArms, MuscleCore, MuscleCardio, MuscleFullBody,
}

// MuscleGroupIcons maps muscle groups to their display symbol names.
var MuscleGroupIcons = map[MuscleGroup]string{
	MuscleChest:     "figure.strengthtraining.traditional",
	MuscleBack:      "figure.cooldown",
	MuscleLegs:      "figure.walk",
	MuscleShoulders: "figure.arms.open",
	MuscleArms:      "dumbbell",
	MuscleCore:      "figure.core.training",
	MuscleCardio:    "heart.fill",
	MuscleFullBody:  "figure.mixed.cardio",
}

// IsValidMuscleGroup checks if a string is a valid muscle group tag.
func IsValidMuscleGroup(s string) bool {
	for _, mg := range AllMuscleGroups {
		if string(mg) == s {
			return true
		}
	}
	return false
}

// ParseMuscleGroups converts raw tags to muscle groups.
// Unknown tags are silently dropped.
func ParseMuscleGroups(raw []string) []MuscleGroup {
	var groups []MuscleGroup
	for _, r := range raw {
		if IsValidMuscleGroup(r) {
			groups = append(groups, MuscleGroup(r))
		}
	}
	return groups
}

// MuscleGroupTags converts muscle groups back to raw string tags.
func MuscleGroupTags(groups []MuscleGroup) []string {
	tags := make([]string, 0, len(groups))
	for _, g := range groups {
		tags = append(tags, string(g))
	}
	return tags
}
