package model

import "strings"

// MuscleGroup enumerates the body area an exercise targets.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "CHEST"
	MuscleBack      MuscleGroup = "BACK"
	MuscleShoulders MuscleGroup = "SHOULDERS"
	MuscleArms      MuscleGroup = "ARMS"
	MuscleLegs      MuscleGroup = "LEGS"
	MuscleCore      MuscleGroup = "CORE"
	MuscleFullBody  MuscleGroup = "FULL_BODY"
	MuscleCardio    MuscleGroup = "CARDIO"
)

// Category enumerates the training style of an exercise.
type Category string

const (
	CategoryStrength    Category = "STRENGTH"
	CategoryCardio      Category = "CARDIO"
	CategoryFlexibility Category = "FLEXIBILITY"
	CategoryBalance     Category = "BALANCE"
	CategoryHIIT        Category = "HIIT"
)

var muscleGroups = map[MuscleGroup]bool{
	MuscleChest: true, MuscleBack: true, MuscleShoulders: true, MuscleArms: true,
	MuscleLegs: true, MuscleCore: true, MuscleFullBody: true, MuscleCardio: true,
}

var categories = map[Category]bool{
	CategoryStrength: true, CategoryCardio: true, CategoryFlexibility: true,
	CategoryBalance: true, CategoryHIIT: true,
}

// ParseMuscleGroup normalizes and validates a muscle group string.
// Path parameters arrive in arbitrary case ("full_body", "Chest").
func ParseMuscleGroup(s string) (MuscleGroup, bool) {
	g := MuscleGroup(strings.ToUpper(strings.TrimSpace(s)))
	return g, muscleGroups[g]
}

// ParseCategory normalizes and validates a category string.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	return c, categories[c]
}

// Valid reports whether the muscle group matches a known enum value.
func (g MuscleGroup) Valid() bool { return muscleGroups[g] }

// Valid reports whether the category matches a known enum value.
func (c Category) Valid() bool { return categories[c] }

// Exercise is a catalog entry describing a movement type. Catalog rows
// are referenced by workout entries but never owned by them; deleting a
// workout leaves the catalog untouched. CaloriesPerMinute is nullable
// since not every exercise has a usable burn rate.
type Exercise struct {
	ID                uint64      `json:"id"`
	Name              string      `json:"name"`
	Description       *string     `json:"description,omitempty"`
	MuscleGroup       MuscleGroup `json:"muscle_group"`
	Category          Category    `json:"category"`
	CaloriesPerMinute *float64    `json:"calories_per_minute,omitempty"`
	Difficulty        *string     `json:"difficulty,omitempty"`
}
