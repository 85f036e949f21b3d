package model

import "time"

// WorkoutStatus tracks a workout's lifecycle. Every workout starts
// IN_PROGRESS; COMPLETED and CANCELLED are terminal. No endpoint
// transitions to CANCELLED, the state exists for reporting only.
type WorkoutStatus string

const (
	WorkoutInProgress WorkoutStatus = "IN_PROGRESS"
	WorkoutCompleted  WorkoutStatus = "COMPLETED"
	WorkoutCancelled  WorkoutStatus = "CANCELLED"
)

// Workout is a timed session owned by one user. Once completed,
// CaloriesBurned holds the sum of the entries' calories and
// DurationMinutes the whole minutes elapsed between StartedAt and
// CompletedAt.
type Workout struct {
	ID              uint64            `json:"id"`
	UserID          uint64            `json:"user_id"`
	Name            string            `json:"name"`
	Notes           *string           `json:"notes,omitempty"`
	Status          WorkoutStatus     `json:"status"`
	StartedAt       *time.Time        `json:"started_at,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	DurationMinutes *int              `json:"duration_minutes,omitempty"`
	CaloriesBurned  *float64          `json:"calories_burned,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	Exercises       []WorkoutExercise `json:"exercises,omitempty"`
}

// WorkoutExercise links one performed exercise to its workout along
// with performance data. OrderIndex preserves the submitted order
// (0-based). CaloriesBurned is derived at creation time when both the
// exercise's burn rate and a duration are present; otherwise nil.
type WorkoutExercise struct {
	ID              uint64   `json:"id"`
	WorkoutID       uint64   `json:"workout_id"`
	ExerciseID      uint64   `json:"exercise_id"`
	ExerciseName    string   `json:"exercise_name,omitempty"`
	Sets            *int     `json:"sets,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	DurationSeconds *int     `json:"duration_seconds,omitempty"`
	DistanceMeters  *float64 `json:"distance_meters,omitempty"`
	CaloriesBurned  *float64 `json:"calories_burned,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	OrderIndex      int      `json:"order_index"`
}
