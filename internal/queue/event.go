// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// WorkoutCompletedEvent is published when a workout is marked complete.
// It carries enough for downstream consumers (logging, notifications,
// analytics) to act without querying the primary database.
type WorkoutCompletedEvent struct {
	WorkoutID       uint64   `json:"workout_id"`
	UserID          uint64   `json:"user_id"`
	Name            string   `json:"name"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	CaloriesBurned  *float64 `json:"calories_burned,omitempty"`
	ExerciseCount   int      `json:"exercise_count"`
	CompletedAt     string   `json:"completed_at"`
}
