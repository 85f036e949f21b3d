package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatEvent(t *testing.T) {
	mins := 44
	cals := 325.75
	ev := WorkoutCompletedEvent{
		WorkoutID:       12,
		UserID:          7,
		Name:            "Chest Day",
		DurationMinutes: &mins,
		CaloriesBurned:  &cals,
		ExerciseCount:   4,
		CompletedAt:     "2026-03-01T10:44:59Z",
	}
	require.Equal(t,
		`2026-03-01T10:44:59Z workout=12 user=7 name="Chest Day" exercises=4 duration=44min calories=325.8kcal`,
		formatEvent(ev))
}

func TestFormatEventMissingFields(t *testing.T) {
	ev := WorkoutCompletedEvent{WorkoutID: 1, UserID: 2, Name: "Quick Session", CompletedAt: "2026-03-01T10:00:00Z"}
	require.Equal(t,
		`2026-03-01T10:00:00Z workout=1 user=2 name="Quick Session" exercises=0 duration=- calories=-`,
		formatEvent(ev))
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	require.Error(t, handleMessage([]byte("not json")))
}
