// Package service holds the computed business logic of the tracker: the
// workout engine, the activity log store and the dashboard aggregator.
// Services are constructed over small store interfaces so the logic can
// be exercised without a database.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/repository"
)

// ExerciseCatalog resolves exercise references during workout creation.
type ExerciseCatalog interface {
	GetByID(ctx context.Context, id uint64) (model.Exercise, error)
}

// WorkoutStore persists workouts. CreateWithEntries must be atomic: a
// failure leaves no partial workout behind.
type WorkoutStore interface {
	CreateWithEntries(ctx context.Context, w *model.Workout) error
	GetByID(ctx context.Context, id uint64) (model.Workout, error)
	UpdateCompletion(ctx context.Context, w *model.Workout) error
	ListByUser(ctx context.Context, userID uint64) ([]repository.WorkoutSummary, error)
	ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]repository.WorkoutSummary, error)
}

// WorkoutEntryInput is one exercise entry of a create request, in
// submitted order. All performance fields are optional.
type WorkoutEntryInput struct {
	ExerciseID      uint64
	Sets            *int
	Reps            *int
	WeightKg        *float64
	DurationSeconds *int
	DistanceMeters  *float64
	Notes           *string
}

// WorkoutService implements the workout engine: it validates exercise
// references, derives per-entry calorie burn, and finalizes duration and
// totals on completion.
type WorkoutService struct {
	workouts  WorkoutStore
	exercises ExerciseCatalog
	now       func() time.Time
}

func NewWorkoutService(workouts WorkoutStore, exercises ExerciseCatalog) *WorkoutService {
	return &WorkoutService{workouts: workouts, exercises: exercises, now: time.Now}
}

// Create builds a workout in state IN_PROGRESS with startedAt = now.
// Every entry is resolved against the catalog first: an unknown
// exercise id fails the whole call with ErrNotFound before anything is
// persisted. Entry calories are rate × durationSeconds/60, unrounded,
// when both the exercise rate and a duration are present.
func (s *WorkoutService) Create(ctx context.Context, userID uint64, name string, notes *string, entries []WorkoutEntryInput) (model.Workout, error) {
	started := s.now().UTC()
	w := model.Workout{
		UserID:    userID,
		Name:      name,
		Notes:     notes,
		Status:    model.WorkoutInProgress,
		StartedAt: &started,
	}

	for i, in := range entries {
		ex, err := s.exercises.GetByID(ctx, in.ExerciseID)
		if err != nil {
			return model.Workout{}, fmt.Errorf("exercise %d: %w", in.ExerciseID, err)
		}
		w.Exercises = append(w.Exercises, model.WorkoutExercise{
			ExerciseID:      ex.ID,
			ExerciseName:    ex.Name,
			Sets:            in.Sets,
			Reps:            in.Reps,
			WeightKg:        in.WeightKg,
			DurationSeconds: in.DurationSeconds,
			DistanceMeters:  in.DistanceMeters,
			CaloriesBurned:  EntryCalories(ex.CaloriesPerMinute, in.DurationSeconds),
			Notes:           in.Notes,
			OrderIndex:      i,
		})
	}

	if err := s.workouts.CreateWithEntries(ctx, &w); err != nil {
		return model.Workout{}, err
	}
	return w, nil
}

// Complete transitions a workout to COMPLETED: completedAt = now,
// durationMinutes = whole minutes elapsed since startedAt (truncated,
// so 44:59 of elapsed time is 44 minutes), caloriesBurned = sum of the
// entries' calories with missing values counted as zero.
//
// Completing an already-COMPLETED workout is accepted: totals are
// recomputed and completedAt re-stamped. Callers relying on the first
// completion time should not call this twice.
func (s *WorkoutService) Complete(ctx context.Context, workoutID uint64) (model.Workout, error) {
	w, err := s.workouts.GetByID(ctx, workoutID)
	if err != nil {
		return model.Workout{}, err
	}

	completed := s.now().UTC()
	w.Status = model.WorkoutCompleted
	w.CompletedAt = &completed
	if w.StartedAt != nil {
		mins := DurationMinutes(*w.StartedAt, completed)
		w.DurationMinutes = &mins
	}
	total := SumEntryCalories(w.Exercises)
	w.CaloriesBurned = &total

	if err := s.workouts.UpdateCompletion(ctx, &w); err != nil {
		return model.Workout{}, err
	}
	return w, nil
}

// Get fetches one workout with its entries.
func (s *WorkoutService) Get(ctx context.Context, id uint64) (model.Workout, error) {
	return s.workouts.GetByID(ctx, id)
}

// ListForUser returns the user's workouts, newest first.
func (s *WorkoutService) ListForUser(ctx context.Context, userID uint64) ([]repository.WorkoutSummary, error) {
	return s.workouts.ListByUser(ctx, userID)
}

// ListForUserRange returns workouts created within [start, end].
func (s *WorkoutService) ListForUserRange(ctx context.Context, userID uint64, start, end time.Time) ([]repository.WorkoutSummary, error) {
	return s.workouts.ListByUserAndRange(ctx, userID, start, end)
}

// EntryCalories derives the calorie burn of one entry from the
// exercise's per-minute rate and the performed duration. Nil when
// either input is missing. The value is stored unrounded.
func EntryCalories(caloriesPerMinute *float64, durationSeconds *int) *float64 {
	if caloriesPerMinute == nil || durationSeconds == nil {
		return nil
	}
	burned := *caloriesPerMinute * (float64(*durationSeconds) / 60.0)
	return &burned
}

// DurationMinutes is the number of whole minutes between start and end,
// truncated: 44m59s elapsed is 44 minutes.
func DurationMinutes(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}

// SumEntryCalories totals the entries' calories, counting missing
// per-entry values as zero.
func SumEntryCalories(entries []model.WorkoutExercise) float64 {
	var total float64
	for _, e := range entries {
		if e.CaloriesBurned != nil {
			total += *e.CaloriesBurned
		}
	}
	return total
}
