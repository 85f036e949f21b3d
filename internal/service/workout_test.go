package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/repository"
)

type fakeCatalog struct {
	exercises map[uint64]model.Exercise
}

func (f *fakeCatalog) GetByID(_ context.Context, id uint64) (model.Exercise, error) {
	ex, ok := f.exercises[id]
	if !ok {
		return model.Exercise{}, repository.ErrNotFound
	}
	return ex, nil
}

type fakeWorkoutStore struct {
	byID      map[uint64]model.Workout
	created   []model.Workout
	completed []model.Workout
	nextID    uint64
}

func newFakeWorkoutStore() *fakeWorkoutStore {
	return &fakeWorkoutStore{byID: map[uint64]model.Workout{}, nextID: 1}
}

func (f *fakeWorkoutStore) CreateWithEntries(_ context.Context, w *model.Workout) error {
	w.ID = f.nextID
	f.nextID++
	w.CreatedAt = time.Now().UTC()
	f.byID[w.ID] = *w
	f.created = append(f.created, *w)
	return nil
}

func (f *fakeWorkoutStore) GetByID(_ context.Context, id uint64) (model.Workout, error) {
	w, ok := f.byID[id]
	if !ok {
		return model.Workout{}, repository.ErrNotFound
	}
	return w, nil
}

func (f *fakeWorkoutStore) UpdateCompletion(_ context.Context, w *model.Workout) error {
	f.byID[w.ID] = *w
	f.completed = append(f.completed, *w)
	return nil
}

func (f *fakeWorkoutStore) ListByUser(_ context.Context, userID uint64) ([]repository.WorkoutSummary, error) {
	return nil, nil
}

func (f *fakeWorkoutStore) ListByUserAndRange(_ context.Context, userID uint64, start, end time.Time) ([]repository.WorkoutSummary, error) {
	return nil, nil
}

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func newCatalog() *fakeCatalog {
	return &fakeCatalog{exercises: map[uint64]model.Exercise{
		1: {ID: 1, Name: "Bench Press", MuscleGroup: model.MuscleChest, Category: model.CategoryStrength, CaloriesPerMinute: ptrF(10.0)},
		2: {ID: 2, Name: "Plank", MuscleGroup: model.MuscleCore, Category: model.CategoryStrength},
	}}
}

func TestWorkoutCreateDerivesEntryCalories(t *testing.T) {
	store := newFakeWorkoutStore()
	svc := NewWorkoutService(store, newCatalog())
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	w, err := svc.Create(context.Background(), 7, "Chest Day", nil, []WorkoutEntryInput{
		{ExerciseID: 1, DurationSeconds: ptrI(150)},
		{ExerciseID: 2, DurationSeconds: ptrI(90)},
		{ExerciseID: 1},
	})
	require.NoError(t, err)
	require.Equal(t, model.WorkoutInProgress, w.Status)
	require.NotNil(t, w.StartedAt)
	require.Len(t, w.Exercises, 3)

	// 10 cal/min for 150s is 25 exactly.
	require.NotNil(t, w.Exercises[0].CaloriesBurned)
	require.InDelta(t, 25.0, *w.Exercises[0].CaloriesBurned, 1e-9)
	// No burn rate on the exercise: nil, not zero.
	require.Nil(t, w.Exercises[1].CaloriesBurned)
	// No duration on the entry: nil as well.
	require.Nil(t, w.Exercises[2].CaloriesBurned)

	require.Equal(t, "Bench Press", w.Exercises[0].ExerciseName)
	for i, e := range w.Exercises {
		require.Equal(t, i, e.OrderIndex)
	}
}

func TestWorkoutCreateUnknownExercise(t *testing.T) {
	store := newFakeWorkoutStore()
	svc := NewWorkoutService(store, newCatalog())

	_, err := svc.Create(context.Background(), 7, "Leg Day", nil, []WorkoutEntryInput{
		{ExerciseID: 1, DurationSeconds: ptrI(60)},
		{ExerciseID: 999},
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.Empty(t, store.created, "nothing may be persisted when an entry fails to resolve")
}

func TestWorkoutCompleteTruncatesDuration(t *testing.T) {
	store := newFakeWorkoutStore()
	svc := NewWorkoutService(store, newCatalog())

	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.byID[1] = model.Workout{
		ID: 1, UserID: 7, Name: "Chest Day", Status: model.WorkoutInProgress,
		StartedAt: &started,
		Exercises: []model.WorkoutExercise{
			{ExerciseID: 1, CaloriesBurned: ptrF(25.0)},
			{ExerciseID: 2},
			{ExerciseID: 1, CaloriesBurned: ptrF(12.5)},
		},
	}
	// 44m59s elapsed truncates to 44 whole minutes.
	svc.now = func() time.Time { return started.Add(44*time.Minute + 59*time.Second) }

	w, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, model.WorkoutCompleted, w.Status)
	require.NotNil(t, w.DurationMinutes)
	require.Equal(t, 44, *w.DurationMinutes)
	require.NotNil(t, w.CaloriesBurned)
	require.InDelta(t, 37.5, *w.CaloriesBurned, 1e-9)
	require.Len(t, store.completed, 1)
}

func TestWorkoutCompleteWithoutStart(t *testing.T) {
	store := newFakeWorkoutStore()
	svc := NewWorkoutService(store, newCatalog())
	store.byID[1] = model.Workout{ID: 1, UserID: 7, Status: model.WorkoutInProgress}

	w, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)
	require.Nil(t, w.DurationMinutes)
	require.NotNil(t, w.CaloriesBurned)
	require.Zero(t, *w.CaloriesBurned)
}

func TestWorkoutCompleteTwiceRecomputes(t *testing.T) {
	store := newFakeWorkoutStore()
	svc := NewWorkoutService(store, newCatalog())

	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.byID[1] = model.Workout{ID: 1, UserID: 7, Status: model.WorkoutInProgress, StartedAt: &started}

	svc.now = func() time.Time { return started.Add(30 * time.Minute) }
	first, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)

	svc.now = func() time.Time { return started.Add(50 * time.Minute) }
	second, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)

	require.Equal(t, 30, *first.DurationMinutes)
	require.Equal(t, 50, *second.DurationMinutes)
	require.True(t, second.CompletedAt.After(*first.CompletedAt))
}

func TestWorkoutCompleteUnknownID(t *testing.T) {
	svc := NewWorkoutService(newFakeWorkoutStore(), newCatalog())
	_, err := svc.Complete(context.Background(), 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEntryCalories(t *testing.T) {
	require.Nil(t, EntryCalories(nil, ptrI(60)))
	require.Nil(t, EntryCalories(ptrF(8.0), nil))

	got := EntryCalories(ptrF(8.0), ptrI(90))
	require.NotNil(t, got)
	require.InDelta(t, 12.0, *got, 1e-9)

	// Unrounded: 7 cal/min for 100s is 11.666...
	got = EntryCalories(ptrF(7.0), ptrI(100))
	require.InDelta(t, 7.0*100.0/60.0, *got, 1e-9)
}

func TestSumEntryCalories(t *testing.T) {
	require.Zero(t, SumEntryCalories(nil))
	total := SumEntryCalories([]model.WorkoutExercise{
		{CaloriesBurned: ptrF(10.5)},
		{},
		{CaloriesBurned: ptrF(4.5)},
	})
	require.InDelta(t, 15.0, total, 1e-9)
}
