package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fitzone/fitzone-api/internal/model"
)

// WorkoutRepo provides access to workouts and their exercise entries.
// Multi-row writes (a workout plus its entries) run inside a single
// transaction so a failed entry insert leaves no partial workout behind.
type WorkoutRepo struct{ DB *sql.DB }

func NewWorkoutRepo(db *sql.DB) *WorkoutRepo { return &WorkoutRepo{DB: db} }

// WorkoutSummary is a workout row plus its entry count, used by list
// endpoints and the dashboard's recent-workouts section where the full
// entry payload is not needed.
type WorkoutSummary struct {
	ID              uint64              `json:"id"`
	Name            string              `json:"name"`
	Notes           *string             `json:"notes,omitempty"`
	Status          model.WorkoutStatus `json:"status"`
	StartedAt       *time.Time          `json:"started_at,omitempty"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	DurationMinutes *int                `json:"duration_minutes,omitempty"`
	CaloriesBurned  *float64            `json:"calories_burned,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	ExerciseCount   int                 `json:"exercise_count"`
}

const workoutColumns = "id, user_id, name, notes, status, started_at, completed_at, duration_minutes, calories_burned, created_at"

const summarySelect = `
SELECT w.id, w.name, w.notes, w.status, w.started_at, w.completed_at,
       w.duration_minutes, w.calories_burned, w.created_at,
       (SELECT COUNT(*) FROM workout_exercises we WHERE we.workout_id = w.id) AS exercise_count
FROM workouts w`

// CreateWithEntries inserts the workout and all of its entries as one
// atomic unit, populating generated ids. Either everything is persisted
// or nothing is.
func (r *WorkoutRepo) CreateWithEntries(ctx context.Context, w *model.Workout) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO workouts (user_id, name, notes, status, started_at) VALUES (?,?,?,?,?)",
		w.UserID, w.Name, w.Notes, w.Status, w.StartedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	w.ID = uint64(id)

	if len(w.Exercises) > 0 {
		query := "INSERT INTO workout_exercises (workout_id, exercise_id, sets, reps, weight_kg, duration_seconds, distance_meters, calories_burned, notes, order_index) VALUES "
		args := make([]any, 0, len(w.Exercises)*10)
		for i := range w.Exercises {
			if i > 0 {
				query += ","
			}
			query += "(?,?,?,?,?,?,?,?,?,?)"
			e := &w.Exercises[i]
			e.WorkoutID = w.ID
			args = append(args, e.WorkoutID, e.ExerciseID, e.Sets, e.Reps, e.WeightKg,
				e.DurationSeconds, e.DistanceMeters, e.CaloriesBurned, e.Notes, e.OrderIndex)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	if err := tx.QueryRowContext(ctx,
		"SELECT created_at FROM workouts WHERE id=?", w.ID).Scan(&w.CreatedAt); err != nil {
		return err
	}
	return tx.Commit()
}

// GetByID loads a workout together with its entries (exercise names
// joined in, ordered by order_index). Returns ErrNotFound when absent.
func (r *WorkoutRepo) GetByID(ctx context.Context, id uint64) (model.Workout, error) {
	var w model.Workout
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+workoutColumns+" FROM workouts WHERE id=? LIMIT 1", id).Scan(
		&w.ID, &w.UserID, &w.Name, &w.Notes, &w.Status, &w.StartedAt,
		&w.CompletedAt, &w.DurationMinutes, &w.CaloriesBurned, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Workout{}, ErrNotFound
	}
	if err != nil {
		return model.Workout{}, err
	}

	rows, err := r.DB.QueryContext(ctx, `
SELECT we.id, we.workout_id, we.exercise_id, e.name, we.sets, we.reps, we.weight_kg,
       we.duration_seconds, we.distance_meters, we.calories_burned, we.notes, we.order_index
FROM workout_exercises we
JOIN exercises e ON e.id = we.exercise_id
WHERE we.workout_id = ?
ORDER BY we.order_index`, id)
	if err != nil {
		return model.Workout{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var e model.WorkoutExercise
		if err := rows.Scan(&e.ID, &e.WorkoutID, &e.ExerciseID, &e.ExerciseName, &e.Sets, &e.Reps,
			&e.WeightKg, &e.DurationSeconds, &e.DistanceMeters, &e.CaloriesBurned, &e.Notes, &e.OrderIndex); err != nil {
			return model.Workout{}, err
		}
		w.Exercises = append(w.Exercises, e)
	}
	return w, rows.Err()
}

// UpdateCompletion writes the completion fields computed by the engine.
// A single UPDATE keeps the write atomic.
func (r *WorkoutRepo) UpdateCompletion(ctx context.Context, w *model.Workout) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE workouts SET status=?, completed_at=?, duration_minutes=?, calories_burned=? WHERE id=?",
		w.Status, w.CompletedAt, w.DurationMinutes, w.CaloriesBurned, w.ID)
	return err
}

// ListByUser returns all of the user's workouts, newest first.
func (r *WorkoutRepo) ListByUser(ctx context.Context, userID uint64) ([]WorkoutSummary, error) {
	return r.scanSummaries(ctx,
		summarySelect+" WHERE w.user_id=? ORDER BY w.created_at DESC", userID)
}

// ListByUserAndRange returns workouts created within [start, end],
// newest first.
func (r *WorkoutRepo) ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]WorkoutSummary, error) {
	return r.scanSummaries(ctx,
		summarySelect+" WHERE w.user_id=? AND w.created_at BETWEEN ? AND ? ORDER BY w.created_at DESC",
		userID, start, end)
}

// ListRecentByUser returns the user's most recently created workouts,
// any status, capped at limit.
func (r *WorkoutRepo) ListRecentByUser(ctx context.Context, userID uint64, limit int) ([]WorkoutSummary, error) {
	return r.scanSummaries(ctx,
		summarySelect+" WHERE w.user_id=? ORDER BY w.created_at DESC LIMIT ?", userID, limit)
}

// CountCompletedByUser counts the user's COMPLETED workouts.
func (r *WorkoutRepo) CountCompletedByUser(ctx context.Context, userID uint64) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM workouts WHERE user_id=? AND status=?", userID, model.WorkoutCompleted).Scan(&n)
	return n, err
}

// TotalCaloriesByUser sums calories over the user's COMPLETED workouts;
// zero when there are none.
func (r *WorkoutRepo) TotalCaloriesByUser(ctx context.Context, userID uint64) (float64, error) {
	var total float64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(calories_burned), 0) FROM workouts WHERE user_id=? AND status=?",
		userID, model.WorkoutCompleted).Scan(&total)
	return total, err
}

func (r *WorkoutRepo) scanSummaries(ctx context.Context, query string, args ...any) ([]WorkoutSummary, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WorkoutSummary
	for rows.Next() {
		var s WorkoutSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Notes, &s.Status, &s.StartedAt, &s.CompletedAt,
			&s.DurationMinutes, &s.CaloriesBurned, &s.CreatedAt, &s.ExerciseCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
