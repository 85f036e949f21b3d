package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fitzone/fitzone-api/internal/model"
)

// ActivityLogRepo persists per-user daily wellness metrics. The table
// carries a unique key on (user_id, log_date); the service layer reads
// before writing, so the key only backstops races.
type ActivityLogRepo struct{ DB *sql.DB }

func NewActivityLogRepo(db *sql.DB) *ActivityLogRepo { return &ActivityLogRepo{DB: db} }

const logColumns = "id, user_id, log_date, steps, calories_consumed, calories_burned, water_ml, sleep_hours, weight_kg, mood, notes, created_at"

// Insert creates a log row and populates the generated id and created_at.
func (r *ActivityLogRepo) Insert(ctx context.Context, l *model.ActivityLog) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO activity_logs (user_id, log_date, steps, calories_consumed, calories_burned, water_ml, sleep_hours, weight_kg, mood, notes) VALUES (?,?,?,?,?,?,?,?,?,?)",
		l.UserID, l.LogDate.Format("2006-01-02"), l.Steps, l.CaloriesConsumed, l.CaloriesBurned,
		l.WaterMl, l.SleepHours, l.WeightKg, l.Mood, l.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM activity_logs WHERE id=?", l.ID).Scan(&l.CreatedAt)
}

// Update rewrites all metric fields of an existing row.
func (r *ActivityLogRepo) Update(ctx context.Context, l *model.ActivityLog) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE activity_logs SET steps=?, calories_consumed=?, calories_burned=?, water_ml=?, sleep_hours=?, weight_kg=?, mood=?, notes=? WHERE id=?",
		l.Steps, l.CaloriesConsumed, l.CaloriesBurned, l.WaterMl, l.SleepHours, l.WeightKg, l.Mood, l.Notes, l.ID)
	return err
}

// GetByID fetches one log by id. Returns ErrNotFound when absent.
func (r *ActivityLogRepo) GetByID(ctx context.Context, id uint64) (model.ActivityLog, error) {
	return r.scanOne(ctx, "SELECT "+logColumns+" FROM activity_logs WHERE id=? LIMIT 1", id)
}

// GetByUserAndDate fetches the single log matching exactly that calendar
// date. Returns ErrNotFound when the user logged nothing that day.
func (r *ActivityLogRepo) GetByUserAndDate(ctx context.Context, userID uint64, date time.Time) (model.ActivityLog, error) {
	return r.scanOne(ctx,
		"SELECT "+logColumns+" FROM activity_logs WHERE user_id=? AND log_date=? LIMIT 1",
		userID, date.Format("2006-01-02"))
}

// ListByUser returns all of the user's logs, newest date first.
func (r *ActivityLogRepo) ListByUser(ctx context.Context, userID uint64) ([]model.ActivityLog, error) {
	return r.scanMany(ctx,
		"SELECT "+logColumns+" FROM activity_logs WHERE user_id=? ORDER BY log_date DESC", userID)
}

// ListByUserAndRange returns logs with log_date in [start, end]
// inclusive, ascending by date.
func (r *ActivityLogRepo) ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]model.ActivityLog, error) {
	return r.scanMany(ctx,
		"SELECT "+logColumns+" FROM activity_logs WHERE user_id=? AND log_date BETWEEN ? AND ? ORDER BY log_date",
		userID, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// AvgStepsByUser is the mean of steps across all of the user's logs,
// zero when no log carries a step count.
func (r *ActivityLogRepo) AvgStepsByUser(ctx context.Context, userID uint64) (float64, error) {
	var avg float64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COALESCE(AVG(steps), 0) FROM activity_logs WHERE user_id=?", userID).Scan(&avg)
	return avg, err
}

// AvgSleepByUser is the mean of sleep_hours across all of the user's logs.
func (r *ActivityLogRepo) AvgSleepByUser(ctx context.Context, userID uint64) (float64, error) {
	var avg float64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COALESCE(AVG(sleep_hours), 0) FROM activity_logs WHERE user_id=?", userID).Scan(&avg)
	return avg, err
}

func (r *ActivityLogRepo) scanOne(ctx context.Context, query string, args ...any) (model.ActivityLog, error) {
	var l model.ActivityLog
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&l.ID, &l.UserID, &l.LogDate, &l.Steps, &l.CaloriesConsumed, &l.CaloriesBurned,
		&l.WaterMl, &l.SleepHours, &l.WeightKg, &l.Mood, &l.Notes, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ActivityLog{}, ErrNotFound
	}
	if err != nil {
		return model.ActivityLog{}, err
	}
	return l, nil
}

func (r *ActivityLogRepo) scanMany(ctx context.Context, query string, args ...any) ([]model.ActivityLog, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ActivityLog
	for rows.Next() {
		var l model.ActivityLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.LogDate, &l.Steps, &l.CaloriesConsumed, &l.CaloriesBurned,
			&l.WaterMl, &l.SleepHours, &l.WeightKg, &l.Mood, &l.Notes, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
