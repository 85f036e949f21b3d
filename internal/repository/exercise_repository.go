package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fitzone/fitzone-api/internal/model"
)

// ExerciseRepo provides CRUD access to the exercise catalog. The catalog
// is read-mostly: workout creation resolves entries against it, while
// writes are an admin-only concern.
type ExerciseRepo struct{ DB *sql.DB }

func NewExerciseRepo(db *sql.DB) *ExerciseRepo { return &ExerciseRepo{DB: db} }

const exerciseColumns = "id, name, description, muscle_group, category, calories_per_minute, difficulty"

// List returns the whole catalog ordered by name.
func (r *ExerciseRepo) List(ctx context.Context) ([]model.Exercise, error) {
	return r.scanMany(ctx, "SELECT "+exerciseColumns+" FROM exercises ORDER BY name")
}

// ListByMuscleGroup filters the catalog by muscle group.
func (r *ExerciseRepo) ListByMuscleGroup(ctx context.Context, group model.MuscleGroup) ([]model.Exercise, error) {
	return r.scanMany(ctx, "SELECT "+exerciseColumns+" FROM exercises WHERE muscle_group=? ORDER BY name", group)
}

// ListByCategory filters the catalog by category.
func (r *ExerciseRepo) ListByCategory(ctx context.Context, cat model.Category) ([]model.Exercise, error) {
	return r.scanMany(ctx, "SELECT "+exerciseColumns+" FROM exercises WHERE category=? ORDER BY name", cat)
}

// SearchByName performs a case-insensitive substring search on the name.
func (r *ExerciseRepo) SearchByName(ctx context.Context, q string) ([]model.Exercise, error) {
	return r.scanMany(ctx,
		"SELECT "+exerciseColumns+" FROM exercises WHERE LOWER(name) LIKE CONCAT('%', LOWER(?), '%') ORDER BY name", q)
}

// GetByID fetches one catalog entry. Returns ErrNotFound when absent.
func (r *ExerciseRepo) GetByID(ctx context.Context, id uint64) (model.Exercise, error) {
	var e model.Exercise
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+exerciseColumns+" FROM exercises WHERE id=? LIMIT 1", id).
		Scan(&e.ID, &e.Name, &e.Description, &e.MuscleGroup, &e.Category, &e.CaloriesPerMinute, &e.Difficulty)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Exercise{}, ErrNotFound
	}
	if err != nil {
		return model.Exercise{}, err
	}
	return e, nil
}

// Create inserts a catalog entry and populates its generated id.
func (r *ExerciseRepo) Create(ctx context.Context, e *model.Exercise) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO exercises (name, description, muscle_group, category, calories_per_minute, difficulty) VALUES (?,?,?,?,?,?)",
		e.Name, e.Description, e.MuscleGroup, e.Category, e.CaloriesPerMinute, e.Difficulty)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// Update replaces all mutable fields of an existing entry. Existence is
// checked by the caller via GetByID; a no-op update reports zero
// affected rows on MySQL, so RowsAffected cannot stand in for that check.
func (r *ExerciseRepo) Update(ctx context.Context, e *model.Exercise) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE exercises SET name=?, description=?, muscle_group=?, category=?, calories_per_minute=?, difficulty=? WHERE id=?",
		e.Name, e.Description, e.MuscleGroup, e.Category, e.CaloriesPerMinute, e.Difficulty, e.ID)
	return err
}

// Delete removes a catalog entry. Returns ErrNotFound when the id does
// not exist.
func (r *ExerciseRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM exercises WHERE id=?", id)
	if err != nil {
		return err
	}
	return ensureAffected(res)
}

func (r *ExerciseRepo) scanMany(ctx context.Context, query string, args ...any) ([]model.Exercise, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Exercise
	for rows.Next() {
		var e model.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.MuscleGroup, &e.Category, &e.CaloriesPerMinute, &e.Difficulty); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ensureAffected maps a zero-row DELETE to ErrNotFound.
func ensureAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
