package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/utils"
)

// UserRepo persists rows of the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id, name, email, password_hash, role, fitness_goal, height_cm, weight_kg, created_at, last_active_at"

// NewUserInput carries the registration payload. Profile fields are
// optional and stored as NULL when absent.
type NewUserInput struct {
	Name        string
	Email       string
	Password    string
	Role        model.Role
	FitnessGoal *string
	HeightCm    *float64
	WeightKg    *float64
}

// Create hashes the password and inserts the user, returning the new id.
// A duplicate email maps to ErrEmailExists (MySQL error 1062).
func (r *UserRepo) Create(ctx context.Context, in NewUserInput, bcryptCost int) (uint64, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	hash, err := utils.HashPassword(in.Password, bcryptCost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, role, fitness_goal, height_cm, weight_kg) VALUES (?,?,?,?,?,?,?)",
		in.Name, email, hash, in.Role, in.FitnessGoal, in.HeightCm, in.WeightKg)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email. Returns ErrNotFound
// when the email is not registered.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.scanOne(ctx, "SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.scanOne(ctx, "SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id)
}

// TouchLastActive stamps users.last_active_at with the current time.
// Called on every successful login.
func (r *UserRepo) TouchLastActive(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE users SET last_active_at=NOW() WHERE id=?", id)
	return err
}

func (r *UserRepo) scanOne(ctx context.Context, query string, arg any) (model.User, error) {
	var (
		u          model.User
		lastActive sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.FitnessGoal, &u.HeightCm, &u.WeightKg, &u.CreatedAt, &lastActive)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	if lastActive.Valid {
		t := lastActive.Time
		u.LastActiveAt = &t
	}
	return u, nil
}
