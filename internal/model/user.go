package model

import "time"

// Role enumerates user roles stored in users.role.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether the role matches a known enum value.
func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

// User represents a row in the `users` table. Profile columns
// (fitness_goal, height_cm, weight_kg) are nullable and therefore
// mapped as pointers.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name.
//  Email        – unique email address, stored lower-cased.
//  PasswordHash – bcrypt hashed password.
//  Role         – USER or ADMIN.
//  FitnessGoal  – free-text goal ("Build muscle", ...), optional.
//  HeightCm     – height snapshot in centimeters, optional.
//  WeightKg     – weight snapshot in kilograms, optional.
//  CreatedAt    – timestamp of registration.
//  LastActiveAt – updated on every successful login.
type User struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	FitnessGoal  *string    `json:"fitness_goal,omitempty"`
	HeightCm     *float64   `json:"height_cm,omitempty"`
	WeightKg     *float64   `json:"weight_kg,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
}

// RefreshToken models an entry in the `refresh_tokens` table. The plain
// token is never stored; only its SHA-256 hash.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
