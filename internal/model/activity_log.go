package model

import "time"

// ActivityLog is one user's daily wellness snapshot. At most one row
// exists per (user, date); the schema enforces it with a unique key and
// the service layer upserts by date. All metric columns are nullable:
// a log may record only sleep, only steps, and so on.
type ActivityLog struct {
	ID               uint64    `json:"id"`
	UserID           uint64    `json:"user_id"`
	LogDate          time.Time `json:"log_date"`
	Steps            *int      `json:"steps,omitempty"`
	CaloriesConsumed *int      `json:"calories_consumed,omitempty"`
	CaloriesBurned   *float64  `json:"calories_burned,omitempty"`
	WaterMl          *int      `json:"water_ml,omitempty"`
	SleepHours       *float64  `json:"sleep_hours,omitempty"`
	WeightKg         *float64  `json:"weight_kg,omitempty"`
	Mood             *string   `json:"mood,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// DateOnly formats the log date as YYYY-MM-DD for responses and
// date-equality comparisons.
func (l ActivityLog) DateOnly() string { return l.LogDate.Format("2006-01-02") }
