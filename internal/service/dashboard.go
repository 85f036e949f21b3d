package service

import (
	"context"
	"time"

	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/repository"
)

// DashboardWorkouts is the slice of workout storage the aggregator reads.
type DashboardWorkouts interface {
	CountCompletedByUser(ctx context.Context, userID uint64) (int64, error)
	TotalCaloriesByUser(ctx context.Context, userID uint64) (float64, error)
	ListRecentByUser(ctx context.Context, userID uint64, limit int) ([]repository.WorkoutSummary, error)
}

// DashboardLogs is the slice of activity-log storage the aggregator reads.
type DashboardLogs interface {
	AvgStepsByUser(ctx context.Context, userID uint64) (float64, error)
	AvgSleepByUser(ctx context.Context, userID uint64) (float64, error)
	ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]model.ActivityLog, error)
}

const recentWorkoutLimit = 5

// Dashboard is the computed read view for one user. It is assembled per
// request and never persisted or cached.
type Dashboard struct {
	TotalWorkouts       int64                       `json:"total_workouts"`
	TotalCaloriesBurned float64                     `json:"total_calories_burned"`
	AvgStepsPerDay      float64                     `json:"avg_steps_per_day"`
	AvgSleepHours       float64                     `json:"avg_sleep_hours"`
	RecentWorkouts      []repository.WorkoutSummary `json:"recent_workouts"`
	WeeklyActivity      []DayActivity               `json:"weekly_activity"`
}

// DayActivity is one day of the 7-day series. Days without a log carry
// zeros rather than being omitted.
type DayActivity struct {
	Date           string  `json:"date"`
	Steps          int     `json:"steps"`
	CaloriesBurned float64 `json:"calories_burned"`
	SleepHours     float64 `json:"sleep_hours"`
	WaterMl        int     `json:"water_ml"`
}

// DashboardService aggregates workouts and activity logs into the
// dashboard view.
type DashboardService struct {
	workouts DashboardWorkouts
	logs     DashboardLogs
}

func NewDashboardService(workouts DashboardWorkouts, logs DashboardLogs) *DashboardService {
	return &DashboardService{workouts: workouts, logs: logs}
}

// Build computes the dashboard for the user. today anchors the weekly
// series: the series covers today-6 through today, ascending, always
// exactly seven entries.
func (s *DashboardService) Build(ctx context.Context, userID uint64, today time.Time) (Dashboard, error) {
	var (
		d   Dashboard
		err error
	)
	if d.TotalWorkouts, err = s.workouts.CountCompletedByUser(ctx, userID); err != nil {
		return Dashboard{}, err
	}
	if d.TotalCaloriesBurned, err = s.workouts.TotalCaloriesByUser(ctx, userID); err != nil {
		return Dashboard{}, err
	}
	if d.AvgStepsPerDay, err = s.logs.AvgStepsByUser(ctx, userID); err != nil {
		return Dashboard{}, err
	}
	if d.AvgSleepHours, err = s.logs.AvgSleepByUser(ctx, userID); err != nil {
		return Dashboard{}, err
	}
	if d.RecentWorkouts, err = s.workouts.ListRecentByUser(ctx, userID, recentWorkoutLimit); err != nil {
		return Dashboard{}, err
	}
	if d.RecentWorkouts == nil {
		d.RecentWorkouts = []repository.WorkoutSummary{}
	}

	weekAgo := today.AddDate(0, 0, -6)
	logs, err := s.logs.ListByUserAndRange(ctx, userID, weekAgo, today)
	if err != nil {
		return Dashboard{}, err
	}
	d.WeeklyActivity = weeklyActivity(logs, today)
	return d, nil
}

// weeklyActivity builds the zero-filled 7-day series ending today.
// Matching is by exact calendar date.
func weeklyActivity(logs []model.ActivityLog, today time.Time) []DayActivity {
	byDate := make(map[string]model.ActivityLog, len(logs))
	for _, l := range logs {
		byDate[l.DateOnly()] = l
	}

	days := make([]DayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		day := DayActivity{Date: date}
		if l, ok := byDate[date]; ok {
			if l.Steps != nil {
				day.Steps = *l.Steps
			}
			if l.CaloriesBurned != nil {
				day.CaloriesBurned = *l.CaloriesBurned
			}
			if l.SleepHours != nil {
				day.SleepHours = *l.SleepHours
			}
			if l.WaterMl != nil {
				day.WaterMl = *l.WaterMl
			}
		}
		days = append(days, day)
	}
	return days
}
