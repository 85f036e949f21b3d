package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/repository"
)

type fakeDashWorkouts struct {
	count    int64
	calories float64
	recent   []repository.WorkoutSummary
}

func (f *fakeDashWorkouts) CountCompletedByUser(_ context.Context, _ uint64) (int64, error) {
	return f.count, nil
}

func (f *fakeDashWorkouts) TotalCaloriesByUser(_ context.Context, _ uint64) (float64, error) {
	return f.calories, nil
}

func (f *fakeDashWorkouts) ListRecentByUser(_ context.Context, _ uint64, limit int) ([]repository.WorkoutSummary, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type fakeDashLogs struct {
	avgSteps float64
	avgSleep float64
	logs     []model.ActivityLog
}

func (f *fakeDashLogs) AvgStepsByUser(_ context.Context, _ uint64) (float64, error) {
	return f.avgSteps, nil
}

func (f *fakeDashLogs) AvgSleepByUser(_ context.Context, _ uint64) (float64, error) {
	return f.avgSleep, nil
}

func (f *fakeDashLogs) ListByUserAndRange(_ context.Context, _ uint64, _, _ time.Time) ([]model.ActivityLog, error) {
	return f.logs, nil
}

func TestDashboardZeroState(t *testing.T) {
	svc := NewDashboardService(&fakeDashWorkouts{}, &fakeDashLogs{})
	today := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	d, err := svc.Build(context.Background(), 7, today)
	require.NoError(t, err)
	require.Zero(t, d.TotalWorkouts)
	require.Zero(t, d.TotalCaloriesBurned)
	require.NotNil(t, d.RecentWorkouts, "serializes as [] rather than null")
	require.Empty(t, d.RecentWorkouts)
	require.Len(t, d.WeeklyActivity, 7, "series is zero-filled even with no logs")
	for _, day := range d.WeeklyActivity {
		require.Zero(t, day.Steps)
		require.Zero(t, day.CaloriesBurned)
	}
}

func TestDashboardWeeklySeries(t *testing.T) {
	today := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	logs := &fakeDashLogs{
		avgSteps: 6000,
		avgSleep: 7.2,
		logs: []model.ActivityLog{
			{UserID: 7, LogDate: today, Steps: ptrI(10000), SleepHours: ptrF(8.0)},
			{UserID: 7, LogDate: today.AddDate(0, 0, -3), Steps: ptrI(4000), CaloriesBurned: ptrF(300), WaterMl: ptrI(2000)},
		},
	}
	workouts := &fakeDashWorkouts{
		count:    12,
		calories: 3450.5,
		recent: []repository.WorkoutSummary{
			{ID: 6, Name: "f"}, {ID: 5, Name: "e"}, {ID: 4, Name: "d"},
			{ID: 3, Name: "c"}, {ID: 2, Name: "b"}, {ID: 1, Name: "a"},
		},
	}
	svc := NewDashboardService(workouts, logs)

	d, err := svc.Build(context.Background(), 7, today)
	require.NoError(t, err)
	require.EqualValues(t, 12, d.TotalWorkouts)
	require.InDelta(t, 3450.5, d.TotalCaloriesBurned, 1e-9)
	require.InDelta(t, 6000, d.AvgStepsPerDay, 1e-9)
	require.Len(t, d.RecentWorkouts, 5, "recent workouts are capped at five")

	require.Len(t, d.WeeklyActivity, 7)
	require.Equal(t, "2026-03-01", d.WeeklyActivity[0].Date, "series starts six days back")
	require.Equal(t, "2026-03-07", d.WeeklyActivity[6].Date)

	// Logged days carry their metrics, the rest stay zero.
	require.Equal(t, 4000, d.WeeklyActivity[3].Steps)
	require.InDelta(t, 300, d.WeeklyActivity[3].CaloriesBurned, 1e-9)
	require.Equal(t, 2000, d.WeeklyActivity[3].WaterMl)
	require.Equal(t, 10000, d.WeeklyActivity[6].Steps)
	require.InDelta(t, 8.0, d.WeeklyActivity[6].SleepHours, 1e-9)
	require.Zero(t, d.WeeklyActivity[1].Steps)
}

func TestWeeklyActivityMonthBoundary(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	days := weeklyActivity(nil, today)
	require.Len(t, days, 7)
	require.Equal(t, "2026-02-24", days[0].Date)
	require.Equal(t, "2026-03-02", days[6].Date)
}
