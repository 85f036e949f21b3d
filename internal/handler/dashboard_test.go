package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/repository"
	"github.com/fitzone/fitzone-api/internal/service"
)

type stubDashWorkouts struct {
	count    int64
	calories float64
	recent   []repository.WorkoutSummary
}

func (s *stubDashWorkouts) CountCompletedByUser(_ context.Context, _ uint64) (int64, error) {
	return s.count, nil
}

func (s *stubDashWorkouts) TotalCaloriesByUser(_ context.Context, _ uint64) (float64, error) {
	return s.calories, nil
}

func (s *stubDashWorkouts) ListRecentByUser(_ context.Context, _ uint64, limit int) ([]repository.WorkoutSummary, error) {
	if len(s.recent) > limit {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

type stubDashLogs struct{}

func (stubDashLogs) AvgStepsByUser(_ context.Context, _ uint64) (float64, error) { return 7200, nil }
func (stubDashLogs) AvgSleepByUser(_ context.Context, _ uint64) (float64, error) { return 6.8, nil }
func (stubDashLogs) ListByUserAndRange(_ context.Context, _ uint64, _, _ time.Time) ([]model.ActivityLog, error) {
	return nil, nil
}

func TestDashboardHandler(t *testing.T) {
	svc := service.NewDashboardService(
		&stubDashWorkouts{count: 3, calories: 920.5, recent: []repository.WorkoutSummary{{ID: 1, Name: "Leg Day"}}},
		stubDashLogs{},
	)
	h := NewDashboardHandler(svc)

	rec, err := doJSON(h.Get, http.MethodGet, "/v1/dashboard", "", uint64(7))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.InDelta(t, 3, resp["total_workouts"], 1e-9)
	require.InDelta(t, 920.5, resp["total_calories_burned"], 1e-9)
	require.InDelta(t, 7200, resp["avg_steps_per_day"], 1e-9)
	require.Len(t, resp["weekly_activity"].([]any), 7)
	require.Len(t, resp["recent_workouts"].([]any), 1)
}

func TestDashboardHandlerUnauthorized(t *testing.T) {
	h := NewDashboardHandler(service.NewDashboardService(&stubDashWorkouts{}, stubDashLogs{}))

	rec, err := doJSON(h.Get, http.MethodGet, "/v1/dashboard", "", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
