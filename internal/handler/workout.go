package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/queue"
	"github.com/fitzone/fitzone-api/internal/repository"
	"github.com/fitzone/fitzone-api/internal/service"
)

// WorkoutHandler exposes the workout engine over HTTP.
type WorkoutHandler struct {
	Workouts *service.WorkoutService
}

func NewWorkoutHandler(svc *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{Workouts: svc}
}

// ----- DTOs -----

type workoutEntryReq struct {
	ExerciseID      uint64   `json:"exercise_id"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
	WeightKg        *float64 `json:"weight_kg"`
	DurationSeconds *int     `json:"duration_seconds"`
	DistanceMeters  *float64 `json:"distance_meters"`
	Notes           *string  `json:"notes"`
}

type createWorkoutReq struct {
	Name      string            `json:"name"`
	Notes     *string           `json:"notes"`
	Exercises []workoutEntryReq `json:"exercises"`
}

// workoutResp is the full typed workout payload, entries included.
type workoutResp struct {
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
	Exercises       []workoutEntryResp  `json:"exercises"`
}

type workoutEntryResp struct {
	ID              uint64   `json:"id"`
	ExerciseID      uint64   `json:"exercise_id"`
	ExerciseName    string   `json:"exercise_name"`
	Sets            *int     `json:"sets,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	DurationSeconds *int     `json:"duration_seconds,omitempty"`
	DistanceMeters  *float64 `json:"distance_meters,omitempty"`
	CaloriesBurned  *float64 `json:"calories_burned,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	OrderIndex      int      `json:"order_index"`
}

func toWorkoutResp(w model.Workout) workoutResp {
	resp := workoutResp{
		ID:              w.ID,
		Name:            w.Name,
		Notes:           w.Notes,
		Status:          w.Status,
		StartedAt:       w.StartedAt,
		CompletedAt:     w.CompletedAt,
		DurationMinutes: w.DurationMinutes,
		CaloriesBurned:  w.CaloriesBurned,
		CreatedAt:       w.CreatedAt,
		ExerciseCount:   len(w.Exercises),
		Exercises:       make([]workoutEntryResp, 0, len(w.Exercises)),
	}
	for _, e := range w.Exercises {
		resp.Exercises = append(resp.Exercises, workoutEntryResp{
			ID:              e.ID,
			ExerciseID:      e.ExerciseID,
			ExerciseName:    e.ExerciseName,
			Sets:            e.Sets,
			Reps:            e.Reps,
			WeightKg:        e.WeightKg,
			DurationSeconds: e.DurationSeconds,
			DistanceMeters:  e.DistanceMeters,
			CaloriesBurned:  e.CaloriesBurned,
			Notes:           e.Notes,
			OrderIndex:      e.OrderIndex,
		})
	}
	return resp
}

// Create starts a new workout from an ordered exercise list. An unknown
// exercise id fails the whole request with 404 and nothing is persisted.
func (h *WorkoutHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createWorkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	entries := make([]service.WorkoutEntryInput, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		if e.ExerciseID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "exercise_id required on every entry"})
		}
		entries = append(entries, service.WorkoutEntryInput{
			ExerciseID:      e.ExerciseID,
			Sets:            e.Sets,
			Reps:            e.Reps,
			WeightKg:        e.WeightKg,
			DurationSeconds: e.DurationSeconds,
			DistanceMeters:  e.DistanceMeters,
			Notes:           e.Notes,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	w, err := h.Workouts.Create(ctx, uid, req.Name, req.Notes, entries)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "exercise not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create workout failed"})
	}
	return c.JSON(http.StatusCreated, toWorkoutResp(w))
}

// Get fetches one workout with its entries.
func (h *WorkoutHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	w, err := h.Workouts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "workout not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toWorkoutResp(w))
}

// List returns the caller's workouts, newest first.
func (h *WorkoutHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	list, err := h.Workouts.ListForUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if list == nil {
		list = []repository.WorkoutSummary{}
	}
	return c.JSON(http.StatusOK, list)
}

// Range returns workouts created within ?start=...&end=... (RFC 3339 or
// YYYY-MM-DD), newest first.
func (h *WorkoutHandler) Range(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	start, err1 := parseTimeParam(c.QueryParam("start"), false)
	end, err2 := parseTimeParam(c.QueryParam("end"), true)
	if err1 != nil || err2 != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start/end must be RFC 3339 timestamps or YYYY-MM-DD dates"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	list, err := h.Workouts.ListForUserRange(ctx, uid, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if list == nil {
		list = []repository.WorkoutSummary{}
	}
	return c.JSON(http.StatusOK, list)
}

// Complete marks a workout COMPLETED and finalizes duration/calories.
// A workout.completed event is published best-effort; a broker failure
// never fails the request.
func (h *WorkoutHandler) Complete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	w, err := h.Workouts.Complete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "workout not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "complete workout failed"})
	}

	completedAt := ""
	if w.CompletedAt != nil {
		completedAt = w.CompletedAt.Format(time.RFC3339)
	}
	_ = queue.PublishWorkoutCompleted(ctx, queue.WorkoutCompletedEvent{
		WorkoutID:       w.ID,
		UserID:          w.UserID,
		Name:            w.Name,
		DurationMinutes: w.DurationMinutes,
		CaloriesBurned:  w.CaloriesBurned,
		ExerciseCount:   len(w.Exercises),
		CompletedAt:     completedAt,
	})

	return c.JSON(http.StatusOK, toWorkoutResp(w))
}

// parseTimeParam accepts RFC 3339 or a bare date. Bare end dates extend
// to the end of that day so the range stays inclusive.
func parseTimeParam(s string, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
