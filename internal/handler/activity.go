package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/repository"
	"github.com/fitzone/fitzone-api/internal/service"
)

// ActivityHandler exposes daily wellness logging.
type ActivityHandler struct {
	Activity *service.ActivityService
}

func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{Activity: svc}
}

// activityLogReq doubles as the create payload and the sparse update
// payload; every metric field is optional.
type activityLogReq struct {
	LogDate          *string  `json:"log_date"` // YYYY-MM-DD, defaults to today
	Steps            *int     `json:"steps"`
	CaloriesConsumed *int     `json:"calories_consumed"`
	CaloriesBurned   *float64 `json:"calories_burned"`
	WaterMl          *int     `json:"water_ml"`
	SleepHours       *float64 `json:"sleep_hours"`
	WeightKg         *float64 `json:"weight_kg"`
	Mood             *string  `json:"mood"`
	Notes            *string  `json:"notes"`
}

func (r activityLogReq) patch() service.ActivityLogPatch {
	return service.ActivityLogPatch{
		Steps:            r.Steps,
		CaloriesConsumed: r.CaloriesConsumed,
		CaloriesBurned:   r.CaloriesBurned,
		WaterMl:          r.WaterMl,
		SleepHours:       r.SleepHours,
		WeightKg:         r.WeightKg,
		Mood:             r.Mood,
		Notes:            r.Notes,
	}
}

// Log records today's (or the given date's) metrics. Logging twice for
// the same date overlays the existing row, one log per user per day.
func (h *ActivityHandler) Log(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req activityLogReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	var date *time.Time
	if req.LogDate != nil {
		t, err := parseDate(*req.LogDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "log_date must be YYYY-MM-DD"})
		}
		date = &t
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	l, created, err := h.Activity.Log(ctx, uid, date, req.patch())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save log failed"})
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, l)
}

// List returns all of the caller's logs, newest date first.
func (h *ActivityHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	list, err := h.Activity.ListForUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if list == nil {
		list = []model.ActivityLog{}
	}
	return c.JSON(http.StatusOK, list)
}

// ByDate returns the single log for /v1/activity/date/:date, 404 when
// nothing was logged that day.
func (h *ActivityHandler) ByDate(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	date, err := parseDate(c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	l, err := h.Activity.GetByDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no log for that date"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, l)
}

// Range returns logs within ?start=...&end=... inclusive, ascending.
func (h *ActivityHandler) Range(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	start, err1 := parseDate(c.QueryParam("start"))
	end, err2 := parseDate(c.QueryParam("end"))
	if err1 != nil || err2 != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start/end must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	list, err := h.Activity.ListForUserRange(ctx, uid, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if list == nil {
		list = []model.ActivityLog{}
	}
	return c.JSON(http.StatusOK, list)
}

// Update applies a sparse patch to one log: only fields present in the
// body replace stored values.
func (h *ActivityHandler) Update(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req activityLogReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	l, err := h.Activity.UpdateLog(ctx, id, uid, req.patch())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "log not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.JSON(http.StatusOK, l)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}
