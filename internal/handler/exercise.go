package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/repository"
)

// ExerciseHandler exposes the exercise catalog: read endpoints for every
// authenticated user, write endpoints for admins only (enforced by the
// role middleware on the route group).
type ExerciseHandler struct {
	Exercises *repository.ExerciseRepo
}

func NewExerciseHandler(repo *repository.ExerciseRepo) *ExerciseHandler {
	return &ExerciseHandler{Exercises: repo}
}

type exerciseReq struct {
	Name              string   `json:"name"`
	Description       *string  `json:"description"`
	MuscleGroup       string   `json:"muscle_group"`
	Category          string   `json:"category"`
	CaloriesPerMinute *float64 `json:"calories_per_minute"`
	Difficulty        *string  `json:"difficulty"`
}

func (r exerciseReq) toModel() (model.Exercise, string) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return model.Exercise{}, "name required"
	}
	group, ok := model.ParseMuscleGroup(r.MuscleGroup)
	if !ok {
		return model.Exercise{}, "unknown muscle group"
	}
	cat, ok := model.ParseCategory(r.Category)
	if !ok {
		return model.Exercise{}, "unknown category"
	}
	return model.Exercise{
		Name:              name,
		Description:       r.Description,
		MuscleGroup:       group,
		Category:          cat,
		CaloriesPerMinute: r.CaloriesPerMinute,
		Difficulty:        r.Difficulty,
	}, ""
}

// List returns the whole catalog.
func (h *ExerciseHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	list, err := h.Exercises.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, emptyIfNil(list))
}

// ByMuscleGroup filters by /v1/exercises/muscle-group/:group.
func (h *ExerciseHandler) ByMuscleGroup(c echo.Context) error {
	group, ok := model.ParseMuscleGroup(c.Param("group"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown muscle group"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	list, err := h.Exercises.ListByMuscleGroup(ctx, group)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, emptyIfNil(list))
}

// ByCategory filters by /v1/exercises/category/:category.
func (h *ExerciseHandler) ByCategory(c echo.Context) error {
	cat, ok := model.ParseCategory(c.Param("category"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	list, err := h.Exercises.ListByCategory(ctx, cat)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, emptyIfNil(list))
}

// Search performs a case-insensitive name search (?q=).
func (h *ExerciseHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	list, err := h.Exercises.SearchByName(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, emptyIfNil(list))
}

// ByID fetches one catalog entry.
func (h *ExerciseHandler) ByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	e, err := h.Exercises.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "exercise not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, e)
}

// Create adds a catalog entry (admin only).
func (h *ExerciseHandler) Create(c echo.Context) error {
	var req exerciseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	e, msg := req.toModel()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Exercises.Create(ctx, &e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, e)
}

// Update replaces all mutable fields of a catalog entry (admin only).
func (h *ExerciseHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req exerciseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	e, msg := req.toModel()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	e.ID = id

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Exercises.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "exercise not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if err := h.Exercises.Update(ctx, &e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, e)
}

// Delete removes a catalog entry (admin only).
func (h *ExerciseHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Exercises.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "exercise not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// emptyIfNil keeps list responses as [] instead of null.
func emptyIfNil(list []model.Exercise) []model.Exercise {
	if list == nil {
		return []model.Exercise{}
	}
	return list
}
