package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitzone/fitzone-api/internal/model"
)

func TestExerciseReqToModel(t *testing.T) {
	rate := 8.5
	req := exerciseReq{
		Name:              "  Bench Press ",
		MuscleGroup:       "chest",
		Category:          "strength",
		CaloriesPerMinute: &rate,
	}
	ex, msg := req.toModel()
	require.Empty(t, msg)
	require.Equal(t, "Bench Press", ex.Name)
	require.Equal(t, model.MuscleChest, ex.MuscleGroup)
	require.Equal(t, model.CategoryStrength, ex.Category)

	req.Name = "  "
	_, msg = req.toModel()
	require.Equal(t, "name required", msg)

	req.Name = "Bench Press"
	req.MuscleGroup = "pecs"
	_, msg = req.toModel()
	require.Equal(t, "unknown muscle group", msg)

	req.MuscleGroup = "chest"
	req.Category = "crossfit"
	_, msg = req.toModel()
	require.Equal(t, "unknown category", msg)
}

func TestExerciseByMuscleGroupRejectsUnknown(t *testing.T) {
	h := &ExerciseHandler{}

	rec, err := doJSON(h.ByMuscleGroup, http.MethodGet, "/v1/exercises/muscle-group/pecs", "", uint64(7), "group", "pecs")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExerciseByCategoryRejectsUnknown(t *testing.T) {
	h := &ExerciseHandler{}

	rec, err := doJSON(h.ByCategory, http.MethodGet, "/v1/exercises/category/crossfit", "", uint64(7), "category", "crossfit")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExerciseSearchRequiresQuery(t *testing.T) {
	h := &ExerciseHandler{}

	rec, err := doJSON(h.Search, http.MethodGet, "/v1/exercises/search", "", uint64(7))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, err = doJSON(h.Search, http.MethodGet, "/v1/exercises/search?q=%20%20", "", uint64(7))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExerciseByIDRejectsBadID(t *testing.T) {
	h := &ExerciseHandler{}

	rec, err := doJSON(h.ByID, http.MethodGet, "/v1/exercises/abc", "", uint64(7), "id", "abc")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
