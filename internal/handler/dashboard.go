package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitzone/fitzone-api/internal/service"
)

// DashboardHandler serves the aggregated dashboard view. The response is
// computed per request; it is deliberately excluded from the response
// cache so fresh workouts and logs show up immediately.
type DashboardHandler struct {
	Dashboard *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: svc}
}

// Get returns summary stats, the five most recent workouts and the
// 7-day activity series for the caller.
func (h *DashboardHandler) Get(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	d, err := h.Dashboard.Build(ctx, uid, time.Now().UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "dashboard failed"})
	}
	return c.JSON(http.StatusOK, d)
}
