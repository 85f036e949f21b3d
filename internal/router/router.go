// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fitzone/fitzone-api/internal/handler"
	"github.com/fitzone/fitzone-api/internal/middleware"
	"github.com/fitzone/fitzone-api/internal/model"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Exercises *handler.ExerciseHandler
	Workouts  *handler.WorkoutHandler
	Activity  *handler.ActivityHandler
	Dashboard *handler.DashboardHandler
}

// Register mounts all routes. The cache middleware is applied only to
// exercise catalog reads, which is the one surface that is both hot and
// slow to change; per-user data is never cached. rateLimit and cache may
// be pass-through middleware when redis is unavailable.
func Register(e *echo.Echo, h Handlers, jwtSecret string, rateLimit, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Session endpoints need no access token but are still rate limited
	// to slow down credential stuffing.
	auth := e.Group("/v1/auth", rateLimit)
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	v1 := e.Group("/v1", middleware.JWTAuth(jwtSecret), rateLimit)

	v1.GET("/me", h.Auth.Me)

	ex := v1.Group("/exercises")
	ex.GET("", h.Exercises.List, cache)
	ex.GET("/search", h.Exercises.Search, cache)
	ex.GET("/muscle-group/:group", h.Exercises.ByMuscleGroup, cache)
	ex.GET("/category/:category", h.Exercises.ByCategory, cache)
	ex.GET("/:id", h.Exercises.ByID, cache)

	admin := middleware.RequireRole(string(model.RoleAdmin))
	ex.POST("", h.Exercises.Create, admin)
	ex.PUT("/:id", h.Exercises.Update, admin)
	ex.DELETE("/:id", h.Exercises.Delete, admin)

	wk := v1.Group("/workouts")
	wk.POST("", h.Workouts.Create)
	wk.GET("", h.Workouts.List)
	wk.GET("/range", h.Workouts.Range)
	wk.GET("/:id", h.Workouts.Get)
	wk.POST("/:id/complete", h.Workouts.Complete)

	act := v1.Group("/activity")
	act.POST("", h.Activity.Log)
	act.GET("", h.Activity.List)
	act.GET("/range", h.Activity.Range)
	act.GET("/date/:date", h.Activity.ByDate)
	act.PUT("/:id", h.Activity.Update)

	v1.GET("/dashboard", h.Dashboard.Get)
}
