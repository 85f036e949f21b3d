package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/fitzone/fitzone-api/internal/config"
	"github.com/fitzone/fitzone-api/internal/database"
	"github.com/fitzone/fitzone-api/internal/handler"
	"github.com/fitzone/fitzone-api/internal/middleware"
	"github.com/fitzone/fitzone-api/internal/queue"
	"github.com/fitzone/fitzone-api/internal/repository"
	"github.com/fitzone/fitzone-api/internal/router"
	"github.com/fitzone/fitzone-api/internal/service"
)

func main() {
	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.Env == "prod" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	rateLimit := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	go func() {
		if err := queue.StartWorkoutConsumer(); err != nil {
			logrus.WithError(err).Warn("workout consumer stopped")
		}
	}()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	exercises := repository.NewExerciseRepo(db)
	workouts := repository.NewWorkoutRepo(db)
	activityLogs := repository.NewActivityLogRepo(db)

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, users, tokens),
		Exercises: handler.NewExerciseHandler(exercises),
		Workouts:  handler.NewWorkoutHandler(service.NewWorkoutService(workouts, exercises)),
		Activity:  handler.NewActivityHandler(service.NewActivityService(activityLogs)),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(workouts, activityLogs)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())

	router.Register(e, h, cfg.JWTSecret, rateLimit, cache)

	logrus.WithField("port", cfg.Port).Info("fitzone api listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
