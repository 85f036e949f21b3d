// Command seed populates a fresh database with demo accounts and the
// starter exercise catalog. Running it against a non-empty database is a
// no-op.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/fitzone/fitzone-api/internal/config"
	"github.com/fitzone/fitzone-api/internal/database"
	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/repository"
)

type catalogEntry struct {
	name        string
	description string
	muscleGroup model.MuscleGroup
	category    model.Category
	calPerMin   float64
	difficulty  string
}

var catalog = []catalogEntry{
	{"Bench Press", "Flat barbell bench press", model.MuscleChest, model.CategoryStrength, 8.0, "Intermediate"},
	{"Push-ups", "Standard push-ups", model.MuscleChest, model.CategoryStrength, 7.0, "Beginner"},
	{"Deadlift", "Conventional deadlift", model.MuscleBack, model.CategoryStrength, 10.0, "Advanced"},
	{"Pull-ups", "Bodyweight pull-ups", model.MuscleBack, model.CategoryStrength, 8.0, "Intermediate"},
	{"Lat Pulldown", "Cable lat pulldown", model.MuscleBack, model.CategoryStrength, 6.0, "Beginner"},
	{"Overhead Press", "Standing barbell press", model.MuscleShoulders, model.CategoryStrength, 7.0, "Intermediate"},
	{"Lateral Raises", "Dumbbell lateral raises", model.MuscleShoulders, model.CategoryStrength, 5.0, "Beginner"},
	{"Bicep Curls", "Dumbbell bicep curls", model.MuscleArms, model.CategoryStrength, 5.0, "Beginner"},
	{"Tricep Dips", "Parallel bar dips", model.MuscleArms, model.CategoryStrength, 6.0, "Intermediate"},
	{"Squats", "Barbell back squats", model.MuscleLegs, model.CategoryStrength, 10.0, "Intermediate"},
	{"Lunges", "Walking lunges", model.MuscleLegs, model.CategoryStrength, 7.0, "Beginner"},
	{"Leg Press", "Machine leg press", model.MuscleLegs, model.CategoryStrength, 8.0, "Beginner"},
	{"Plank", "Standard plank hold", model.MuscleCore, model.CategoryStrength, 4.0, "Beginner"},
	{"Crunches", "Standard crunches", model.MuscleCore, model.CategoryStrength, 5.0, "Beginner"},
	{"Running", "Treadmill or outdoor running", model.MuscleCardio, model.CategoryCardio, 12.0, "Beginner"},
	{"Cycling", "Stationary bike cycling", model.MuscleCardio, model.CategoryCardio, 10.0, "Beginner"},
	{"Jump Rope", "Speed rope skipping", model.MuscleFullBody, model.CategoryCardio, 14.0, "Intermediate"},
	{"Burpees", "Full burpees with jump", model.MuscleFullBody, model.CategoryHIIT, 12.0, "Advanced"},
	{"Mountain Climbers", "Fast mountain climbers", model.MuscleFullBody, model.CategoryHIIT, 11.0, "Intermediate"},
	{"Yoga Flow", "Sun salutation sequence", model.MuscleFullBody, model.CategoryFlexibility, 4.0, "Beginner"},
}

type demoUser struct {
	name     string
	email    string
	password string
	role     model.Role
	goal     string
	heightCm float64
	weightKg float64
}

var demoUsers = []demoUser{
	{"Admin", "admin@fitzone.com", "admin123", model.RoleAdmin, "Maintain overall fitness", 180, 80},
	{"John Doe", "john@test.com", "password123", model.RoleUser, "Build muscle", 175, 75},
	{"Jane Smith", "jane@test.com", "password123", model.RoleUser, "Lose weight", 165, 65},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var userCount int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		logrus.WithError(err).Fatal("count users")
	}
	if userCount > 0 {
		logrus.Info("database already seeded, nothing to do")
		return
	}

	users := repository.NewUserRepo(db)
	for _, u := range demoUsers {
		goal, h, w := u.goal, u.heightCm, u.weightKg
		_, err := users.Create(ctx, repository.NewUserInput{
			Name:        u.name,
			Email:       u.email,
			Password:    u.password,
			Role:        u.role,
			FitnessGoal: &goal,
			HeightCm:    &h,
			WeightKg:    &w,
		}, cfg.BcryptCost)
		if err != nil {
			logrus.WithError(err).Fatalf("seed user %s", u.email)
		}
	}
	logrus.Infof("seeded %d users (admin@fitzone.com / admin123)", len(demoUsers))

	exercises := repository.NewExerciseRepo(db)
	for _, c := range catalog {
		desc, rate, diff := c.description, c.calPerMin, c.difficulty
		ex := model.Exercise{
			Name:              c.name,
			Description:       &desc,
			MuscleGroup:       c.muscleGroup,
			Category:          c.category,
			CaloriesPerMinute: &rate,
			Difficulty:        &diff,
		}
		if err := exercises.Create(ctx, &ex); err != nil {
			logrus.WithError(err).Fatalf("seed exercise %s", c.name)
		}
	}
	logrus.Infof("seeded %d exercises", len(catalog))
}
