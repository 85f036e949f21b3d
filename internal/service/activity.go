package service

import (
	"context"
	"errors"
	"time"

	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/repository"
)

// ActivityLogStore persists daily wellness logs.
type ActivityLogStore interface {
	Insert(ctx context.Context, l *model.ActivityLog) error
	Update(ctx context.Context, l *model.ActivityLog) error
	GetByID(ctx context.Context, id uint64) (model.ActivityLog, error)
	GetByUserAndDate(ctx context.Context, userID uint64, date time.Time) (model.ActivityLog, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.ActivityLog, error)
	ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]model.ActivityLog, error)
}

// ActivityLogPatch is a sparse update: only non-nil fields replace the
// stored value. Pointer-per-field keeps "not supplied" distinct from a
// zero value.
type ActivityLogPatch struct {
	Steps            *int
	CaloriesConsumed *int
	CaloriesBurned   *float64
	WaterMl          *int
	SleepHours       *float64
	WeightKg         *float64
	Mood             *string
	Notes            *string
}

func (p ActivityLogPatch) applyTo(l *model.ActivityLog) {
	if p.Steps != nil {
		l.Steps = p.Steps
	}
	if p.CaloriesConsumed != nil {
		l.CaloriesConsumed = p.CaloriesConsumed
	}
	if p.CaloriesBurned != nil {
		l.CaloriesBurned = p.CaloriesBurned
	}
	if p.WaterMl != nil {
		l.WaterMl = p.WaterMl
	}
	if p.SleepHours != nil {
		l.SleepHours = p.SleepHours
	}
	if p.WeightKg != nil {
		l.WeightKg = p.WeightKg
	}
	if p.Mood != nil {
		l.Mood = p.Mood
	}
	if p.Notes != nil {
		l.Notes = p.Notes
	}
}

// ActivityService owns the one-log-per-user-per-day invariant: logging
// against a date that already has a row overlays that row instead of
// inserting a duplicate.
type ActivityService struct {
	logs ActivityLogStore
	now  func() time.Time
}

func NewActivityService(logs ActivityLogStore) *ActivityService {
	return &ActivityService{logs: logs, now: time.Now}
}

// Log records metrics for a day, defaulting to today when no date is
// given. It upserts by (user, date): an existing log for that date is
// overlaid with the provided fields. The second return value reports
// whether a new row was created.
func (s *ActivityService) Log(ctx context.Context, userID uint64, date *time.Time, patch ActivityLogPatch) (model.ActivityLog, bool, error) {
	day := s.now().UTC()
	if date != nil {
		day = *date
	}
	day = day.Truncate(24 * time.Hour)

	existing, err := s.logs.GetByUserAndDate(ctx, userID, day)
	switch {
	case err == nil:
		patch.applyTo(&existing)
		if err := s.logs.Update(ctx, &existing); err != nil {
			return model.ActivityLog{}, false, err
		}
		return existing, false, nil
	case errors.Is(err, repository.ErrNotFound):
		l := model.ActivityLog{UserID: userID, LogDate: day}
		patch.applyTo(&l)
		if err := s.logs.Insert(ctx, &l); err != nil {
			return model.ActivityLog{}, false, err
		}
		return l, true, nil
	default:
		return model.ActivityLog{}, false, err
	}
}

// UpdateLog applies a sparse patch to an existing log. Fails with
// ErrNotFound when the id does not exist and ErrForbidden when the log
// belongs to a different user.
func (s *ActivityService) UpdateLog(ctx context.Context, logID, userID uint64, patch ActivityLogPatch) (model.ActivityLog, error) {
	l, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return model.ActivityLog{}, err
	}
	if l.UserID != userID {
		return model.ActivityLog{}, repository.ErrForbidden
	}
	patch.applyTo(&l)
	if err := s.logs.Update(ctx, &l); err != nil {
		return model.ActivityLog{}, err
	}
	return l, nil
}

// GetByDate returns the log for exactly that date, ErrNotFound when the
// user logged nothing that day.
func (s *ActivityService) GetByDate(ctx context.Context, userID uint64, date time.Time) (model.ActivityLog, error) {
	return s.logs.GetByUserAndDate(ctx, userID, date)
}

// ListForUser returns all logs, newest date first.
func (s *ActivityService) ListForUser(ctx context.Context, userID uint64) ([]model.ActivityLog, error) {
	return s.logs.ListByUser(ctx, userID)
}

// ListForUserRange returns logs in [start, end] inclusive, ascending.
func (s *ActivityService) ListForUserRange(ctx context.Context, userID uint64, start, end time.Time) ([]model.ActivityLog, error) {
	return s.logs.ListByUserAndRange(ctx, userID, start, end)
}
