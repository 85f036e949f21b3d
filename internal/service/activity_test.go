package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitzone/fitzone-api/internal/model"
	"github.com/fitzone/fitzone-api/internal/repository"
)

type fakeLogStore struct {
	byID    map[uint64]model.ActivityLog
	nextID  uint64
	inserts int
	updates int
}

func newFakeLogStore() *fakeLogStore {
	return &fakeLogStore{byID: map[uint64]model.ActivityLog{}, nextID: 1}
}

func (f *fakeLogStore) Insert(_ context.Context, l *model.ActivityLog) error {
	l.ID = f.nextID
	f.nextID++
	l.CreatedAt = time.Now().UTC()
	f.byID[l.ID] = *l
	f.inserts++
	return nil
}

func (f *fakeLogStore) Update(_ context.Context, l *model.ActivityLog) error {
	f.byID[l.ID] = *l
	f.updates++
	return nil
}

func (f *fakeLogStore) GetByID(_ context.Context, id uint64) (model.ActivityLog, error) {
	l, ok := f.byID[id]
	if !ok {
		return model.ActivityLog{}, repository.ErrNotFound
	}
	return l, nil
}

func (f *fakeLogStore) GetByUserAndDate(_ context.Context, userID uint64, date time.Time) (model.ActivityLog, error) {
	want := date.Format("2006-01-02")
	for _, l := range f.byID {
		if l.UserID == userID && l.DateOnly() == want {
			return l, nil
		}
	}
	return model.ActivityLog{}, repository.ErrNotFound
}

func (f *fakeLogStore) ListByUser(_ context.Context, userID uint64) ([]model.ActivityLog, error) {
	var out []model.ActivityLog
	for _, l := range f.byID {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLogStore) ListByUserAndRange(_ context.Context, userID uint64, start, end time.Time) ([]model.ActivityLog, error) {
	var out []model.ActivityLog
	for _, l := range f.byID {
		if l.UserID == userID && !l.LogDate.Before(start) && !l.LogDate.After(end) {
			out = append(out, l)
		}
	}
	return out, nil
}

func TestActivityLogCreatesForNewDate(t *testing.T) {
	store := newFakeLogStore()
	svc := NewActivityService(store)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC) }

	l, created, err := svc.Log(context.Background(), 7, nil, ActivityLogPatch{Steps: ptrI(8000)})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "2026-03-02", l.DateOnly(), "defaults to today with the time stripped")
	require.Equal(t, 8000, *l.Steps)
	require.Equal(t, 1, store.inserts)
}

func TestActivityLogUpsertsSameDate(t *testing.T) {
	store := newFakeLogStore()
	svc := NewActivityService(store)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, created, err := svc.Log(context.Background(), 7, &day, ActivityLogPatch{
		Steps:      ptrI(8000),
		SleepHours: ptrF(7.5),
	})
	require.NoError(t, err)
	require.True(t, created)

	// Second log for the same date overlays instead of inserting.
	l, created, err := svc.Log(context.Background(), 7, &day, ActivityLogPatch{Steps: ptrI(9500)})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, 9500, *l.Steps)
	require.Equal(t, 7.5, *l.SleepHours, "fields outside the patch stay put")
	require.Equal(t, 1, store.inserts)
	require.Equal(t, 1, store.updates)
}

func TestActivityLogSeparateUsersSameDate(t *testing.T) {
	store := newFakeLogStore()
	svc := NewActivityService(store)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, created, err := svc.Log(context.Background(), 7, &day, ActivityLogPatch{Steps: ptrI(8000)})
	require.NoError(t, err)
	require.True(t, created)

	_, created, err = svc.Log(context.Background(), 8, &day, ActivityLogPatch{Steps: ptrI(4000)})
	require.NoError(t, err)
	require.True(t, created, "another user's log for the same date is a new row")
}

func TestActivityUpdateSparsePatch(t *testing.T) {
	store := newFakeLogStore()
	svc := NewActivityService(store)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mood := "tired"
	store.byID[1] = model.ActivityLog{
		ID: 1, UserID: 7, LogDate: day,
		Steps: ptrI(8000), Mood: &mood, WaterMl: ptrI(1500),
	}
	store.nextID = 2

	l, err := svc.UpdateLog(context.Background(), 1, 7, ActivityLogPatch{WaterMl: ptrI(2500)})
	require.NoError(t, err)
	require.Equal(t, 2500, *l.WaterMl)
	require.Equal(t, 8000, *l.Steps)
	require.Equal(t, "tired", *l.Mood)
}

func TestActivityUpdateWrongOwner(t *testing.T) {
	store := newFakeLogStore()
	svc := NewActivityService(store)
	store.byID[1] = model.ActivityLog{ID: 1, UserID: 7, LogDate: time.Now()}

	_, err := svc.UpdateLog(context.Background(), 1, 8, ActivityLogPatch{Steps: ptrI(1)})
	require.ErrorIs(t, err, repository.ErrForbidden)
}

func TestActivityUpdateUnknownID(t *testing.T) {
	svc := NewActivityService(newFakeLogStore())
	_, err := svc.UpdateLog(context.Background(), 99, 7, ActivityLogPatch{})
	require.ErrorIs(t, err, repository.ErrNotFound)
}
