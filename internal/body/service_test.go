// ABOUTME: Tests for measurement history ordering and the weight trend.
package body

import (
	"errors"
	"testing"
	"time"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	eng, err := store.Open(store.Options{Schema: schema.Versions(), InMemory: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { eng.Close() })
	return NewService(eng)
}

func addAt(t *testing.T, svc *Service, at time.Time, weight *float64) *models.Measurement {
	t.Helper()
	m := models.NewMeasurement()
	m.Date = at
	m.Weight = weight
	got, err := svc.AddMeasurement(m)
	if err != nil {
		t.Fatalf("AddMeasurement failed: %v", err)
	}
	return got
}

func fptr(f float64) *float64 { return &f }

func TestHistoryOrdersNewestFirst(t *testing.T) {
	svc := setupService(t)

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		addAt(t, svc, base.AddDate(0, 0, i), fptr(80-float64(i)))
	}

	history, err := svc.History(2)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("limit mismatch: got %d, want 2", len(history))
	}
	if !history[0].Date.After(history[1].Date) {
		t.Errorf("history order mismatch: %v then %v", history[0].Date, history[1].Date)
	}
}

func TestLatestPicksMostRecent(t *testing.T) {
	svc := setupService(t)

	if _, err := svc.Latest(); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("error mismatch: got %v, want ErrNotFound", err)
	}

	addAt(t, svc, time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC), fptr(81))
	want := addAt(t, svc, time.Date(2026, 8, 15, 8, 0, 0, 0, time.UTC), fptr(80))

	latest, err := svc.Latest()
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest.ID != want.ID {
		t.Errorf("latest mismatch: got %d, want %d", latest.ID, want.ID)
	}
}

func TestWeightTrendSkipsSnapshotsWithoutWeight(t *testing.T) {
	svc := setupService(t)

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	addAt(t, svc, base, fptr(82))
	addAt(t, svc, base.AddDate(0, 0, 7), nil) // waist-only day
	addAt(t, svc, base.AddDate(0, 0, 14), fptr(81))

	trend, err := svc.WeightTrend()
	if err != nil {
		t.Fatalf("WeightTrend failed: %v", err)
	}
	if len(trend) != 2 {
		t.Fatalf("point count mismatch: got %d, want 2", len(trend))
	}
	if trend[0].Weight != 82 || trend[1].Weight != 81 {
		t.Errorf("trend mismatch: got %+v", trend)
	}
	if !trend[0].Date.Before(trend[1].Date) {
		t.Error("trend not in chronological order")
	}
}
