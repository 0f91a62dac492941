// ABOUTME: Tests for daily volume bucketing over a trailing window.
package training

import (
	"testing"
	"time"

	"github.com/harperreed/vael/internal/models"
)

// logSetAt writes a set with an explicit timestamp, bypassing the
// service's now-stamping.
func logSetAt(t *testing.T, svc *Service, workoutID uint64, weight float64, reps int, at time.Time) {
	t.Helper()
	set := models.NewSetLog(workoutID, 1, weight, reps)
	set.Timestamp = at
	if _, err := svc.sets.Insert(set); err != nil {
		t.Fatalf("insert set failed: %v", err)
	}
}

func TestVolumeSeriesBucketsByCalendarDay(t *testing.T) {
	svc := setupService(t)

	w, err := svc.StartWorkout("window")
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}

	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.Local)
	// Two days ago: 100x5 twice = 1000. Yesterday: 50x4 = 200. Today: none.
	logSetAt(t, svc, w.ID, 100, 5, now.AddDate(0, 0, -2))
	logSetAt(t, svc, w.ID, 100, 5, now.AddDate(0, 0, -2).Add(time.Hour))
	logSetAt(t, svc, w.ID, 50, 4, now.AddDate(0, 0, -1))

	points, err := svc.VolumeSeries(now, 3)
	if err != nil {
		t.Fatalf("VolumeSeries failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("point count mismatch: got %d, want 3", len(points))
	}

	want := []float64{1000, 200, 0}
	for i, p := range points {
		if p.Volume != want[i] {
			t.Errorf("volume mismatch on day %d: got %.1f, want %.1f", i, p.Volume, want[i])
		}
	}
	if !points[0].Date.Before(points[1].Date) || !points[1].Date.Before(points[2].Date) {
		t.Error("points not in chronological order")
	}
}

func TestVolumeSeriesExcludesSetsOutsideWindow(t *testing.T) {
	svc := setupService(t)

	w, err := svc.StartWorkout("bounds")
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}

	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	logSetAt(t, svc, w.ID, 100, 10, now.AddDate(0, 0, -7)) // outside a 7-day window
	logSetAt(t, svc, w.ID, 60, 5, now)

	points, err := svc.VolumeSeries(now, 7)
	if err != nil {
		t.Fatalf("VolumeSeries failed: %v", err)
	}

	total := 0.0
	for _, p := range points {
		total += p.Volume
	}
	if total != 300 {
		t.Errorf("window total mismatch: got %.1f, want 300", total)
	}
}

func TestWeeklyVolumeSumsSeries(t *testing.T) {
	svc := setupService(t)

	w, err := svc.StartWorkout("weekly")
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}

	now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.Local)
	logSetAt(t, svc, w.ID, 80, 5, now.AddDate(0, 0, -3))
	logSetAt(t, svc, w.ID, 80, 5, now)

	total, err := svc.WeeklyVolume(now)
	if err != nil {
		t.Fatalf("WeeklyVolume failed: %v", err)
	}
	if total != 800 {
		t.Errorf("weekly volume mismatch: got %.1f, want 800", total)
	}
}
