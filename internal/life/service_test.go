// ABOUTME: Tests for daily check-in upserts and habit toggling.
package life

import (
	"errors"
	"testing"

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

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

func TestCheckInCreatesRowWithEmptyHabitList(t *testing.T) {
	svc := setupService(t)

	d, err := svc.CheckIn("2026-08-28", CheckInParams{SleepHours: fptr(7.5)})
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if d.Date != "2026-08-28" {
		t.Errorf("date mismatch: got %q", d.Date)
	}
	if d.SleepHours == nil || *d.SleepHours != 7.5 {
		t.Errorf("sleep mismatch: got %v", d.SleepHours)
	}
	if d.HabitsCompleted == nil || len(d.HabitsCompleted) != 0 {
		t.Errorf("habit list mismatch: got %v, want empty", d.HabitsCompleted)
	}
}

func TestCheckInMergesIntoExistingRow(t *testing.T) {
	svc := setupService(t)

	if _, err := svc.CheckIn("2026-08-28", CheckInParams{SleepHours: fptr(8)}); err != nil {
		t.Fatalf("first CheckIn failed: %v", err)
	}
	d, err := svc.CheckIn("2026-08-28", CheckInParams{Mood: iptr(4)})
	if err != nil {
		t.Fatalf("second CheckIn failed: %v", err)
	}

	// The earlier sleep value survives the later partial update.
	if d.SleepHours == nil || *d.SleepHours != 8 {
		t.Errorf("sleep lost on merge: got %v", d.SleepHours)
	}
	if d.Mood == nil || *d.Mood != 4 {
		t.Errorf("mood mismatch: got %v", d.Mood)
	}

	count, err := svc.dailyLogs.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("row count mismatch: got %d, want 1", count)
	}
}

func TestLogForMissingDate(t *testing.T) {
	svc := setupService(t)

	if _, err := svc.LogFor("2026-01-01"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error mismatch: got %v, want ErrNotFound", err)
	}
}

func TestToggleHabitIsSymmetric(t *testing.T) {
	svc := setupService(t)

	h, err := svc.CreateHabit("Stretch", "", models.HabitDaily, nil)
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	log, done, err := svc.ToggleHabit(h.ID, "2026-08-28")
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !done || !log.HabitDone(h.ID) {
		t.Error("habit not marked complete after first toggle")
	}

	log, done, err = svc.ToggleHabit(h.ID, "2026-08-28")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if done || log.HabitDone(h.ID) {
		t.Error("habit still complete after second toggle")
	}
}

func TestToggleHabitCreatesLogIfMissing(t *testing.T) {
	svc := setupService(t)

	h, err := svc.CreateHabit("Walk", "", models.HabitDaily, nil)
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	log, done, err := svc.ToggleHabit(h.ID, "2026-08-27")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !done {
		t.Error("habit not marked complete")
	}
	if log.Date != "2026-08-27" {
		t.Errorf("created log date mismatch: got %q", log.Date)
	}
}

func TestToggleHabitRejectsUnknownHabit(t *testing.T) {
	svc := setupService(t)

	if _, _, err := svc.ToggleHabit(999, "2026-08-28"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error mismatch: got %v, want ErrNotFound", err)
	}
}

func TestHabitsFiltersArchived(t *testing.T) {
	svc := setupService(t)

	active, err := svc.CreateHabit("Keep", "", models.HabitDaily, nil)
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	old, err := svc.CreateHabit("Retire", "", models.HabitDaily, nil)
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if _, err := svc.ArchiveHabit(old.ID); err != nil {
		t.Fatalf("ArchiveHabit failed: %v", err)
	}

	visible, err := svc.Habits(false)
	if err != nil {
		t.Fatalf("Habits failed: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != active.ID {
		t.Errorf("visible habits mismatch: got %+v", visible)
	}

	all, err := svc.Habits(true)
	if err != nil {
		t.Fatalf("Habits failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all habits mismatch: got %d, want 2", len(all))
	}
}
