// ABOUTME: Tests for workout sessions, set logging, PRs, and routines.
package training

import (
	"errors"
	"testing"
	"time"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/seed"
	"github.com/harperreed/vael/internal/store"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	eng, err := store.Open(store.Options{Schema: schema.Versions(), InMemory: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { eng.Close() })
	if _, err := seed.EnsureCatalog(eng); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return NewService(eng)
}

func TestStartWorkoutDefaultsName(t *testing.T) {
	svc := setupService(t)

	w, err := svc.StartWorkout("")
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}
	if w.Name != DefaultWorkoutName {
		t.Errorf("name mismatch: got %q, want %q", w.Name, DefaultWorkoutName)
	}
	if w.Status != models.WorkoutActive {
		t.Errorf("status mismatch: got %q, want active", w.Status)
	}
}

func TestActiveWorkoutPicksLatest(t *testing.T) {
	svc := setupService(t)

	if _, err := svc.ActiveWorkout(); !errors.Is(err, ErrNoActiveWorkout) {
		t.Fatalf("error mismatch: got %v, want ErrNoActiveWorkout", err)
	}

	if _, err := svc.StartWorkout("first"); err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	second, err := svc.StartWorkout("second")
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}

	active, err := svc.ActiveWorkout()
	if err != nil {
		t.Fatalf("ActiveWorkout failed: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("active workout mismatch: got %d, want %d", active.ID, second.ID)
	}
}

func TestLogSetValidatesReferences(t *testing.T) {
	svc := setupService(t)

	w, err := svc.StartWorkout("refs")
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}

	if _, err := svc.LogSet(999, 1, 100, 5, SetParams{}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing workout: got %v, want ErrNotFound", err)
	}
	if _, err := svc.LogSet(w.ID, 999, 100, 5, SetParams{}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing exercise: got %v, want ErrNotFound", err)
	}
	if _, err := svc.LogSet(w.ID, 1, 100, 5, SetParams{}); err != nil {
		t.Errorf("valid set rejected: %v", err)
	}
}

func TestFinishWorkoutComputesVolume(t *testing.T) {
	svc := setupService(t)

	w, err := svc.StartWorkout("volume day")
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}

	// 100x5 + 100x5 + 0x10 = 1000
	for _, set := range []struct {
		weight float64
		reps   int
	}{
		{100, 5},
		{100, 5},
		{0, 10},
	} {
		if _, err := svc.LogSet(w.ID, 1, set.weight, set.reps, SetParams{}); err != nil {
			t.Fatalf("LogSet failed: %v", err)
		}
	}

	done, err := svc.FinishWorkout(w.ID)
	if err != nil {
		t.Fatalf("FinishWorkout failed: %v", err)
	}
	if done.Status != models.WorkoutCompleted {
		t.Errorf("status mismatch: got %q, want completed", done.Status)
	}
	if done.EndTime == nil {
		t.Error("end time not stamped")
	}
	if done.Volume == nil || *done.Volume != 1000 {
		t.Errorf("volume mismatch: got %v, want 1000", done.Volume)
	}
}

func TestPersonalRecordPicksHeaviestSet(t *testing.T) {
	svc := setupService(t)

	w, err := svc.StartWorkout("pr day")
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}

	for _, weight := range []float64{95, 135, 115} {
		if _, err := svc.LogSet(w.ID, 2, weight, 5, SetParams{}); err != nil {
			t.Fatalf("LogSet failed: %v", err)
		}
	}

	pr, err := svc.PersonalRecord(2)
	if err != nil {
		t.Fatalf("PersonalRecord failed: %v", err)
	}
	if pr.Weight != 135 {
		t.Errorf("PR mismatch: got %.1f, want 135", pr.Weight)
	}
}

func TestPersonalRecordTieGoesToEarliestSet(t *testing.T) {
	svc := setupService(t)

	w, err := svc.StartWorkout("tie day")
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}

	first, err := svc.LogSet(w.ID, 2, 135, 5, SetParams{})
	if err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}
	if _, err := svc.LogSet(w.ID, 2, 135, 3, SetParams{}); err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}

	pr, err := svc.PersonalRecord(2)
	if err != nil {
		t.Fatalf("PersonalRecord failed: %v", err)
	}
	if pr.ID != first.ID {
		t.Errorf("tie-break mismatch: got set %d, want %d", pr.ID, first.ID)
	}
}

func TestPersonalRecordWithNoSets(t *testing.T) {
	svc := setupService(t)

	if _, err := svc.PersonalRecord(3); !errors.Is(err, ErrNoSets) {
		t.Errorf("error mismatch: got %v, want ErrNoSets", err)
	}
}

func TestSearchExercisesMatchesNameAndMuscle(t *testing.T) {
	svc := setupService(t)

	byName, err := svc.SearchExercises("squat")
	if err != nil {
		t.Fatalf("SearchExercises failed: %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "Barbell Squat" {
		t.Errorf("name search mismatch: got %+v", byName)
	}

	byMuscle, err := svc.SearchExercises("back")
	if err != nil {
		t.Fatalf("SearchExercises failed: %v", err)
	}
	if len(byMuscle) != 3 {
		t.Errorf("muscle search mismatch: got %d results, want 3", len(byMuscle))
	}
}

func TestSaveRoutineStampsOrder(t *testing.T) {
	svc := setupService(t)

	targetSets, targetReps := 5, 5
	r, err := svc.SaveRoutine("5x5 A", []RoutineItem{
		{ExerciseID: 1, TargetSets: &targetSets, TargetReps: &targetReps},
		{ExerciseID: 2},
		{ExerciseID: 6},
	})
	if err != nil {
		t.Fatalf("SaveRoutine failed: %v", err)
	}

	for i, slot := range r.Exercises {
		if slot.Order != i {
			t.Errorf("order mismatch at %d: got %d", i, slot.Order)
		}
	}

	got, err := svc.GetRoutine(r.ID)
	if err != nil {
		t.Fatalf("GetRoutine failed: %v", err)
	}
	if len(got.Exercises) != 3 {
		t.Errorf("slot count mismatch: got %d, want 3", len(got.Exercises))
	}
	if got.Exercises[0].TargetSets == nil || *got.Exercises[0].TargetSets != 5 {
		t.Errorf("target mismatch: got %+v", got.Exercises[0])
	}
}

func TestSaveRoutineRejectsUnknownExercise(t *testing.T) {
	svc := setupService(t)

	if _, err := svc.SaveRoutine("bad", []RoutineItem{{ExerciseID: 999}}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error mismatch: got %v, want ErrNotFound", err)
	}
}

func TestHistoryOrdersNewestFirst(t *testing.T) {
	svc := setupService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.StartWorkout("session"); err != nil {
			t.Fatalf("StartWorkout failed: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	history, err := svc.History(2)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("limit mismatch: got %d, want 2", len(history))
	}
	if !history[0].StartTime.After(history[1].StartTime) {
		t.Errorf("history order mismatch: %v then %v", history[0].StartTime, history[1].StartTime)
	}
}
