// ABOUTME: First-run bootstrap: loads the built-in exercise catalog.
// ABOUTME: Idempotent via a zero-count guard; one seed check in flight at a time.
package seed

import (
	"fmt"
	"sync"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
)

// mu keeps concurrent callers from racing the count-then-insert check.
var mu sync.Mutex

// Catalog returns the built-in exercise reference data inserted on first
// run so the app is usable without manual setup.
func Catalog() []*models.Exercise {
	return []*models.Exercise{
		models.NewExercise("Barbell Squat", "Legs", "Barbell", "Strength").
			WithImage("https://images.unsplash.com/photo-1574680096141-9c3c601394d1?q=80&w=200&auto=format&fit=crop"),
		models.NewExercise("Bench Press", "Chest", "Barbell", "Strength").
			WithImage("https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?q=80&w=200&auto=format&fit=crop"),
		models.NewExercise("Deadlift", "Back", "Barbell", "Strength").
			WithImage("https://images.unsplash.com/photo-1517836357463-d25dfeac3438?q=80&w=200&auto=format&fit=crop"),
		models.NewExercise("Overhead Press", "Shoulders", "Barbell", "Strength").
			WithImage("https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?q=80&w=200&auto=format&fit=crop"),
		models.NewExercise("Pull Up", "Back", "Bodyweight", "Strength").
			WithImage("https://images.unsplash.com/photo-1598971639058-211a73287db2?q=80&w=200&auto=format&fit=crop"),
		models.NewExercise("Dumbbell Row", "Back", "Dumbbell", "Strength").
			WithImage("https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?q=80&w=200&auto=format&fit=crop"),
		models.NewExercise("Lunges", "Legs", "Dumbbell", "Strength").
			WithImage("https://images.unsplash.com/photo-1574680178050-55c6a6a96e0a?q=80&w=200&auto=format&fit=crop"),
		models.NewExercise("Plank", "Core", "Bodyweight", "Strength").
			WithImage("https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?q=80&w=200&auto=format&fit=crop"),
		models.NewExercise("Running", "Cardio", "None", "Cardio").
			WithImage("https://images.unsplash.com/photo-1502904550040-7534597429ae?q=80&w=200&auto=format&fit=crop"),
	}
}

// EnsureCatalog inserts the catalog iff the exercise table is empty and
// returns how many rows were added. Safe to call on every startup.
func EnsureCatalog(eng *store.Engine) (int, error) {
	mu.Lock()
	defer mu.Unlock()

	exercises := store.NewTable[models.Exercise](eng, schema.TableExercises)

	count, err := exercises.Count()
	if err != nil {
		return 0, fmt.Errorf("seed check: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	catalog := Catalog()
	if err := exercises.InsertMany(catalog); err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	return len(catalog), nil
}
