// ABOUTME: Declares the store's table names and versioned schema history.
// ABOUTME: Seven additive versions, mirroring how the tracker's schema grew.
package schema

import (
	"encoding/json"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/store"
)

// Table names. Every feature service binds its tables with these constants.
const (
	TableExercises     = "exercises"
	TableWorkouts      = "workouts"
	TableSets          = "sets"
	TableRoutines      = "routines"
	TableDailyLogs     = "daily_logs"
	TableHabits        = "habits"
	TableNotes         = "notes"
	TableMedia         = "media"
	TableMeasurements  = "measurements"
	TableNutritionLogs = "nutrition_logs"
)

// Versions returns the full schema history. Each version only adds tables
// or widens an index set; removing or renaming anything a prior version
// declared would break old rows and is rejected by the engine.
func Versions() []store.Version {
	return []store.Version{
		{Tables: []store.TableDef{
			table[models.Exercise](TableExercises, "name", "muscle", "category"),
			table[models.Workout](TableWorkouts, "start_time", "status"),
			table[models.SetLog](TableSets, "workout_id", "exercise_id", "timestamp"),
		}},
		{Tables: []store.TableDef{
			table[models.Routine](TableRoutines, "name", "updated_at"),
		}},
		{Tables: []store.TableDef{
			table[models.DailyLog](TableDailyLogs, "date", "sleep_hours", "mood"),
			table[models.Habit](TableHabits, "name", "frequency", "archived"),
		}},
		{Tables: []store.TableDef{
			table[models.Note](TableNotes, "title", "type", "date"),
			table[models.Media](TableMedia, "note_id"),
		}},
		{Tables: []store.TableDef{
			table[models.Measurement](TableMeasurements, "date", "weight", "body_fat", "chest", "waist", "arms", "legs"),
		}},
		{Tables: []store.TableDef{
			table[models.NutritionLog](TableNutritionLogs, "date", "name", "meal_type", "calories", "protein", "carbs", "fat"),
		}},
		// v7 added the exercise image field to the index set.
		{Tables: []store.TableDef{
			table[models.Exercise](TableExercises, "name", "muscle", "category", "image"),
		}},
	}
}

// table builds a TableDef whose backfill decoder unmarshals stored rows
// into T and reads their index values.
func table[T any, P store.Entity[T]](name string, indexed ...string) store.TableDef {
	return store.TableDef{
		Name:    name,
		Indexed: indexed,
		Index: func(row []byte) (map[string][]byte, error) {
			rec := P(new(T))
			if err := json.Unmarshal(row, rec); err != nil {
				return nil, err
			}
			return rec.IndexValues(), nil
		},
	}
}
