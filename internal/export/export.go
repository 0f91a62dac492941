// ABOUTME: Export functionality for vael data.
// ABOUTME: Collects every table into a snapshot; renders JSON, YAML, or SQLite.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
)

// Snapshot is the full export format for vael data.
type Snapshot struct {
	Version       string                 `json:"version" yaml:"version"`
	ExportedAt    time.Time              `json:"exported_at" yaml:"exported_at"`
	Tool          string                 `json:"tool" yaml:"tool"`
	SchemaVersion int                    `json:"schema_version" yaml:"schema_version"`
	Exercises     []*models.Exercise     `json:"exercises" yaml:"exercises"`
	Workouts      []*models.Workout      `json:"workouts" yaml:"workouts"`
	Sets          []*models.SetLog       `json:"sets" yaml:"sets"`
	Routines      []*models.Routine      `json:"routines" yaml:"routines"`
	DailyLogs     []*models.DailyLog     `json:"daily_logs" yaml:"daily_logs"`
	Habits        []*models.Habit        `json:"habits" yaml:"habits"`
	Notes         []*models.Note         `json:"notes" yaml:"notes"`
	Media         []*models.Media        `json:"media" yaml:"media"`
	Measurements  []*models.Measurement  `json:"measurements" yaml:"measurements"`
	NutritionLogs []*models.NutritionLog `json:"nutrition_logs" yaml:"nutrition_logs"`
}

// Collect reads every table into a snapshot.
func Collect(eng *store.Engine) (*Snapshot, error) {
	s := &Snapshot{
		Version:       "1.0",
		ExportedAt:    time.Now(),
		Tool:          "vael",
		SchemaVersion: eng.Version(),
	}

	var err error
	if s.Exercises, err = store.NewTable[models.Exercise](eng, schema.TableExercises).All(); err != nil {
		return nil, fmt.Errorf("collect exercises: %w", err)
	}
	if s.Workouts, err = store.NewTable[models.Workout](eng, schema.TableWorkouts).All(); err != nil {
		return nil, fmt.Errorf("collect workouts: %w", err)
	}
	if s.Sets, err = store.NewTable[models.SetLog](eng, schema.TableSets).All(); err != nil {
		return nil, fmt.Errorf("collect sets: %w", err)
	}
	if s.Routines, err = store.NewTable[models.Routine](eng, schema.TableRoutines).All(); err != nil {
		return nil, fmt.Errorf("collect routines: %w", err)
	}
	if s.DailyLogs, err = store.NewTable[models.DailyLog](eng, schema.TableDailyLogs).All(); err != nil {
		return nil, fmt.Errorf("collect daily logs: %w", err)
	}
	if s.Habits, err = store.NewTable[models.Habit](eng, schema.TableHabits).All(); err != nil {
		return nil, fmt.Errorf("collect habits: %w", err)
	}
	if s.Notes, err = store.NewTable[models.Note](eng, schema.TableNotes).All(); err != nil {
		return nil, fmt.Errorf("collect notes: %w", err)
	}
	if s.Media, err = store.NewTable[models.Media](eng, schema.TableMedia).All(); err != nil {
		return nil, fmt.Errorf("collect media: %w", err)
	}
	if s.Measurements, err = store.NewTable[models.Measurement](eng, schema.TableMeasurements).All(); err != nil {
		return nil, fmt.Errorf("collect measurements: %w", err)
	}
	if s.NutritionLogs, err = store.NewTable[models.NutritionLog](eng, schema.TableNutritionLogs).All(); err != nil {
		return nil, fmt.Errorf("collect nutrition logs: %w", err)
	}
	return s, nil
}

// JSON renders the snapshot as indented JSON.
func (s *Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// YAML renders the snapshot as YAML.
func (s *Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
