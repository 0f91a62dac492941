// ABOUTME: Training service: workout sessions, set logging, routines.
// ABOUTME: Validates references before writes; the engine does not.
package training

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
)

// ErrNoActiveWorkout is returned when an operation needs a running session.
var ErrNoActiveWorkout = errors.New("no active workout")

// ErrNoSets is returned when an exercise has no logged sets yet.
var ErrNoSets = errors.New("no sets recorded")

// DefaultWorkoutName is used when a session is started without a name.
const DefaultWorkoutName = "Quick Start Workout"

// Service wraps the storage engine with training-domain operations.
type Service struct {
	exercises *store.Table[models.Exercise, *models.Exercise]
	workouts  *store.Table[models.Workout, *models.Workout]
	sets      *store.Table[models.SetLog, *models.SetLog]
	routines  *store.Table[models.Routine, *models.Routine]
}

// NewService binds the training tables on the engine.
func NewService(eng *store.Engine) *Service {
	return &Service{
		exercises: store.NewTable[models.Exercise](eng, schema.TableExercises),
		workouts:  store.NewTable[models.Workout](eng, schema.TableWorkouts),
		sets:      store.NewTable[models.SetLog](eng, schema.TableSets),
		routines:  store.NewTable[models.Routine](eng, schema.TableRoutines),
	}
}

// StartWorkout opens a new active session.
func (s *Service) StartWorkout(name string) (*models.Workout, error) {
	if name == "" {
		name = DefaultWorkoutName
	}
	w := models.NewWorkout(name)
	if _, err := s.workouts.Insert(w); err != nil {
		return nil, err
	}
	return w, nil
}

// ActiveWorkout returns the most recently started active session, or
// ErrNoActiveWorkout.
func (s *Service) ActiveWorkout() (*models.Workout, error) {
	active, err := s.workouts.Where("status").
		Equals(store.String(string(models.WorkoutActive))).All()
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, ErrNoActiveWorkout
	}

	latest := active[0]
	for _, w := range active[1:] {
		if w.StartTime.After(latest.StartTime) {
			latest = w
		}
	}
	return latest, nil
}

// SetParams carries the optional parts of a set log.
type SetParams struct {
	RPE    *float64
	Warmup bool
}

// LogSet appends a set to a workout after checking that both the workout
// and the exercise exist.
func (s *Service) LogSet(workoutID, exerciseID uint64, weight float64, reps int, p SetParams) (*models.SetLog, error) {
	if _, err := s.workouts.Get(workoutID); err != nil {
		return nil, fmt.Errorf("log set: %w", err)
	}
	if _, err := s.exercises.Get(exerciseID); err != nil {
		return nil, fmt.Errorf("log set: %w", err)
	}

	set := models.NewSetLog(workoutID, exerciseID, weight, reps)
	if p.RPE != nil {
		set.WithRPE(*p.RPE)
	}
	if p.Warmup {
		set.AsWarmup()
	}

	if _, err := s.sets.Insert(set); err != nil {
		return nil, err
	}
	return set, nil
}

// FinishWorkout marks a session completed, stamping the end time and the
// session's total volume.
func (s *Service) FinishWorkout(workoutID uint64) (*models.Workout, error) {
	sets, err := s.SetsForWorkout(workoutID)
	if err != nil {
		return nil, err
	}
	volume := 0.0
	for _, set := range sets {
		volume += set.Volume()
	}

	now := time.Now()
	return s.workouts.Update(workoutID, func(w *models.Workout) {
		w.Status = models.WorkoutCompleted
		w.EndTime = &now
		w.Volume = &volume
	})
}

// SetsForWorkout lists a session's sets in logged order.
func (s *Service) SetsForWorkout(workoutID uint64) ([]*models.SetLog, error) {
	return s.sets.Where("workout_id").Equals(store.Uint(workoutID)).All()
}

// History lists workouts, most recent first.
func (s *Service) History(limit int) ([]*models.Workout, error) {
	return s.workouts.OrderBy("start_time").Desc().Limit(limit).All()
}

// PersonalRecord returns the heaviest set ever logged for an exercise.
// Ties on weight go to the earliest set, so a record stays attributed to
// the session that first achieved it. ErrNoSets when nothing is logged.
func (s *Service) PersonalRecord(exerciseID uint64) (*models.SetLog, error) {
	sets, err := s.sets.Where("exercise_id").Equals(store.Uint(exerciseID)).All()
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, ErrNoSets
	}

	best := sets[0]
	for _, set := range sets[1:] {
		if set.Weight > best.Weight ||
			(set.Weight == best.Weight && set.Timestamp.Before(best.Timestamp)) {
			best = set
		}
	}
	return best, nil
}

// GetExercise fetches a catalog entry.
func (s *Service) GetExercise(id uint64) (*models.Exercise, error) {
	return s.exercises.Get(id)
}

// Exercises lists the whole catalog.
func (s *Service) Exercises() ([]*models.Exercise, error) {
	return s.exercises.All()
}

// SearchExercises filters the catalog by name or muscle substring,
// case-insensitive, the way the routine builder's search box does.
func (s *Service) SearchExercises(query string) ([]*models.Exercise, error) {
	all, err := s.exercises.All()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var out []*models.Exercise
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Muscle), q) {
			out = append(out, e)
		}
	}
	return out, nil
}

// AddExercise adds a custom catalog entry.
func (s *Service) AddExercise(name, muscle, equipment, category string) (*models.Exercise, error) {
	e := models.NewExercise(name, muscle, equipment, category)
	if _, err := s.exercises.Insert(e); err != nil {
		return nil, err
	}
	return e, nil
}

// RoutineItem is one exercise slot handed to SaveRoutine. Position comes
// from slice order; SaveRoutine assigns the dense zero-based sequence.
type RoutineItem struct {
	ExerciseID uint64
	TargetSets *int
	TargetReps *int
}

// SaveRoutine stores a named routine after validating every referenced
// exercise.
func (s *Service) SaveRoutine(name string, items []RoutineItem) (*models.Routine, error) {
	exercises := make([]models.RoutineExercise, 0, len(items))
	for _, item := range items {
		if _, err := s.exercises.Get(item.ExerciseID); err != nil {
			return nil, fmt.Errorf("save routine: %w", err)
		}
		exercises = append(exercises, models.RoutineExercise{
			ExerciseID: item.ExerciseID,
			TargetSets: item.TargetSets,
			TargetReps: item.TargetReps,
		})
	}

	r := models.NewRoutine(name, exercises)
	if _, err := s.routines.Insert(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Routines lists saved routines, most recently updated first.
func (s *Service) Routines() ([]*models.Routine, error) {
	return s.routines.OrderBy("updated_at").Desc().All()
}

// GetRoutine fetches a routine.
func (s *Service) GetRoutine(id uint64) (*models.Routine, error) {
	return s.routines.Get(id)
}
