// ABOUTME: Workout session and SetLog models for strength training.
// ABOUTME: A session is active until ended; sets are append-only children.
package models

import (
	"time"

	"github.com/harperreed/vael/internal/store"
)

// WorkoutStatus is the lifecycle state of a workout session.
type WorkoutStatus string

const (
	WorkoutActive    WorkoutStatus = "active"
	WorkoutCompleted WorkoutStatus = "completed"
)

// Workout is one training session. It is created active and transitions to
// completed exactly once, picking up an end time and a total volume.
type Workout struct {
	ID        uint64        `json:"id"`
	Name      string        `json:"name"`
	StartTime time.Time     `json:"start_time"`
	EndTime   *time.Time    `json:"end_time,omitempty"`
	Status    WorkoutStatus `json:"status"`
	Volume    *float64      `json:"volume,omitempty"`
}

// NewWorkout starts a session now.
func NewWorkout(name string) *Workout {
	return &Workout{
		Name:      name,
		StartTime: time.Now(),
		Status:    WorkoutActive,
	}
}

// WithStartTime sets a custom start timestamp.
func (w *Workout) WithStartTime(t time.Time) *Workout {
	w.StartTime = t
	return w
}

func (w *Workout) RecordID() uint64      { return w.ID }
func (w *Workout) SetRecordID(id uint64) { w.ID = id }

func (w *Workout) IndexValues() map[string][]byte {
	return map[string][]byte{
		"name":       store.String(w.Name),
		"start_time": store.Time(w.StartTime),
		"status":     store.String(string(w.Status)),
	}
}

// SetLog records one set: weight lifted for a number of reps. Append-only;
// it belongs to exactly one workout and references one exercise. The engine
// does not enforce those references, so writers validate them first.
type SetLog struct {
	ID         uint64    `json:"id"`
	WorkoutID  uint64    `json:"workout_id"`
	ExerciseID uint64    `json:"exercise_id"`
	Weight     float64   `json:"weight"`
	Reps       int       `json:"reps"`
	RPE        *float64  `json:"rpe,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Warmup     bool      `json:"warmup"`
}

// NewSetLog records a set now.
func NewSetLog(workoutID, exerciseID uint64, weight float64, reps int) *SetLog {
	return &SetLog{
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		Weight:     weight,
		Reps:       reps,
		Timestamp:  time.Now(),
	}
}

// WithRPE sets the perceived-effort rating.
func (s *SetLog) WithRPE(rpe float64) *SetLog {
	s.RPE = &rpe
	return s
}

// AsWarmup flags the set as a warm-up.
func (s *SetLog) AsWarmup() *SetLog {
	s.Warmup = true
	return s
}

// Volume is the training load of this set: weight times reps.
func (s *SetLog) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

func (s *SetLog) RecordID() uint64      { return s.ID }
func (s *SetLog) SetRecordID(id uint64) { s.ID = id }

func (s *SetLog) IndexValues() map[string][]byte {
	return map[string][]byte{
		"workout_id":  store.Uint(s.WorkoutID),
		"exercise_id": store.Uint(s.ExerciseID),
		"weight":      store.Float(s.Weight),
		"reps":        store.Int(int64(s.Reps)),
		"timestamp":   store.Time(s.Timestamp),
	}
}
