// ABOUTME: Routine model: a named, ordered list of exercises with targets.
// ABOUTME: Order values form a dense zero-based sequence at save time.
package models

import (
	"time"

	"github.com/harperreed/vael/internal/store"
)

// RoutineExercise is one slot in a routine's execution order.
type RoutineExercise struct {
	ExerciseID uint64 `json:"exercise_id"`
	Order      int    `json:"order"`
	TargetSets *int   `json:"target_sets,omitempty"`
	TargetReps *int   `json:"target_reps,omitempty"`
}

// Routine is a reusable workout template.
type Routine struct {
	ID        uint64            `json:"id"`
	Name      string            `json:"name"`
	Exercises []RoutineExercise `json:"exercises"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewRoutine creates a routine, stamping each slot with its position.
func NewRoutine(name string, exercises []RoutineExercise) *Routine {
	for i := range exercises {
		exercises[i].Order = i
	}
	return &Routine{
		Name:      name,
		Exercises: exercises,
		UpdatedAt: time.Now(),
	}
}

func (r *Routine) RecordID() uint64      { return r.ID }
func (r *Routine) SetRecordID(id uint64) { r.ID = id }

func (r *Routine) IndexValues() map[string][]byte {
	return map[string][]byte{
		"name":       store.String(r.Name),
		"updated_at": store.Time(r.UpdatedAt),
	}
}
