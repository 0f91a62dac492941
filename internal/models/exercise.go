// ABOUTME: Exercise catalog model: reference data seeded on first run.
// ABOUTME: Custom exercises can be added from the routine builder.
package models

import "github.com/harperreed/vael/internal/store"

// Exercise is a catalog entry describing one movement.
type Exercise struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Muscle    string `json:"muscle"`
	Equipment string `json:"equipment"`
	Category  string `json:"category"`
	Image     string `json:"image,omitempty"`
}

// NewExercise creates a catalog entry.
func NewExercise(name, muscle, equipment, category string) *Exercise {
	return &Exercise{
		Name:      name,
		Muscle:    muscle,
		Equipment: equipment,
		Category:  category,
	}
}

// WithImage sets an illustration URL.
func (e *Exercise) WithImage(url string) *Exercise {
	e.Image = url
	return e
}

func (e *Exercise) RecordID() uint64      { return e.ID }
func (e *Exercise) SetRecordID(id uint64) { e.ID = id }

func (e *Exercise) IndexValues() map[string][]byte {
	vals := map[string][]byte{
		"name":      store.String(e.Name),
		"muscle":    store.String(e.Muscle),
		"equipment": store.String(e.Equipment),
		"category":  store.String(e.Category),
	}
	if e.Image != "" {
		vals["image"] = store.String(e.Image)
	}
	return vals
}
