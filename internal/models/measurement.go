// ABOUTME: Body measurement model: an append-only time series.
// ABOUTME: Every field but the date is optional.
package models

import (
	"time"

	"github.com/harperreed/vael/internal/store"
)

// Measurement is one body-composition snapshot.
type Measurement struct {
	ID      uint64    `json:"id"`
	Date    time.Time `json:"date"`
	Weight  *float64  `json:"weight,omitempty"`
	BodyFat *float64  `json:"body_fat,omitempty"`
	Chest   *float64  `json:"chest,omitempty"`
	Waist   *float64  `json:"waist,omitempty"`
	Arms    *float64  `json:"arms,omitempty"`
	Legs    *float64  `json:"legs,omitempty"`
	Notes   *string   `json:"notes,omitempty"`
}

// NewMeasurement creates a snapshot dated now.
func NewMeasurement() *Measurement {
	return &Measurement{Date: time.Now()}
}

// WithWeight sets body weight.
func (m *Measurement) WithWeight(kg float64) *Measurement {
	m.Weight = &kg
	return m
}

// WithBodyFat sets body-fat percentage.
func (m *Measurement) WithBodyFat(pct float64) *Measurement {
	m.BodyFat = &pct
	return m
}

// WithNotes sets free-text notes.
func (m *Measurement) WithNotes(notes string) *Measurement {
	m.Notes = &notes
	return m
}

func (m *Measurement) RecordID() uint64      { return m.ID }
func (m *Measurement) SetRecordID(id uint64) { m.ID = id }

func (m *Measurement) IndexValues() map[string][]byte {
	vals := map[string][]byte{
		"date": store.Time(m.Date),
	}
	optional := map[string]*float64{
		"weight":   m.Weight,
		"body_fat": m.BodyFat,
		"chest":    m.Chest,
		"waist":    m.Waist,
		"arms":     m.Arms,
		"legs":     m.Legs,
	}
	for field, v := range optional {
		if v != nil {
			vals[field] = store.Float(*v)
		}
	}
	return vals
}
