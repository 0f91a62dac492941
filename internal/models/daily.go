// ABOUTME: DailyLog and Habit models for the daily check-in flow.
// ABOUTME: One DailyLog per calendar day; habit completion is denormalized into it.
package models

import (
	"time"

	"github.com/harperreed/vael/internal/store"
)

// DateKey formats a timestamp as the calendar-day natural key for DailyLog.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DailyLog is the single row for one calendar day: sleep, mood, energy,
// soreness, notes, and the ids of habits completed that day. Uniqueness of
// the date key is enforced by find-or-create, not by the engine.
type DailyLog struct {
	ID              uint64   `json:"id"`
	Date            string   `json:"date"`
	SleepHours      *float64 `json:"sleep_hours,omitempty"`
	SleepQuality    *int     `json:"sleep_quality,omitempty"`
	Mood            *int     `json:"mood,omitempty"`
	Energy          *int     `json:"energy,omitempty"`
	Soreness        []string `json:"soreness,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	HabitsCompleted []uint64 `json:"habits_completed,omitempty"`
}

// NewDailyLog creates an empty log for the given day key.
func NewDailyLog(date string) *DailyLog {
	return &DailyLog{Date: date, HabitsCompleted: []uint64{}}
}

// HabitDone reports whether the habit id is in the completed set.
func (d *DailyLog) HabitDone(habitID uint64) bool {
	for _, id := range d.HabitsCompleted {
		if id == habitID {
			return true
		}
	}
	return false
}

func (d *DailyLog) RecordID() uint64      { return d.ID }
func (d *DailyLog) SetRecordID(id uint64) { d.ID = id }

func (d *DailyLog) IndexValues() map[string][]byte {
	vals := map[string][]byte{
		"date": store.String(d.Date),
	}
	if d.SleepHours != nil {
		vals["sleep_hours"] = store.Float(*d.SleepHours)
	}
	if d.Mood != nil {
		vals["mood"] = store.Int(int64(*d.Mood))
	}
	return vals
}

// HabitFrequency is how often a habit is meant to be completed.
type HabitFrequency string

const (
	HabitDaily  HabitFrequency = "daily"
	HabitWeekly HabitFrequency = "weekly"
)

// Habit is a recurring behavior being tracked. The streak counter is
// derived from DailyLog completion history and refreshed on toggle.
type Habit struct {
	ID          uint64         `json:"id"`
	Name        string         `json:"name"`
	Icon        string         `json:"icon,omitempty"`
	Frequency   HabitFrequency `json:"frequency"`
	TargetCount *int           `json:"target_count,omitempty"`
	Streak      int            `json:"streak"`
	Archived    bool           `json:"archived"`
}

// NewHabit creates a habit with a zero streak.
func NewHabit(name string, frequency HabitFrequency) *Habit {
	return &Habit{Name: name, Frequency: frequency}
}

// WithIcon sets a display icon.
func (h *Habit) WithIcon(icon string) *Habit {
	h.Icon = icon
	return h
}

// WithTargetCount sets the weekly completion target.
func (h *Habit) WithTargetCount(n int) *Habit {
	h.TargetCount = &n
	return h
}

// Target is the weekly completion target, defaulting to one.
func (h *Habit) Target() int {
	if h.TargetCount == nil || *h.TargetCount < 1 {
		return 1
	}
	return *h.TargetCount
}

func (h *Habit) RecordID() uint64      { return h.ID }
func (h *Habit) SetRecordID(id uint64) { h.ID = id }

func (h *Habit) IndexValues() map[string][]byte {
	return map[string][]byte{
		"name":      store.String(h.Name),
		"frequency": store.String(string(h.Frequency)),
		"archived":  store.Bool(h.Archived),
	}
}
