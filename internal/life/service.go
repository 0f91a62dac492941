// ABOUTME: Life service: daily check-ins and habit tracking.
// ABOUTME: DailyLog rows are upserted by calendar date; habits toggle in and out.
package life

import (
	"errors"
	"fmt"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
)

// Service wraps the storage engine with check-in and habit operations.
type Service struct {
	dailyLogs *store.Table[models.DailyLog, *models.DailyLog]
	habits    *store.Table[models.Habit, *models.Habit]
}

// NewService binds the life tables on the engine.
func NewService(eng *store.Engine) *Service {
	return &Service{
		dailyLogs: store.NewTable[models.DailyLog](eng, schema.TableDailyLogs),
		habits:    store.NewTable[models.Habit](eng, schema.TableHabits),
	}
}

// CheckInParams carries the fields of a daily check-in. Nil fields are
// left untouched on an existing log.
type CheckInParams struct {
	SleepHours   *float64
	SleepQuality *int
	Mood         *int
	Energy       *int
	Soreness     []string
	Notes        *string
}

func (p CheckInParams) apply(d *models.DailyLog) {
	if p.SleepHours != nil {
		d.SleepHours = p.SleepHours
	}
	if p.SleepQuality != nil {
		d.SleepQuality = p.SleepQuality
	}
	if p.Mood != nil {
		d.Mood = p.Mood
	}
	if p.Energy != nil {
		d.Energy = p.Energy
	}
	if p.Soreness != nil {
		d.Soreness = p.Soreness
	}
	if p.Notes != nil {
		d.Notes = p.Notes
	}
}

// CheckIn upserts the log for a calendar date: merge the supplied fields
// into the existing row, or insert a fresh one with an empty habit list.
func (s *Service) CheckIn(date string, p CheckInParams) (*models.DailyLog, error) {
	existing, err := s.LogFor(date)
	switch {
	case err == nil:
		return s.dailyLogs.Update(existing.ID, func(d *models.DailyLog) {
			p.apply(d)
		})
	case errors.Is(err, store.ErrNotFound):
		d := models.NewDailyLog(date)
		p.apply(d)
		if _, err := s.dailyLogs.Insert(d); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, err
	}
}

// LogFor finds the log for a calendar date, or store.ErrNotFound.
func (s *Service) LogFor(date string) (*models.DailyLog, error) {
	return s.dailyLogs.Where("date").Equals(store.String(date)).First()
}

// ToggleHabit flips a habit's membership in the date's completed set,
// following the same find-or-create rule as CheckIn, then refreshes the
// habit's streak. Returns the updated log and whether the habit is now
// marked complete.
func (s *Service) ToggleHabit(habitID uint64, date string) (*models.DailyLog, bool, error) {
	habit, err := s.habits.Get(habitID)
	if err != nil {
		return nil, false, fmt.Errorf("toggle habit: %w", err)
	}

	var log *models.DailyLog
	existing, err := s.LogFor(date)
	switch {
	case err == nil:
		log, err = s.dailyLogs.Update(existing.ID, func(d *models.DailyLog) {
			d.HabitsCompleted = toggleID(d.HabitsCompleted, habitID)
		})
		if err != nil {
			return nil, false, err
		}
	case errors.Is(err, store.ErrNotFound):
		log = models.NewDailyLog(date)
		log.HabitsCompleted = []uint64{habitID}
		if _, err := s.dailyLogs.Insert(log); err != nil {
			return nil, false, err
		}
	default:
		return nil, false, err
	}

	done := log.HabitDone(habitID)
	if err := s.refreshStreak(habit, date); err != nil {
		return nil, false, err
	}
	return log, done, nil
}

// toggleID is a symmetric difference on a single id.
func toggleID(ids []uint64, id uint64) []uint64 {
	out := make([]uint64, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

// CreateHabit stores a new habit with a zero streak.
func (s *Service) CreateHabit(name, icon string, frequency models.HabitFrequency, targetCount *int) (*models.Habit, error) {
	h := models.NewHabit(name, frequency)
	if icon != "" {
		h.WithIcon(icon)
	}
	if targetCount != nil && frequency == models.HabitWeekly {
		h.WithTargetCount(*targetCount)
	}
	if _, err := s.habits.Insert(h); err != nil {
		return nil, err
	}
	return h, nil
}

// GetHabit fetches a habit.
func (s *Service) GetHabit(id uint64) (*models.Habit, error) {
	return s.habits.Get(id)
}

// Habits lists habits, optionally including archived ones.
func (s *Service) Habits(includeArchived bool) ([]*models.Habit, error) {
	if includeArchived {
		return s.habits.All()
	}
	return s.habits.Where("archived").Equals(store.Bool(false)).All()
}

// ArchiveHabit hides a habit from the active list without deleting its
// completion history.
func (s *Service) ArchiveHabit(id uint64) (*models.Habit, error) {
	return s.habits.Update(id, func(h *models.Habit) {
		h.Archived = true
	})
}
