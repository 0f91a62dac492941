// ABOUTME: Habit streak computation over the daily log history.
// ABOUTME: Daily habits count consecutive days; weekly habits count weeks hitting target.
package life

import (
	"time"

	"github.com/harperreed/vael/internal/models"
)

// refreshStreak recomputes and stores a habit's streak as of the given
// calendar date.
func (s *Service) refreshStreak(h *models.Habit, date string) error {
	logs, err := s.dailyLogs.All()
	if err != nil {
		return err
	}

	done := map[string]bool{}
	for _, d := range logs {
		if d.HabitDone(h.ID) {
			done[d.Date] = true
		}
	}

	anchor, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}

	var streak int
	switch h.Frequency {
	case models.HabitWeekly:
		streak = weeklyStreak(done, anchor, h.Target())
	default:
		streak = dailyStreak(done, anchor)
	}

	if streak == h.Streak {
		return nil
	}
	_, err = s.habits.Update(h.ID, func(u *models.Habit) {
		u.Streak = streak
	})
	return err
}

// dailyStreak counts consecutive completed days ending at the anchor. A
// miss on the anchor day itself does not break a run that ended yesterday.
func dailyStreak(done map[string]bool, anchor time.Time) int {
	day := anchor
	if !done[models.DateKey(day)] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for done[models.DateKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// weeklyStreak counts consecutive weeks, ending at the anchor's week, with
// at least target completed days. The current week keeps a run alive even
// below target, since it is still in progress.
func weeklyStreak(done map[string]bool, anchor time.Time, target int) int {
	if target < 1 {
		target = 1
	}

	perWeek := map[string]int{}
	for key := range done {
		d, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		perWeek[weekKey(d)]++
	}

	week := startOfWeek(anchor)
	streak := 0
	if perWeek[weekKey(week)] >= target {
		streak++
	}
	for week = week.AddDate(0, 0, -7); perWeek[weekKey(week)] >= target; week = week.AddDate(0, 0, -7) {
		streak++
	}
	return streak
}

func weekKey(t time.Time) string {
	return models.DateKey(startOfWeek(t))
}

// startOfWeek returns the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -offset)
}
