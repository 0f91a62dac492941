// ABOUTME: Daily training volume aggregation for the analytics view.
// ABOUTME: Buckets set volume by calendar day over a trailing window.
package training

import (
	"time"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/store"
)

// VolumePoint is one day's total training load.
type VolumePoint struct {
	Date   time.Time
	Volume float64
}

// VolumeSeries sums weight×reps per calendar day over the trailing window
// ending at now, inclusive. Days with no sets report zero; points come
// back in chronological order.
func (s *Service) VolumeSeries(now time.Time, days int) ([]VolumePoint, error) {
	if days <= 0 {
		days = 7
	}

	end := startOfDay(now).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -days)

	sets, err := s.sets.Where("timestamp").
		Between(store.Time(start), store.Time(end.Add(-time.Nanosecond))).All()
	if err != nil {
		return nil, err
	}

	byDay := map[string]float64{}
	for _, set := range sets {
		byDay[models.DateKey(set.Timestamp)] += set.Volume()
	}

	points := make([]VolumePoint, 0, days)
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		points = append(points, VolumePoint{
			Date:   day,
			Volume: byDay[models.DateKey(day)],
		})
	}
	return points, nil
}

// WeeklyVolume is the sum of the trailing 7-day series.
func (s *Service) WeeklyVolume(now time.Time) (float64, error) {
	points, err := s.VolumeSeries(now, 7)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, p := range points {
		total += p.Volume
	}
	return total, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
