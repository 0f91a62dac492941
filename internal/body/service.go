// ABOUTME: Body service: measurement history and the latest snapshot.
package body

import (
	"time"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
)

// Service wraps the storage engine with body-measurement operations.
type Service struct {
	measurements *store.Table[models.Measurement, *models.Measurement]
}

// NewService binds the measurements table on the engine.
func NewService(eng *store.Engine) *Service {
	return &Service{
		measurements: store.NewTable[models.Measurement](eng, schema.TableMeasurements),
	}
}

// AddMeasurement stores a snapshot taken at the given time.
func (s *Service) AddMeasurement(m *models.Measurement) (*models.Measurement, error) {
	if _, err := s.measurements.Insert(m); err != nil {
		return nil, err
	}
	return m, nil
}

// History lists measurements, newest first.
func (s *Service) History(limit int) ([]*models.Measurement, error) {
	return s.measurements.OrderBy("date").Desc().Limit(limit).All()
}

// Latest returns the most recent measurement, or store.ErrNotFound.
func (s *Service) Latest() (*models.Measurement, error) {
	return s.measurements.OrderBy("date").Desc().First()
}

// WeightTrend returns dated weight readings in chronological order,
// skipping snapshots without a weight.
func (s *Service) WeightTrend() ([]WeightPoint, error) {
	all, err := s.measurements.OrderBy("date").All()
	if err != nil {
		return nil, err
	}
	var points []WeightPoint
	for _, m := range all {
		if m.Weight == nil {
			continue
		}
		points = append(points, WeightPoint{Date: m.Date, Weight: *m.Weight})
	}
	return points, nil
}

// WeightPoint is one dated weight reading.
type WeightPoint struct {
	Date   time.Time
	Weight float64
}
