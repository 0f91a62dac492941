// ABOUTME: Fuel service: meal logging and daily macro totals.
package fuel

import (
	"time"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
)

// Service wraps the storage engine with nutrition operations.
type Service struct {
	meals *store.Table[models.NutritionLog, *models.NutritionLog]
}

// NewService binds the nutrition table on the engine.
func NewService(eng *store.Engine) *Service {
	return &Service{
		meals: store.NewTable[models.NutritionLog](eng, schema.TableNutritionLogs),
	}
}

// LogMeal records one food entry.
func (s *Service) LogMeal(m *models.NutritionLog) (*models.NutritionLog, error) {
	if _, err := s.meals.Insert(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Totals are the summed macros for a stretch of meals.
type Totals struct {
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

func (t *Totals) add(m *models.NutritionLog) {
	t.Calories += m.Calories
	t.Protein += m.Protein
	t.Carbs += m.Carbs
	t.Fat += m.Fat
}

// MealsOn lists the meals logged on the calendar day containing t.
func (s *Service) MealsOn(t time.Time) ([]*models.NutritionLog, error) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return s.meals.Where("date").Between(store.Time(start), store.Time(end)).All()
}

// TotalsOn sums macros across the calendar day containing t.
func (s *Service) TotalsOn(t time.Time) (Totals, error) {
	meals, err := s.MealsOn(t)
	if err != nil {
		return Totals{}, err
	}
	var totals Totals
	for _, m := range meals {
		totals.add(m)
	}
	return totals, nil
}

// TodayTotals sums macros for the current calendar day.
func (s *Service) TodayTotals() (Totals, error) {
	return s.TotalsOn(time.Now())
}

// MealsByType groups a day's meals by meal type, in the fixed
// breakfast-to-snack order. Types with no entries map to empty slices.
func (s *Service) MealsByType(t time.Time) (map[models.MealType][]*models.NutritionLog, error) {
	meals, err := s.MealsOn(t)
	if err != nil {
		return nil, err
	}
	grouped := make(map[models.MealType][]*models.NutritionLog, len(models.AllMealTypes))
	for _, mt := range models.AllMealTypes {
		grouped[mt] = []*models.NutritionLog{}
	}
	for _, m := range meals {
		grouped[m.MealType] = append(grouped[m.MealType], m)
	}
	return grouped, nil
}
