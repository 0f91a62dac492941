// ABOUTME: Tests for meal logging, daily macro totals, and grouping.
package fuel

import (
	"testing"
	"time"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	eng, err := store.Open(store.Options{Schema: schema.Versions(), InMemory: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { eng.Close() })
	return NewService(eng)
}

func logAt(t *testing.T, svc *Service, name string, meal models.MealType, calories int, protein float64, at time.Time) {
	t.Helper()
	m := models.NewNutritionLog(name, meal, calories, protein, 0, 0).WithDate(at)
	if _, err := svc.LogMeal(m); err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}
}

func TestTotalsOnSumsTheDay(t *testing.T) {
	svc := setupService(t)

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
	logAt(t, svc, "Oatmeal", models.MealBreakfast, 350, 12, day.Add(8*time.Hour))
	logAt(t, svc, "Chicken bowl", models.MealLunch, 650, 38, day.Add(13*time.Hour))

	totals, err := svc.TotalsOn(day)
	if err != nil {
		t.Fatalf("TotalsOn failed: %v", err)
	}
	if totals.Calories != 1000 {
		t.Errorf("calories mismatch: got %d, want 1000", totals.Calories)
	}
	if totals.Protein != 50 {
		t.Errorf("protein mismatch: got %.1f, want 50", totals.Protein)
	}
}

func TestMealsOnExcludesAdjacentDays(t *testing.T) {
	svc := setupService(t)

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
	logAt(t, svc, "Late snack", models.MealSnack, 200, 5, day.Add(-time.Minute))
	logAt(t, svc, "Breakfast", models.MealBreakfast, 400, 20, day.Add(7*time.Hour))
	logAt(t, svc, "Midnight", models.MealSnack, 150, 3, day.AddDate(0, 0, 1))

	meals, err := svc.MealsOn(day)
	if err != nil {
		t.Fatalf("MealsOn failed: %v", err)
	}
	if len(meals) != 1 || meals[0].Name != "Breakfast" {
		t.Errorf("day boundary mismatch: got %+v", meals)
	}
}

func TestMealsByTypeIncludesEmptyTypes(t *testing.T) {
	svc := setupService(t)

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
	logAt(t, svc, "Eggs", models.MealBreakfast, 300, 18, day.Add(8*time.Hour))
	logAt(t, svc, "Toast", models.MealBreakfast, 150, 4, day.Add(8*time.Hour+10*time.Minute))
	logAt(t, svc, "Steak", models.MealDinner, 700, 45, day.Add(19*time.Hour))

	grouped, err := svc.MealsByType(day)
	if err != nil {
		t.Fatalf("MealsByType failed: %v", err)
	}
	if len(grouped) != len(models.AllMealTypes) {
		t.Fatalf("group count mismatch: got %d, want %d", len(grouped), len(models.AllMealTypes))
	}
	if len(grouped[models.MealBreakfast]) != 2 {
		t.Errorf("breakfast count mismatch: got %d, want 2", len(grouped[models.MealBreakfast]))
	}
	if grouped[models.MealLunch] == nil || len(grouped[models.MealLunch]) != 0 {
		t.Errorf("empty type mismatch: got %v", grouped[models.MealLunch])
	}
}
