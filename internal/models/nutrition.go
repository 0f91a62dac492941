// ABOUTME: NutritionLog model: append-only food entries with macros.
// ABOUTME: Entries group by meal type for the daily summary.
package models

import (
	"time"

	"github.com/harperreed/vael/internal/store"
)

// MealType slots a food entry into the day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// AllMealTypes lists meal types in display order.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValidMealType checks whether a string names a meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// NutritionLog is one logged food with calories and macro grams.
type NutritionLog struct {
	ID       uint64    `json:"id"`
	Date     time.Time `json:"date"`
	Name     string    `json:"name"`
	MealType MealType  `json:"meal_type"`
	Calories int       `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
}

// NewNutritionLog logs a food entry dated now.
func NewNutritionLog(name string, meal MealType, calories int, protein, carbs, fat float64) *NutritionLog {
	return &NutritionLog{
		Date:     time.Now(),
		Name:     name,
		MealType: meal,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}

// WithDate sets a custom entry date.
func (n *NutritionLog) WithDate(t time.Time) *NutritionLog {
	n.Date = t
	return n
}

func (n *NutritionLog) RecordID() uint64      { return n.ID }
func (n *NutritionLog) SetRecordID(id uint64) { n.ID = id }

func (n *NutritionLog) IndexValues() map[string][]byte {
	return map[string][]byte{
		"date":      store.Time(n.Date),
		"name":      store.String(n.Name),
		"meal_type": store.String(string(n.MealType)),
		"calories":  store.Int(int64(n.Calories)),
		"protein":   store.Float(n.Protein),
		"carbs":     store.Float(n.Carbs),
		"fat":       store.Float(n.Fat),
	}
}
