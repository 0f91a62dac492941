// ABOUTME: MCP tool implementations for the vael store.
// ABOUTME: Covers workouts, habits, check-ins, meals, notes, and measurements.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/vael/internal/life"
	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/training"
)

func (s *Server) registerTools() {
	// start_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start a new workout session",
	}, s.handleStartWorkout)

	// log_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Log a set (weight x reps) against the active workout",
	}, s.handleLogSet)

	// finish_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_workout",
		Description: "Finish the active workout and compute its total volume",
	}, s.handleFinishWorkout)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List or search the exercise catalog",
	}, s.handleListExercises)

	// get_personal_record
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_personal_record",
		Description: "Get the heaviest set ever logged for an exercise",
	}, s.handleGetPersonalRecord)

	// get_volume_series
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_volume_series",
		Description: "Get daily training volume over a trailing window of days",
	}, s.handleGetVolumeSeries)

	// check_in
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_in",
		Description: "Record or update today's check-in (sleep, mood, energy, soreness)",
	}, s.handleCheckIn)

	// toggle_habit
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_habit",
		Description: "Toggle a habit's completion for a day and refresh its streak",
	}, s.handleToggleHabit)

	// log_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Log a food entry with calories and macros",
	}, s.handleLogMeal)

	// get_macro_totals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_macro_totals",
		Description: "Get summed calories and macros for a day",
	}, s.handleGetMacroTotals)

	// add_note
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_note",
		Description: "Add a journal note",
	}, s.handleAddNote)

	// add_measurement
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_measurement",
		Description: "Record a body measurement snapshot",
	}, s.handleAddMeasurement)
}

// Tool input/output types

type startWorkoutInput struct {
	Name string `json:"name,omitempty" jsonschema:"Workout name, defaults to Quick Start Workout"`
}

type workoutOutput struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type logSetInput struct {
	ExerciseID uint64  `json:"exercise_id" jsonschema:"Catalog id of the exercise"`
	Weight     float64 `json:"weight" jsonschema:"Weight lifted"`
	Reps       int     `json:"reps" jsonschema:"Repetitions performed"`
	RPE        float64 `json:"rpe,omitempty" jsonschema:"Rating of perceived exertion 1-10"`
	Warmup     bool    `json:"warmup,omitempty" jsonschema:"Mark this set as a warm-up"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type finishWorkoutInput struct{}

type listExercisesInput struct {
	Query string `json:"query,omitempty" jsonschema:"Name or muscle substring to filter by"`
}

type personalRecordInput struct {
	ExerciseID uint64 `json:"exercise_id" jsonschema:"Catalog id of the exercise"`
}

type volumeSeriesInput struct {
	Days int `json:"days,omitempty" jsonschema:"Trailing window length in days (default 7)"`
}

type checkInInput struct {
	Date         string   `json:"date,omitempty" jsonschema:"Calendar date YYYY-MM-DD, defaults to today"`
	SleepHours   *float64 `json:"sleep_hours,omitempty" jsonschema:"Hours slept"`
	SleepQuality *int     `json:"sleep_quality,omitempty" jsonschema:"Sleep quality 1-5"`
	Mood         *int     `json:"mood,omitempty" jsonschema:"Mood 1-5"`
	Energy       *int     `json:"energy,omitempty" jsonschema:"Energy 1-5"`
	Soreness     []string `json:"soreness,omitempty" jsonschema:"Sore muscle groups"`
	Notes        *string  `json:"notes,omitempty" jsonschema:"Free-text notes"`
}

type toggleHabitInput struct {
	HabitID uint64 `json:"habit_id" jsonschema:"Habit id"`
	Date    string `json:"date,omitempty" jsonschema:"Calendar date YYYY-MM-DD, defaults to today"`
}

type logMealInput struct {
	Name     string  `json:"name" jsonschema:"Food name"`
	MealType string  `json:"meal_type" jsonschema:"One of breakfast, lunch, dinner, snack"`
	Calories int     `json:"calories" jsonschema:"Calories"`
	Protein  float64 `json:"protein,omitempty" jsonschema:"Protein grams"`
	Carbs    float64 `json:"carbs,omitempty" jsonschema:"Carb grams"`
	Fat      float64 `json:"fat,omitempty" jsonschema:"Fat grams"`
}

type macroTotalsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Calendar date YYYY-MM-DD, defaults to today"`
}

type addNoteInput struct {
	Title   string   `json:"title" jsonschema:"Note title"`
	Content string   `json:"content" jsonschema:"Note body"`
	Tags    []string `json:"tags,omitempty" jsonschema:"Tags"`
}

type addMeasurementInput struct {
	Weight  *float64 `json:"weight,omitempty" jsonschema:"Body weight"`
	BodyFat *float64 `json:"body_fat,omitempty" jsonschema:"Body fat percent"`
	Chest   *float64 `json:"chest,omitempty" jsonschema:"Chest circumference"`
	Waist   *float64 `json:"waist,omitempty" jsonschema:"Waist circumference"`
	Arms    *float64 `json:"arms,omitempty" jsonschema:"Arm circumference"`
	Legs    *float64 `json:"legs,omitempty" jsonschema:"Leg circumference"`
	Notes   string   `json:"notes,omitempty" jsonschema:"Free-text notes"`
}

// Tool handlers

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input startWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	w, err := s.training.StartWorkout(input.Name)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to start workout: %w", err)
	}
	return nil, workoutOutput{
		ID:      w.ID,
		Name:    w.Name,
		Status:  string(w.Status),
		Message: fmt.Sprintf("Started workout %q (ID: %d)", w.Name, w.ID),
	}, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	w, err := s.training.ActiveWorkout()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log set: %w", err)
	}

	params := training.SetParams{Warmup: input.Warmup}
	if input.RPE > 0 {
		params.RPE = &input.RPE
	}
	set, err := s.training.LogSet(w.ID, input.ExerciseID, input.Weight, input.Reps, params)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log set: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %.1f x %d (volume %.1f) to workout %d", set.Weight, set.Reps, set.Volume(), w.ID),
	}, nil
}

func (s *Server) handleFinishWorkout(ctx context.Context, req *mcp.CallToolRequest, input finishWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	w, err := s.training.ActiveWorkout()
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to finish workout: %w", err)
	}
	w, err = s.training.FinishWorkout(w.ID)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to finish workout: %w", err)
	}
	return nil, workoutOutput{
		ID:      w.ID,
		Name:    w.Name,
		Status:  string(w.Status),
		Message: fmt.Sprintf("Finished %q with total volume %.1f", w.Name, *w.Volume),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	var (
		exercises []*models.Exercise
		err       error
	)
	if input.Query != "" {
		exercises, err = s.training.SearchExercises(input.Query)
	} else {
		exercises, err = s.training.Exercises()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	if len(exercises) == 0 {
		return nil, map[string]interface{}{"message": "No exercises found."}, nil
	}
	return nil, exercises, nil
}

func (s *Server) handleGetPersonalRecord(ctx context.Context, req *mcp.CallToolRequest, input personalRecordInput) (*mcp.CallToolResult, any, error) {
	set, err := s.training.PersonalRecord(input.ExerciseID)
	if errors.Is(err, training.ErrNoSets) {
		return nil, map[string]interface{}{"message": "No sets logged for that exercise."}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get personal record: %w", err)
	}
	return nil, set, nil
}

func (s *Server) handleGetVolumeSeries(ctx context.Context, req *mcp.CallToolRequest, input volumeSeriesInput) (*mcp.CallToolResult, any, error) {
	points, err := s.training.VolumeSeries(time.Now(), input.Days)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get volume series: %w", err)
	}

	out := make([]map[string]interface{}, 0, len(points))
	for _, p := range points {
		out = append(out, map[string]interface{}{
			"date":   models.DateKey(p.Date),
			"volume": p.Volume,
		})
	}
	return nil, out, nil
}

func (s *Server) handleCheckIn(ctx context.Context, req *mcp.CallToolRequest, input checkInInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = models.DateKey(time.Now())
	}
	d, err := s.life.CheckIn(date, life.CheckInParams{
		SleepHours:   input.SleepHours,
		SleepQuality: input.SleepQuality,
		Mood:         input.Mood,
		Energy:       input.Energy,
		Soreness:     input.Soreness,
		Notes:        input.Notes,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check in: %w", err)
	}
	return nil, d, nil
}

func (s *Server) handleToggleHabit(ctx context.Context, req *mcp.CallToolRequest, input toggleHabitInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := input.Date
	if date == "" {
		date = models.DateKey(time.Now())
	}
	_, done, err := s.life.ToggleHabit(input.HabitID, date)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to toggle habit: %w", err)
	}
	state := "incomplete"
	if done {
		state = "complete"
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Habit %d is now %s for %s", input.HabitID, state, date),
	}, nil
}

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidMealType(input.MealType) {
		return nil, simpleOutput{}, fmt.Errorf("unknown meal type: %s", input.MealType)
	}
	m, err := s.fuel.LogMeal(models.NewNutritionLog(
		input.Name, models.MealType(input.MealType),
		input.Calories, input.Protein, input.Carbs, input.Fat))
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log meal: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s (%d kcal) as %s (ID: %d)", m.Name, m.Calories, m.MealType, m.ID),
	}, nil
}

func (s *Server) handleGetMacroTotals(ctx context.Context, req *mcp.CallToolRequest, input macroTotalsInput) (*mcp.CallToolResult, any, error) {
	day := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("bad date %q: %w", input.Date, err)
		}
		day = parsed
	}
	totals, err := s.fuel.TotalsOn(day)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get macro totals: %w", err)
	}
	return nil, map[string]interface{}{
		"date":     models.DateKey(day),
		"calories": totals.Calories,
		"protein":  totals.Protein,
		"carbs":    totals.Carbs,
		"fat":      totals.Fat,
	}, nil
}

func (s *Server) handleAddNote(ctx context.Context, req *mcp.CallToolRequest, input addNoteInput) (*mcp.CallToolResult, simpleOutput, error) {
	n, err := s.journal.AddNote(input.Title, input.Content, input.Tags)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add note: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added note %q (ID: %d)", n.Title, n.ID),
	}, nil
}

func (s *Server) handleAddMeasurement(ctx context.Context, req *mcp.CallToolRequest, input addMeasurementInput) (*mcp.CallToolResult, simpleOutput, error) {
	m := models.NewMeasurement()
	m.Weight = input.Weight
	m.BodyFat = input.BodyFat
	m.Chest = input.Chest
	m.Waist = input.Waist
	m.Arms = input.Arms
	m.Legs = input.Legs
	if input.Notes != "" {
		m.WithNotes(input.Notes)
	}
	if _, err := s.body.AddMeasurement(m); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add measurement: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded measurement (ID: %d)", m.ID),
	}, nil
}
