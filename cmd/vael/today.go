// ABOUTME: CLI command for the daily dashboard.
// ABOUTME: One-shot print, or live re-render with --watch via the event bus.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/fuel"
	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
	"github.com/harperreed/vael/internal/training"
)

var todayWatch bool

type todaySnapshot struct {
	date    string
	log     *models.DailyLog
	habits  []*models.Habit
	totals  fuel.Totals
	active  *models.Workout
	volume  float64
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today at a glance",
	Long: `Show today's check-in, habits, nutrition, and training in one view.

With --watch the view re-renders whenever any underlying table changes,
driven by the store's change events. Interrupt to exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !todayWatch {
			snap, err := collectToday()
			if err != nil {
				return err
			}
			printToday(snap)
			return nil
		}

		lq := store.Live(eng.Bus(), collectToday, func(err error) {
			fmt.Fprintln(os.Stderr, "refresh failed:", err)
		},
			schema.TableDailyLogs, schema.TableHabits,
			schema.TableNutritionLogs, schema.TableWorkouts, schema.TableSets)
		defer lq.Close()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)

		for {
			select {
			case snap := <-lq.C:
				fmt.Print("\033[H\033[2J")
				printToday(snap)
			case <-interrupt:
				return nil
			}
		}
	},
}

func collectToday() (todaySnapshot, error) {
	now := time.Now()
	snap := todaySnapshot{date: models.DateKey(now)}

	log, err := lifeSvc.LogFor(snap.date)
	switch {
	case err == nil:
		snap.log = log
	case errors.Is(err, store.ErrNotFound):
	default:
		return snap, err
	}

	if snap.habits, err = lifeSvc.Habits(false); err != nil {
		return snap, err
	}
	if snap.totals, err = fuelSvc.TotalsOn(now); err != nil {
		return snap, err
	}

	active, err := trainingSvc.ActiveWorkout()
	switch {
	case err == nil:
		snap.active = active
	case errors.Is(err, training.ErrNoActiveWorkout):
	default:
		return snap, err
	}

	if snap.volume, err = trainingSvc.WeeklyVolume(now); err != nil {
		return snap, err
	}
	return snap, nil
}

func printToday(snap todaySnapshot) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	fmt.Println(bold.Sprintf("Today · %s", snap.date))
	fmt.Println()

	if snap.log == nil {
		fmt.Println(faint.Sprint("No check-in yet."))
	} else {
		parts := []string{}
		if snap.log.SleepHours != nil {
			parts = append(parts, fmt.Sprintf("sleep %.1fh", *snap.log.SleepHours))
		}
		if snap.log.Mood != nil {
			parts = append(parts, fmt.Sprintf("mood %d/5", *snap.log.Mood))
		}
		if snap.log.Energy != nil {
			parts = append(parts, fmt.Sprintf("energy %d/5", *snap.log.Energy))
		}
		if len(snap.log.Soreness) > 0 {
			parts = append(parts, "sore: "+strings.Join(snap.log.Soreness, ", "))
		}
		if len(parts) == 0 {
			parts = append(parts, "checked in")
		}
		fmt.Println("Check-in:", strings.Join(parts, "  "))
	}

	if len(snap.habits) > 0 {
		fmt.Println()
		fmt.Println(bold.Sprint("Habits"))
		for _, h := range snap.habits {
			mark := faint.Sprint("○")
			if snap.log != nil && snap.log.HabitDone(h.ID) {
				mark = color.GreenString("✓")
			}
			streak := ""
			if h.Streak > 0 {
				streak = faint.Sprintf(" (%d)", h.Streak)
			}
			fmt.Printf("  %s %s%s\n", mark, h.Name, streak)
		}
	}

	fmt.Println()
	fmt.Printf("Fuel: %d kcal  P%.0f C%.0f F%.0f\n",
		snap.totals.Calories, snap.totals.Protein, snap.totals.Carbs, snap.totals.Fat)

	fmt.Println()
	if snap.active != nil {
		fmt.Printf("Training: %s in progress (started %s)\n",
			snap.active.Name, snap.active.StartTime.Format("15:04"))
	} else {
		fmt.Println(faint.Sprint("Training: no active session."))
	}
	fmt.Printf("Weekly volume: %.1f\n", snap.volume)
}

func init() {
	todayCmd.Flags().BoolVarP(&todayWatch, "watch", "w", false, "re-render on changes")
	rootCmd.AddCommand(todayCmd)
}
