// ABOUTME: CLI commands for workout sessions and set logging.
// ABOUTME: Supports start, log, finish, history, pr, and sets subcommands.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/training"
)

var (
	workoutRPE    float64
	workoutWarmup bool
	historyLimit  int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout sessions",
	Long: `Track workout sessions and the sets inside them.

WORKFLOW:

  1. Start a session:    vael workout start "Push Day"
  2. Log sets into it:   vael workout log <exercise-id> <weight> <reps>
  3. Finish it:          vael workout finish

Finishing stamps the end time and the session's total volume (the sum
of weight x reps across its sets).

COMMANDS:

  start     Open a new session
  log       Log a set against the active session
  finish    Complete the active session
  sets      List the active session's sets
  history   List past sessions
  pr        Show the personal record for an exercise
  volume    Show training volume per day over the last week`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start [name]",
	Short: "Start a workout session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		w, err := trainingSvc.StartWorkout(name)
		if err != nil {
			return fmt.Errorf("failed to start workout: %w", err)
		}

		color.Green("✓ Started %q", w.Name)
		fmt.Printf("  ID: %d\n", w.ID)
		return nil
	},
}

var workoutLogCmd = &cobra.Command{
	Use:   "log <exercise-id> <weight> <reps>",
	Short: "Log a set against the active session",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad exercise id %q", args[0])
		}
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad weight %q", args[1])
		}
		reps, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bad rep count %q", args[2])
		}

		w, err := trainingSvc.ActiveWorkout()
		if errors.Is(err, training.ErrNoActiveWorkout) {
			return fmt.Errorf("no active workout; run 'vael workout start' first")
		}
		if err != nil {
			return err
		}

		params := training.SetParams{Warmup: workoutWarmup}
		if workoutRPE > 0 {
			params.RPE = &workoutRPE
		}
		set, err := trainingSvc.LogSet(w.ID, exerciseID, weight, reps, params)
		if err != nil {
			return fmt.Errorf("failed to log set: %w", err)
		}

		color.Green("✓ Logged %.1f x %d", set.Weight, set.Reps)
		fmt.Printf("  Volume: %.1f\n", set.Volume())
		return nil
	},
}

var workoutFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the active session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := trainingSvc.ActiveWorkout()
		if errors.Is(err, training.ErrNoActiveWorkout) {
			return fmt.Errorf("no active workout to finish")
		}
		if err != nil {
			return err
		}

		w, err = trainingSvc.FinishWorkout(w.ID)
		if err != nil {
			return fmt.Errorf("failed to finish workout: %w", err)
		}

		color.Green("✓ Finished %q", w.Name)
		fmt.Printf("  Total volume: %.1f\n", *w.Volume)
		return nil
	},
}

var workoutSetsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the active session's sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := trainingSvc.ActiveWorkout()
		if errors.Is(err, training.ErrNoActiveWorkout) {
			return fmt.Errorf("no active workout")
		}
		if err != nil {
			return err
		}

		sets, err := trainingSvc.SetsForWorkout(w.ID)
		if err != nil {
			return fmt.Errorf("failed to list sets: %w", err)
		}
		if len(sets) == 0 {
			fmt.Println("No sets logged yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, set := range sets {
			ex, err := trainingSvc.GetExercise(set.ExerciseID)
			name := "?"
			if err == nil {
				name = ex.Name
			}
			warmup := ""
			if set.Warmup {
				warmup = faint.Sprint(" (warmup)")
			}
			fmt.Printf("%s %s %.1f x %d%s\n",
				faint.Sprint(set.Timestamp.Format("15:04")),
				padRight(name, 20),
				set.Weight, set.Reps, warmup)
		}
		return nil
	},
}

var workoutHistoryCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"ls"},
	Short:   "List past sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := trainingSvc.History(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			volume := ""
			if w.Volume != nil {
				volume = fmt.Sprintf("%.1f", *w.Volume)
			}
			fmt.Printf("%s %s %s %s %s\n",
				faint.Sprintf("%4d", w.ID),
				faint.Sprint(w.StartTime.Format("2006-01-02 15:04")),
				padRight(w.Name, 24),
				padRight(string(w.Status), 10),
				volume)
		}
		return nil
	},
}

var workoutPRCmd = &cobra.Command{
	Use:   "pr <exercise-id>",
	Short: "Show the personal record for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad exercise id %q", args[0])
		}

		ex, err := trainingSvc.GetExercise(exerciseID)
		if err != nil {
			return fmt.Errorf("exercise not found: %w", err)
		}

		set, err := trainingSvc.PersonalRecord(exerciseID)
		if errors.Is(err, training.ErrNoSets) {
			fmt.Printf("No sets logged for %s yet.\n", ex.Name)
			return nil
		}
		if err != nil {
			return err
		}

		color.Green("%s PR: %.1f x %d", ex.Name, set.Weight, set.Reps)
		fmt.Printf("  Set on %s\n", set.Timestamp.Format("2006-01-02"))
		return nil
	},
}

var workoutVolumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Show training volume per day over the last week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := trainingSvc.VolumeSeries(time.Now(), 7)
		if err != nil {
			return fmt.Errorf("failed to compute volume: %w", err)
		}

		faint := color.New(color.Faint)
		total := 0.0
		for _, p := range points {
			total += p.Volume
			fmt.Printf("%s %8.1f\n", faint.Sprint(p.Date.Format("Mon 2006-01-02")), p.Volume)
		}
		color.Green("Week total: %.1f", total)
		return nil
	},
}

func init() {
	workoutLogCmd.Flags().Float64Var(&workoutRPE, "rpe", 0, "rating of perceived exertion (1-10)")
	workoutLogCmd.Flags().BoolVar(&workoutWarmup, "warmup", false, "mark the set as a warm-up")
	workoutHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max results")

	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutFinishCmd)
	workoutCmd.AddCommand(workoutSetsCmd)
	workoutCmd.AddCommand(workoutHistoryCmd)
	workoutCmd.AddCommand(workoutPRCmd)
	workoutCmd.AddCommand(workoutVolumeCmd)
	rootCmd.AddCommand(workoutCmd)
}
