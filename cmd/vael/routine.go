// ABOUTME: CLI commands for workout routines.
// ABOUTME: Supports save, list, and show subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/training"
)

var (
	routineTargetSets int
	routineTargetReps int
)

var routineCmd = &cobra.Command{
	Use:     "routine",
	Aliases: []string{"r"},
	Short:   "Manage workout routines",
	Long: `Save and reuse workout templates.

A routine is a named, ordered list of exercises with optional set and
rep targets. Slots keep the order you list them in.

EXAMPLES:

  vael routine save "Push Day" 1 2 4          # exercise ids in order
  vael routine save "5x5" 1 3 --sets 5 --reps 5
  vael routine list
  vael routine show 1`,
}

var routineSaveCmd = &cobra.Command{
	Use:   "save <name> <exercise-id>...",
	Short: "Save a routine",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		items := make([]training.RoutineItem, 0, len(args)-1)
		for _, arg := range args[1:] {
			id, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("bad exercise id %q", arg)
			}
			item := training.RoutineItem{ExerciseID: id}
			if routineTargetSets > 0 {
				item.TargetSets = &routineTargetSets
			}
			if routineTargetReps > 0 {
				item.TargetReps = &routineTargetReps
			}
			items = append(items, item)
		}

		r, err := trainingSvc.SaveRoutine(name, items)
		if err != nil {
			return fmt.Errorf("failed to save routine: %w", err)
		}

		color.Green("✓ Saved %q with %d exercises", r.Name, len(r.Exercises))
		fmt.Printf("  ID: %d\n", r.ID)
		return nil
	},
}

var routineListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		routines, err := trainingSvc.Routines()
		if err != nil {
			return fmt.Errorf("failed to list routines: %w", err)
		}
		if len(routines) == 0 {
			fmt.Println("No routines saved.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range routines {
			fmt.Printf("%s %s %s\n",
				faint.Sprintf("%4d", r.ID),
				padRight(r.Name, 24),
				faint.Sprintf("%d exercises, updated %s",
					len(r.Exercises), r.UpdatedAt.Format("2006-01-02")))
		}
		return nil
	},
}

var routineShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a routine's exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad routine id %q", args[0])
		}

		r, err := trainingSvc.GetRoutine(id)
		if err != nil {
			return fmt.Errorf("routine not found: %w", err)
		}

		fmt.Println(color.New(color.Bold).Sprint(r.Name))
		for _, slot := range r.Exercises {
			ex, err := trainingSvc.GetExercise(slot.ExerciseID)
			name := fmt.Sprintf("exercise %d", slot.ExerciseID)
			if err == nil {
				name = ex.Name
			}
			target := ""
			if slot.TargetSets != nil && slot.TargetReps != nil {
				target = fmt.Sprintf("%dx%d", *slot.TargetSets, *slot.TargetReps)
			}
			fmt.Printf("  %d. %s %s\n", slot.Order+1, padRight(name, 24), target)
		}
		return nil
	},
}

func init() {
	routineSaveCmd.Flags().IntVar(&routineTargetSets, "sets", 0, "target sets for every slot")
	routineSaveCmd.Flags().IntVar(&routineTargetReps, "reps", 0, "target reps for every slot")

	routineCmd.AddCommand(routineSaveCmd)
	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineShowCmd)
	rootCmd.AddCommand(routineCmd)
}
