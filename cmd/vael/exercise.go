// ABOUTME: CLI commands for the exercise catalog.
// ABOUTME: Supports list, search, and add subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/models"
)

var (
	exerciseEquipment string
	exerciseCategory  string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Browse the exercise catalog",
	Long: `Browse and extend the exercise catalog.

The catalog is seeded with common barbell, dumbbell, and bodyweight
movements on first run. Custom exercises can be added at any time.

EXAMPLES:

  vael exercise list
  vael exercise search squat
  vael exercise add "Face Pull" Shoulders --equipment Cable`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := trainingSvc.Exercises()
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}
		printExercises(exercises)
		return nil
	},
}

var exerciseSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search by name or muscle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := trainingSvc.SearchExercises(args[0])
		if err != nil {
			return fmt.Errorf("failed to search exercises: %w", err)
		}
		printExercises(exercises)
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name> <muscle>",
	Short: "Add a custom exercise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := trainingSvc.AddExercise(args[0], args[1], exerciseEquipment, exerciseCategory)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}
		color.Green("✓ Added %s", e.Name)
		fmt.Printf("  ID: %d\n", e.ID)
		return nil
	},
}

func printExercises(exercises []*models.Exercise) {
	if len(exercises) == 0 {
		fmt.Println("No exercises found.")
		return
	}
	faint := color.New(color.Faint)
	for _, e := range exercises {
		fmt.Printf("%s %s %s %s\n",
			faint.Sprintf("%4d", e.ID),
			padRight(e.Name, 24),
			padRight(e.Muscle, 12),
			faint.Sprint(e.Equipment))
	}
}

func init() {
	exerciseAddCmd.Flags().StringVar(&exerciseEquipment, "equipment", "None", "equipment used")
	exerciseAddCmd.Flags().StringVar(&exerciseCategory, "category", "Strength", "exercise category")

	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseSearchCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	rootCmd.AddCommand(exerciseCmd)
}
