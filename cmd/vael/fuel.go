// ABOUTME: CLI commands for nutrition logging.
// ABOUTME: Supports log, today, and totals subcommands.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/models"
)

var (
	fuelProtein float64
	fuelCarbs   float64
	fuelFat     float64
	fuelDate    string
)

var fuelCmd = &cobra.Command{
	Use:     "fuel",
	Aliases: []string{"f"},
	Short:   "Track nutrition",
	Long: `Log meals and review daily calories and macros.

EXAMPLES:

  vael fuel log "Oatmeal" breakfast 350 --protein 12 --carbs 60 --fat 6
  vael fuel log "Chicken bowl" lunch 650 --protein 45
  vael fuel today
  vael fuel totals --date 2026-08-20`,
}

var fuelLogCmd = &cobra.Command{
	Use:   "log <name> <meal> <calories>",
	Short: "Log a food entry",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMealType(args[1]) {
			return fmt.Errorf("unknown meal type %q (want breakfast, lunch, dinner, or snack)", args[1])
		}
		calories, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bad calorie count %q", args[2])
		}

		m, err := fuelSvc.LogMeal(models.NewNutritionLog(
			args[0], models.MealType(args[1]), calories,
			fuelProtein, fuelCarbs, fuelFat))
		if err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}

		color.Green("✓ Logged %s (%d kcal)", m.Name, m.Calories)
		return nil
	},
}

var fuelTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's meals grouped by type",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		grouped, err := fuelSvc.MealsByType(now)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}

		faint := color.New(color.Faint)
		empty := true
		for _, mt := range models.AllMealTypes {
			meals := grouped[mt]
			if len(meals) == 0 {
				continue
			}
			empty = false
			fmt.Println(color.New(color.Bold).Sprint(string(mt)))
			for _, m := range meals {
				fmt.Printf("  %s %s\n",
					padRight(m.Name, 28),
					faint.Sprintf("%d kcal  P%.0f C%.0f F%.0f",
						m.Calories, m.Protein, m.Carbs, m.Fat))
			}
		}
		if empty {
			fmt.Println("No meals logged today.")
			return nil
		}

		totals, err := fuelSvc.TotalsOn(now)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("Total: %d kcal  protein %.0fg  carbs %.0fg  fat %.0fg\n",
			totals.Calories, totals.Protein, totals.Carbs, totals.Fat)
		return nil
	},
}

var fuelTotalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Show a day's macro totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now()
		if fuelDate != "" {
			parsed, err := time.Parse("2006-01-02", fuelDate)
			if err != nil {
				return fmt.Errorf("bad date %q (want YYYY-MM-DD)", fuelDate)
			}
			day = parsed
		}

		totals, err := fuelSvc.TotalsOn(day)
		if err != nil {
			return fmt.Errorf("failed to total macros: %w", err)
		}

		fmt.Printf("%s: %d kcal  protein %.0fg  carbs %.0fg  fat %.0fg\n",
			models.DateKey(day), totals.Calories, totals.Protein, totals.Carbs, totals.Fat)
		return nil
	},
}

func init() {
	fuelLogCmd.Flags().Float64Var(&fuelProtein, "protein", 0, "protein grams")
	fuelLogCmd.Flags().Float64Var(&fuelCarbs, "carbs", 0, "carb grams")
	fuelLogCmd.Flags().Float64Var(&fuelFat, "fat", 0, "fat grams")
	fuelTotalsCmd.Flags().StringVar(&fuelDate, "date", "", "calendar date (default today)")

	fuelCmd.AddCommand(fuelLogCmd)
	fuelCmd.AddCommand(fuelTodayCmd)
	fuelCmd.AddCommand(fuelTotalsCmd)
	rootCmd.AddCommand(fuelCmd)
}
