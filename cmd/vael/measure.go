// ABOUTME: CLI commands for body measurements.
// ABOUTME: Supports add, list, and latest subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/models"
)

var (
	measureWeight  float64
	measureBodyFat float64
	measureChest   float64
	measureWaist   float64
	measureArms    float64
	measureLegs    float64
	measureNotes   string
	measureLimit   int
)

var measureCmd = &cobra.Command{
	Use:     "measure",
	Aliases: []string{"m"},
	Short:   "Track body measurements",
	Long: `Record body-composition snapshots over time.

Every field is optional; log whatever was measured.

EXAMPLES:

  vael measure add --weight 82.5 --body-fat 15.2
  vael measure add --waist 84 --notes "Post cut"
  vael measure list
  vael measure latest`,
}

var measureAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := models.NewMeasurement()
		set := false
		assign := func(flag string, dst **float64, v *float64) {
			if cmd.Flags().Changed(flag) {
				*dst = v
				set = true
			}
		}
		assign("weight", &m.Weight, &measureWeight)
		assign("body-fat", &m.BodyFat, &measureBodyFat)
		assign("chest", &m.Chest, &measureChest)
		assign("waist", &m.Waist, &measureWaist)
		assign("arms", &m.Arms, &measureArms)
		assign("legs", &m.Legs, &measureLegs)
		if measureNotes != "" {
			m.WithNotes(measureNotes)
		}
		if !set {
			return fmt.Errorf("nothing to record; pass at least one measurement flag")
		}

		if _, err := bodySvc.AddMeasurement(m); err != nil {
			return fmt.Errorf("failed to add measurement: %w", err)
		}

		color.Green("✓ Recorded measurement")
		fmt.Printf("  ID: %d\n", m.ID)
		return nil
	},
}

var measureListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List measurements, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := bodySvc.History(measureLimit)
		if err != nil {
			return fmt.Errorf("failed to list measurements: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("No measurements yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range history {
			fmt.Printf("%s %s %s\n",
				faint.Sprintf("%4d", m.ID),
				faint.Sprint(m.Date.Format("2006-01-02")),
				formatMeasurement(m))
		}
		return nil
	},
}

var measureLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := bodySvc.Latest()
		if err != nil {
			fmt.Println("No measurements yet.")
			return nil
		}
		fmt.Printf("%s %s\n", m.Date.Format("2006-01-02"), formatMeasurement(m))
		if m.Notes != nil {
			fmt.Printf("  %s\n", *m.Notes)
		}
		return nil
	},
}

func formatMeasurement(m *models.Measurement) string {
	out := ""
	part := func(label string, v *float64, unit string) {
		if v != nil {
			if out != "" {
				out += "  "
			}
			out += fmt.Sprintf("%s %.1f%s", label, *v, unit)
		}
	}
	part("weight", m.Weight, "kg")
	part("bf", m.BodyFat, "%")
	part("chest", m.Chest, "cm")
	part("waist", m.Waist, "cm")
	part("arms", m.Arms, "cm")
	part("legs", m.Legs, "cm")
	return out
}

func init() {
	measureAddCmd.Flags().Float64Var(&measureWeight, "weight", 0, "body weight (kg)")
	measureAddCmd.Flags().Float64Var(&measureBodyFat, "body-fat", 0, "body fat (%)")
	measureAddCmd.Flags().Float64Var(&measureChest, "chest", 0, "chest (cm)")
	measureAddCmd.Flags().Float64Var(&measureWaist, "waist", 0, "waist (cm)")
	measureAddCmd.Flags().Float64Var(&measureArms, "arms", 0, "arms (cm)")
	measureAddCmd.Flags().Float64Var(&measureLegs, "legs", 0, "legs (cm)")
	measureAddCmd.Flags().StringVar(&measureNotes, "notes", "", "free-text notes")
	measureListCmd.Flags().IntVarP(&measureLimit, "limit", "n", 20, "max results")

	measureCmd.AddCommand(measureAddCmd)
	measureCmd.AddCommand(measureListCmd)
	measureCmd.AddCommand(measureLatestCmd)
	rootCmd.AddCommand(measureCmd)
}
