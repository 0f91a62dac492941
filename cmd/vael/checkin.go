// ABOUTME: CLI command for the daily check-in.
// ABOUTME: Upserts today's log; repeated runs merge fields into one row.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/life"
	"github.com/harperreed/vael/internal/models"
)

var (
	checkinDate     string
	checkinSleep    float64
	checkinQuality  int
	checkinMood     int
	checkinEnergy   int
	checkinSoreness []string
	checkinNotes    string
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record today's check-in",
	Long: `Record or update the daily check-in.

One row exists per calendar day. Running checkin again on the same day
merges the new fields into the existing row; omitted flags leave the
stored values alone.

EXAMPLES:

  vael checkin --sleep 7.5 --quality 4
  vael checkin --mood 3 --energy 2 --sore legs,back
  vael checkin --notes "Deload week"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := checkinDate
		if date == "" {
			date = models.DateKey(time.Now())
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("bad date %q (want YYYY-MM-DD)", date)
		}

		params := life.CheckInParams{}
		if cmd.Flags().Changed("sleep") {
			params.SleepHours = &checkinSleep
		}
		if cmd.Flags().Changed("quality") {
			params.SleepQuality = &checkinQuality
		}
		if cmd.Flags().Changed("mood") {
			params.Mood = &checkinMood
		}
		if cmd.Flags().Changed("energy") {
			params.Energy = &checkinEnergy
		}
		if cmd.Flags().Changed("sore") {
			params.Soreness = checkinSoreness
		}
		if cmd.Flags().Changed("notes") {
			params.Notes = &checkinNotes
		}

		d, err := lifeSvc.CheckIn(date, params)
		if err != nil {
			return fmt.Errorf("failed to check in: %w", err)
		}

		color.Green("✓ Checked in for %s", d.Date)
		if d.SleepHours != nil {
			fmt.Printf("  Sleep: %.1f h", *d.SleepHours)
			if d.SleepQuality != nil {
				fmt.Printf(" (quality %d/5)", *d.SleepQuality)
			}
			fmt.Println()
		}
		if d.Mood != nil {
			fmt.Printf("  Mood: %d/5\n", *d.Mood)
		}
		if d.Energy != nil {
			fmt.Printf("  Energy: %d/5\n", *d.Energy)
		}
		if len(d.Soreness) > 0 {
			fmt.Printf("  Sore: %s\n", strings.Join(d.Soreness, ", "))
		}
		return nil
	},
}

func init() {
	checkinCmd.Flags().StringVar(&checkinDate, "date", "", "calendar date (default today)")
	checkinCmd.Flags().Float64Var(&checkinSleep, "sleep", 0, "hours slept")
	checkinCmd.Flags().IntVar(&checkinQuality, "quality", 0, "sleep quality (1-5)")
	checkinCmd.Flags().IntVar(&checkinMood, "mood", 0, "mood (1-5)")
	checkinCmd.Flags().IntVar(&checkinEnergy, "energy", 0, "energy (1-5)")
	checkinCmd.Flags().StringSliceVar(&checkinSoreness, "sore", nil, "sore muscle groups")
	checkinCmd.Flags().StringVar(&checkinNotes, "notes", "", "free-text notes")
	rootCmd.AddCommand(checkinCmd)
}
