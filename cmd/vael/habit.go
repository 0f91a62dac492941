// ABOUTME: CLI commands for habit tracking.
// ABOUTME: Supports add, list, toggle, and archive subcommands.
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
	habitIcon     string
	habitWeekly   bool
	habitTarget   int
	habitDate     string
	habitShowAll  bool
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits",
	Long: `Track recurring habits and their streaks.

Daily habits count consecutive completed days. Weekly habits count
consecutive weeks with at least --target completions (default 1).
Toggling a habit on a day flips its completion and refreshes the streak.

EXAMPLES:

  vael habit add "Stretch" --icon 🧘
  vael habit add "Run" --weekly --target 3
  vael habit toggle 1
  vael habit list`,
}

var habitAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frequency := models.HabitDaily
		if habitWeekly {
			frequency = models.HabitWeekly
		}
		var target *int
		if habitTarget > 0 {
			target = &habitTarget
		}

		h, err := lifeSvc.CreateHabit(args[0], habitIcon, frequency, target)
		if err != nil {
			return fmt.Errorf("failed to add habit: %w", err)
		}

		color.Green("✓ Added habit %q (%s)", h.Name, h.Frequency)
		fmt.Printf("  ID: %d\n", h.ID)
		return nil
	},
}

var habitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits",
	RunE: func(cmd *cobra.Command, args []string) error {
		habits, err := lifeSvc.Habits(habitShowAll)
		if err != nil {
			return fmt.Errorf("failed to list habits: %w", err)
		}
		if len(habits) == 0 {
			fmt.Println("No habits yet.")
			return nil
		}

		today := models.DateKey(time.Now())
		log, err := lifeSvc.LogFor(today)
		doneToday := func(id uint64) bool {
			return err == nil && log.HabitDone(id)
		}

		faint := color.New(color.Faint)
		for _, h := range habits {
			mark := " "
			if doneToday(h.ID) {
				mark = color.GreenString("✓")
			}
			name := h.Name
			if h.Icon != "" {
				name = h.Icon + " " + name
			}
			streak := ""
			if h.Streak > 0 {
				streak = faint.Sprintf("%d-streak", h.Streak)
			}
			archived := ""
			if h.Archived {
				archived = faint.Sprint(" (archived)")
			}
			fmt.Printf("%s %s %s %s %s%s\n",
				faint.Sprintf("%4d", h.ID), mark,
				padRight(name, 24),
				padRight(string(h.Frequency), 8),
				streak, archived)
		}
		return nil
	},
}

var habitToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a habit's completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad habit id %q", args[0])
		}

		date := habitDate
		if date == "" {
			date = models.DateKey(time.Now())
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("bad date %q (want YYYY-MM-DD)", date)
		}

		_, done, err := lifeSvc.ToggleHabit(id, date)
		if err != nil {
			return fmt.Errorf("failed to toggle habit: %w", err)
		}

		h, err := lifeSvc.GetHabit(id)
		if err != nil {
			return err
		}
		if done {
			color.Green("✓ %s complete for %s (streak: %d)", h.Name, date, h.Streak)
		} else {
			color.Yellow("○ %s unmarked for %s (streak: %d)", h.Name, date, h.Streak)
		}
		return nil
	},
}

var habitArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad habit id %q", args[0])
		}

		h, err := lifeSvc.ArchiveHabit(id)
		if err != nil {
			return fmt.Errorf("failed to archive habit: %w", err)
		}
		color.Green("✓ Archived %q", h.Name)
		return nil
	},
}

func init() {
	habitAddCmd.Flags().StringVar(&habitIcon, "icon", "", "display icon")
	habitAddCmd.Flags().BoolVar(&habitWeekly, "weekly", false, "weekly habit instead of daily")
	habitAddCmd.Flags().IntVar(&habitTarget, "target", 0, "weekly completion target")
	habitToggleCmd.Flags().StringVar(&habitDate, "date", "", "calendar date (default today)")
	habitListCmd.Flags().BoolVarP(&habitShowAll, "all", "a", false, "include archived habits")

	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitToggleCmd)
	habitCmd.AddCommand(habitArchiveCmd)
	rootCmd.AddCommand(habitCmd)
}
