// ABOUTME: CLI commands for viewing and editing configuration.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show the current configuration or set a key.

KEYS:

  data_dir    where the database lives (default ~/.local/share/vael)
  coach_url   coach backend base URL

EXAMPLES:

  vael config show
  vael config set data_dir ~/fitness
  vael config set coach_url http://localhost:9000`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("config file: %s\n", config.GetConfigPath())
		fmt.Printf("data_dir:    %s\n", cfg.GetDataDir())
		fmt.Printf("coach_url:   %s\n", cfg.GetCoachURL())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "data_dir":
			cfg.DataDir = args[1]
		case "coach_url":
			cfg.CoachURL = args[1]
		default:
			return fmt.Errorf("unknown key %q (want data_dir or coach_url)", args[0])
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Set %s", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
