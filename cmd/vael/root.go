// ABOUTME: Root Cobra command for vael CLI.
// ABOUTME: Opens the store in PersistentPreRunE and closes it in PostRunE.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/body"
	"github.com/harperreed/vael/internal/config"
	"github.com/harperreed/vael/internal/fuel"
	"github.com/harperreed/vael/internal/journal"
	"github.com/harperreed/vael/internal/life"
	"github.com/harperreed/vael/internal/seed"
	"github.com/harperreed/vael/internal/store"
	"github.com/harperreed/vael/internal/training"
)

var (
	cfg    *config.Config
	eng    *store.Engine
	logger *log.Logger

	trainingSvc *training.Service
	lifeSvc     *life.Service
	journalSvc  *journal.Service
	bodySvc     *body.Service
	fuelSvc     *fuel.Service

	dataDirFlag string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "vael",
	Short: "Personal fitness and wellness tracker",
	Long: `Vael is a CLI for tracking training, daily wellness, and nutrition.

WHAT IT TRACKS:

  Training   workouts, sets (weight x reps), routines, personal records
  Life       daily check-ins (sleep, mood, energy), habits and streaks
  Journal    notes, voice memos, photos
  Body       weight, body fat, circumference measurements
  Fuel       meals with calories and macros

QUICK START:

  $ vael workout start                  # Open a session
  $ vael workout log 1 100 5            # Log 100 x 5 on exercise 1
  $ vael workout finish                 # Close it and compute volume
  $ vael checkin --sleep 7.5 --mood 4   # Log today's check-in
  $ vael fuel log "Oatmeal" breakfast 350 --protein 12
  $ vael today                          # Today at a glance

COACH:

  Chat with the AI coach backend ('vael coach "how was my week?"').
  Configure its URL via config, $VAEL_COACH_URL, or the built-in default.

MCP INTEGRATION:

  Run 'vael mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "vael": { "command": "vael", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in a local Badger store at ~/.local/share/vael/vael.db.
  Override with --data or the data_dir config key.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the store
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}

		logger = log.New(io.Discard)
		if verboseFlag {
			logger = log.New(os.Stderr)
		}

		eng, err = cfg.OpenStore(logger)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		if n, err := seed.EnsureCatalog(eng); err != nil {
			return fmt.Errorf("failed to seed exercise catalog: %w", err)
		} else if n > 0 {
			logger.Info("seeded exercise catalog", "count", n)
		}

		trainingSvc = training.NewService(eng)
		lifeSvc = life.NewService(eng)
		journalSvc = journal.NewService(eng)
		bodySvc = body.NewService(eng)
		fuelSvc = fuel.NewService(eng)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if eng != nil {
			return eng.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data", "", "data directory (default ~/.local/share/vael)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log diagnostics to stderr")
}
