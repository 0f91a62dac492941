// ABOUTME: CLI command for exporting the store.
// ABOUTME: Renders a full snapshot as JSON, YAML, or a SQLite database.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data",
	Long: `Export every table as a single snapshot.

FORMATS:

  json     Indented JSON (default), written to stdout or --output
  yaml     YAML, written to stdout or --output
  sqlite   A standalone .db file; --output is required and must not exist

EXAMPLES:

  vael export > backup.json
  vael export --format yaml --output backup.yaml
  vael export --format sqlite --output backup.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := export.Collect(eng)
		if err != nil {
			return fmt.Errorf("failed to collect snapshot: %w", err)
		}

		switch exportFormat {
		case "json":
			data, err := snap.JSON()
			if err != nil {
				return fmt.Errorf("failed to render JSON: %w", err)
			}
			return writeExport(data)
		case "yaml":
			data, err := snap.YAML()
			if err != nil {
				return fmt.Errorf("failed to render YAML: %w", err)
			}
			return writeExport(data)
		case "sqlite":
			if exportOutput == "" {
				return fmt.Errorf("sqlite export needs --output")
			}
			if err := snap.WriteSQLite(exportOutput); err != nil {
				return fmt.Errorf("failed to write sqlite snapshot: %w", err)
			}
			color.Green("✓ Wrote %s", exportOutput)
			return nil
		default:
			return fmt.Errorf("unknown format %q (want json, yaml, or sqlite)", exportFormat)
		}
	},
}

func writeExport(data []byte) error {
	if exportOutput == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0600); err != nil {
		return err
	}
	color.Green("✓ Wrote %s", exportOutput)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format (json, yaml, sqlite)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
