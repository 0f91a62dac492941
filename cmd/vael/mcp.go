// ABOUTME: CLI command that runs the MCP server on stdio.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol server",
	Long: `Run the MCP server on stdio for use with MCP-compatible AI
assistants. Tools cover workouts, check-ins, habits, meals, notes, and
measurements; resources expose today's status and a summary dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := mcp.NewServer(eng)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return srv.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
