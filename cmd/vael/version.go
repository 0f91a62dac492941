// ABOUTME: CLI command that prints the build version.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vael %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
