package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version subcommand
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	// Version needs no settings.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "epiceditor version %s\n", version)

		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "  Build time: %s\n", buildTime)
			fmt.Fprintf(cmd.OutOrStdout(), "  Git commit: %s\n", gitCommit)
			fmt.Fprintf(cmd.OutOrStdout(), "  Go version: %s\n", runtime.Version())
		}
	},
}
