package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nauticalab/epiceditor-config/internal/cli"
)

// Build-time variables, set with -ldflags "-X main.version=..."
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The validate command has already printed its report.
		if !errors.Is(err, cli.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
