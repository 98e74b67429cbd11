package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nauticalab/epiceditor-config/internal/api"
	"github.com/nauticalab/epiceditor-config/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the merged editor configuration over HTTP",
	Long: `Merge the override files once and serve the result to the form layer:

  GET /api/v1/health                  - Health check
  GET /api/v1/version                 - Version information
  GET /api/v1/editor/config           - Merged configuration
  GET /api/v1/editor/config/{path}    - One value, e.g. config.theme.base
  GET /api/v1/editor/options          - Widget constructor options
  GET /api/v1/editor/schema           - JSON Schema
  GET /api/v1/editor/defaults         - Defaults`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flags.Listen, "listen", ":8080", "Address to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cli.RunServe(ctx, cli.ServeOptions{
		Settings: settings,
		Build: api.BuildInfo{
			Version:   version,
			GitCommit: gitCommit,
			BuildTime: buildTime,
			GoVersion: runtime.Version(),
		},
	}, log)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
