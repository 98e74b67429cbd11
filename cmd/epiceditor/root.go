package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/epiceditor-config/internal/cli"
	"github.com/nauticalab/epiceditor-config/internal/logger"
)

var (
	// Global flags (available to all commands)
	verbose bool
	flags   cli.Settings

	// Resolved in PersistentPreRunE
	settings *cli.Settings
	log      *logger.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "epiceditor",
	Short: "Merge and inspect EpicEditor configuration",
	Long: `epiceditor merges the scar_epic_editor section of host configuration
files over the editor defaults, checks it against the editor schema and
exposes the result to the form layer.

Settings come from flags, then EPICEDITOR_* environment variables, then
defaults.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: resolveSettings,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	pf.StringVar(&flags.ConfigDir, "config-dir", "./config", "Directory scanned for override files when no --file is given")
	pf.StringSliceVarP(&flags.Files, "file", "f", nil, "Override file, merged in order (repeatable)")
	pf.BoolVar(&flags.IgnoreUnknown, "ignore-unknown", false, "Drop unknown keys instead of rejecting them")
	pf.StringVar(&flags.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.BoolVar(&flags.LogConsole, "log-console", false, "Human readable logs instead of JSON")

	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveSettings layers explicitly set flags over the environment and the
// defaults, then builds the logger.
func resolveSettings(cmd *cobra.Command, args []string) error {
	set := &cli.Settings{}
	changed := cmd.Flags().Changed

	if changed("config-dir") {
		set.ConfigDir = flags.ConfigDir
	}
	if changed("file") {
		set.Files = flags.Files
	}
	if changed("ignore-unknown") {
		set.IgnoreUnknown = flags.IgnoreUnknown
	}
	if changed("log-level") {
		set.LogLevel = flags.LogLevel
	} else if verbose {
		set.LogLevel = "debug"
	}
	if changed("log-console") {
		set.LogConsole = flags.LogConsole
	}
	if changed("format") {
		set.Format = flags.Format
	}
	if changed("listen") {
		set.Listen = flags.Listen
	}
	if changed("workers") {
		set.Workers = flags.Workers
	}

	s, err := cli.LoadSettings(set)
	if err != nil {
		return err
	}
	settings = s
	log = logger.New("cli", logger.Options{Level: s.LogLevel, Console: s.LogConsole})
	log.Debug().Interface("settings", s).Msg("settings resolved")
	return nil
}
