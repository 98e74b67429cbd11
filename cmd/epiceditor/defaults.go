package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/epiceditor-config/internal/cli"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the editor defaults",
	Long: `Print the scar_epic_editor section as it is when no override file sets
anything. The output is a valid override file.

Examples:
  epiceditor defaults
  epiceditor defaults --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunDefaults(cmd.OutOrStdout(), settings.Format)
	},
}

func init() {
	defaultsCmd.Flags().StringVar(&flags.Format, "format", "yaml", "Output format (yaml, json)")
}
