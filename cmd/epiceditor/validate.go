package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/epiceditor-config/internal/cli"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate editor override files",
	Long: `Validate each override file on its own against the editor schema.

This command checks for:
- Values of the wrong type (e.g. a mapping where a theme path is expected)
- Unknown keys (unless --ignore-unknown is set)
- Unreadable or unparsable files

Files without a scar_epic_editor section are reported as warnings.

Examples:
  epiceditor validate                        # Validate every file in ./config
  epiceditor validate -f config/config.yml
  epiceditor validate --config-dir ./configs --workers 8`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunValidate(cmd.Context(), cmd.OutOrStdout(), cli.ValidateOptions{
			Settings: settings,
			Verbose:  verbose,
		})
	},
}

func init() {
	validateCmd.Flags().IntVar(&flags.Workers, "workers", 4, "Number of files validated concurrently")
}
