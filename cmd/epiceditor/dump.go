package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/epiceditor-config/internal/cli"
)

var (
	// Dump command flags
	dumpClient bool
	dumpStamp  bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the merged editor configuration",
	Long: `Merge the override files, in order, over the editor defaults and print
the result.

Examples:
  epiceditor dump -f config/config.yml -f config/config_prod.yml
  epiceditor dump --config-dir ./config --format json
  epiceditor dump --client --format json   # options for the widget constructor
  epiceditor dump --stamp                  # record the config repository revision`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunDump(cmd.OutOrStdout(), cli.DumpOptions{
			Settings: settings,
			Client:   dumpClient,
			Stamp:    dumpStamp,
		}, log)
	},
}

func init() {
	dumpCmd.Flags().StringVar(&flags.Format, "format", "yaml", "Output format (yaml, json)")
	dumpCmd.Flags().BoolVar(&dumpClient, "client", false, "Print the widget option object instead of the merged document")
	dumpCmd.Flags().BoolVar(&dumpStamp, "stamp", false, "Record the git revision of the configuration files")
}
