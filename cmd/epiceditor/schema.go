package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/epiceditor-config/internal/cli"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the editor section",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunSchema(cmd.OutOrStdout())
	},
}
