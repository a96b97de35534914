package cli

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the threat report, print it and copy it to the clipboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Report(cmd.Context())
	},
}
