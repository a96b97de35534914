package cli

import (
	"github.com/spf13/cobra"

	"fplthreats/internal/app"
)

var watchNow bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the report on a schedule and push it to the configured sinks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Watch(cmd.Context(), app.WatchOptions{RunImmediately: watchNow})
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchNow, "now", false, "Run once immediately before waiting for the schedule")
}
