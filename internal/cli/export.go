package cli

import (
	"github.com/spf13/cobra"

	"fplthreats/internal/app"
)

var (
	exportPNGPath string
	exportCSVPath string
	exportAll     bool
	exportMaxBars int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the report as CSV and/or a PNG chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ExportOptions{
			PNGPath: exportPNGPath,
			CSVPath: exportCSVPath,
			All:     exportAll,
			MaxBars: exportMaxBars,
		}
		return getApp().Export(cmd.Context(), opts)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPNGPath, "png", "", "Path to write PNG chart")
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Path to write CSV data")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every classified player, not just the presented candidates")
	exportCmd.Flags().IntVar(&exportMaxBars, "max-players", 0, "Maximum players drawn in the chart (default 25)")
}
