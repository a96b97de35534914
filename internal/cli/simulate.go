package cli

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"fplthreats/internal/app"
	"fplthreats/internal/player"
)

var (
	simulateName      string
	simulatePosition  int
	simulatePPG       float64
	simulateOwnership float64
	simulatePoints    []int
	simulateOwned     bool
	simulateNotify    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Classify a made-up player and print the resulting report row",
	RunE: func(cmd *cobra.Command, args []string) error {
		if simulatePPG < 0 {
			return errors.New("--ppg cannot be negative")
		}
		if simulateOwnership < 0 || simulateOwnership > 100 {
			return errors.New("--ownership must be within 0..100")
		}

		opts := app.SimulateOptions{
			Name:      simulateName,
			Position:  player.Position(simulatePosition),
			PPG:       decimal.NewFromFloat(simulatePPG),
			Ownership: decimal.NewFromFloat(simulateOwnership),
			Recent:    simulatePoints,
			Owned:     simulateOwned,
			Notify:    simulateNotify,
		}
		return getApp().Simulate(cmd.Context(), opts)
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simulateName, "name", "Simulated", "Display name")
	simulateCmd.Flags().IntVar(&simulatePosition, "position", int(player.Midfielder), "Position 1=GK 2=DEF 3=MID 4=FWD")
	simulateCmd.Flags().Float64Var(&simulatePPG, "ppg", 0, "Season points per game")
	simulateCmd.Flags().Float64Var(&simulateOwnership, "ownership", 0, "Selected-by percentage")
	simulateCmd.Flags().IntSliceVar(&simulatePoints, "points", nil, "Recent gameweek points, oldest first")
	simulateCmd.Flags().BoolVar(&simulateOwned, "owned", false, "Treat the player as held")
	simulateCmd.Flags().BoolVar(&simulateNotify, "notify", false, "Also send the row to Telegram")
}
