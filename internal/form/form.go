package form

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"fplthreats/internal/fetcher"
	"fplthreats/internal/player"
)

// DefaultWindow is the number of most recent rounds averaged.
const DefaultWindow = 5

// Calculator derives recent form from remote history.
type Calculator struct {
	history fetcher.HistoryFetcher
	window  int
}

// NewCalculator wires a history source with the averaging window.
func NewCalculator(history fetcher.HistoryFetcher, window int) *Calculator {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Calculator{history: history, window: window}
}

// RecentAverage fetches the player's history and averages the latest rounds.
func (c *Calculator) RecentAverage(ctx context.Context, playerID int) (player.Form, error) {
	rows, err := c.history.FetchHistory(ctx, playerID)
	if err != nil {
		return player.Form{}, err
	}
	return Summarise(rows, c.window), nil
}

// Summarise averages TotalPoints over the window most recent rounds. With
// fewer rows it averages whatever exists; with none it returns an empty Form.
func Summarise(rows []player.HistoryRow, window int) player.Form {
	if len(rows) == 0 {
		return player.Form{}
	}

	sorted := make([]player.HistoryRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Round > sorted[j].Round })
	if window > 0 && len(sorted) > window {
		sorted = sorted[:window]
	}

	sum := 0
	for _, r := range sorted {
		sum += r.TotalPoints
	}
	return player.Form{
		Average:     decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(sorted)))),
		Appearances: len(sorted),
	}
}
