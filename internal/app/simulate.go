package app

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"fplthreats/internal/cohort"
	"fplthreats/internal/fetcher"
	"fplthreats/internal/player"
	"fplthreats/internal/report"
	"fplthreats/internal/service"
)

const simulatedPlayerID = 1

// SimulateOptions describe a single made-up player.
type SimulateOptions struct {
	Name      string
	Position  player.Position
	PPG       decimal.Decimal
	Ownership decimal.Decimal
	Recent    []int
	Owned     bool
	Notify    bool
}

// Simulate classifies one synthetic player through the full pipeline and
// prints the resulting row, optionally pushing it to Telegram.
func (a *App) Simulate(ctx context.Context, opts SimulateOptions) error {
	if !opts.Position.Valid() {
		return errors.New("position must be 1..4")
	}
	if opts.Notify && !a.Config.Output.Telegram.Enabled {
		return errors.New("output.telegram is not enabled")
	}

	p := player.Player{
		ID:            simulatedPlayerID,
		WebName:       opts.Name,
		Position:      opts.Position,
		Status:        player.StatusActive,
		Ownership:     opts.Ownership,
		PointsPerGame: opts.PPG,
		PriceTenths:   80,
	}
	rows := make([]player.HistoryRow, len(opts.Recent))
	for i, pts := range opts.Recent {
		rows[i] = player.HistoryRow{PlayerID: p.ID, Round: i + 1, TotalPoints: pts}
		p.TotalPoints += pts
	}

	var held []int
	if opts.Owned {
		held = []int{p.ID}
	}

	opt := a.serviceOptions()
	// Every synthetic candidate reaches the classifier.
	opt.Thresholds = cohort.Thresholds{GameweeksWindow: 1, MaxPrice: decimal.NewFromInt(100)}

	set := sinkSet{console: true, telegram: opts.Notify}
	static := &staticFetcher{player: p, history: rows}
	svc := service.New(static, static, staticLists{set: player.NewExclusionSet(held, nil)}, a.newSinks(set), opt, a.Logger)

	res, err := svc.Build(ctx)
	if err != nil {
		return err
	}
	_, err = svc.Publish(ctx, report.Format(res.Combined))
	return err
}

type staticFetcher struct {
	player  player.Player
	history []player.HistoryRow
}

func (s *staticFetcher) FetchCatalog(context.Context) ([]player.Player, error) {
	return []player.Player{s.player}, nil
}

func (s *staticFetcher) FetchHistory(context.Context, int) ([]player.HistoryRow, error) {
	return s.history, nil
}

type staticLists struct {
	set player.ExclusionSet
}

func (s staticLists) Load(context.Context) (player.ExclusionSet, error) {
	return s.set, nil
}

var (
	_ fetcher.CatalogFetcher = (*staticFetcher)(nil)
	_ fetcher.HistoryFetcher = (*staticFetcher)(nil)
)
