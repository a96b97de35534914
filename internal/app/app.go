package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"fplthreats/internal/cohort"
	"fplthreats/internal/config"
	"fplthreats/internal/fetcher"
	"fplthreats/internal/idlist"
	"fplthreats/internal/service"
	"fplthreats/internal/sink"
	"fplthreats/internal/storage"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Out    io.Writer

	fpl *fetcher.FPL
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger(), Out: os.Stdout}
}

func (a *App) newFetcher() *fetcher.FPL {
	if a.fpl == nil {
		a.fpl = fetcher.NewFPL(fetcher.FPLOptions{
			BaseURL:   a.Config.Source.BaseURL,
			Timeout:   a.Config.Source.RequestTimeout,
			UserAgent: a.Config.Source.UserAgent,
		}, a.Logger)
	}
	return a.fpl
}

// sinkSet picks which outputs a command publishes to.
type sinkSet struct {
	console   bool
	clipboard bool
	telegram  bool
}

func (a *App) newSinks(set sinkSet) []sink.Sink {
	var sinks []sink.Sink
	if set.console {
		sinks = append(sinks, sink.NewConsole(a.Out))
	}
	if set.clipboard && a.Config.Output.Clipboard {
		sinks = append(sinks, sink.NewClipboard())
	}
	if set.telegram && a.Config.Output.Telegram.Enabled {
		cfg := a.Config.Output.Telegram
		sinks = append(sinks, sink.NewTelegram(cfg.BotToken, cfg.ChatID, cfg.APIBase, cfg.Timeout, a.Logger))
	}
	return sinks
}

func (a *App) openStore(ctx context.Context) (*storage.Store, func(), error) {
	if a.Config.Database.DSN == "" {
		return nil, nil, nil
	}

	pool, err := storage.NewPool(ctx, a.Config.Database)
	if err != nil {
		return nil, nil, err
	}

	store := storage.NewStore(pool, a.Logger)
	closer := func() {
		store.Close()
	}
	return store, closer, nil
}

// newListSource returns the configured id list backend.
func (a *App) newListSource(ctx context.Context) (idlist.Source, func(), error) {
	if a.Config.Lists.Source != config.ListSourcePostgres {
		return idlist.NewFileSource(a.Config.Lists.HeldFile, a.Config.Lists.UnwantedFile, a.Logger), func() {}, nil
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return nil, nil, errors.New("lists.source is postgres but database.dsn is empty")
	}
	if err := store.EnsureSchema(ctx); err != nil {
		closeStore()
		return nil, nil, err
	}
	return store, closeStore, nil
}

func (a *App) serviceOptions() service.Options {
	f := a.Config.Filter
	return service.Options{
		Thresholds: cohort.Thresholds{
			GameweeksWindow: f.GameweeksWindow,
			PPGThreshold:    decimal.NewFromFloat(f.PPGThreshold),
			MinOwnership:    decimal.NewFromFloat(f.MinOwnership),
			MinPrice:        decimal.NewFromFloat(f.MinPrice),
			MaxPrice:        decimal.NewFromFloat(f.MaxPrice),
		},
		FormWindow:    a.Config.Form.WindowSize,
		MinRecentForm: decimal.NewFromFloat(a.Config.Report.MinRecentForm),
	}
}

func (a *App) newService(ctx context.Context, set sinkSet) (*service.Service, func(), error) {
	lists, closeLists, err := a.newListSource(ctx)
	if err != nil {
		return nil, nil, err
	}
	fpl := a.newFetcher()
	svc := service.New(fpl, fpl, lists, a.newSinks(set), a.serviceOptions(), a.Logger)
	return svc, closeLists, nil
}

// ExportOptions hold parameters for exporting a report. All exports every
// classified player instead of the presented table.
type ExportOptions struct {
	PNGPath string
	CSVPath string
	MaxBars int
	All     bool
}

// WatchOptions configure the watch command.
type WatchOptions struct {
	RunImmediately bool
}

// ShowListsOptions configure the lists show command.
type ShowListsOptions struct {
	List string
}

// SyncListsOptions configure the lists sync command.
type SyncListsOptions struct {
	DryRun bool
}
