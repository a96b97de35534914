package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"fplthreats/internal/cohort"
	"fplthreats/internal/fetcher"
	"fplthreats/internal/form"
	"fplthreats/internal/idlist"
	"fplthreats/internal/logging"
	"fplthreats/internal/player"
	"fplthreats/internal/report"
	"fplthreats/internal/sink"
)

// Options tune a pipeline run.
type Options struct {
	Thresholds    cohort.Thresholds
	FormWindow    int
	MinRecentForm decimal.Decimal
}

// Result is the outcome of one pipeline run.
type Result struct {
	RunID     string
	Combined  []player.Classified
	Presented []player.Classified
	Table     report.Table

	// HistoryFailures lists players whose form was zero-filled after a
	// history fetch error.
	HistoryFailures []int
}

// Service orchestrates fetching, filtering, classification and output.
type Service struct {
	catalog fetcher.CatalogFetcher
	form    *form.Calculator
	lists   idlist.Source
	sinks   []sink.Sink
	opts    Options
	logger  zerolog.Logger
}

// New constructs the report pipeline. opts is used as given; a zero
// MinRecentForm presents every candidate with recent history.
func New(catalog fetcher.CatalogFetcher, history fetcher.HistoryFetcher, lists idlist.Source, sinks []sink.Sink, opts Options, logger zerolog.Logger) *Service {
	return &Service{
		catalog: catalog,
		form:    form.NewCalculator(history, opts.FormWindow),
		lists:   lists,
		sinks:   sinks,
		opts:    opts,
		logger:  logger.With().Str("component", "service").Logger(),
	}
}

// Build runs the pipeline without publishing. A catalog failure aborts the
// run; history failures degrade to an empty form for that player.
func (s *Service) Build(ctx context.Context) (Result, error) {
	logger, runID := logging.WithRunID(s.logger)
	started := time.Now()

	exclusions, err := s.lists.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load id lists: %w", err)
	}

	catalog, err := s.catalog.FetchCatalog(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch catalog: %w", err)
	}

	cohorts := report.Cohorts{
		Owned:      cohort.SelectByIDs(catalog, exclusions.Held),
		Excluded:   cohort.SelectByIDs(catalog, exclusions.Unwanted),
		Candidates: cohort.SelectCandidates(catalog, exclusions, s.opts.Thresholds),
	}
	logger.Info().
		Int("catalog", len(catalog)).
		Int("owned", len(cohorts.Owned)).
		Int("excluded", len(cohorts.Excluded)).
		Int("candidates", len(cohorts.Candidates)).
		Msg("cohorts selected")

	forms, failed, err := s.collectForms(ctx, logger, cohorts.All())
	if err != nil {
		return Result{}, err
	}

	combined := report.Build(cohorts, forms)
	presented := report.Present(combined, s.opts.MinRecentForm)

	logger.Info().
		Int("presented", len(presented)).
		Int("history_failures", len(failed)).
		Dur("elapsed", time.Since(started)).
		Msg("report built")

	return Result{
		RunID:           runID,
		Combined:        combined,
		Presented:       presented,
		Table:           report.Format(presented),
		HistoryFailures: failed,
	}, nil
}

// collectForms fetches history sequentially, once per distinct player.
func (s *Service) collectForms(ctx context.Context, logger zerolog.Logger, players []player.Player) (map[int]player.Form, []int, error) {
	forms := make(map[int]player.Form, len(players))
	var failed []int
	for _, p := range players {
		if _, done := forms[p.ID]; done {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		f, err := s.form.RecentAverage(ctx, p.ID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, nil, ctxErr
			}
			logger.Warn().Err(err).Int("player_id", p.ID).Str("player", p.WebName).Msg("history fetch failed; form zero-filled")
			failed = append(failed, p.ID)
			f = player.Form{}
		}
		forms[p.ID] = f
	}
	return forms, failed, nil
}

// Publish sends the table to every sink and returns the names of those that
// accepted it. Only a console failure is returned; the other sinks are best
// effort.
func (s *Service) Publish(ctx context.Context, table report.Table) ([]string, error) {
	delivered := make([]string, 0, len(s.sinks))
	for _, out := range s.sinks {
		err := out.Send(ctx, table)
		if err == nil {
			s.logger.Debug().Str("sink", out.Name()).Msg("report delivered")
			delivered = append(delivered, out.Name())
			continue
		}
		if _, console := out.(*sink.Console); console {
			return delivered, fmt.Errorf("write report: %w", err)
		}
		s.logger.Error().Err(err).Str("sink", out.Name()).Msg("failed to deliver report")
	}
	return delivered, nil
}

// ProcessRun builds and publishes one report.
func (s *Service) ProcessRun(ctx context.Context, at time.Time) error {
	res, err := s.Build(ctx)
	if err != nil {
		return err
	}
	s.logger.Debug().Time("at", at).Str("run_id", res.RunID).Msg("publishing report")
	_, err = s.Publish(ctx, res.Table)
	return err
}
