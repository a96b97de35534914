package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"fplthreats/internal/scheduler"
)

// Watch re-runs the report on the configured schedule until interrupted.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sched, err := scheduler.New(scheduler.Options{
		Cron:           a.Config.Watch.Cron,
		Interval:       a.Config.Watch.Interval,
		RunImmediately: opts.RunImmediately,
	}, a.Logger)
	if err != nil {
		return err
	}

	svc, closeLists, err := a.newService(ctx, sinkSet{console: true, telegram: true})
	if err != nil {
		return err
	}
	defer closeLists()

	if !a.Config.Output.Telegram.Enabled {
		a.Logger.Warn().Msg("output.telegram disabled; reports only go to stdout")
	}

	a.Logger.Info().Str("cron", a.Config.Watch.Cron).Dur("interval", a.Config.Watch.Interval).Msg("starting report watch")
	err = sched.Run(ctx, svc.ProcessRun)
	if err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error().Err(err).Msg("watch terminated with error")
		return err
	}

	a.Logger.Info().Msg("report watch stopped")
	return nil
}
