package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// TickFunc is invoked at every scheduled run.
type TickFunc func(ctx context.Context, at time.Time) error

// Options tune scheduler behaviour. Cron wins over Interval when both are set.
type Options struct {
	Cron           string
	Interval       time.Duration
	Location       *time.Location
	RunImmediately bool
}

// Scheduler runs report jobs one at a time on a cron or fixed schedule.
type Scheduler struct {
	schedule cron.Schedule
	opts     Options
	logger   zerolog.Logger
}

// New parses the schedule and constructs a Scheduler.
func New(opts Options, logger zerolog.Logger) (*Scheduler, error) {
	if opts.Location == nil {
		opts.Location = time.Local
	}

	var schedule cron.Schedule
	switch {
	case opts.Cron != "":
		parsed, err := cron.ParseStandard(opts.Cron)
		if err != nil {
			return nil, fmt.Errorf("parse cron %q: %w", opts.Cron, err)
		}
		schedule = parsed
	case opts.Interval > 0:
		schedule = cron.Every(opts.Interval)
	default:
		return nil, errors.New("scheduler needs a cron expression or a positive interval")
	}

	return &Scheduler{
		schedule: schedule,
		opts:     opts,
		logger:   logger.With().Str("component", "scheduler").Logger(),
	}, nil
}

// Run blocks, invoking tick at each scheduled time until ctx is cancelled.
// A slow tick delays the next one rather than overlapping it.
func (s *Scheduler) Run(ctx context.Context, tick TickFunc) error {
	if s.opts.RunImmediately {
		s.execute(ctx, tick, time.Now().In(s.opts.Location))
	}

	for {
		next := s.nextTick(time.Now().In(s.opts.Location))
		timer := time.NewTimer(time.Until(next))
		s.logger.Info().Time("next_run", next).Msg("waiting for next run")

		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		s.execute(ctx, tick, next)
	}
}

func (s *Scheduler) execute(ctx context.Context, tick TickFunc, at time.Time) {
	s.logger.Info().Time("at", at).Msg("executing scheduled run")
	if err := tick(ctx, at); err != nil {
		s.logger.Error().Err(err).Time("at", at).Msg("scheduled run failed")
	}
}

func (s *Scheduler) nextTick(now time.Time) time.Time {
	return s.schedule.Next(now)
}
