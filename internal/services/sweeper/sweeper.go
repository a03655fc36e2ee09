// Package sweeper periodically settles talk statuses. Approved talks whose
// scheduled date has passed are marked completed
package sweeper

import (
	"context"
	"time"

	"podium/internal/platform/logger"

	"github.com/robfig/cron/v3"
)

// Completer is the narrow surface the sweeper drives
type Completer interface {
	CompletePast(ctx context.Context, now time.Time) (int, error)
}

// Config controls the sweep cadence
type Config struct {
	// Schedule is a cron expression. Hourly when empty
	Schedule string

	// Timeout bounds a single sweep
	Timeout time.Duration
}

// Sweeper owns the cron runner
type Sweeper struct {
	subs Completer
	cfg  Config
	cron *cron.Cron
	now  func() time.Time
}

// New constructs a sweeper over the given completer
func New(subs Completer, cfg Config) *Sweeper {
	if subs == nil {
		panic("sweeper.New requires a non nil Completer")
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "@hourly"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	return &Sweeper{
		subs: subs,
		cfg:  cfg,
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		now:  time.Now,
	}
}

// Start registers the schedule and begins sweeping in the background.
// The first sweep runs immediately so restarts do not leave stale statuses
func (s *Sweeper) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.Schedule, func() { s.sweep(ctx) }); err != nil {
		return err
	}
	s.sweep(ctx)
	s.cron.Start()
	logger.C(ctx).Info().Str("schedule", s.cfg.Schedule).Msg("sweeper started")
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) sweep(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	n, err := s.subs.CompletePast(ctx, s.now())
	if err != nil {
		logger.C(ctx).Error().Err(err).Msg("sweep failed")
		return
	}
	if n > 0 {
		logger.C(ctx).Info().Int("completed", n).Msg("sweep settled talks")
	}
}
