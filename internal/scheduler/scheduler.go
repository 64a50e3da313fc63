// Package scheduler runs periodic background jobs on cron expressions.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one unit of background work.
type Job func(ctx context.Context) error

// Scheduler runs registered jobs until its context is cancelled.
type Scheduler struct {
	log     *slog.Logger
	cron    *cron.Cron
	timeout time.Duration
}

// New creates a scheduler. Each job run is bounded by timeout.
func New(logger *slog.Logger, timeout time.Duration) *Scheduler {
	return &Scheduler{
		log:     logger.With("component", "scheduler"),
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		timeout: timeout,
	}
}

// Add registers a job under a standard five-field cron spec.
func (s *Scheduler) Add(ctx context.Context, name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.run(ctx, name, job)
	})
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	s.log.Info("job scheduled", slog.String("job", name), slog.String("spec", spec))
	return nil
}

func (s *Scheduler) run(ctx context.Context, name string, job Job) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := job(ctx); err != nil {
		s.log.ErrorContext(ctx, "job failed",
			slog.String("job", name),
			slog.String("error", err.Error()))
		return
	}
	s.log.InfoContext(ctx, "job finished",
		slog.String("job", name),
		slog.Duration("elapsed", time.Since(start)))
}

// Run starts the cron loop and blocks until ctx is done, then waits for
// running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}
