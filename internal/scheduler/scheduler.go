// Package scheduler runs the bot's periodic jobs: the elapsed-time tick,
// contract cycles, badge reconciliation and the inactivity sweep.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Job is one periodic task. Runs of the same job never overlap.
type Job struct {
	// Name identifies the job in logs
	Name string

	// Interval between runs
	Interval time.Duration

	// RunOnStart runs the job once before the first tick
	RunOnStart bool

	// Run does the work; errors are logged and the job keeps its schedule
	Run func(ctx context.Context) error
}

// Config holds configuration for the scheduler
type Config struct {
	Jobs []*Job

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Scheduler runs every job on its own ticker until the context is cancelled
type Scheduler struct {
	jobs   []*Job
	logger *slog.Logger
}

// New validates the jobs and creates a scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	seen := make(map[string]bool)
	for i, job := range cfg.Jobs {
		if job == nil {
			return nil, fmt.Errorf("job %d is nil", i)
		}
		if job.Name == "" {
			return nil, fmt.Errorf("job %d has no name", i)
		}
		if seen[job.Name] {
			return nil, fmt.Errorf("duplicate job %q", job.Name)
		}
		seen[job.Name] = true
		if job.Interval <= 0 {
			return nil, fmt.Errorf("job %q needs a positive interval", job.Name)
		}
		if job.Run == nil {
			return nil, fmt.Errorf("job %q has no run function", job.Name)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		jobs:   cfg.Jobs,
		logger: logger,
	}, nil
}

// Run blocks until ctx is cancelled and every job has returned
func (s *Scheduler) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	for _, job := range s.jobs {
		job := job
		group.Go(func() error {
			s.loop(ctx, job)
			return nil
		})
	}

	return group.Wait()
}

func (s *Scheduler) loop(ctx context.Context, job *Job) {
	logger := s.logger.With("job", job.Name)
	logger.Info("job scheduled", "interval", job.Interval.String())

	if job.RunOnStart {
		s.runOnce(ctx, logger, job)
	}

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("job stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx, logger, job)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, logger *slog.Logger, job *Job) {
	if ctx.Err() != nil {
		return
	}

	start := time.Now()
	if err := job.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("job failed", "error", err, "duration", time.Since(start).String())
		return
	}
	logger.Debug("job complete", "duration", time.Since(start).String())
}
