package scheduler

import (
	"context"
	"log/slog"
	"time"

	"service_alerts/internal/domain"
)

const DefaultRunTimeout = 30 * time.Minute

// Runner executes one pipeline run.
type Runner interface {
	Run(ctx context.Context) (*domain.RunStats, error)
}

type Scheduler struct {
	runner   Runner
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(runner Runner, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	if timeout <= 0 {
		timeout = DefaultRunTimeout
	}
	return &Scheduler{
		runner:   runner,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Start runs immediately and then on every tick until ctx is cancelled.
// A failed run is logged and does not stop the loop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "timeout", s.timeout)

	s.run(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.run(ctx)
		}
	}
}

func (s *Scheduler) run(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.runner.Run(runCtx); err != nil {
		s.logger.Error("pipeline run failed", "error", err)
	}
}
