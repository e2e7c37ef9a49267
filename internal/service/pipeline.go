package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"service_alerts/internal/domain"
	"service_alerts/internal/metrics"
)

// Pipeline runs its stages in order and stops at the first failing stage.
type Pipeline struct {
	stages  []Stage
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewPipeline(m *metrics.Metrics, logger *slog.Logger, stages ...Stage) *Pipeline {
	return &Pipeline{
		stages:  stages,
		metrics: m,
		logger:  logger.With("component", "pipeline"),
	}
}

func (p *Pipeline) Run(ctx context.Context) (*domain.RunStats, error) {
	startTime := time.Now()
	stats := &domain.RunStats{}

	var runErr error
	for _, stage := range p.stages {
		st, err := stage.Run(ctx)
		if st != nil {
			stats.Stages = append(stats.Stages, *st)
		}
		if err != nil {
			runErr = fmt.Errorf("stage %s: %w", stage.Name(), err)
			break
		}
	}

	stats.Duration = time.Since(startTime)
	p.metrics.ObserveRun(runErr, stats.Duration)

	if runErr != nil {
		return stats, runErr
	}
	p.logger.Info("pipeline run completed", "stages", len(stats.Stages), "duration", stats.Duration)
	return stats, nil
}
