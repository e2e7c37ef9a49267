package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"service_alerts/internal/broadcast"
	"service_alerts/internal/config"
	"service_alerts/internal/domain"
	"service_alerts/internal/metrics"
	"service_alerts/internal/records"
)

const StageBroadcast = "broadcast"

// BroadcastService republishes the public feeds from the augmented dataset on every run,
// so windows move forward even when nothing new was augmented.
type BroadcastService struct {
	datasets  Datasets
	publisher FeedPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	dataset   string
	now       func() time.Time
}

func NewBroadcastService(
	datasets Datasets,
	publisher FeedPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	ds config.DatasetsConfig,
) *BroadcastService {
	return &BroadcastService{
		datasets:  datasets,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With("stage", StageBroadcast),
		dataset:   ds.Augmented,
		now:       time.Now,
	}
}

func (s *BroadcastService) Name() string { return StageBroadcast }

func (s *BroadcastService) Run(ctx context.Context) (*domain.StageStats, error) {
	startTime := time.Now()
	stats := &domain.StageStats{Stage: StageBroadcast}

	ds, err := s.datasets.Load(ctx, s.dataset)
	if errors.Is(err, records.ErrDatasetNotFound) {
		s.logger.Warn("nothing to broadcast yet", "dataset", s.dataset)
		stats.Duration = time.Since(startTime)
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.dataset, err)
	}
	stats.Fetched = len(ds.Alerts)

	for _, feed := range broadcast.Feeds(ds.Alerts, s.now().In(domain.SAST)) {
		if err := s.publisher.PublishFeed(ctx, feed); err != nil {
			stats.Duration = time.Since(startTime)
			return stats, err
		}
		stats.Published++
		s.logger.Debug("broadcast feed", "feed", feed.Name(), "alerts", len(feed.Records))
	}

	stats.Duration = time.Since(startTime)
	s.metrics.AddRows(StageBroadcast, "feeds", stats.Published)

	s.logger.Info("broadcast completed",
		"alerts", stats.Fetched,
		"feeds", stats.Published,
		"duration", stats.Duration,
	)
	return stats, nil
}
