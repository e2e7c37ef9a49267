package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"service_alerts/internal/config"
	"service_alerts/internal/domain"
	"service_alerts/internal/metrics"
	"service_alerts/internal/records"
)

const StageIngest = "ingest"

// IngestService fetches the raw alert list and merges it into the sanitised dataset.
type IngestService struct {
	source        Source
	datasets      Datasets
	notifications Notifications
	txManager     TransactionManager
	metrics       *metrics.Metrics
	logger        *slog.Logger

	dataset             string
	notificationDataset string
}

func NewIngestService(
	source Source,
	datasets Datasets,
	notifications Notifications,
	txManager TransactionManager,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg config.DatasetsConfig,
) *IngestService {
	return &IngestService{
		source:              source,
		datasets:            datasets,
		notifications:       notifications,
		txManager:           txManager,
		metrics:             m,
		logger:              logger.With("stage", StageIngest, "source", source.ID()),
		dataset:             cfg.Sanitised,
		notificationDataset: cfg.Notifications,
	}
}

func (s *IngestService) Name() string { return StageIngest }

func (s *IngestService) Run(ctx context.Context) (*domain.StageStats, error) {
	startTime := time.Now()
	s.logger.Info("starting ingest", "source_name", s.source.Name(), "dataset", s.dataset)

	alerts, err := s.source.FetchAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch alerts: %w", err)
	}

	s.logger.Info("fetched alerts from source", "count", len(alerts))

	stats := &domain.StageStats{
		Stage:   StageIngest,
		Fetched: len(alerts),
	}
	s.metrics.AddRows(StageIngest, "fetched", len(alerts))

	if len(alerts) == 0 {
		s.logger.Warn("source returned no alerts, keeping previous dataset")
		stats.Duration = time.Since(startTime)
		return stats, nil
	}

	if err := s.lookupRequestNumbers(ctx, alerts); err != nil {
		return stats, err
	}

	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		store := records.New(s.datasets, records.Options{Source: s.dataset}, s.logger)

		previous, err := store.Load(ctx, s.dataset)
		if err != nil && !errors.Is(err, records.ErrDatasetNotFound) {
			return err
		}

		merged := records.DedupByID(previous, alerts)
		stats.New = countNew(previous, alerts)

		written, err := store.Persist(ctx, merged)
		stats.Persisted = written
		return err
	})
	if err != nil {
		return stats, fmt.Errorf("merge into %s: %w", s.dataset, err)
	}

	stats.Duration = time.Since(startTime)
	s.metrics.AddRows(StageIngest, "new", stats.New)

	s.logger.Info("ingest completed",
		"fetched", stats.Fetched,
		"new", stats.New,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *IngestService) lookupRequestNumbers(ctx context.Context, alerts []domain.Alert) error {
	if s.notifications == nil || s.notificationDataset == "" {
		return nil
	}

	numbers, err := s.notifications.RequestNumbers(ctx, s.notificationDataset)
	if errors.Is(err, records.ErrDatasetNotFound) {
		s.logger.Warn("notification dataset not found, skipping request numbers", "dataset", s.notificationDataset)
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup request numbers: %w", err)
	}

	matched := applyRequestNumbers(alerts, numbers)
	s.logger.Info("looked up request numbers", "matched", matched, "notifications", len(numbers))
	return nil
}

// applyRequestNumbers sets the request number of every alert whose notification number is
// known and clears it otherwise. It returns the number of matches.
func applyRequestNumbers(alerts []domain.Alert, numbers map[string]string) int {
	matched := 0
	for i := range alerts {
		alerts[i].RequestNumber = nil
		if alerts[i].NotificationNumber == nil {
			continue
		}
		if n, ok := numbers[*alerts[i].NotificationNumber]; ok {
			alerts[i].RequestNumber = &n
			matched++
		}
	}
	return matched
}

func countNew(previous, fresh []domain.Alert) int {
	seen := make(map[string]struct{}, len(previous))
	for _, a := range previous {
		seen[a.ID] = struct{}{}
	}
	n := 0
	for _, a := range fresh {
		if _, ok := seen[a.ID]; !ok {
			seen[a.ID] = struct{}{}
			n++
		}
	}
	return n
}
