package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"service_alerts/internal/config"
	"service_alerts/internal/domain"
	"service_alerts/internal/llm"
	"service_alerts/internal/metrics"
	"service_alerts/internal/records"
)

const StageAugment = "augment"

// FootprintsFactory builds the footprint collaborators for one run, so that layer,
// street and geocoder memos never outlive it.
type FootprintsFactory func() Footprints

// AugmentService drafts posts, computes footprints and inferred areas for new alerts,
// persists them alongside the unchanged cached rows and publishes what was processed.
type AugmentService struct {
	datasets   Datasets
	drafter    Drafter
	footprints FootprintsFactory
	publisher  Publisher
	metrics    *metrics.Metrics
	logger     *slog.Logger

	source      string
	destination string
	cache       config.CacheConfig
	draftLimit  int
	postLimit   int
}

func NewAugmentService(
	datasets Datasets,
	drafter Drafter,
	footprints FootprintsFactory,
	publisher Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	ds config.DatasetsConfig,
	cache config.CacheConfig,
	pipeline config.PipelineConfig,
) *AugmentService {
	return &AugmentService{
		datasets:    datasets,
		drafter:     drafter,
		footprints:  footprints,
		publisher:   publisher,
		metrics:     m,
		logger:      logger.With("stage", StageAugment),
		source:      ds.Sanitised,
		destination: ds.Augmented,
		cache:       cache,
		draftLimit:  pipeline.DraftLimit,
		postLimit:   pipeline.PostLimit,
	}
}

func (s *AugmentService) Name() string { return StageAugment }

func (s *AugmentService) newStore() *records.Store {
	return records.New(s.datasets, records.Options{
		Source:            s.source,
		Destination:       s.destination,
		Salt:              s.cache.Salt,
		UseCache:          !s.cache.Disabled,
		IndexByID:         true,
		DataSizeLimit:     s.cache.DataSizeLimit,
		OpportunisticSkip: true,
	}, s.logger)
}

func (s *AugmentService) Run(ctx context.Context) (*domain.StageStats, error) {
	startTime := time.Now()
	stats := &domain.StageStats{Stage: StageAugment}

	store := s.newStore()
	work, err := store.LoadWithCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("load alerts: %w", err)
	}
	stats.Fetched = len(work)

	sortNewestFirst(work)
	if len(work) > s.draftLimit {
		work = work[:s.draftLimit]
	}
	stats.New = len(work)

	work, backfilled := store.Backfill(work, needsPost, s.draftLimit)
	stats.Backfilled = len(work) - stats.New
	stats.Cached = len(store.Cached())

	s.logger.Info("selected alerts",
		"new", stats.New,
		"backfilled", stats.Backfilled,
		"cached", stats.Cached,
		"caching", store.CachingActive(),
	)
	s.metrics.SetCachePartition(StageAugment, len(work), stats.Cached)

	if err := s.draftPosts(ctx, work, backfilled, stats); err != nil {
		return stats, err
	}
	for i := range work {
		if work[i].TweetText != nil {
			work[i].TootText = Toot(work[i])
		}
	}

	fp := s.footprints()
	summary, err := fp.Apply(ctx, work)
	if err != nil {
		return stats, fmt.Errorf("apply footprints: %w", err)
	}
	stats.Resolved, stats.Fallback, stats.Unresolved = summary.Resolved, summary.Fallback, summary.Unresolved

	if err := fp.InferSuburbs(ctx, work); err != nil {
		return stats, fmt.Errorf("infer suburbs: %w", err)
	}
	if err := fp.InferWards(ctx, work); err != nil {
		return stats, fmt.Errorf("infer wards: %w", err)
	}

	written, err := store.Persist(ctx, work)
	if err != nil {
		return stats, fmt.Errorf("persist alerts: %w", err)
	}
	stats.Persisted = written

	if written {
		s.publish(ctx, work, stats)
	}

	stats.Duration = time.Since(startTime)
	s.record(stats)

	s.logger.Info("augment completed",
		"new", stats.New,
		"backfilled", stats.Backfilled,
		"resolved", stats.Resolved,
		"fallback", stats.Fallback,
		"unresolved", stats.Unresolved,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func needsPost(a domain.Alert) bool {
	return a.TweetText == nil || a.TootText == nil
}

func sortNewestFirst(alerts []domain.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].PublishDate.After(alerts[j].PublishDate)
	})
}

// draftPosts fills in missing tweets. Failures are counted and the alert is left
// without a post so a later run picks it up again.
func (s *AugmentService) draftPosts(ctx context.Context, work []domain.Alert, backfilled bool, stats *domain.StageStats) error {
	batch := work
	if backfilled && len(batch) > s.draftLimit {
		batch = batch[:s.draftLimit]
	}

	for i := range batch {
		alert := &batch[i]
		if alert.TweetText != nil {
			continue
		}

		post, err := s.drafter.Draft(ctx, *alert, s.postLimit)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if errors.Is(err, llm.ErrEmptyRecord) {
				s.logger.Warn("empty record, skipping", "id", alert.ID)
				continue
			}
			stats.Errors++
			s.logger.Warn("draft failed", "id", alert.ID, "error", err)
			continue
		}
		alert.TweetText = &post
	}
	return nil
}

func (s *AugmentService) publish(ctx context.Context, work []domain.Alert, stats *domain.StageStats) {
	if s.publisher == nil || len(work) == 0 {
		return
	}
	n, err := s.publisher.Publish(ctx, s.destination, work)
	stats.Published = n
	if err != nil {
		stats.Errors++
		s.logger.Error("publish failed", "published", n, "error", err)
	}
}

func (s *AugmentService) record(stats *domain.StageStats) {
	s.metrics.AddRows(StageAugment, "new", stats.New)
	s.metrics.AddRows(StageAugment, "backfilled", stats.Backfilled)
	s.metrics.AddRows(StageAugment, "resolved", stats.Resolved)
	s.metrics.AddRows(StageAugment, "fallback", stats.Fallback)
	s.metrics.AddRows(StageAugment, "unresolved", stats.Unresolved)
	s.metrics.AddRows(StageAugment, "error", stats.Errors)
	s.metrics.AddRows(StageAugment, "published", stats.Published)
}
