// Package records exposes, per pipeline stage, exactly the rows that still need
// processing and writes results back without losing cached rows.
package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strconv"

	"service_alerts/internal/checksum"
	"service_alerts/internal/domain"
)

const (
	// DefaultDataSizeLimit caps how many new rows a cached load hands out.
	DefaultDataSizeLimit = 20
	// DraftLimit is the batch size stages aim for; small batches are topped up from the cache.
	DraftLimit = 10
)

var (
	ErrAlreadyLoaded    = errors.New("store already loaded")
	ErrAlreadyPersisted = errors.New("store already persisted")
	ErrNotLoaded        = errors.New("store not loaded")
)

// ErrDatasetNotFound is returned by Datasets implementations when nothing has been written yet.
var ErrDatasetNotFound = errors.New("dataset not found")

// Options configures one stage's view of the record store.
type Options struct {
	Source        string
	Destination   string
	Salt          string
	UseCache      bool
	IndexByID     bool
	DataSizeLimit int
	// OpportunisticSkip avoids writing when a cached run produced nothing new.
	OpportunisticSkip bool
}

// Store is single use: construct, load, process, persist once.
type Store struct {
	datasets Datasets
	opts     Options
	logger   *slog.Logger
	rng      *rand.Rand

	cache     []domain.Alert
	useCache  bool
	loaded    bool
	persisted bool
}

// New creates a store. Destination defaults to Source.
func New(datasets Datasets, opts Options, logger *slog.Logger) *Store {
	if opts.Destination == "" {
		opts.Destination = opts.Source
	}
	if opts.DataSizeLimit <= 0 {
		opts.DataSizeLimit = DefaultDataSizeLimit
	}
	return &Store{
		datasets: datasets,
		opts:     opts,
		logger:   logger.With("component", "records", "source", opts.Source, "destination", opts.Destination),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		useCache: opts.UseCache,
	}
}

// WithRand replaces the random source used for backfill sampling.
func (s *Store) WithRand(rng *rand.Rand) *Store {
	s.rng = rng
	return s
}

// CachingActive reports whether cached rows are being carried for this run.
func (s *Store) CachingActive() bool { return s.useCache }

// Cached returns the cache rows retained for write-back.
func (s *Store) Cached() []domain.Alert { return s.cache }

// Load fetches a dataset, dropping any spurious positional index column.
func (s *Store) Load(ctx context.Context, name string) ([]domain.Alert, error) {
	ds, err := s.datasets.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", name, err)
	}
	if ds.SpuriousIndex {
		s.logger.Warn("dropping spurious index column", "dataset", name)
	}
	s.logger.Debug("loaded dataset", "dataset", name, "rows", len(ds.Alerts))
	return ds.Alerts, nil
}

// LoadWithCache loads the source dataset and, when caching is enabled, returns only
// rows whose (index, checksum) pair is not already in the destination dataset.
// The matching cache rows are retained and appended again on Persist.
func (s *Store) LoadWithCache(ctx context.Context) ([]domain.Alert, error) {
	if s.loaded {
		return nil, ErrAlreadyLoaded
	}
	s.loaded = true

	data, err := s.Load(ctx, s.opts.Source)
	if err != nil {
		return nil, err
	}

	if !s.useCache {
		return data, nil
	}

	s.logger.Debug("calculating checksums on existing data", "rows", len(data))
	sums, err := checksum.ComputeParallel(ctx, data, s.opts.Salt)
	if err != nil {
		return nil, err
	}

	cacheSet, err := s.datasets.Load(ctx, s.opts.Destination)
	switch {
	case errors.Is(err, ErrDatasetNotFound):
		s.logger.Info("no cached data yet, treating all rows as new")
		cacheSet = &domain.Dataset{Name: s.opts.Destination}
	case err != nil:
		return nil, fmt.Errorf("load cache %s: %w", s.opts.Destination, err)
	}

	if !cacheSet.HasChecksums() {
		s.logger.Warn("not using caching - no checksums in previous results")
		s.useCache = false
		s.cache = nil
		for i := range data {
			data[i].InputChecksum = sums[i]
		}
		return data, nil
	}

	dataIndex := indexOf(data, s.opts.IndexByID)
	cacheIndex := indexOf(cacheSet.Alerts, s.opts.IndexByID)

	dataKeys := make(map[string]struct{}, len(data))
	for i := range data {
		dataKeys[checksum.Key(dataIndex[i], sums[i])] = struct{}{}
	}
	cacheKeys := make(map[string]struct{}, len(cacheSet.Alerts))
	for i, c := range cacheSet.Alerts {
		cacheKeys[checksum.Key(cacheIndex[i], c.InputChecksum)] = struct{}{}
	}

	// cache rows still present in the input stay valid; everything else in the cache is stale
	var kept []domain.Alert
	for i, c := range cacheSet.Alerts {
		if _, ok := dataKeys[checksum.Key(cacheIndex[i], c.InputChecksum)]; ok {
			kept = append(kept, c)
		}
	}

	var work []domain.Alert
	for i := range data {
		if _, ok := cacheKeys[checksum.Key(dataIndex[i], sums[i])]; ok {
			continue
		}
		a := data[i]
		a.InputChecksum = sums[i]
		work = append(work, a)
	}

	s.logger.Debug("partitioned against cache",
		"new", len(work),
		"cached", len(kept),
		"limit", s.opts.DataSizeLimit,
	)

	if len(work) > s.opts.DataSizeLimit {
		work = work[len(work)-s.opts.DataSizeLimit:]
	}
	s.cache = kept

	return work, nil
}

// Backfill tops up a small batch with cached rows that still need work.
// It pulls up to twice the shortfall of the oldest such rows, samples the shortfall
// from them, and removes them from the cache. The second result is true when rows
// were moved, signalling downstream stages to cap work at limit.
func (s *Store) Backfill(work []domain.Alert, needsWork func(domain.Alert) bool, limit int) ([]domain.Alert, bool) {
	shortfall := limit - len(work)
	if !s.useCache || shortfall <= 0 {
		return work, false
	}

	var candidates []int
	for i, c := range s.cache {
		if needsWork(c) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return work, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return s.cache[candidates[i]].PublishDate.Before(s.cache[candidates[j]].PublishDate)
	})
	if len(candidates) > shortfall*2 {
		candidates = candidates[:shortfall*2]
	}
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > shortfall {
		candidates = candidates[:shortfall]
	}

	moving := make(map[int]struct{}, len(candidates))
	for _, idx := range candidates {
		moving[idx] = struct{}{}
		work = append(work, s.cache[idx])
	}

	remaining := make([]domain.Alert, 0, len(s.cache)-len(moving))
	for i, c := range s.cache {
		if _, ok := moving[i]; !ok {
			remaining = append(remaining, c)
		}
	}
	s.cache = remaining

	s.logger.Debug("backfilled from cache", "moved", len(candidates), "batch", len(work))

	return work, true
}

// Persist writes the processed rows, followed by the retained cache rows when
// caching is active. It returns false when the write was skipped.
func (s *Store) Persist(ctx context.Context, data []domain.Alert) (bool, error) {
	if s.persisted {
		return false, ErrAlreadyPersisted
	}
	s.persisted = true

	if s.useCache && s.opts.OpportunisticSkip && len(data) == 0 {
		s.logger.Warn("skipping write - nothing has changed")
		return false, nil
	}

	if s.useCache {
		merged := make([]domain.Alert, 0, len(data)+len(s.cache))
		merged = append(merged, data...)
		merged = append(merged, s.cache...)
		s.logger.Debug("appended cache", "new", len(data), "cached", len(s.cache))
		data = merged
	}

	if err := s.datasets.Save(ctx, s.opts.Destination, data); err != nil {
		return false, fmt.Errorf("save dataset %s: %w", s.opts.Destination, err)
	}

	s.logger.Info("persisted dataset", "dataset", s.opts.Destination, "rows", len(data))
	return true, nil
}

// indexOf keys rows by identifier when requested and every row has one,
// otherwise by ordinal position.
func indexOf(alerts []domain.Alert, byID bool) []string {
	index := make([]string, len(alerts))
	useID := byID
	for _, a := range alerts {
		if a.ID == "" {
			useID = false
			break
		}
	}
	for i, a := range alerts {
		if useID {
			index[i] = a.ID
		} else {
			index[i] = strconv.Itoa(i)
		}
	}
	return index
}
