// Package geocode resolves free-text outage locations to shapes within a bounding polygon.
package geocode

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/twpayne/go-geos"

	"service_alerts/internal/areas"
	"service_alerts/internal/domain"
	"service_alerts/internal/geo"
	"service_alerts/internal/metrics"
)

// MaxStreetDistance is the largest edit distance accepted for a street name match.
const MaxStreetDistance = 5

const addressSuffix = ", Cape Town"

// Strategy names the step that produced a candidate shape.
type Strategy string

const (
	StrategySuburb   Strategy = "suburb"
	StrategyStreet   Strategy = "street"
	StrategyExternal Strategy = "external"
)

// Geocoder tries, in order, a suburb name match, a fuzzy street match and an external
// geocoder, then validates the candidate and clips it to the bounding polygon.
// It is not safe for concurrent use.
type Geocoder struct {
	layers   Layers
	streets  StreetSource
	external ExternalGeocoder
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func New(layers Layers, streets StreetSource, external ExternalGeocoder, m *metrics.Metrics, logger *slog.Logger) *Geocoder {
	return &Geocoder{
		layers:   layers,
		streets:  streets,
		external: external,
		metrics:  m,
		logger:   logger.With("component", "geocoder"),
	}
}

// Resolve returns the shape of location clipped to bounding buffered by geo.AreaBuffer,
// or nil when the location cannot be resolved inside bounding. Errors are reserved for
// failures that affect every location, such as a missing reference layer.
func (g *Geocoder) Resolve(ctx context.Context, location string, bounding *geos.Geom) (*geos.Geom, error) {
	if strings.TrimSpace(location) == "" || bounding == nil {
		return nil, nil
	}
	logger := g.logger.With("location", location)

	candidate, strategy, err := g.candidate(ctx, location, bounding)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		logger.Debug("location unresolved")
		g.metrics.Geocoded("unresolved")
		return nil, nil
	}

	if !candidate.IsValid() {
		logger.Warn("invalid shape", "strategy", strategy)
		g.metrics.Geocoded("invalid")
		return nil, nil
	}

	if !candidate.Intersects(bounding) {
		logger.Warn("location does not intersect bounding polygon, rejecting", "strategy", strategy)
		g.metrics.Geocoded("rejected")
		return nil, nil
	}

	logger.Debug("location resolved", "strategy", strategy)
	g.metrics.Geocoded(string(strategy))
	return candidate.Intersection(bounding.Buffer(geo.AreaBuffer, geo.QuadSegs)), nil
}

func (g *Geocoder) candidate(ctx context.Context, location string, bounding *geos.Geom) (*geos.Geom, Strategy, error) {
	switch {
	case !strings.Contains(location, ","):
		shape, err := g.matchSuburb(ctx, location)
		if err != nil || shape != nil {
			return shape, StrategySuburb, err
		}
	case !strings.Contains(strings.ToLower(location), "ward"):
		shape, err := g.matchStreet(ctx, location, bounding)
		if err != nil || shape != nil {
			return shape, StrategyStreet, err
		}
	}

	shape, err := g.geocodeExternal(ctx, location)
	return shape, StrategyExternal, err
}

func (g *Geocoder) matchSuburb(ctx context.Context, location string) (*geos.Geom, error) {
	layer, err := g.layers.GetLayer(ctx, domain.AreaTypeSuburb, areas.AllAreas)
	if err != nil {
		return nil, fmt.Errorf("match suburb: %w", err)
	}

	matches := layer.MatchFold(location)
	if len(matches) != 1 {
		return nil, nil
	}
	return matches[0].Geom, nil
}

type scoredSegment struct {
	Segment
	score int
}

// matchStreet scores every segment against the text before the first comma. Of the
// qualifying segments, the name of the last one after a descending sort by score is
// used, and all qualifying segments with that name are merged.
func (g *Geocoder) matchStreet(ctx context.Context, location string, bounding *geos.Geom) (*geos.Geom, error) {
	street, _, _ := strings.Cut(location, ",")
	street = strings.TrimSpace(street)

	segments, err := g.streets.Segments(ctx)
	if err != nil {
		return nil, fmt.Errorf("match street: %w", err)
	}

	var hits []scoredSegment
	for _, s := range segments {
		score := levenshtein.ComputeDistance(street, s.Name)
		if score > MaxStreetDistance {
			continue
		}
		if !s.Geom.Intersects(bounding) {
			continue
		}
		hits = append(hits, scoredSegment{Segment: s, score: score})
	}
	if len(hits) == 0 {
		return nil, nil
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	name := hits[len(hits)-1].Name

	var parts []*geos.Geom
	for _, h := range hits {
		if h.Name == name {
			parts = append(parts, h.Geom)
		}
	}
	g.logger.Debug("street matched", "street", street, "match", name, "segments", len(parts))

	return geo.UnionAll(parts).Buffer(geo.LocationBuffer, geo.QuadSegs), nil
}

func (g *Geocoder) geocodeExternal(ctx context.Context, location string) (*geos.Geom, error) {
	result, err := g.external.Geocode(ctx, location+addressSuffix)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		g.logger.Warn("external geocoder failed", "location", location, "error", err)
		return nil, nil
	}
	if result == nil {
		return nil, nil
	}

	shape, err := result.Shape()
	if err != nil {
		g.logger.Warn("unusable geocoder result", "location", location, "error", err)
		return nil, nil
	}
	return shape, nil
}
