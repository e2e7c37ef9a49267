// Package footprint computes the geospatial footprint of alerts and the suburbs and
// wards those footprints overlap.
package footprint

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/twpayne/go-geos"

	"service_alerts/internal/areas"
	"service_alerts/internal/domain"
	"service_alerts/internal/geo"
)

// CurrentWards selects the ward delimitation used for qualification and inference.
var CurrentWards = areas.WardYear(2021)

type Outcome string

const (
	OutcomeResolved   Outcome = "resolved"
	OutcomeFallback   Outcome = "fallback"
	OutcomeUnresolved Outcome = "unresolved"
	OutcomeSkipped    Outcome = "skipped"
)

// Summary counts footprint outcomes over a batch.
type Summary struct {
	Resolved   int
	Fallback   int
	Unresolved int
	Skipped    int
}

func (s *Summary) add(o Outcome) {
	switch o {
	case OutcomeResolved:
		s.Resolved++
	case OutcomeFallback:
		s.Fallback++
	case OutcomeUnresolved:
		s.Unresolved++
	case OutcomeSkipped:
		s.Skipped++
	}
}

type Aggregator struct {
	areas     Areas
	extractor LocationExtractor
	resolver  LocationResolver
	logger    *slog.Logger
}

func NewAggregator(a Areas, extractor LocationExtractor, resolver LocationResolver, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		areas:     a,
		extractor: extractor,
		resolver:  resolver,
		logger:    logger.With("component", "footprint"),
	}
}

// Apply sets the geospatial footprint of every alert in place. Alerts are processed one
// at a time; only reference layer failures and cancellation abort the batch.
func (a *Aggregator) Apply(ctx context.Context, alerts []domain.Alert) (Summary, error) {
	var summary Summary
	for i := range alerts {
		outcome, err := a.apply(ctx, &alerts[i])
		if err != nil {
			return summary, fmt.Errorf("footprint for alert %s: %w", alerts[i].ID, err)
		}
		summary.add(outcome)
	}
	a.logger.Info("footprints computed",
		"resolved", summary.Resolved,
		"fallback", summary.Fallback,
		"unresolved", summary.Unresolved,
		"skipped", summary.Skipped,
	)
	return summary, nil
}

func (a *Aggregator) apply(ctx context.Context, alert *domain.Alert) (Outcome, error) {
	shape, outcome, err := a.Locate(ctx, alert)
	if err != nil || shape == nil {
		return outcome, err
	}

	text, err := geo.FormatWKT(shape)
	if err != nil {
		a.logger.Warn("footprint not serializable", "id", alert.ID, "error", err)
		return OutcomeUnresolved, nil
	}
	alert.GeospatialFootprint = &text
	return outcome, nil
}

// Locate computes the footprint of one alert without modifying it. A nil shape with a
// nil error means the alert is left without a footprint.
func (a *Aggregator) Locate(ctx context.Context, alert *domain.Alert) (*geos.Geom, Outcome, error) {
	areaType := alert.AreaTypeValue()
	if areaType == "" || areas.IsExcluded(areaType) {
		return nil, OutcomeSkipped, nil
	}
	logger := a.logger.With("id", alert.ID, "area_type", areaType, "area", alert.AreaValue())

	var areaPolygon *geos.Geom
	if alert.Area != nil {
		var err error
		areaPolygon, err = a.areas.FootprintFor(ctx, areaType, alert.AreaValue())
		if err != nil {
			return nil, OutcomeUnresolved, err
		}
	}

	suggestions := a.suggest(ctx, logger, alert)
	switch {
	case len(suggestions) == 0:
		logger.Warn("no location suggestions, falling back to area polygon")
		if areaPolygon == nil {
			return nil, OutcomeUnresolved, nil
		}
		return areaPolygon, OutcomeFallback, nil
	case areaPolygon == nil:
		logger.Warn("no polygon for area")
		return nil, OutcomeUnresolved, nil
	}

	shapes, err := a.resolveAll(ctx, suggestions, areaPolygon)
	if err != nil {
		return nil, OutcomeUnresolved, err
	}
	if len(shapes) == 0 {
		logger.Warn("location geocoding failed, falling back to area polygon")
		return areaPolygon, OutcomeFallback, nil
	}

	logger.Debug("merging location shapes", "shapes", len(shapes))
	return geo.UnionAll(shapes), OutcomeResolved, nil
}

func (a *Aggregator) suggest(ctx context.Context, logger *slog.Logger, alert *domain.Alert) [][]string {
	if alert.Location.IsAbsent() {
		return nil
	}

	var area *string
	if alert.AreaTypeValue() == domain.AreaTypeSuburb {
		area = alert.Area
	}

	suggestions, err := a.extractor.Locations(ctx, area, alert.Location.String())
	if err != nil {
		logger.Warn("location extraction failed", "error", err)
		return nil
	}
	return suggestions
}

// resolveAll takes the first resolvable variant of each suggestion. A variant that
// fails is retried qualified by every ward intersecting the area, keeping all hits.
func (a *Aggregator) resolveAll(ctx context.Context, suggestions [][]string, areaPolygon *geos.Geom) ([]*geos.Geom, error) {
	wards, err := a.areas.GetLayer(ctx, domain.AreaTypeWard, CurrentWards)
	if err != nil {
		return nil, err
	}
	nearby := wards.Intersecting(areaPolygon)

	var shapes []*geos.Geom
	seen := make(map[string]struct{})
	keep := func(g *geos.Geom) {
		k := geo.Key(g)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		shapes = append(shapes, g)
	}

	for _, variants := range suggestions {
		for _, candidate := range variants {
			shape, err := a.resolver.Resolve(ctx, candidate, areaPolygon)
			if err != nil {
				return nil, err
			}
			if shape != nil {
				keep(shape)
				break
			}

			street, _, _ := strings.Cut(candidate, ",")
			for _, ward := range nearby {
				shape, err := a.resolver.Resolve(ctx, street+", Ward "+ward.Name, areaPolygon)
				if err != nil {
					return nil, err
				}
				if shape != nil {
					keep(shape)
				}
			}
		}
	}
	return shapes, nil
}
