// Package areas resolves area types to reference polygon layers and infers which
// areas a footprint overlaps.
package areas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twpayne/go-geos"

	"service_alerts/internal/domain"
)

// InferenceThreshold is the share of either polygon an intersection must exceed.
const InferenceThreshold = 0.05

var ErrLayerNotFound = errors.New("layer not found")

var layerNames = map[string]string{
	domain.AreaTypeSuburb:           "Official planning suburbs",
	domain.AreaTypeSolidWasteRegion: "Solid Waste service areas",
	domain.AreaTypeCitywide:         "City boundary",
}

var excluded = map[string]struct{}{
	domain.AreaTypeDrivingLicenceCentre: {},
}

// LayerName maps an area type onto the reference layer that holds it.
// Unknown area types are layer names already.
func LayerName(areaType string) string {
	if name, ok := layerNames[areaType]; ok {
		return name
	}
	return areaType
}

// IsExcluded reports whether an area type never takes part in geospatial lookups.
func IsExcluded(areaType string) bool {
	_, ok := excluded[areaType]
	return ok
}

type layerKey struct {
	areaType string
	filter   string
}

// Resolver memoizes layers for the lifetime of a run. It is not safe for concurrent use.
type Resolver struct {
	source LayerSource
	logger *slog.Logger
	layers map[layerKey]*Layer
}

func NewResolver(source LayerSource, logger *slog.Logger) *Resolver {
	return &Resolver{
		source: source,
		logger: logger.With("component", "areas"),
		layers: make(map[layerKey]*Layer),
	}
}

// GetLayer returns the layer for an area type, filtered, loading it at most once.
func (r *Resolver) GetLayer(ctx context.Context, areaType string, filter Filter) (*Layer, error) {
	key := layerKey{areaType: areaType, filter: filter.Name}
	if l, ok := r.layers[key]; ok {
		return l, nil
	}

	name := LayerName(areaType)
	r.logger.Debug("loading layer", "area_type", areaType, "layer", name, "filter", filter.Name)

	features, err := r.source.LoadLayer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load layer %s: %w", name, err)
	}

	selected := features[:0:0]
	for _, f := range features {
		if filter.matches(f) {
			selected = append(selected, f)
		}
	}

	l, err := NewLayer(name, selected)
	if err != nil {
		return nil, err
	}
	r.layers[key] = l
	return l, nil
}

// FootprintFor looks up the polygon of a named area. A missing area is not an error.
func (r *Resolver) FootprintFor(ctx context.Context, areaType, areaName string) (*geos.Geom, error) {
	l, err := r.GetLayer(ctx, areaType, AllAreas)
	if err != nil {
		return nil, err
	}
	return l.Lookup(areaName), nil
}

// InferContainment returns the names of layer areas whose intersection with the
// footprint exceeds threshold of either the area's size or the footprint's size.
func InferContainment(footprint *geos.Geom, layer *Layer, threshold float64) []string {
	if footprint == nil || footprint.IsEmpty() {
		return nil
	}
	footprintSize := footprint.Area()

	var names []string
	for _, a := range layer.Areas {
		if !footprint.Intersects(a.Geom) {
			continue
		}
		shared := footprint.Intersection(a.Geom).Area()
		if (a.Size > 0 && shared/a.Size > threshold) ||
			(footprintSize > 0 && shared/footprintSize > threshold) {
			names = append(names, a.Name)
		}
	}
	return names
}
