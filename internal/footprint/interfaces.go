package footprint

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/twpayne/go-geos"

	"service_alerts/internal/areas"
)

// LocationExtractor suggests candidate location strings for an alert. The outer list
// holds distinct sub-locations, each inner list holds variants ranked best-first.
// area is nil when the area should not be used as context.
type LocationExtractor interface {
	Locations(ctx context.Context, area *string, location string) ([][]string, error)
}

// LocationResolver turns one location string into a shape inside bounding, or nil.
type LocationResolver interface {
	Resolve(ctx context.Context, location string, bounding *geos.Geom) (*geos.Geom, error)
}

// Areas resolves reference layers and area-level polygons.
type Areas interface {
	GetLayer(ctx context.Context, areaType string, filter areas.Filter) (*areas.Layer, error)
	FootprintFor(ctx context.Context, areaType, areaName string) (*geos.Geom, error)
}
