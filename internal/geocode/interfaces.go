package geocode

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"service_alerts/internal/areas"
)

// ExternalGeocoder looks an address up in a third-party service. A nil result means no match.
type ExternalGeocoder interface {
	Geocode(ctx context.Context, address string) (*Result, error)
}

// StreetSource provides the named road segments used for fuzzy street matching.
type StreetSource interface {
	Segments(ctx context.Context) ([]Segment, error)
}

// Layers resolves reference layers, typically an *areas.Resolver.
type Layers interface {
	GetLayer(ctx context.Context, areaType string, filter areas.Filter) (*areas.Layer, error)
}

// Downloader fetches an object by key.
type Downloader interface {
	Download(ctx context.Context, key string) ([]byte, error)
}
