package geocode

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-geos"

	"service_alerts/internal/geo"
)

const (
	DefaultStreetsKey  = "streets-lookup/cct_combined_roads.geojson"
	streetNameProperty = "street_name"
)

// Segment is one piece of a named road.
type Segment struct {
	Name string
	Geom *geos.Geom
}

// StreetLookup downloads the street segments once and serves them for the rest of the run.
type StreetLookup struct {
	downloader Downloader
	key        string
	logger     *slog.Logger
	segments   []Segment
	loaded     bool
}

func NewStreetLookup(downloader Downloader, key string, logger *slog.Logger) *StreetLookup {
	if key == "" {
		key = DefaultStreetsKey
	}
	return &StreetLookup{
		downloader: downloader,
		key:        key,
		logger:     logger.With("component", "streets"),
	}
}

func (s *StreetLookup) Segments(ctx context.Context) ([]Segment, error) {
	if s.loaded {
		return s.segments, nil
	}

	data, err := s.downloader.Download(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("download streets %s: %w", s.key, err)
	}

	segments, err := ParseStreets(data)
	if err != nil {
		return nil, fmt.Errorf("parse streets %s: %w", s.key, err)
	}

	s.logger.Info("street lookup loaded", "key", s.key, "segments", len(segments))
	s.segments = segments
	s.loaded = true
	return segments, nil
}

// ParseStreets decodes a GeoJSON feature collection of road segments.
// Features without a street name are skipped.
func ParseStreets(data []byte) ([]Segment, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal feature collection: %w", err)
	}

	segments := make([]Segment, 0, len(fc.Features))
	for i, f := range fc.Features {
		name := f.Properties.MustString(streetNameProperty, "")
		if name == "" || f.Geometry == nil {
			continue
		}
		g, err := geo.FromOrb(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d (%s): %w", i, name, err)
		}
		segments = append(segments, Segment{Name: name, Geom: g})
	}
	return segments, nil
}

// LocalFiles serves keys from a directory on disk.
type LocalFiles struct {
	Root string
}

func (l LocalFiles) Download(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.Root, filepath.FromSlash(strings.TrimPrefix(key, "/"))))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}
