package geocode

import (
	"fmt"

	"github.com/twpayne/go-geos"

	"service_alerts/internal/geo"
)

// Result is a single external geocoder match.
type Result struct {
	// GeoText is the WKT of the matched feature.
	GeoText string
	// BoundingBox is south, north, west, east.
	BoundingBox []float64
}

// Shape turns a match into an outage shape. Points are too imprecise, so they are
// replaced by their bounding box; everything else is buffered by geo.LocationBuffer.
func (r *Result) Shape() (*geos.Geom, error) {
	g, err := geo.ParseWKT(r.GeoText)
	if err != nil {
		return nil, err
	}

	switch g.TypeID() {
	case geos.TypeIDPoint, geos.TypeIDMultiPoint:
		if len(r.BoundingBox) != 4 {
			return nil, fmt.Errorf("point result without bounding box: %v", r.BoundingBox)
		}
		bb := r.BoundingBox
		return geo.Rectangle(bb[0], bb[1], bb[2], bb[3]), nil
	default:
		return g.Buffer(geo.LocationBuffer, geo.QuadSegs), nil
	}
}
