// Package geo wraps the geometry engine with the conventions the pipeline relies on:
// degree-based margins around Cape Town and a fixed six decimal WKT encoding.
package geo

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/twpayne/go-geos"
)

const (
	// LocationBuffer is about 10m in decimal degrees at Cape Town's latitude.
	LocationBuffer = 0.0001
	// AreaBuffer is about 1km in decimal degrees at Cape Town's latitude.
	AreaBuffer = 0.01
	// QuadSegs is the number of segments per quarter circle used when buffering.
	QuadSegs = 16
	// RoundingFactor keeps six decimal places (~0.1m).
	RoundingFactor = 1e6
)

var ErrEmptyGeometry = errors.New("empty geometry")

// ParseWKT parses well-known text into a geometry.
func ParseWKT(text string) (*geos.Geom, error) {
	g, err := geos.NewGeomFromWKT(text)
	if err != nil {
		return nil, fmt.Errorf("parse wkt: %w", err)
	}
	return g, nil
}

// MustParseWKT is ParseWKT for fixtures.
func MustParseWKT(text string) *geos.Geom {
	g, err := ParseWKT(text)
	if err != nil {
		panic(err)
	}
	return g
}

// FormatWKT renders a geometry as WKT with coordinates rounded to six decimals.
func FormatWKT(g *geos.Geom) (string, error) {
	og, err := ToOrb(g)
	if err != nil {
		return "", err
	}
	return wkt.MarshalString(orb.Round(og, RoundingFactor)), nil
}

// ToOrb converts an engine geometry to its orb representation.
func ToOrb(g *geos.Geom) (orb.Geometry, error) {
	if g == nil || g.IsEmpty() {
		return nil, ErrEmptyGeometry
	}
	og, err := wkb.Unmarshal(g.ToWKB())
	if err != nil {
		return nil, fmt.Errorf("decode wkb: %w", err)
	}
	return og, nil
}

// FromOrb converts an orb geometry, for example one decoded from GeoJSON, to the engine.
func FromOrb(og orb.Geometry) (*geos.Geom, error) {
	data, err := wkb.Marshal(og)
	if err != nil {
		return nil, fmt.Errorf("encode wkb: %w", err)
	}
	g, err := geos.NewGeomFromWKB(data)
	if err != nil {
		return nil, fmt.Errorf("parse wkb: %w", err)
	}
	return g, nil
}

// Rectangle builds the polygon spanned by a bounding box.
func Rectangle(south, north, west, east float64) *geos.Geom {
	return geos.NewPolygon([][][]float64{{
		{west, south},
		{east, south},
		{east, north},
		{west, north},
		{west, south},
	}})
}

// UnionAll merges geometries into one. It returns nil for an empty input.
func UnionAll(geoms []*geos.Geom) *geos.Geom {
	switch len(geoms) {
	case 0:
		return nil
	case 1:
		return geoms[0].UnaryUnion()
	}
	parts := make([]*geos.Geom, len(geoms))
	for i, g := range geoms {
		parts[i] = g.Clone()
	}
	return geos.NewCollection(geos.TypeIDGeometryCollection, parts).UnaryUnion()
}

// Key identifies a geometry by its binary encoding, for de-duplication.
func Key(g *geos.Geom) string {
	return string(g.ToWKB())
}
