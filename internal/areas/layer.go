package areas

import (
	"fmt"
	"strings"

	"github.com/twpayne/go-geos"

	"service_alerts/internal/domain"
	"service_alerts/internal/geo"
)

// Area is one polygon of a layer with its planar area precomputed.
type Area struct {
	Name       string
	Geom       *geos.Geom
	Size       float64
	Attributes map[string]any
}

// Layer is an immutable set of named areas.
type Layer struct {
	Name   string
	Areas  []Area
	byName map[string]int
}

// NewLayer parses the features of a layer. Names are trimmed of surrounding whitespace.
func NewLayer(name string, features []domain.AreaFeature) (*Layer, error) {
	l := &Layer{
		Name:   name,
		Areas:  make([]Area, 0, len(features)),
		byName: make(map[string]int, len(features)),
	}
	for _, f := range features {
		g, err := geo.ParseWKT(f.WKT)
		if err != nil {
			return nil, fmt.Errorf("layer %s area %q: %w", name, f.Name, err)
		}
		areaName := strings.TrimSpace(f.Name)
		l.byName[areaName] = len(l.Areas)
		l.Areas = append(l.Areas, Area{
			Name:       areaName,
			Geom:       g,
			Size:       g.Area(),
			Attributes: f.Attributes,
		})
	}
	return l, nil
}

// Lookup returns the polygon of the named area, or nil.
func (l *Layer) Lookup(name string) *geos.Geom {
	i, ok := l.byName[strings.TrimSpace(name)]
	if !ok {
		return nil
	}
	return l.Areas[i].Geom
}

// MatchFold returns the areas whose name equals name, ignoring case.
func (l *Layer) MatchFold(name string) []Area {
	var out []Area
	for _, a := range l.Areas {
		if strings.EqualFold(a.Name, name) {
			out = append(out, a)
		}
	}
	return out
}

// Intersecting returns the areas that intersect g, in layer order.
func (l *Layer) Intersecting(g *geos.Geom) []Area {
	var out []Area
	for _, a := range l.Areas {
		if a.Geom.Intersects(g) {
			out = append(out, a)
		}
	}
	return out
}
