package areas

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"

	"service_alerts/internal/domain"
)

var nameProperties = map[string]string{
	"Official planning suburbs": "OFC_SBRB_NAME",
	"Solid Waste service areas": "AREA_NAME",
	"City boundary":             "CITY_NAME",
	"Wards":                     "WARD_NAME",
}

// NameProperty returns the feature property holding area names for a layer.
func NameProperty(layer string) string {
	if p, ok := nameProperties[layer]; ok {
		return p
	}
	return "name"
}

// ParseGeoJSON converts a FeatureCollection into stored features of layer.
// Every feature must carry a name under NameProperty(layer).
func ParseGeoJSON(layer string, data []byte) ([]domain.AreaFeature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal feature collection: %w", err)
	}

	prop := NameProperty(layer)
	features := make([]domain.AreaFeature, 0, len(fc.Features))
	for i, f := range fc.Features {
		name := strings.TrimSpace(f.Properties.MustString(prop, ""))
		if name == "" {
			return nil, fmt.Errorf("feature %d: missing %s", i, prop)
		}
		if f.Geometry == nil {
			return nil, fmt.Errorf("feature %d (%s): missing geometry", i, name)
		}
		features = append(features, domain.AreaFeature{
			Layer:      layer,
			Name:       name,
			WKT:        wkt.MarshalString(f.Geometry),
			Attributes: map[string]any(f.Properties),
		})
	}
	return features, nil
}
