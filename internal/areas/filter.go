package areas

import (
	"fmt"

	"service_alerts/internal/domain"
)

// Filter is a named predicate over layer features. The name is part of the
// memoization key, so two filters with the same name must select the same rows.
type Filter struct {
	Name  string
	Match func(domain.AreaFeature) bool
}

// AllAreas selects every feature.
var AllAreas = Filter{Name: "all"}

func (f Filter) matches(feature domain.AreaFeature) bool {
	return f.Match == nil || f.Match(feature)
}

// AttributeEquals selects features whose attribute renders as value.
func AttributeEquals(key string, value any) Filter {
	want := fmt.Sprint(value)
	return Filter{
		Name: fmt.Sprintf("%s == %s", key, want),
		Match: func(f domain.AreaFeature) bool {
			v, ok := f.Attributes[key]
			return ok && fmt.Sprint(v) == want
		},
	}
}

// WardYear selects the ward delimitation of the given year.
func WardYear(year int) Filter {
	return AttributeEquals("WARD_YEAR", year)
}
