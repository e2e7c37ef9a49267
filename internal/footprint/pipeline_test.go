package footprint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"service_alerts/internal/areas"
	areamocks "service_alerts/internal/areas/mocks"
	"service_alerts/internal/domain"
	"service_alerts/internal/footprint/mocks"
	"service_alerts/internal/geo"
	"service_alerts/internal/geocode"
	geomocks "service_alerts/internal/geocode/mocks"
	"service_alerts/internal/testutil"
)

func TestApply_StreetInsideSuburb(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	layers := areamocks.NewMockLayerSource(ctrl)
	layers.EXPECT().LoadLayer(ctx, "Official planning suburbs").Return([]domain.AreaFeature{
		{Name: "Rondebosch ", WKT: rondeboschWKT},
	}, nil)
	layers.EXPECT().LoadLayer(ctx, "Wards").Return([]domain.AreaFeature{
		{Name: "58", WKT: ward58WKT, Attributes: map[string]any{"WARD_YEAR": float64(2021)}},
	}, nil)

	mainRoad := geo.MustParseWKT("LINESTRING(18.47 -33.965, 18.47 -33.955)")
	streets := geomocks.NewMockStreetSource(ctrl)
	streets.EXPECT().Segments(ctx).Return([]geocode.Segment{{Name: "Main Road", Geom: mainRoad}}, nil)
	external := geomocks.NewMockExternalGeocoder(ctrl)

	extractor := mocks.NewMockLocationExtractor(ctrl)
	extractor.EXPECT().Locations(ctx, gomock.Eq(testutil.Ptr("Rondebosch")), "Main Road").
		Return([][]string{{"Main Road, Rondebosch"}}, nil)

	resolver := areas.NewResolver(layers, testutil.Logger())
	geocoder := geocode.New(resolver, streets, external, nil, testutil.Logger())
	aggregator := NewAggregator(resolver, extractor, geocoder, testutil.Logger())

	alerts := []domain.Alert{testutil.Alert("1", 1)}
	summary, err := aggregator.Apply(ctx, alerts)

	require.NoError(t, err)
	assert.Equal(t, Summary{Resolved: 1}, summary)
	require.NotNil(t, alerts[0].GeospatialFootprint)

	bounding := geo.MustParseWKT(rondeboschWKT)
	want := mainRoad.Buffer(geo.LocationBuffer, geo.QuadSegs).
		Intersection(bounding.Buffer(geo.AreaBuffer, geo.QuadSegs))
	got := geo.MustParseWKT(*alerts[0].GeospatialFootprint)
	assert.InDelta(t, want.Area(), got.Area(), 1e-8)
	assert.True(t, bounding.Buffer(geo.AreaBuffer, geo.QuadSegs).Buffer(1e-6, geo.QuadSegs).Covers(got))
}
