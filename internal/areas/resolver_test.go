package areas

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"service_alerts/internal/areas/mocks"
	"service_alerts/internal/domain"
	"service_alerts/internal/geo"
	"service_alerts/internal/testutil"
)

const (
	rondebosch  = "POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))"
	claremont   = "POLYGON((10 0, 20 0, 20 10, 10 10, 10 0))"
	suburbLayer = "Official planning suburbs"
)

func suburbs() []domain.AreaFeature {
	return []domain.AreaFeature{
		{Layer: suburbLayer, Name: " RONDEBOSCH ", WKT: rondebosch},
		{Layer: suburbLayer, Name: "CLAREMONT", WKT: claremont},
	}
}

type ResolverTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	source *mocks.MockLayerSource
	ctx    context.Context
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = mocks.NewMockLayerSource(s.ctrl)
	s.ctx = context.Background()
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) TestGetLayer_Memoized() {
	s.source.EXPECT().LoadLayer(s.ctx, suburbLayer).Return(suburbs(), nil).Times(1)

	r := NewResolver(s.source, testutil.Logger())
	first, err := r.GetLayer(s.ctx, domain.AreaTypeSuburb, AllAreas)
	s.Require().NoError(err)
	second, err := r.GetLayer(s.ctx, domain.AreaTypeSuburb, AllAreas)
	s.Require().NoError(err)

	s.Same(first, second)
	s.Len(first.Areas, 2)
	s.Equal("RONDEBOSCH", first.Areas[0].Name)
	s.InDelta(100.0, first.Areas[0].Size, 1e-9)
}

func (s *ResolverTestSuite) TestGetLayer_FilterIsPartOfKey() {
	wards := []domain.AreaFeature{
		{Layer: "Wards", Name: "58", WKT: rondebosch, Attributes: map[string]any{"WARD_YEAR": float64(2021)}},
		{Layer: "Wards", Name: "58", WKT: claremont, Attributes: map[string]any{"WARD_YEAR": float64(2016)}},
	}
	s.source.EXPECT().LoadLayer(s.ctx, "Wards").Return(wards, nil).Times(2)

	r := NewResolver(s.source, testutil.Logger())
	all, err := r.GetLayer(s.ctx, domain.AreaTypeWard, AllAreas)
	s.Require().NoError(err)
	current, err := r.GetLayer(s.ctx, domain.AreaTypeWard, WardYear(2021))
	s.Require().NoError(err)
	again, err := r.GetLayer(s.ctx, domain.AreaTypeWard, WardYear(2021))
	s.Require().NoError(err)

	s.Len(all.Areas, 2)
	s.Len(current.Areas, 1)
	s.Same(current, again)
}

func (s *ResolverTestSuite) TestGetLayer_SourceError() {
	s.source.EXPECT().LoadLayer(s.ctx, suburbLayer).Return(nil, ErrLayerNotFound)

	r := NewResolver(s.source, testutil.Logger())
	_, err := r.GetLayer(s.ctx, domain.AreaTypeSuburb, AllAreas)

	s.ErrorIs(err, ErrLayerNotFound)
}

func (s *ResolverTestSuite) TestGetLayer_InvalidGeometry() {
	s.source.EXPECT().LoadLayer(s.ctx, suburbLayer).Return([]domain.AreaFeature{
		{Name: "BROKEN", WKT: "POLYGON((0 0"},
	}, nil)

	r := NewResolver(s.source, testutil.Logger())
	_, err := r.GetLayer(s.ctx, domain.AreaTypeSuburb, AllAreas)

	s.Error(err)
	s.Contains(err.Error(), "BROKEN")
}

func (s *ResolverTestSuite) TestFootprintFor() {
	s.source.EXPECT().LoadLayer(s.ctx, suburbLayer).Return(suburbs(), nil).Times(1)

	r := NewResolver(s.source, testutil.Logger())
	g, err := r.FootprintFor(s.ctx, domain.AreaTypeSuburb, "RONDEBOSCH")
	s.Require().NoError(err)
	s.Require().NotNil(g)
	s.True(g.Equals(geo.MustParseWKT(rondebosch)))

	missing, err := r.FootprintFor(s.ctx, domain.AreaTypeSuburb, "ATLANTIS")
	s.Require().NoError(err)
	s.Nil(missing)
}

func TestLayerName(t *testing.T) {
	assert.Equal(t, "Official planning suburbs", LayerName(domain.AreaTypeSuburb))
	assert.Equal(t, "Solid Waste service areas", LayerName(domain.AreaTypeSolidWasteRegion))
	assert.Equal(t, "City boundary", LayerName(domain.AreaTypeCitywide))
	assert.Equal(t, "Wards", LayerName(domain.AreaTypeWard))
	assert.True(t, IsExcluded(domain.AreaTypeDrivingLicenceCentre))
	assert.False(t, IsExcluded(domain.AreaTypeSuburb))
}

func TestFilters(t *testing.T) {
	f := domain.AreaFeature{Name: "Rondebosch East", Attributes: map[string]any{"WARD_YEAR": "2021"}}

	assert.True(t, AllAreas.matches(f))
	assert.True(t, WardYear(2021).matches(f))
	assert.False(t, WardYear(2016).matches(f))
	assert.False(t, AttributeEquals("MISSING", 1).matches(f))
}

func TestInferContainment_Threshold(t *testing.T) {
	layer, err := NewLayer("test", []domain.AreaFeature{{Name: "P", WKT: rondebosch}})
	require.NoError(t, err)

	// 0.5 of P's 100 units and 0.5/205 of the footprint: neither exceeds 0.05.
	below := geo.MustParseWKT("POLYGON((9.5 0, 30 0, 30 10, 9.5 10, 9.5 0))")
	assert.Empty(t, InferContainment(below, layer, InferenceThreshold))

	// 0.06 of P.
	above := geo.MustParseWKT("POLYGON((9.4 0, 30 0, 30 10, 9.4 10, 9.4 0))")
	assert.Equal(t, []string{"P"}, InferContainment(above, layer, InferenceThreshold))
}

func TestInferContainment_SmallFootprintInsideLargeArea(t *testing.T) {
	layer, err := NewLayer("test", []domain.AreaFeature{
		{Name: "BIG", WKT: "POLYGON((0 0, 1000 0, 1000 1000, 0 1000, 0 0))"},
		{Name: "ELSEWHERE", WKT: "POLYGON((2000 0, 3000 0, 3000 1000, 2000 1000, 2000 0))"},
	})
	require.NoError(t, err)

	fp := geo.MustParseWKT("POLYGON((1 1, 2 1, 2 2, 1 2, 1 1))")
	assert.Equal(t, []string{"BIG"}, InferContainment(fp, layer, InferenceThreshold))
}

func TestInferContainment_Empty(t *testing.T) {
	layer, err := NewLayer("test", []domain.AreaFeature{{Name: "P", WKT: rondebosch}})
	require.NoError(t, err)

	assert.Nil(t, InferContainment(nil, layer, InferenceThreshold))
}

func TestLayer_MatchFoldAndIntersecting(t *testing.T) {
	layer, err := NewLayer(suburbLayer, suburbs())
	require.NoError(t, err)

	assert.Len(t, layer.MatchFold("rondebosch"), 1)
	assert.Empty(t, layer.MatchFold("rondebosch east"))

	line := geo.MustParseWKT("LINESTRING(5 5, 15 5)")
	got := layer.Intersecting(line)
	require.Len(t, got, 2)
	assert.Equal(t, "RONDEBOSCH", got[0].Name)

}
