package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geos"
)

func TestFormatWKT_RoundsToSixDecimals(t *testing.T) {
	g := MustParseWKT("POINT (18.4712345678 -33.9612345678)")

	text, err := FormatWKT(g)

	require.NoError(t, err)
	assert.Equal(t, "POINT(18.471235 -33.961235)", text)
}

func TestFormatWKT_RoundTrip(t *testing.T) {
	original := orb.Polygon{{
		{18.4612345678, -33.9612345678},
		{18.4798765432, -33.9612345678},
		{18.4798765432, -33.9498765432},
		{18.4612345678, -33.9498765432},
		{18.4612345678, -33.9612345678},
	}}
	g, err := FromOrb(original)
	require.NoError(t, err)

	text, err := FormatWKT(g)
	require.NoError(t, err)

	parsed, err := wkt.Unmarshal(text)
	require.NoError(t, err)
	poly, ok := parsed.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 1)
	require.Len(t, poly[0], len(original[0]))

	for i, p := range poly[0] {
		assert.LessOrEqual(t, math.Abs(p[0]-original[0][i][0]), 1.1e-6)
		assert.LessOrEqual(t, math.Abs(p[1]-original[0][i][1]), 1.1e-6)
	}

	reparsed, err := ParseWKT(text)
	require.NoError(t, err)
	assert.True(t, reparsed.IsValid())
}

func TestFormatWKT_Empty(t *testing.T) {
	_, err := FormatWKT(MustParseWKT("POLYGON EMPTY"))
	assert.ErrorIs(t, err, ErrEmptyGeometry)

	_, err = FormatWKT(nil)
	assert.ErrorIs(t, err, ErrEmptyGeometry)
}

func TestParseWKT_Invalid(t *testing.T) {
	_, err := ParseWKT("POLYGON ((not a polygon))")
	assert.Error(t, err)
}

func TestRectangle(t *testing.T) {
	r := Rectangle(-34, -33, 18, 19)

	assert.True(t, r.IsValid())
	assert.InDelta(t, 1.0, r.Area(), 1e-12)
}

func TestUnionAll(t *testing.T) {
	assert.Nil(t, UnionAll(nil))

	a := Rectangle(0, 1, 0, 1)
	b := Rectangle(0, 1, 1, 2)
	u := UnionAll([]*geos.Geom{a, b})

	assert.InDelta(t, 2.0, u.Area(), 1e-12)
	assert.InDelta(t, 1.0, UnionAll([]*geos.Geom{a}).Area(), 1e-12)
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key(Rectangle(0, 1, 0, 1)), Key(Rectangle(0, 1, 0, 1)))
	assert.NotEqual(t, Key(Rectangle(0, 1, 0, 1)), Key(Rectangle(0, 2, 0, 1)))
}
