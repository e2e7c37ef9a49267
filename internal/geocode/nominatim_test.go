package geocode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service_alerts/internal/geocode"
	"service_alerts/internal/testutil"
)

func newNominatim(t *testing.T, handler http.HandlerFunc) (*geocode.Nominatim, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	n := geocode.NewNominatim(geocode.NominatimConfig{
		BaseURL:  srv.URL,
		Interval: time.Millisecond,
	}, testutil.Logger())
	return n, &calls
}

func TestNominatim_PointResultMemoized(t *testing.T) {
	n, calls := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Main Road, Cape Town", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("polygon_text"))
		assert.Equal(t, geocode.DefaultUserAgent, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"geotext":"POINT(18.47 -33.96)","boundingbox":["-33.961","-33.959","18.469","18.471"]}]`))
	})
	ctx := context.Background()

	first, err := n.Geocode(ctx, "Main Road, Cape Town")
	require.NoError(t, err)
	second, err := n.Geocode(ctx, "Main Road, Cape Town")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, "POINT(18.47 -33.96)", first.GeoText)
	assert.Equal(t, []float64{-33.961, -33.959, 18.469, 18.471}, first.BoundingBox)

	shape, err := first.Shape()
	require.NoError(t, err)
	assert.InDelta(t, 0.002*0.002, shape.Area(), 1e-10)
}

func TestNominatim_MissIsMemoized(t *testing.T) {
	n, calls := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	ctx := context.Background()

	for range 3 {
		got, err := n.Geocode(ctx, "Nowhere, Cape Town")
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestNominatim_ErrorsAreNotMemoized(t *testing.T) {
	n, calls := newNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	ctx := context.Background()

	_, err := n.Geocode(ctx, "Main Road, Cape Town")
	require.Error(t, err)
	_, err = n.Geocode(ctx, "Main Road, Cape Town")
	require.Error(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestNominatim_RateLimited(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	n := geocode.NewNominatim(geocode.NominatimConfig{
		BaseURL:  srv.URL,
		Interval: 100 * time.Millisecond,
	}, testutil.Logger())

	start := time.Now()
	for _, q := range []string{"a", "b", "c"} {
		_, err := n.Geocode(context.Background(), q)
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestResult_Shape(t *testing.T) {
	line := &geocode.Result{GeoText: "LINESTRING(18.47 -33.965, 18.47 -33.955)"}
	g, err := line.Shape()
	require.NoError(t, err)
	assert.Greater(t, g.Area(), 0.0)

	noBox := &geocode.Result{GeoText: "POINT(18.47 -33.96)"}
	_, err = noBox.Shape()
	assert.Error(t, err)

	bad := &geocode.Result{GeoText: "not wkt"}
	_, err = bad.Shape()
	assert.Error(t, err)
}
