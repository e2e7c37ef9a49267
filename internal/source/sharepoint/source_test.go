package sharepoint

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service_alerts/internal/testutil"
)

func writePage(t *testing.T, w http.ResponseWriter, items []Item, next string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json;odata=verbose;charset=utf-8")
	require.NoError(t, json.NewEncoder(w).Encode(Response{D: Page{Results: items, Next: next}}))
}

func item(id int64) Item {
	it := rawItem()
	it.ID = id
	return it
}

func newSource(url string, attempts int) *Source {
	return New(Config{
		ItemsURL:       url,
		Username:       "svc-alerts",
		Password:       "secret",
		PageSize:       2,
		Timeout:        time.Second,
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, testutil.Logger())
}

func TestFetchAlerts_FollowsContinuation(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "svc-alerts", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, acceptVerbose, r.Header.Get("Accept"))

		switch r.URL.Path {
		case "/items":
			assert.Equal(t, "2", r.URL.Query().Get("$top"))
			unpublished := item(3)
			unpublished.PublishDate = nil
			writePage(t, w, []Item{item(1), unpublished}, srv.URL+"/items/next")
		case "/items/next":
			writePage(t, w, []Item{item(2)}, "")
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	alerts, err := newSource(srv.URL+"/items", 1).FetchAlerts(context.Background())

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "1", alerts[0].ID)
	assert.Equal(t, "2", alerts[1].ID)
}

func TestFetchAlerts_RetriesFailedPage(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writePage(t, w, []Item{item(1)}, "")
	}))
	defer srv.Close()

	alerts, err := newSource(srv.URL, 3).FetchAlerts(context.Background())

	require.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchAlerts_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newSource(srv.URL, 3).FetchAlerts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchAlerts_PageLimit(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePage(t, w, []Item{item(1)}, srv.URL+"/again")
	}))
	defer srv.Close()

	s := newSource(srv.URL, 1)
	s.maxPages = 3
	alerts, err := s.FetchAlerts(context.Background())

	require.NoError(t, err)
	assert.Len(t, alerts, 3)
}

func TestCalculateBackoff(t *testing.T) {
	s := New(Config{InitialBackoff: time.Second, MaxBackoff: 5 * time.Second}, testutil.Logger())

	assert.Equal(t, time.Second, s.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, s.calculateBackoff(2))
	assert.Equal(t, 4*time.Second, s.calculateBackoff(3))
	assert.Equal(t, 5*time.Second, s.calculateBackoff(4))
}
