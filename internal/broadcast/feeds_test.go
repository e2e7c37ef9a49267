package broadcast

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service_alerts/internal/domain"
	"service_alerts/internal/testutil"
)

var now = time.Date(2024, 3, 21, 12, 0, 0, 0, domain.SAST)

func alert(id string, expiry *time.Time, planned *bool) domain.Alert {
	a := testutil.Alert(id, 0)
	a.ExpiryDate = expiry
	a.Planned = planned
	return a
}

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func ids(f Feed) []string {
	out := make([]string, len(f.Records))
	for i, r := range f.Records {
		out[i] = r.ID
	}
	return out
}

func TestFeeds_Windows(t *testing.T) {
	planned, unplanned := testutil.Ptr(true), testutil.Ptr(false)
	alerts := []domain.Alert{
		alert("month-ago", at(-30*24*time.Hour), planned),
		alert("five-days-ago", at(-5*24*time.Hour), unplanned),
		alert("week-ago", at(-7*24*time.Hour), planned),
		alert("now", at(0), planned),
		alert("later", at(time.Hour), unplanned),
		alert("no-expiry", nil, planned),
		alert("no-planned", at(time.Hour), nil),
	}

	feeds := Feeds(alerts, now)
	require.Len(t, feeds, 6)

	tests := []struct {
		name string
		want []string
	}{
		{"service-alerts/all/planned", []string{"month-ago", "week-ago", "now"}},
		{"service-alerts/all/unplanned", []string{"five-days-ago", "later"}},
		{"service-alerts/7days/planned", []string{"now"}},
		{"service-alerts/7days/unplanned", []string{"five-days-ago", "later"}},
		{"service-alerts/current/planned", []string{}},
		{"service-alerts/current/unplanned", []string{"later"}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, feeds[i].Name())
			assert.Equal(t, tt.want, ids(feeds[i]))
		})
	}
}

func TestFeeds_AllWindowStartsADayBeforeEarliestExpiry(t *testing.T) {
	alerts := []domain.Alert{
		alert("earliest", at(-100*24*time.Hour), testutil.Ptr(false)),
		alert("same-day", at(-100*24*time.Hour+time.Minute), testutil.Ptr(false)),
	}

	feeds := Feeds(alerts, now)

	assert.Equal(t, WindowAll, feeds[1].Window)
	assert.False(t, feeds[1].Planned)
	assert.Equal(t, []string{"earliest", "same-day"}, ids(feeds[1]))
}

func TestFeeds_NoExpiryDates(t *testing.T) {
	feeds := Feeds([]domain.Alert{alert("1", nil, testutil.Ptr(true))}, now)

	require.Len(t, feeds, 6)
	for _, f := range feeds {
		assert.NotNil(t, f.Records)
		assert.Empty(t, f.Records)
	}

	body, err := json.Marshal(feeds[0].Records)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestFeeds_Projection(t *testing.T) {
	a := alert("1", at(time.Hour), testutil.Ptr(true))
	a.RequestNumber = testutil.Ptr("9115677540")
	a.InputChecksum = "abc"
	a.InferredWards = domain.List("58", "59")
	a.InferredSuburbs = domain.Scalar("Rondebosch")
	a.TweetText = testutil.Ptr("Burst pipe in Rondebosch")

	feeds := Feeds([]domain.Alert{a}, now)
	require.Len(t, feeds[4].Records, 1)
	r := feeds[4].Records[0]

	assert.Equal(t, "9115677540", *r.RequestNumber)
	assert.Equal(t, []string{"58", "59"}, r.InferredWards)
	assert.Equal(t, []string{"Rondebosch"}, r.InferredSuburbs)
	assert.Equal(t, domain.Scalar("Main Road"), r.Location)
	assert.True(t, r.Planned)

	body, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "abc")
	assert.Contains(t, string(body), `"request_number":"9115677540"`)
}
