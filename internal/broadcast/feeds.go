// Package broadcast partitions enriched alerts into the public feeds.
package broadcast

import (
	"time"

	"service_alerts/internal/domain"
)

// Window selects alerts by how recently they expired.
type Window string

const (
	// WindowAll keeps every alert with an expiry date.
	WindowAll Window = "all"
	// WindowWeek keeps alerts that expired within the last seven days or have not expired.
	WindowWeek Window = "7days"
	// WindowCurrent keeps alerts that have not expired.
	WindowCurrent Window = "current"
)

const weekWindow = 7 * 24 * time.Hour

var windows = []Window{WindowAll, WindowWeek, WindowCurrent}

// Feed is one snapshot of the alerts in a window, split by planned flag.
type Feed struct {
	Window  Window
	Planned bool
	Records []Record
}

// Name is the path the feed is published under, e.g. "service-alerts/current/planned".
func (f Feed) Name() string {
	planned := "unplanned"
	if f.Planned {
		planned = "planned"
	}
	return "service-alerts/" + string(f.Window) + "/" + planned
}

// Record is the public projection of an alert. Checksums and internal fields are left out.
type Record struct {
	ID                   string       `json:"Id"`
	ServiceArea          string       `json:"service_area"`
	Title                string       `json:"title"`
	Description          *string      `json:"description"`
	Area                 *string      `json:"area"`
	Location             domain.Field `json:"location"`
	PublishDate          time.Time    `json:"publish_date"`
	EffectiveDate        *time.Time   `json:"effective_date"`
	ExpiryDate           *time.Time   `json:"expiry_date"`
	StartTimestamp       *time.Time   `json:"start_timestamp"`
	ForecastEndTimestamp *time.Time   `json:"forecast_end_timestamp"`
	Planned              bool         `json:"planned"`
	RequestNumber        *string      `json:"request_number"`
	TweetText            *string      `json:"tweet_text"`
	TootText             *string      `json:"toot_text"`
	Status               *string      `json:"status"`
	AreaType             *string      `json:"area_type"`
	GeospatialFootprint  *string      `json:"geospatial_footprint"`
	InferredWards        []string     `json:"inferred_wards"`
	InferredSuburbs      []string     `json:"inferred_suburbs"`
}

func newRecord(a domain.Alert) Record {
	return Record{
		ID:                   a.ID,
		ServiceArea:          a.ServiceArea,
		Title:                a.Title,
		Description:          a.Description,
		Area:                 a.Area,
		Location:             a.Location,
		PublishDate:          a.PublishDate,
		EffectiveDate:        a.EffectiveDate,
		ExpiryDate:           a.ExpiryDate,
		StartTimestamp:       a.StartTimestamp,
		ForecastEndTimestamp: a.ForecastEndTimestamp,
		Planned:              *a.Planned,
		RequestNumber:        a.RequestNumber,
		TweetText:            a.TweetText,
		TootText:             a.TootText,
		Status:               a.Status,
		AreaType:             a.AreaType,
		GeospatialFootprint:  a.GeospatialFootprint,
		InferredWards:        a.InferredWards.Values(),
		InferredSuburbs:      a.InferredSuburbs.Values(),
	}
}

// Feeds partitions alerts into one feed per window and planned flag, in a fixed order:
// all, 7days, current, each planned then unplanned. An alert belongs to a window when it
// expires strictly after the window start. The start of WindowAll is one day before the
// earliest expiry date. Alerts without an expiry date or a planned flag are in no feed.
func Feeds(alerts []domain.Alert, now time.Time) []Feed {
	feeds := make([]Feed, 0, len(windows)*2)
	for _, w := range windows {
		start, ok := windowStart(w, alerts, now)
		for _, planned := range []bool{true, false} {
			feed := Feed{Window: w, Planned: planned, Records: []Record{}}
			for _, a := range alerts {
				if !ok || a.ExpiryDate == nil || a.Planned == nil || *a.Planned != planned {
					continue
				}
				if a.ExpiryDate.After(start) {
					feed.Records = append(feed.Records, newRecord(a))
				}
			}
			feeds = append(feeds, feed)
		}
	}
	return feeds
}

func windowStart(w Window, alerts []domain.Alert, now time.Time) (time.Time, bool) {
	switch w {
	case WindowWeek:
		return now.Add(-weekWindow), true
	case WindowCurrent:
		return now, true
	}

	var earliest *time.Time
	for _, a := range alerts {
		if a.ExpiryDate != nil && (earliest == nil || a.ExpiryDate.Before(*earliest)) {
			earliest = a.ExpiryDate
		}
	}
	if earliest == nil {
		return time.Time{}, false
	}
	return earliest.Add(-24 * time.Hour), true
}
