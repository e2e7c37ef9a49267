package domain

import (
	"strconv"
	"time"
)

// Area types from the controlled vocabulary used by the alert feed.
const (
	AreaTypeSuburb               = "Official Planning Suburb"
	AreaTypeSolidWasteRegion     = "Solid Waste Regional Service Area"
	AreaTypeCitywide             = "Citywide"
	AreaTypeWard                 = "Wards"
	AreaTypeDrivingLicenceCentre = "Driving Licence Testing Centre"
)

// SAST is South African Standard Time, the zone every alert timestamp is reported in.
var SAST = time.FixedZone("SAST", 2*60*60)

// Alert is one service-alert notice. Enrichment fields are filled in by later stages.
type Alert struct {
	ID                   string     `json:"Id"`
	ServiceArea          string     `json:"service_area"`
	Title                string     `json:"title"`
	Subtitle             *string    `json:"subtitle"`
	Description          *string    `json:"description"`
	AreaType             *string    `json:"area_type"`
	Area                 *string    `json:"area"`
	Location             Field      `json:"location"`
	PublishDate          time.Time  `json:"publish_date"`
	EffectiveDate        *time.Time `json:"effective_date"`
	ExpiryDate           *time.Time `json:"expiry_date"`
	StartTimestamp       *time.Time `json:"start_timestamp"`
	ForecastEndTimestamp *time.Time `json:"forecast_end_timestamp"`
	Planned              *bool      `json:"planned"`
	Status               *string    `json:"status"`
	NotificationNumber   *string    `json:"notification_number"`
	RequestNumber        *string    `json:"request_number"`

	GeospatialFootprint *string `json:"geospatial_footprint"`
	InferredSuburbs     Field   `json:"inferred_suburbs"`
	InferredWards       Field   `json:"inferred_wards"`
	TweetText           *string `json:"tweet_text"`
	TootText            *string `json:"toot_text"`

	InputChecksum string `json:"InputChecksum,omitempty"`
}

// Values renders every column except the identifier and the checksum, in a fixed order.
func (a Alert) Values() []string {
	return []string{
		a.ServiceArea,
		a.Title,
		str(a.Subtitle),
		str(a.Description),
		str(a.AreaType),
		str(a.Area),
		a.Location.String(),
		a.PublishDate.Format(time.RFC3339Nano),
		ts(a.EffectiveDate),
		ts(a.ExpiryDate),
		ts(a.StartTimestamp),
		ts(a.ForecastEndTimestamp),
		boolean(a.Planned),
		str(a.Status),
		str(a.NotificationNumber),
		str(a.RequestNumber),
		str(a.GeospatialFootprint),
		a.InferredSuburbs.String(),
		a.InferredWards.String(),
		str(a.TweetText),
		str(a.TootText),
	}
}

// AreaTypeValue returns the area type or "" when unknown.
func (a Alert) AreaTypeValue() string { return str(a.AreaType) }

// AreaValue returns the area name or "".
func (a Alert) AreaValue() string { return str(a.Area) }

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ts(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func boolean(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
