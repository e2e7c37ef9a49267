package sharepoint

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"service_alerts/internal/domain"
)

// ErrNoPublishDate marks rows that were never published and are dropped.
var ErrNoPublishDate = errors.New("missing publish date")

var (
	notificationRe = regexp.MustCompile(`^\d{10}$`)
	hourMinuteRe   = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Clean converts a raw row into an alert. Rows without a publish date are rejected.
func Clean(item Item) (domain.Alert, error) {
	if blank(item.PublishDate) {
		return domain.Alert{}, fmt.Errorf("item %d: %w", item.ID, ErrNoPublishDate)
	}
	published, err := parseDate(*item.PublishDate)
	if err != nil {
		return domain.Alert{}, fmt.Errorf("item %d: publish date: %w", item.ID, err)
	}

	alert := domain.Alert{
		ID:                 strconv.FormatInt(item.ID, 10),
		ServiceArea:        value(item.ServiceArea),
		Title:              value(item.Title),
		Subtitle:           item.Subtitle,
		Description:        item.Description,
		AreaType:           item.AreaType,
		Area:               item.Area,
		Location:           location(item),
		PublishDate:        published,
		Planned:            planned(item.PlannedUnplanned),
		Status:             item.Status,
		NotificationNumber: notificationNumber(item.ReferenceNo),
	}

	if alert.EffectiveDate, err = optionalDate(item.EffectiveDate); err != nil {
		return domain.Alert{}, fmt.Errorf("item %d: effective date: %w", item.ID, err)
	}
	expiry, err := optionalDate(item.ExpiryDate)
	if err != nil {
		return domain.Alert{}, fmt.Errorf("item %d: expiry date: %w", item.ID, err)
	}
	if expiry != nil {
		// expiry is the day after which the alert no longer applies
		next := expiry.AddDate(0, 0, 1)
		alert.ExpiryDate = &next
	}

	alert.StartTimestamp = startTimestamp(alert.EffectiveDate, item.StartTime)
	alert.ForecastEndTimestamp = forecastEnd(expiry, alert.StartTimestamp, item.ForecastEndTime)

	return alert, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t.In(domain.SAST), nil
}

func optionalDate(s *string) (*time.Time, error) {
	if blank(s) {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func planned(s *string) *bool {
	switch value(s) {
	case "Planned":
		v := true
		return &v
	case "Unplanned":
		v := false
		return &v
	default:
		return nil
	}
}

// notificationNumber zero-pads ten digit references to the twelve digit notification form.
func notificationNumber(ref *string) *string {
	v := value(ref)
	if !notificationRe.MatchString(v) {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	out := fmt.Sprintf("%012d", n)
	return &out
}

// clockTime parses an "HH:MM" picker value. "60" minutes are clamped and an unset picker is midnight.
func clockTime(raw string) (int, int, bool) {
	v := strings.ReplaceAll(raw, "60", "59")
	v = strings.ReplaceAll(v, "Select...", "00")
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}

func startTimestamp(effective *time.Time, raw *string) *time.Time {
	if effective == nil || raw == nil {
		return nil
	}
	h, m, ok := clockTime(*raw)
	if !ok {
		return nil
	}
	ts := time.Date(effective.Year(), effective.Month(), effective.Day(), h, m, 0, 0, domain.SAST)
	return &ts
}

// forecastEnd places the end time on the expiry day, rolling over to the next day
// when it does not come after the start.
func forecastEnd(expiry, start *time.Time, raw *string) *time.Time {
	if expiry == nil || raw == nil || !hourMinuteRe.MatchString(*raw) {
		return nil
	}
	h, m, ok := clockTime(*raw)
	if !ok {
		return nil
	}
	ts := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), h, m, 0, 0, domain.SAST)
	if start != nil && !ts.After(*start) {
		ts = ts.AddDate(0, 0, 1)
	}
	return &ts
}

// location prefers the free-text address unless it repeats the description,
// then falls back to the controlled location field.
func location(item Item) domain.Field {
	addr, desc := value(item.AddressLocation), value(item.Description)
	if addr != "" && desc != "" && !overlaps(addr, desc) {
		return domain.ParseField(addr)
	}
	return domain.ParseField(value(item.AllLocationSelected))
}

func overlaps(a, b string) bool {
	n := min(len(a), len(b))
	return a[:n] == b[:n]
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
