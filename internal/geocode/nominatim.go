package geocode

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	DefaultUserAgent    = "cct-service-alert-pipeline"
	DefaultTimeout      = 5 * time.Second
)

type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// Interval is the minimum spacing between requests.
	Interval time.Duration
	// Limiter, when set, is shared with other geocoders of the same process and Interval is ignored.
	Limiter *rate.Limiter
}

type place struct {
	GeoText     string   `json:"geotext"`
	BoundingBox []string `json:"boundingbox"`
}

// Nominatim is an ExternalGeocoder backed by the OpenStreetMap search API.
// Results, including misses, are memoized per address for the lifetime of the value.
type Nominatim struct {
	client  *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
	memo    map[string]*Result
}

func NewNominatim(cfg NominatimConfig, logger *slog.Logger) *Nominatim {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultNominatimURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Interval == 0 {
		cfg.Interval = time.Second
	}

	limiter := cfg.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(cfg.Interval), 1)
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	return &Nominatim{
		client:  client,
		limiter: limiter,
		logger:  logger.With("component", "nominatim"),
		memo:    make(map[string]*Result),
	}
}

func (n *Nominatim) Geocode(ctx context.Context, address string) (*Result, error) {
	if r, ok := n.memo[address]; ok {
		return r, nil
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limit: %w", err)
	}

	var places []place
	resp, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":            address,
			"format":       "json",
			"limit":        "1",
			"polygon_text": "1",
		}).
		SetResult(&places).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", address, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search %q: unexpected status %d", address, resp.StatusCode())
	}

	var result *Result
	if len(places) > 0 {
		result, err = places[0].result()
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", address, err)
		}
	}

	n.logger.Debug("geocoded", "address", address, "found", result != nil)
	n.memo[address] = result
	return result, nil
}

func (p place) result() (*Result, error) {
	bbox := make([]float64, 0, len(p.BoundingBox))
	for _, v := range p.BoundingBox {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse bounding box %v: %w", p.BoundingBox, err)
		}
		bbox = append(bbox, f)
	}
	return &Result{GeoText: p.GeoText, BoundingBox: bbox}, nil
}
