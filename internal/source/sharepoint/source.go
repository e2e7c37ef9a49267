package sharepoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"service_alerts/internal/domain"
)

const (
	SourceID   = "sharepoint"
	SourceName = "CCT Service Alerts list"

	acceptVerbose = "application/json;odata=verbose"
)

type Config struct {
	// ItemsURL is the list items endpoint, e.g. .../_api/web/lists/getbytitle('Service Alerts')/items
	ItemsURL       string
	Username       string
	Password       string
	PageSize       int
	MaxPages       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source pages through the SharePoint list and cleans every row into an alert.
type Source struct {
	client         *resty.Client
	itemsURL       string
	pageSize       int
	maxPages       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", acceptVerbose).
		SetHeader("User-Agent", "cct-service-alert-pipeline")
	if cfg.Username != "" {
		client.SetBasicAuth(cfg.Username, cfg.Password)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	return &Source{
		client:         client,
		itemsURL:       cfg.ItemsURL,
		pageSize:       cfg.PageSize,
		maxPages:       cfg.MaxPages,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// FetchAlerts follows the continuation links until the list is exhausted or
// MaxPages pages have been read. Rows that cannot be cleaned are skipped.
func (s *Source) FetchAlerts(ctx context.Context) ([]domain.Alert, error) {
	var items []Item
	next := s.firstPageURL()

	for page := 0; next != ""; page++ {
		if s.maxPages > 0 && page >= s.maxPages {
			s.logger.Warn("page limit reached", "pages", page)
			break
		}

		resp, err := s.fetchPage(ctx, next)
		if err != nil {
			return s.transform(items), fmt.Errorf("fetch page %d: %w", page, err)
		}

		items = append(items, resp.D.Results...)
		next = resp.D.Next

		s.logger.Debug("fetched page",
			"page", page,
			"items", len(resp.D.Results),
			"total", len(items),
		)
	}

	return s.transform(items), nil
}

func (s *Source) firstPageURL() string {
	if s.pageSize <= 0 {
		return s.itemsURL
	}
	return s.itemsURL + "?$top=" + strconv.Itoa(s.pageSize)
}

func (s *Source) fetchPage(ctx context.Context, url string) (*Response, error) {
	var resp *Response
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, url)
		if err == nil {
			return resp, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, url string) (*Response, error) {
	var out Response
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode())
	}
	return &out, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if s.maxBackoff > 0 && backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(items []Item) []domain.Alert {
	alerts := make([]domain.Alert, 0, len(items))

	for _, item := range items {
		alert, err := Clean(item)
		if errors.Is(err, ErrNoPublishDate) {
			s.logger.Debug("dropping unpublished row", "id", item.ID)
			continue
		}
		if err != nil {
			s.logger.Warn("skipping row", "id", item.ID, "error", err)
			continue
		}
		alerts = append(alerts, alert)
	}

	return alerts
}
