package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"service_alerts/internal/domain"
)

// PromptLengthLimit is the context window, in tokens, drafting requests must fit into.
const PromptLengthLimit = 8192

const draftTimeLayout = "2006-01-02T15:04:05"

var (
	ErrEmptyRecord   = errors.New("nothing to draft from")
	ErrPromptTooLong = errors.New("prompt exceeds context window")
	ErrDraftTooLong  = errors.New("draft exceeds length limit")
	ErrDegenerate    = errors.New("draft is empty or a single repeated character")
)

// draftRecord is the subset of an alert shown to the model. Identifiers, dates of
// publication and enrichment columns tend to confuse it.
type draftRecord struct {
	ServiceArea          string  `json:"service_area,omitempty"`
	Title                string  `json:"title,omitempty"`
	Subtitle             *string `json:"subtitle,omitempty"`
	Description          *string `json:"description,omitempty"`
	Area                 *string `json:"area,omitempty"`
	Location             string  `json:"location,omitempty"`
	StartTimestamp       string  `json:"start_timestamp,omitempty"`
	ForecastEndTimestamp string  `json:"forecast_end_timestamp,omitempty"`
	Planned              *bool   `json:"planned,omitempty"`
	RequestNumber        *string `json:"request_number,omitempty"`
}

func newDraftRecord(a domain.Alert) draftRecord {
	r := draftRecord{
		ServiceArea:   a.ServiceArea,
		Title:         a.Title,
		Subtitle:      a.Subtitle,
		Description:   a.Description,
		Area:          a.Area,
		Location:      a.Location.String(),
		Planned:       a.Planned,
		RequestNumber: a.RequestNumber,
	}
	if a.StartTimestamp != nil {
		r.StartTimestamp = a.StartTimestamp.In(domain.SAST).Format(draftTimeLayout)
	}
	if a.ForecastEndTimestamp != nil {
		r.ForecastEndTimestamp = a.ForecastEndTimestamp.In(domain.SAST).Format(draftTimeLayout)
	}
	return r
}

// Draft writes a post about the alert of at most limit characters.
func (c *Client) Draft(ctx context.Context, alert domain.Alert, limit int) (string, error) {
	record := newDraftRecord(alert)
	if record == (draftRecord{}) {
		return "", ErrEmptyRecord
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal draft record: %w", err)
	}

	conv := &conversation{
		messages:    draftMessages(limit, string(payload)),
		temperature: DefaultTemperature,
		maxTokens:   (limit / 4) * 2,
	}

	prompt, err := json.Marshal(conv.messages)
	if err != nil {
		return "", fmt.Errorf("marshal prompt: %w", err)
	}
	if float64(len(prompt)/4)*1.2+256+float64(conv.maxTokens) > PromptLengthLimit {
		return "", ErrPromptTooLong
	}

	var lastErr error
	for attempt := range c.attempts {
		if attempt > 0 {
			if err := c.wait(ctx, attempt-1); err != nil {
				return "", err
			}
		}

		content, err := c.complete(ctx, conv)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			lastErr = err
			continue
		}

		switch {
		case utf8.RuneCountInString(content) > limit:
			c.logger.Debug("draft too long, asking for a summary", "length", utf8.RuneCountInString(content), "limit", limit)
			conv.messages = shortenMessages(limit, content)
			conv.temperature += 0.2
			lastErr = ErrDraftTooLong
		case degenerate(content):
			conv.temperature += 0.2
			lastErr = ErrDegenerate
		default:
			return content, nil
		}
	}
	return "", fmt.Errorf("draft alert %s: %w", alert.ID, lastErr)
}

func degenerate(s string) bool {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return true
	}
	for _, r := range s[size:] {
		if r != first {
			return false
		}
	}
	return true
}
