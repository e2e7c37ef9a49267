package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type locationRequest struct {
	Area     *string `json:"area,omitempty"`
	Location string  `json:"location"`
}

// Locations asks the model for location suggestions: one inner list per distinct
// location, variants ranked best-first. area is omitted from the prompt when nil.
func (c *Client) Locations(ctx context.Context, area *string, location string) ([][]string, error) {
	payload, err := json.Marshal(locationRequest{Area: area, Location: location})
	if err != nil {
		return nil, fmt.Errorf("marshal location request: %w", err)
	}

	conv := &conversation{
		messages:    locationMessages(string(payload)),
		temperature: DefaultTemperature,
	}

	var lastErr error
	for attempt := range c.attempts {
		if attempt > 0 {
			if err := c.wait(ctx, attempt-1); err != nil {
				return nil, err
			}
		}

		content, err := c.complete(ctx, conv)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		locations, err := ParseLocations(content)
		if err == nil {
			return locations, nil
		}
		c.logger.Debug("malformed location response", "attempt", attempt, "error", err)
		lastErr = err

		if attempt == 0 && content != "" {
			conv.messages = append(conv.messages,
				message(openai.ChatMessageRoleAssistant, content),
				message(openai.ChatMessageRoleUser, fixLocationsPrompt),
			)
		} else {
			conv.temperature += 0.1
		}
	}
	return nil, fmt.Errorf("extract locations: %w", lastErr)
}
