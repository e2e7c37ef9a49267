// Package llm drafts social media posts and extracts location suggestions through
// OpenAI-compatible chat completion endpoints.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	DefaultAttempts    = 3
	DefaultRetryDelay  = 10 * time.Second
	DefaultTimeout     = 120 * time.Second
	DefaultTemperature = 0.2
)

var ErrNoChoices = errors.New("no choices in response")

// Endpoint is one OpenAI-compatible chat completion service.
type Endpoint struct {
	BaseURL string
	Model   string
	APIKey  string
}

type Config struct {
	Primary Endpoint
	// Fallback is used once the primary endpoint fails. Optional.
	Fallback   Endpoint
	Attempts   int
	RetryDelay time.Duration
	Timeout    time.Duration
}

type endpoint struct {
	name   string
	model  string
	client *openai.Client
}

type Client struct {
	endpoints  []endpoint
	attempts   int
	retryDelay time.Duration
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.Primary.BaseURL == "" {
		return nil, fmt.Errorf("primary endpoint is required")
	}
	if cfg.Primary.Model == "" {
		return nil, fmt.Errorf("primary model is required")
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = DefaultAttempts
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = 0
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		attempts:   cfg.Attempts,
		retryDelay: cfg.RetryDelay,
		logger:     logger.With("component", "llm"),
	}
	c.endpoints = append(c.endpoints, newEndpoint("primary", cfg.Primary, cfg.Timeout))
	if cfg.Fallback.BaseURL != "" && cfg.Fallback.Model != "" {
		c.endpoints = append(c.endpoints, newEndpoint("fallback", cfg.Fallback, cfg.Timeout))
	}
	return c, nil
}

func newEndpoint(name string, e Endpoint, timeout time.Duration) endpoint {
	clientConfig := openai.DefaultConfig(e.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(e.BaseURL, "/")
	clientConfig.HTTPClient.Timeout = timeout
	return endpoint{
		name:   name,
		model:  e.Model,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// conversation carries the mutable state of one retried request.
type conversation struct {
	messages    []openai.ChatCompletionMessage
	temperature float32
	maxTokens   int
	endpoint    int
}

func (c *Client) complete(ctx context.Context, conv *conversation) (string, error) {
	e := c.endpoints[conv.endpoint]
	start := time.Now()

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Messages:    conv.messages,
		Temperature: conv.temperature,
		MaxTokens:   conv.maxTokens,
	})
	if err != nil {
		c.logger.Warn("LLM request failed",
			"endpoint", e.name,
			"elapsed", time.Since(start),
			"error", err)
		if conv.endpoint+1 < len(c.endpoints) {
			c.logger.Info("falling back to alternative model", "model", c.endpoints[conv.endpoint+1].model)
			conv.endpoint++
		}
		return "", fmt.Errorf("chat completion via %s: %w", e.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	c.logger.Debug("LLM request completed",
		"endpoint", e.name,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"elapsed", time.Since(start))
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) wait(ctx context.Context, attempt int) error {
	delay := time.Duration(attempt) * c.retryDelay
	if delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func message(role, content string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{Role: role, Content: content}
}
