// Package tengepay is a typed client for the tengepay payment processing
// API. Every operation exists in a blocking form and an Async form
// returning a Future; both share the same encoding, decoding and error
// classification.
package tengepay

import (
	"context"
	"errors"
	"net/url"
	"time"
)

const apiVersion = "v2"

// DefaultBaseURL points at the staging environment.
const DefaultBaseURL = "https://stage-api.tengepay.kz"

// Config holds client settings. APIKey is required. A zero Timeout
// means no client-side limit; when set it applies per request attempt.
type Config struct {
	APIKey  string        `koanf:"api_key" validate:"required"`
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

// Client calls the tengepay API. It is safe for concurrent use; the
// only shared state is the underlying HTTP connection pool.
type Client struct {
	transport *transport
}

// New creates a Client from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("api key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		transport: &transport{
			baseURL: baseURL,
			apiKey:  cfg.APIKey,
			timeout: cfg.Timeout,
		},
	}, nil
}

// call performs one request and classifies the outcome, returning the
// raw body only for 2xx responses.
func (c *Client) call(ctx context.Context, method, path string, body map[string]any, query url.Values) ([]byte, error) {
	status, respBody, err := c.transport.request(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}
	if err := classifyStatus(status, respBody); err != nil {
		return nil, err
	}
	return respBody, nil
}
