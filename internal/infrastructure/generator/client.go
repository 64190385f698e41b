// Package generator is the HTTP client for the external text-generation
// collaborator. The core treats it as an opaque generate(prompt) call; any
// failure here surfaces as an error the caller must treat as non-fatal.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const requestTimeout = 15 * time.Second

var ErrNotConfigured = errors.New("generator: no endpoint configured")

// Client calls the generation endpoint with a shared rate limiter so a burst
// of describe requests cannot exhaust the provider quota.
type Client struct {
	url     string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a Client. rps caps outbound calls per second; values <= 0
// fall back to one call per second.
func NewClient(url, apiKey string, rps float64) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		url:     url,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate sends the prompt and returns the generated prose.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.url == "" || c.apiKey == "" {
		return "", ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	payload, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("generator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generator: provider returned %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("generator: decode response: %w", err)
	}
	if out.Text == "" {
		return "", errors.New("generator: empty completion")
	}
	return out.Text, nil
}
