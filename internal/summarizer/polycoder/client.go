// Package polycoder calls the local code-summarization service that produces the
// technical draft.
package polycoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"codedoc/internal/config"
	"codedoc/internal/port"
)

const defaultEndpoint = "http://127.0.0.1:8001/generate"

var _ port.TechnicalSummarizer = (*Client)(nil)

// Client implements port.TechnicalSummarizer over HTTP.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a summarization client from the summarizer config.
func NewClient(cfg *config.SummarizerConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: cfg.Timeout()},
	}
}

type generateRequest struct {
	Code string `json:"code"`
}

type generateResponse struct {
	Technical *string `json:"technical"`
}

// Summarize never fails: any error is logged and yields an empty draft.
func (c *Client) Summarize(ctx context.Context, code string) string {
	log.Printf("polycoder.Client: sending code to summarization service at %s", c.endpoint)

	technical, err := c.generate(ctx, code)
	if err != nil {
		log.Printf("polycoder.Client: summarization failed: %v", err)
		return ""
	}

	log.Printf("polycoder.Client: received technical draft (%d bytes)", len(technical))
	return technical
}

func (c *Client) generate(ctx context.Context, code string) (string, error) {
	bodyBytes, err := json.Marshal(generateRequest{Code: code})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling summarization service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("summarization service error (status %d): %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if parsed.Technical == nil {
		return "", fmt.Errorf("response has no technical field")
	}
	return *parsed.Technical, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
