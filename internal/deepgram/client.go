package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultBaseURL    = "https://api.deepgram.com"
	DefaultModel      = "aura-asteria-en"
	DefaultTimeout    = 30 * time.Second
	MaxRetries        = 3
	InitialRetryDelay = 1 * time.Second
	MaxRetryDelay     = 10 * time.Second
)

// speakRequest is the body for the /v1/speak endpoint.
type speakRequest struct {
	Text string `json:"text"`
}

// Client manages communication with the Deepgram text-to-speech API.
type Client struct {
	httpClient *retryablehttp.Client
	apiKey     string
	baseURL    string
	model      string
}

// Config holds configuration for the Deepgram client.
type Config struct {
	APIKey  string
	BaseURL string        // Optional, defaults to DefaultBaseURL
	Model   string        // Optional, defaults to DefaultModel
	Timeout time.Duration // Optional, defaults to DefaultTimeout; applies per attempt
}

// NewClient creates and configures a Deepgram API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Deepgram API key is required")
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = MaxRetries
	retryClient.RetryWaitMin = InitialRetryDelay
	retryClient.RetryWaitMax = MaxRetryDelay
	retryClient.Logger = log.New(io.Discard, "", 0)
	retryClient.HTTPClient.Timeout = timeout
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err != nil {
			return true, err
		}
		switch resp.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true, nil
		}
		return false, nil
	}

	return &Client{
		httpClient: retryClient,
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
	}, nil
}

// Speak converts text to speech and returns the raw audio bytes. A non-2xx
// response surfaces the body text as the error diagnostic.
func (c *Client) Speak(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(speakRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/v1/speak?model=%s", c.baseURL, c.model)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("Deepgram API error: %s", strings.TrimSpace(string(respBody)))
	}

	return respBody, nil
}
