package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL points at a local backend; deployments override it through
// API_BASE_URL.
const DefaultBaseURL = "http://localhost:8000"

const defaultTimeout = 10 * time.Second

// Config holds catalog backend connection settings.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Debug     bool
}

// Client is a read-only HTTP client for the catalog backend.
type Client struct {
	httpClient *http.Client
	config     Config
	debug      bool
}

// NewClient creates a catalog client. Zero-value config fields fall back to
// package defaults.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
		debug:      config.Debug,
	}
}

// BaseURL returns the resolved backend base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// get performs a GET against path with optional query parameters and decodes
// the JSON body into result. Every failure comes back as *APIError.
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	endpoint := c.config.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	if c.debug {
		log.Debug().
			Str("method", http.MethodGet).
			Str("endpoint", endpoint).
			Msg("[CATALOG] outgoing request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: "invalid request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: "catalog backend unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: "reading response failed", Err: err}
	}

	if c.debug {
		log.Debug().
			Str("endpoint", path).
			Int("status_code", resp.StatusCode).
			Msg("[CATALOG] incoming response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := errorMessage(body)
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return &APIError{Kind: KindHTTPStatus, Status: resp.StatusCode, Message: msg}
	}

	// Some deployments flag failures inside a 2xx envelope.
	if msg, failed := failedEnvelope(body); failed {
		return &APIError{Kind: KindHTTPStatus, Status: resp.StatusCode, Message: msg}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &APIError{Kind: KindMalformed, Status: resp.StatusCode, Message: "invalid response from catalog backend", Err: err}
	}
	return nil
}
