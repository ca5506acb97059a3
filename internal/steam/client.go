package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the default Steam Web API base URL.
	DefaultBaseURL = "https://api.steampowered.com"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultRequestInterval is the minimum spacing between requests.
	DefaultRequestInterval = time.Second

	// UserAgent is the user agent string sent with API requests.
	UserAgent = "svtrack/dev (https://github.com/steviee/svtrack)"

	// maxErrorBody bounds how much of an error body ends up in an APIError.
	maxErrorBody = 512
)

// Client is a Steam Web API client for the game server directory.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// Config holds client configuration.
type Config struct {
	BaseURL         string
	APIKey          string
	Timeout         time.Duration
	UserAgent       string
	RequestInterval time.Duration

	// HTTPClient replaces the default client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// NewClient creates a new directory API client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	if config.UserAgent == "" {
		config.UserAgent = UserAgent
	}

	if config.RequestInterval == 0 {
		config.RequestInterval = DefaultRequestInterval
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	slog.Debug("creating steam API client",
		"base_url", config.BaseURL,
		"timeout", config.Timeout,
		"request_interval", config.RequestInterval)

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: httpClient,
		userAgent:  config.UserAgent,
		limiter:    rate.NewLimiter(rate.Every(config.RequestInterval), 1),
	}
}

// GetServerList fetches the servers matching q.
//
// A well formed reply without a server list yields ErrMissingResponse or
// ErrNoServers; see IsSoftFailure.
func (c *Client) GetServerList(ctx context.Context, q Query) ([]Server, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	url := c.baseURL + serverListPath + "?" + q.values(c.apiKey).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	// The URL carries the key, so only the filter is logged.
	slog.Debug("steam API request", "path", serverListPath, "filter", q.Filter(), "limit", q.Limit)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrAPIUnavailable, redact(err, c.apiKey))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return nil, NewAPIError(resp.StatusCode, msg)
	}

	return decodeServerList(resp.Body)
}

// decodeServerList parses a GetServerList body.
func decodeServerList(r io.Reader) ([]Server, error) {
	var listResp ServerListResponse
	if err := json.NewDecoder(r).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if listResp.Response == nil {
		return nil, ErrMissingResponse
	}

	if listResp.Response.Servers == nil {
		return nil, ErrNoServers
	}

	servers := *listResp.Response.Servers

	slog.Debug("steam server list decoded", "count", len(servers))

	return servers, nil
}

// redact strips the API key from transport errors, which embed the URL.
func redact(err error, key string) string {
	msg := err.Error()
	if key == "" {
		return msg
	}
	return strings.ReplaceAll(msg, key, "REDACTED")
}
