package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cmlabs-hris/attendance-recap/internal/config"
)

// ErrInvalidEnvelope is returned when a response has no data payload
var ErrInvalidEnvelope = errors.New("invalid response format from API")

// ErrEmptyData is returned when the envelope's data field is null or missing
var ErrEmptyData = fmt.Errorf("%w: data is empty", ErrInvalidEnvelope)

// APIError represents a non-2xx upstream response
type APIError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream API error [%d] %s: %s", e.StatusCode, e.URL, e.Message)
}

// retryable reports whether the request may succeed if sent again
func (e *APIError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// envelope is the {status, message, data} wrapper every upstream response uses
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the upstream attendance and employee services
type Client struct {
	http            *http.Client
	attendanceURL   string
	employeeURL     string
	maxRetries      uint64
	initialInterval time.Duration
	logger          *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRetryInterval sets the first backoff interval between attempts
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) { c.initialInterval = d }
}

// WithLogger sets the logger used for retry diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for the configured upstream services
func NewClient(cfg config.UpstreamConfig, opts ...Option) *Client {
	c := &Client{
		http:            &http.Client{Timeout: cfg.Timeout},
		attendanceURL:   cfg.AttendanceURL,
		employeeURL:     cfg.EmployeeURL,
		maxRetries:      cfg.MaxRetries,
		initialInterval: 250 * time.Millisecond,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getData issues a GET, retrying transient failures, and decodes the
// envelope's data payload into out.
func (c *Client) getData(ctx context.Context, url string, out any) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialInterval

	attempt := func() error {
		err := c.fetch(ctx, url, out)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.retryable() {
			return backoff.Permanent(err)
		}
		if errors.Is(err, ErrInvalidEnvelope) || ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Warn("Upstream request failed, retrying", "url", url, "error", err, "wait", wait)
	}

	return backoff.RetryNotify(attempt, backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx), notify)
}

func (c *Client) fetch(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, URL: url, Message: http.StatusText(resp.StatusCode)}
		var env envelope
		if json.Unmarshal(body, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
		}
		return apiErr
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return ErrEmptyData
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	return nil
}
