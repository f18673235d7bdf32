// Package oracle provides a resilient client for the upstream interpretation
// text generator. Failures are classified where they are observed: client
// mistakes come back as terminal 4xx-mapped errors and everything else as
// transient, so the retry layer never has to inspect error shapes itself.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "falnama/internal/platform/errors"
	"falnama/internal/platform/logger"
	"falnama/internal/platform/retry"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUA        = "falnama-api"
	defaultMaxRetry  = 3
	defaultRetryBase = time.Second
	defaultRetryMax  = 10 * time.Second

	interpretPath = "/v1/interpretations"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration
	RetryMax   time.Duration
}

// Client is a minimal JSON client for the interpretation service
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.RetryMax <= 0 {
		o.RetryMax = defaultRetryMax
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("oracle"),
		now:  time.Now,
	}
}

// Interpret generates interpretation text for one reading.
// Each call owns its retry state; callers may invoke concurrently.
func (c *Client) Interpret(ctx context.Context, in InterpretRequest) (string, error) {
	r := retry.New(retry.Options{
		MaxAttempts: c.opts.MaxRetries,
		BaseDelay:   c.opts.RetryBase,
		MaxDelay:    c.opts.RetryMax,
		OnRetry: func(attempt int, err error) {
			c.log.Warn().Int("attempt", attempt).Err(err).Msg("oracle retrying")
		},
	})
	return retry.Do(ctx, r, func(ctx context.Context) (string, error) {
		return c.interpretOnce(ctx, in)
	})
}

// interpretOnce issues a single upstream request and classifies the outcome
func (c *Client) interpretOnce(ctx context.Context, in InterpretRequest) (string, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "oracle encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+interpretPath, bytes.NewReader(payload))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "oracle new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.opts.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "oracle do failed")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", c.now().Sub(start)).
		Msg("oracle http response")

	if err := classify(resp); err != nil {
		return "", err
	}

	var out interpretResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "oracle decode response")
	}
	if out.Text == "" {
		return "", perr.Unavailablef("oracle returned empty text")
	}
	return out.Text, nil
}

// classify maps an upstream status to a tagged project error.
// 2xx passes, 429 and 5xx stay transient, the rest of 4xx is terminal.
func classify(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return perr.TooManyRequestsf("oracle rate limited")
	case http.StatusUnauthorized:
		return perr.Newf(perr.ErrorCodeUnauthorized, "oracle rejected credentials")
	case http.StatusForbidden:
		return perr.Newf(perr.ErrorCodeForbidden, "oracle forbade request")
	case http.StatusNotFound:
		return perr.NotFoundf("oracle path not found")
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return perr.InvalidArgf("oracle rejected request: %s", string(tail))
	}
	if resp.StatusCode >= 500 {
		return perr.Unavailablef("oracle server error %d", resp.StatusCode)
	}
	return perr.Newf(perr.ErrorCodeUnknown, "oracle unexpected status %d body %s", resp.StatusCode, string(tail))
}
