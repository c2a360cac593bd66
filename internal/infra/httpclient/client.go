// Package httpclient is the outbound HTTP helper used by provider adapters.
// Every attempt runs under its own timeout; idempotent GETs are retried on
// transport errors, 429 and 5xx, token exchange POSTs never are.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"performiq/config"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/errors"

	"github.com/cenkalti/backoff/v4"
)

const maxErrorBody = 512

// Client wraps net/http with JSON decoding, per-attempt timeouts and GET retries.
type Client struct {
	http       *http.Client
	timeout    time.Duration
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	logger     *slog.Logger
}

// New creates a Client from the httpClient config section.
func New(cfg *config.Config, logger *slog.Logger) *Client {
	return NewWithOptions(cfg.HTTPClient, &http.Client{}, logger)
}

// NewWithOptions is used by tests and by callers that need a custom transport.
func NewWithOptions(opts config.HTTPClientConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		http:       httpClient,
		timeout:    opts.Timeout,
		maxRetries: max(opts.MaxRetries, 0),
		baseDelay:  opts.BaseDelay,
		maxDelay:   opts.MaxDelay,
		logger:     logger,
	}
}

// HTTPClient exposes the underlying client for SDKs that take one.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// WithTimeout bounds ctx by the per-call timeout.
func (c *Client) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.timeout)
}

// GetJSON issues a GET and decodes a 2xx JSON body into out.
func (c *Client) GetJSON(ctx context.Context, rawURL string, headers map[string]string, out any) error {
	return c.Retry(ctx, redactQuery(rawURL), func(ctx context.Context) (int, time.Duration, error) {
		return c.attempt(ctx, http.MethodGet, rawURL, nil, headers, out)
	})
}

// Retry runs an idempotent read under the per-call timeout, retrying 429, 5xx
// and transport failures with exponential backoff. fn reports the HTTP status
// it saw (0 when no response arrived) and any Retry-After delay. SDK clients
// that own their requests use it directly.
func (c *Client) Retry(ctx context.Context, desc string, fn func(ctx context.Context) (int, time.Duration, error)) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.baseDelay
	bo.MaxInterval = c.maxDelay
	bo.MaxElapsedTime = 0
	bo.Reset()

	for attempt := 0; ; attempt++ {
		callCtx, cancel := c.WithTimeout(ctx)
		status, retryAfter, err := fn(callCtx)
		cancel()
		if err == nil {
			return nil
		}
		if !retryable(status) || attempt >= c.maxRetries || ctx.Err() != nil {
			return err
		}

		delay := bo.NextBackOff()
		if retryAfter > 0 {
			delay = min(retryAfter, c.maxDelay)
		}

		c.logger.DebugContext(ctx, "Retrying provider request",
			slog.String("request", desc),
			slog.Int("attempt", attempt+1),
			slog.Int("status", status),
			slog.Duration("delay", delay),
		)

		if waitErr := waitWithContext(ctx, delay); waitErr != nil {
			return errors.WithStack(waitErr)
		}
	}
}

// PostForm posts an url-encoded form once and decodes the JSON reply.
func (c *Client) PostForm(ctx context.Context, rawURL string, form url.Values, headers map[string]string, out any) error {
	h := cloneHeaders(headers)
	h["Content-Type"] = "application/x-www-form-urlencoded"

	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()
	_, _, err := c.attempt(ctx, http.MethodPost, rawURL, []byte(form.Encode()), h, out)

	return err
}

// PostJSON posts body as JSON once and decodes the JSON reply.
func (c *Client) PostJSON(ctx context.Context, rawURL string, body any, headers map[string]string, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return errors.WithStack(err)
	}
	h := cloneHeaders(headers)
	h["Content-Type"] = "application/json"

	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()
	_, _, err = c.attempt(ctx, http.MethodPost, rawURL, data, h, out)

	return err
}

// attempt sends one request; callers bound ctx with the per-call timeout.
func (c *Client) attempt(ctx context.Context, method, rawURL string, body []byte, headers map[string]string, out any) (int, time.Duration, error) {

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return 0, 0, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "%s %s", method, redactQuery(rawURL))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, 0, errors.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := string(payload)
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}

		return resp.StatusCode, parseRetryAfter(resp.Header.Get("Retry-After")), &domainerrors.HTTPStatusError{
			StatusCode: resp.StatusCode,
			URL:        redactQuery(rawURL),
			Body:       text,
		}
	}

	if out == nil || len(payload) == 0 {
		return resp.StatusCode, 0, nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return resp.StatusCode, 0, errors.Wrap(err, "decode response body")
	}

	return resp.StatusCode, 0, nil
}

// retryable treats status 0 as a transport failure or per-attempt timeout.
func retryable(status int) bool {
	return status == 0 || status == http.StatusTooManyRequests || status >= 500
}

// RetryAfter reads the Retry-After header of an SDK error response.
func RetryAfter(header http.Header) time.Duration {
	return parseRetryAfter(header.Get("Retry-After"))
}

func parseRetryAfter(header string) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(header); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	if ts, err := http.ParseTime(header); err == nil {
		if delta := time.Until(ts); delta > 0 {
			return delta
		}
	}

	return 0
}

func waitWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func cloneHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers)+1)
	for k, v := range headers {
		out[k] = v
	}

	return out
}

// redactQuery drops the query string so tokens passed as parameters never reach logs.
func redactQuery(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""

	return u.String()
}
