// Package httpjson is a small JSON-over-HTTP client shared by the REST
// completion backends.
package httpjson

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/cv-scorer/internal/utils"
)

const (
	contentType     = "application/json"
	contentEncoding = "gzip"
	userAgent       = "spigell/cv-scorer"

	defaultTimeout = 30 * time.Second
	retryBackoff   = time.Second
	maxErrorBody   = 512
)

var wait = utils.WaitFor

// StatusError reports a non-2xx response.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("bad status: %s", e.Status)
	}
	return fmt.Sprintf("bad status: %s: %s", e.Status, e.Body)
}

// Temporary reports whether the request may succeed when retried.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}

// Client posts JSON documents and decodes JSON replies.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	Headers    map[string]string
	// MaxRetries is the total number of attempts for temporary failures.
	MaxRetries int

	logger *zap.Logger
}

// New returns a client for baseURL. Headers are sent with every request.
func New(baseURL string, headers map[string]string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  userAgent,
		Headers:    headers,
		MaxRetries: 1,
		logger:     logger,
	}
}

// PostJSON sends body to path and decodes the reply into target.
func (c *Client) PostJSON(ctx context.Context, path string, body, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	attempts := c.MaxRetries
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = c.post(ctx, c.BaseURL+path, payload, target)
		if lastErr == nil {
			return nil
		}

		var status *StatusError
		if !errors.As(lastErr, &status) || !status.Temporary() || attempt == attempts {
			return lastErr
		}

		delay := retryBackoff * time.Duration(attempt)
		c.logger.Debug("retrying request",
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(lastErr),
		)
		if err := wait(ctx, delay); err != nil {
			return err
		}
	}

	return lastErr
}

func (c *Client) post(ctx context.Context, url string, payload []byte, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	c.logger.Debug("make request", zap.String("url", url))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return err
		}
		defer gz.Close()
		reader = gz
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet := strings.TrimSpace(string(data))
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: snippet}
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)
	req.Header.Set("Accept-Encoding", contentEncoding)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}
}
