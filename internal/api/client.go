package api

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

	"github.com/google/uuid"

	"github.com/studiowebux/careerguide/internal/analytics"
)

// Recorder receives one entry per completed call. *analytics.Manager satisfies it.
type Recorder interface {
	Record(entry analytics.Entry) error
}

// Client talks to the career backend at a fixed base origin. It makes a
// single attempt per call: no retries, no caching, no client-side timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
	recorder   Recorder
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client (tests use httptest's)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRecorder logs every call to r
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// New creates a client for baseURL (e.g. http://127.0.0.1:5000)
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the origin every endpoint is resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call sends body (when non-nil) as JSON to endpoint and returns the raw
// JSON response. Non-2xx statuses and non-JSON bodies fail with
// *TransportError; a call that never got a response fails with *NetworkError.
func (c *Client) Call(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	requestID := uuid.NewString()
	start := time.Now()

	raw, status, err := c.do(ctx, method, endpoint, body)
	duration := time.Since(start)

	outcome := analytics.OutcomeSuccess
	switch {
	case IsNetwork(err):
		outcome = analytics.OutcomeNetwork
		log.Printf("api %s %s %s failed after %s: %s", requestID, method, endpoint, FormatDuration(duration), Describe(err))
	case err != nil:
		outcome = analytics.OutcomeTransport
		log.Printf("api %s %s %s -> %d in %s: %s", requestID, method, endpoint, status, FormatDuration(duration), Describe(err))
	default:
		log.Printf("api %s %s %s -> %d in %s", requestID, method, endpoint, status, FormatDuration(duration))
	}

	if c.recorder != nil {
		recErr := c.recorder.Record(analytics.Entry{
			RequestID:  requestID,
			Endpoint:   endpoint,
			Method:     method,
			StatusCode: status,
			Outcome:    outcome,
			DurationMs: duration.Milliseconds(),
			Timestamp:  start,
		})
		if recErr != nil {
			log.Printf("api %s: %v", requestID, recErr)
		}
	}

	return raw, err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any) (json.RawMessage, int, error) {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, 0, &NetworkError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if !IsSuccessStatus(resp.StatusCode) {
		// body is deliberately not inspected
		io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &NetworkError{Endpoint: endpoint, Err: err}
	}
	if !json.Valid(data) {
		return nil, resp.StatusCode, &TransportError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("body is not JSON (%d bytes)", len(data)),
		}
	}

	return json.RawMessage(data), resp.StatusCode, nil
}

// FormatDuration formats a call duration for log lines
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.2fs", float64(ms)/1000.0)
}

// IsSuccessStatus returns true if status code is 2xx
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}
