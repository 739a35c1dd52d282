package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is where the prediction service listens by default.
	DefaultBaseURL = "http://localhost:5000"
	// DefaultPath is the prediction route on the remote service.
	DefaultPath = "/predict"
	// RequestIDHeader carries the submission attempt id to the service.
	RequestIDHeader = "X-Request-ID"

	maxBodySize = 1 << 20
)

// Predictor is the seam used by the submission controller. *Client satisfies
// it; tests may substitute their own implementation.
type Predictor interface {
	Predict(ctx context.Context, payload map[string]string) (Result, error)
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the service host, e.g. "http://localhost:5000".
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = strings.TrimRight(trimmed, "/")
		}
	}
}

// WithPath overrides the prediction route.
func WithPath(path string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, "/") {
			trimmed = "/" + trimmed
		}
		c.path = trimmed
	}
}

// WithHTTPClient swaps the underlying http.Client. The client is used as is; no
// timeout is imposed on top of it.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithRequestID supplies the id generator used for RequestIDHeader.
func WithRequestID(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.requestID = fn
		}
	}
}

// Client posts measurements to the remote prediction service.
type Client struct {
	baseURL   string
	path      string
	http      *http.Client
	requestID func() string
}

var _ Predictor = (*Client)(nil)

// NewClient builds a Client with sensible defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		path:      DefaultPath,
		http:      &http.Client{},
		requestID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Endpoint returns the absolute URL the client posts to.
func (c *Client) Endpoint() string {
	if c == nil {
		return ""
	}
	return c.baseURL + c.path
}

// Predict sends payload as a JSON object and decodes the classification. A
// request id found on ctx (see ContextWithRequestID) is forwarded as is,
// otherwise a fresh one is generated.
func (c *Client) Predict(ctx context.Context, payload map[string]string) (Result, error) {
	if c == nil {
		return Result{}, ErrNilClient
	}
	if payload == nil {
		payload = map[string]string{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, &TransportError{Err: fmt.Errorf("encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return Result{}, &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = c.requestID()
	}
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Result{}, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if message := decodeErrorMessage(data); strings.TrimSpace(message) != "" {
			return Result{}, &ServerError{StatusCode: resp.StatusCode, Message: message}
		}
		return Result{}, &TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	result, err := decodeResult(data)
	if err != nil {
		return Result{}, &TransportError{StatusCode: resp.StatusCode, Err: err}
	}
	return result, nil
}

type requestIDKey struct{}

// ContextWithRequestID attaches id to ctx so Predict forwards it instead of
// generating a new one.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id stored by ContextWithRequestID, if any.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
