// Package collaborator talks JSON over HTTP to the REST backend that owns
// users, products, orders and reviews.
package collaborator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-admin/internal/config"
	"github.com/javajoker/storefront-admin/internal/metrics"
)

// ErrUnavailable wraps transport failures: the collaborator could not be
// reached or the connection broke before a response arrived.
var ErrUnavailable = errors.New("collaborator unavailable")

// ErrBadResponse marks a 2xx response whose body could not be decoded.
var ErrBadResponse = errors.New("malformed collaborator response")

const maxErrorBody = 64 << 10

// APIError is a non-2xx response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the collaborator's own explanation, empty when the body
	// carried none.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        *logrus.Entry
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(l *logrus.Entry) Option {
	return func(c *Client) {
		c.log = l
	}
}

func New(cfg config.CollaboratorConfig, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse collaborator base url: %w", err)
	}

	c := &Client{
		baseURL: base,
		// A zero timeout waits for the collaborator indefinitely.
		httpClient: &http.Client{Timeout: cfg.RequestTimeout()},
		log:        logrus.WithField("component", "collaborator"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get decodes the JSON response of GET path into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Send issues a mutation. The response body on success is ignored.
func (c *Client) Send(ctx context.Context, method, path string, body interface{}) error {
	return c.do(ctx, method, path, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	route := routeOf(path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveCollaboratorCall(method, route, 0, time.Since(start))
		c.log.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Warn("Collaborator request failed")
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	duration := time.Since(start)
	metrics.ObserveCollaboratorCall(method, route, resp.StatusCode, duration)

	fields := logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": duration.Milliseconds(),
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    extractMessage(raw),
		}
		c.log.WithFields(fields).WithField("message", apiErr.Message).Warn("Collaborator rejected request")
		return apiErr
	}

	c.log.WithFields(fields).Debug("Collaborator request completed")

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w: %w", method, path, ErrBadResponse, err)
	}
	return nil
}

// extractMessage reads the error text out of a failure body. Backends in
// the wild use {"error":"..."}, {"error":{"message":"..."}} or
// {"message":"..."}.
func extractMessage(raw []byte) string {
	var body struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}

	if len(body.Error) > 0 {
		var text string
		if err := json.Unmarshal(body.Error, &text); err == nil && text != "" {
			return strings.TrimSpace(text)
		}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body.Error, &nested); err == nil && nested.Message != "" {
			return strings.TrimSpace(nested.Message)
		}
	}
	return strings.TrimSpace(body.Message)
}

var idSegment = regexp.MustCompile(`/\d+$`)

// routeOf collapses identifier-scoped paths so metrics stay low-cardinality.
func routeOf(path string) string {
	return idSegment.ReplaceAllString(path, "/:id")
}
