package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carelinkhq/carectl/internal/model"
	"github.com/carelinkhq/carectl/internal/session"
)

const (
	defaultTimeout = 15 * time.Second
	defaultRetries = 2
	retryBackoff   = 250 * time.Millisecond
)

// Client is the request dispatcher for the CareLink admin API. It owns the
// base URL, bearer-token injection from the session store, and the
// normalization of every failure into a uniform *Error. All facade methods
// go through the same request path.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	sessions       session.Store
	onUnauthorized UnauthorizedHandler
	logger         *slog.Logger
	retries        int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithUnauthorizedHandler injects the session-event sink notified on 401
// responses.
func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(c *Client) { c.onUnauthorized = h }
}

// WithLogger sets the structured logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRetries sets how many extra attempts a failed GET is given. Mutations
// are never retried regardless of this setting.
func WithRetries(n int) Option {
	return func(c *Client) { c.retries = n }
}

// New creates a Client for the given API origin. The session store supplies
// the bearer token for every outgoing request.
func New(baseURL string, sessions session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		sessions:   sessions,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		retries:    defaultRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request performs one API call and decodes the response into the typed
// envelope. It is the single entry point used by every facade method.
func request[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (*model.Envelope[T], error) {
	raw, status, err := c.call(ctx, method, path, query, nil, body)
	if err != nil {
		return nil, err
	}

	var env model.Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &Error{
			Kind:    KindDecode,
			Status:  status,
			Message: "The server returned an unreadable response",
			Err:     err,
		}
	}
	return &env, nil
}

// call issues the HTTP request, retrying idempotent GETs a bounded number of
// times, and returns the raw body of a 2xx response. Every failure comes
// back as a *Error with a user-presentable message.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, headers map[string]string, body any) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request body: %w", err)
		}
	}

	requestID := uuid.Must(uuid.NewV7()).String()
	attempts := 1
	if method == http.MethodGet {
		attempts += c.retries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying request",
				"method", method, "path", path, "attempt", attempt+1, "request_id", requestID)
			select {
			case <-time.After(retryBackoff * time.Duration(attempt)):
			case <-ctx.Done():
				return nil, 0, &Error{Kind: KindNetwork, Message: networkErrorMessage, Err: ctx.Err()}
			}
		}

		raw, status, retryable, err := c.attempt(ctx, method, path, query, headers, payload, requestID)
		if err == nil {
			return raw, status, nil
		}
		if !retryable {
			return nil, status, err
		}
		lastErr = err
	}
	return nil, 0, lastErr
}

// attempt performs a single HTTP round trip. The retryable flag is true only
// for failures a repeated GET could plausibly recover from.
func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, headers map[string]string, payload []byte, requestID string) (raw []byte, status int, retryable bool, err error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, 0, false, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	// The token is read fresh on every attempt so a login that lands
	// mid-sequence is picked up by the next request. No Authorization header
	// is sent at all when no token exists.
	token, err := c.sessions.Token(ctx)
	if err != nil {
		return nil, 0, false, fmt.Errorf("read session token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, true, &Error{Kind: KindNetwork, Message: networkErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	raw, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, true, &Error{Kind: KindNetwork, Message: networkErrorMessage, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Fire the logout broadcast before the failure reaches the caller,
		// so the session owner reacts even if the call site ignores the
		// error. The server's own message is intentionally discarded.
		c.notifyUnauthorized()
		return nil, resp.StatusCode, false, &Error{
			Kind:    KindSessionExpired,
			Status:  resp.StatusCode,
			Message: SessionExpiredMessage,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Kind:    KindServer,
			Status:  resp.StatusCode,
			Message: serverMessage(raw),
		}
		switch resp.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return nil, resp.StatusCode, true, apiErr
		}
		return nil, resp.StatusCode, false, apiErr
	}

	return raw, resp.StatusCode, false, nil
}

// notifyUnauthorized invokes the injected sink. A panicking handler is
// contained here; it must not take down the request path.
func (c *Client) notifyUnauthorized() {
	if c.onUnauthorized == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("unauthorized handler panicked", "panic", r)
		}
	}()
	c.onUnauthorized.OnUnauthorized()
}

// serverMessage extracts the envelope message from an error body, falling
// back to a generic message when the body carries none.
func serverMessage(raw []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Message == "" {
		return genericErrorMessage
	}
	return env.Message
}

// ListParams are the server-side pagination and sorting controls shared by
// every list endpoint. Zero-valued fields are omitted from the query string.
type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // "ASC" or "DESC"
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", fmt.Sprintf("%d", p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", p.Limit))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}
	return q
}
