package docpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Client talks to one docpress service instance. It is safe for concurrent
// use; every Render is an independent request and the only shared state is
// the underlying HTTP client's connection pool.
type Client struct {
	base     string
	http     *http.Client
	log      zerolog.Logger
	cache    Store
	cacheTTL time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Timeouts, TLS, proxies and
// connection reuse are all controlled through it.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout on the HTTP client in use.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger attaches a logger for debug and cache-warning events. The
// default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithCache enables the render cache. Rendered bytes are stored under a hash
// of the compiled payload; cache failures are logged and never fail a render.
func WithCache(s Store, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = s
		c.cacheTTL = ttl
	}
}

// New creates a client for the service at base, e.g. "http://localhost:8080".
// Trailing slashes are stripped.
func New(base string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: defaultTimeout},
		log:  zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Render compiles the request, posts it to the service and returns the raw
// rendered bytes. Exactly one HTTP request is issued; there are no retries.
// Failures are a *ConnectionError when no response was obtained (including
// context cancellation) or a *ServerError when the service answered with a
// non-success status.
func (c *Client) Render(ctx context.Context, r *Request) ([]byte, error) {
	body, err := json.Marshal(r.compile())
	if err != nil {
		// The compiled document is plain maps, slices and scalars; if this
		// fires the compiler itself is broken.
		panic("docpress: compiled payload not serializable: " + err.Error())
	}

	key := cacheKey(body)
	if c.cache != nil {
		cached, err := c.cache.Get(key)
		if err != nil {
			c.log.Warn().Err(err).Msg("render cache read failed")
		} else if cached != nil {
			c.log.Debug().Str("key", key).Msg("render cache hit")
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, &ConnectionError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", xid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectionError{Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServerError{Status: resp.StatusCode, Message: serverMessage(resp.StatusCode, data)}
	}

	if c.cache != nil {
		if err := c.cache.Set(key, data, c.cacheTTL); err != nil {
			c.log.Warn().Err(err).Msg("render cache write failed")
		}
	}
	c.log.Debug().Int("bytes", len(data)).Msg("render complete")
	return data, nil
}

// Health reports whether the service answers its health endpoint with a
// success status. Transport failures count as unhealthy; Health never
// returns an error because health checks are advisory.
func (c *Client) Health(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// serverMessage extracts the service's error message from a failure body,
// falling back to a generic string when the body is missing or malformed.
func serverMessage(status int, body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fmt.Sprintf("HTTP %d", status)
}
