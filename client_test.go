package docpress

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// stubTransport answers every request with a fixed status and body.
type stubTransport struct {
	status   int
	body     string
	requests []*http.Request
	calls    int
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.calls++
	s.requests = append(s.requests, req)
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Header:     http.Header{},
		Request:    req,
	}, nil
}

type failingTransport struct {
	err error
}

func (f failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}

// blockingTransport waits for the request context, mimicking a hung dial.
type blockingTransport struct{}

func (blockingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	<-req.Context().Done()
	return nil, req.Context().Err()
}

func stubClient(rt http.RoundTripper, opts ...Option) *Client {
	opts = append([]Option{WithHTTPClient(&http.Client{Transport: rt})}, opts...)
	return New("http://docpress.test", opts...)
}

func TestRender_Success_PassesBytesThrough(t *testing.T) {
	rt := &stubTransport{status: http.StatusOK, body: "%PDF-1.7 raw bytes"}
	c := stubClient(rt)

	out, err := c.Render(context.Background(), FromHTML("<p>hi</p>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "%PDF-1.7 raw bytes" {
		t.Fatalf("body must pass through unchanged, got %q", out)
	}
}

func TestRender_RequestShape(t *testing.T) {
	rt := &stubTransport{status: http.StatusOK, body: "ok"}
	c := stubClient(rt)

	if _, err := c.Render(context.Background(), FromHTML("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rt.requests) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(rt.requests))
	}
	req := rt.requests[0]
	if req.Method != http.MethodPost {
		t.Fatalf("expected POST, got %s", req.Method)
	}
	if req.URL.String() != "http://docpress.test/render" {
		t.Fatalf("unexpected endpoint: %s", req.URL)
	}
	if req.Header.Get("Content-Type") != "application/json" {
		t.Fatalf("expected JSON content type, got %q", req.Header.Get("Content-Type"))
	}
	if req.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestNew_StripsTrailingSlashes(t *testing.T) {
	rt := &stubTransport{status: http.StatusOK, body: "ok"}
	c := New("http://docpress.test///", WithHTTPClient(&http.Client{Transport: rt}))

	if _, err := c.Render(context.Background(), FromHTML("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rt.requests[0].URL.String(); got != "http://docpress.test/render" {
		t.Fatalf("trailing slashes not normalized: %s", got)
	}
}

func TestRender_TransportFailure_IsConnectionError(t *testing.T) {
	cause := errors.New("connection refused")
	c := stubClient(failingTransport{err: cause})

	_, err := c.Render(context.Background(), FromHTML("x"))
	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected *ConnectionError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("connection error must carry the original cause")
	}
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		t.Fatalf("transport failure must not classify as server failure")
	}
}

func TestRender_Cancellation_SurfacesAsConnectionError(t *testing.T) {
	c := stubClient(blockingTransport{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Render(ctx, FromHTML("x"))
	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected *ConnectionError, got %T: %v", err, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancellation must stay reachable via errors.Is, got %v", err)
	}
}

func TestRender_ServerFailure_ParsesErrorBody(t *testing.T) {
	rt := &stubTransport{status: http.StatusUnprocessableEntity, body: `{"error":"bad margins"}`}
	c := stubClient(rt)

	_, err := c.Render(context.Background(), FromHTML("x"))
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("expected *ServerError, got %T: %v", err, err)
	}
	if srvErr.Status != 422 {
		t.Fatalf("expected status 422, got %d", srvErr.Status)
	}
	if srvErr.Message != "bad margins" {
		t.Fatalf("expected parsed message, got %q", srvErr.Message)
	}
}

func TestRender_ServerFailure_FallbackMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: "<html>oops</html>"},
		{name: "empty body", body: ""},
		{name: "missing error field", body: `{"detail":"nope"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rt := &stubTransport{status: http.StatusUnprocessableEntity, body: tc.body}
			c := stubClient(rt)

			_, err := c.Render(context.Background(), FromHTML("x"))
			var srvErr *ServerError
			if !errors.As(err, &srvErr) {
				t.Fatalf("expected *ServerError, got %v", err)
			}
			if srvErr.Message != "HTTP 422" {
				t.Fatalf("expected fallback message, got %q", srvErr.Message)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	healthy := stubClient(&stubTransport{status: http.StatusOK, body: `{"status":"ok"}`})
	if !healthy.Health(context.Background()) {
		t.Fatalf("expected healthy on 200")
	}

	degraded := stubClient(&stubTransport{status: http.StatusServiceUnavailable, body: ""})
	if degraded.Health(context.Background()) {
		t.Fatalf("expected unhealthy on 503")
	}

	unreachable := stubClient(failingTransport{err: errors.New("no route to host")})
	if unreachable.Health(context.Background()) {
		t.Fatalf("expected unhealthy on transport failure, and no panic or error")
	}
}

func TestRender_CacheHitSkipsTransport(t *testing.T) {
	rt := &stubTransport{status: http.StatusOK, body: "rendered"}
	c := stubClient(rt, WithCache(NewMemoryStore(), time.Minute))

	req := FromHTML("<p>cache me</p>").Paper("A4")
	first, err := c.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := c.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if rt.calls != 1 {
		t.Fatalf("expected a single transport call, got %d", rt.calls)
	}
	if string(first) != string(second) {
		t.Fatalf("cache must return the original bytes")
	}

	// A different request misses the cache.
	if _, err := c.Render(context.Background(), FromHTML("<p>other</p>")); err != nil {
		t.Fatalf("third render: %v", err)
	}
	if rt.calls != 2 {
		t.Fatalf("expected a second transport call for a distinct payload, got %d", rt.calls)
	}
}

func TestRender_ServerFailureNotCached(t *testing.T) {
	rt := &stubTransport{status: http.StatusBadRequest, body: `{"error":"nope"}`}
	c := stubClient(rt, WithCache(NewMemoryStore(), time.Minute))

	req := FromHTML("x")
	if _, err := c.Render(context.Background(), req); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := c.Render(context.Background(), req); err == nil {
		t.Fatalf("expected error")
	}
	if rt.calls != 2 {
		t.Fatalf("failures must not populate the cache, got %d calls", rt.calls)
	}
}
