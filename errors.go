package docpress

import "fmt"

// ConnectionError reports that the transport could not complete the exchange:
// DNS failure, refused connection, timeout, or a canceled context. The
// original cause is preserved, so errors.Is still matches context.Canceled
// and context.DeadlineExceeded.
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return "docpress: connection failed: " + e.Cause.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// ServerError reports that the service received the request and rejected it.
// Message carries the service's error field when the response body could be
// parsed, otherwise a generic "HTTP <code>" fallback.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("docpress: render failed (%d): %s", e.Status, e.Message)
}
