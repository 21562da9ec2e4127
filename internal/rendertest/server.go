// Package rendertest provides an in-process stand-in for the docpress
// rendering service, so client tests can exercise the full HTTP path without
// opening sockets or rendering anything.
package rendertest

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Config controls what the fake service returns.
type Config struct {
	// Output is the body returned by a successful /render.
	Output []byte
	// ContentType of the /render response; defaults to application/pdf.
	ContentType string
	// FailStatus, when non-zero, makes /render fail with this status and
	// Message in the service's {"error": "..."} envelope.
	FailStatus int
	Message    string
	// Unhealthy makes /health answer 503.
	Unhealthy bool
}

// Server is a fake docpress service built on a fiber app.
type Server struct {
	App *fiber.App

	mu       sync.Mutex
	payloads []map[string]any
}

// New builds the fake service. The error envelope matches the real service:
// failures carry a JSON body with a single "error" string field.
func New(cfg Config) *Server {
	s := &Server{}
	s.App = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}
			return c.Status(code).JSON(fiber.Map{"error": msg})
		},
	})

	s.App.Post("/render", func(c *fiber.Ctx) error {
		var payload map[string]any
		if err := json.Unmarshal(c.Body(), &payload); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "malformed payload")
		}
		s.mu.Lock()
		s.payloads = append(s.payloads, payload)
		s.mu.Unlock()

		if cfg.FailStatus > 0 {
			return fiber.NewError(cfg.FailStatus, cfg.Message)
		}
		ct := cfg.ContentType
		if ct == "" {
			ct = "application/pdf"
		}
		c.Set("Content-Type", ct)
		return c.Send(cfg.Output)
	})

	s.App.Get("/health", func(c *fiber.Ctx) error {
		if cfg.Unhealthy {
			return fiber.NewError(fiber.StatusServiceUnavailable, "warming up")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return s
}

// Payloads returns the wire documents received so far, in order.
func (s *Server) Payloads() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, len(s.payloads))
	copy(out, s.payloads)
	return out
}

// HTTPClient returns a client whose transport dispatches straight into the
// fake service via app.Test. Any host works in the base URL.
func (s *Server) HTTPClient() *http.Client {
	return &http.Client{Transport: transport{app: s.App}}
}

type transport struct {
	app *fiber.App
}

func (t transport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.app.Test(req, -1)
}
