// Package server exposes the engine over HTTP.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/crimson-sun/tagviz/internal/model"
	"github.com/crimson-sun/tagviz/internal/output"
)

// Analyzer is the engine surface the server needs.
type Analyzer interface {
	Analyze(req model.Request) (model.Analysis, error)
	DescribeTagset() string
}

// Server serves analyze, tagset and health endpoints.
type Server struct {
	app       *fiber.App
	analyzer  Analyzer
	verbosity output.Verbosity
	normalize bool
	accessLog io.Writer
}

// Option configures a Server.
type Option func(*Server)

// WithVerbosity sets how much of each analysis is returned. Default: Full.
func WithVerbosity(v output.Verbosity) Option {
	return func(s *Server) { s.verbosity = v }
}

// WithDefaultNormalize sets the normalize flag for requests that omit it.
func WithDefaultNormalize(v bool) Option {
	return func(s *Server) { s.normalize = v }
}

// WithAccessLog sends access log lines to w instead of stderr.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) { s.accessLog = w }
}

// New creates a Server around an analyzer.
func New(an Analyzer, opts ...Option) *Server {
	s := &Server{
		analyzer:  an,
		verbosity: output.Full,
		normalize: true,
		accessLog: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}

	app := fiber.New(fiber.Config{
		AppName:               "tagviz",
		DisableStartupMessage: true,
		BodyLimit:             16 * 1024 * 1024,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          2 * time.Minute,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: s.accessLog,
	}))

	app.Post("/analyze", s.analyze)
	app.Get("/tagset", s.tagset)
	app.Get("/healthz", s.healthz)

	s.app = app
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server: listening", "addr", addr)
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

type analyzeRequest struct {
	Text      string `json:"text"`
	Normalize *bool  `json:"normalize"`
}

func (s *Server) analyze(c *fiber.Ctx) error {
	var body analyzeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	normalize := s.normalize
	if body.Normalize != nil {
		normalize = *body.Normalize
	}

	a, err := s.analyzer.Analyze(model.Request{Text: body.Text, Normalize: normalize})
	if err != nil {
		slog.Error("server: analysis failed", "request_id", c.Locals("requestid"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(output.FormatAnalysis(a, s.verbosity))
}

func (s *Server) tagset(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(s.analyzer.DescribeTagset())
}

func (s *Server) healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
