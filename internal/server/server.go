package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/optimode/mailsift"
)

// Server wires the verification engine to its HTTP operations.
type Server struct {
	app      *fiber.App
	verifier *mailsift.Verifier
	cfg      Config
	log      *logrus.Logger
}

// New builds the server and registers its routes.
func New(cfg Config, verifier *mailsift.Verifier, log *logrus.Logger) *Server {
	registerMetrics()

	app := fiber.New(fiber.Config{
		AppName:               "mailsiftd",
		DisableStartupMessage: true,
	})

	s := &Server{
		app:      app,
		verifier: verifier,
		cfg:      cfg,
		log:      log,
	}

	app.Post("/api/verify-email", s.handleVerifySingle)
	app.Post("/api/verify-bulk", s.handleVerifyBulk)
	app.Get("/healthz", s.handleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return s
}

// Listen starts serving on the configured port and blocks.
func (s *Server) Listen() error {
	return s.app.Listen(":" + s.cfg.Port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}
