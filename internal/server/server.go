// Package server implements the carectl read-only gateway: a local HTTP
// front that proxies dashboard and roster reads through the operator's
// stored session, so wallboards and scripts never hold admin credentials.
// Mutating operations are deliberately not exposed.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/carelinkhq/carectl/internal/api"
	"github.com/carelinkhq/carectl/internal/server/middleware"
)

// Config holds the gateway configuration.
type Config struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	RateLimit       int // requests per minute per IP, 0 disables
}

// DefaultConfig returns a Config with local-use defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            8470,
		ShutdownTimeout: 15 * time.Second,
		CORSOrigins:     []string{"*"},
		RateLimit:       120,
	}
}

// Server is the gateway HTTP server. All upstream access goes through the
// shared API client, which injects the stored bearer token.
type Server struct {
	cfg        Config
	router     chi.Router
	client     *api.Client
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a gateway Server with all routes and middleware wired.
func New(cfg Config, client *api.Client, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	if s.cfg.RateLimit > 0 {
		r.Use(httprate.LimitByIP(s.cfg.RateLimit, time.Minute))
	}

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/caregivers", s.handleCaregivers)
		r.Get("/caregivers/{id}", s.handleCaregiver)
		r.Get("/careseekers", s.handleCareSeekers)
		r.Get("/careseekers/{id}", s.handleCareSeeker)
		r.Get("/bookings", s.handleBookings)
		r.Get("/transactions", s.handleTransactions)
	})

	s.router = r
}

// ListenAndServe starts the gateway and blocks until SIGINT or SIGTERM, then
// drains in-flight requests before returning.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("gateway starting", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("gateway listen: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("gateway shutdown: %w", err)
	}
	s.logger.Info("gateway stopped")
	return nil
}

// Router returns the underlying chi router, useful for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ServeHTTP implements http.Handler, delegating to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
