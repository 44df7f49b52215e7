package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fieldgeneral/playcall/pkg/cache"
	"github.com/fieldgeneral/playcall/pkg/playbook"
)

// Default look used when an analyze request omits fields.
const (
	defaultFormation = "4-3"
	defaultCoverage  = "cover_3"
)

// Server serves the playbook API.
type Server struct {
	lib    *playbook.Library
	cache  cache.Cache
	ttl    time.Duration
	logger *log.Logger
	router chi.Router
}

// NewServer wires the routes. The cache may be a NullCache; the logger
// must not be nil.
func NewServer(lib *playbook.Library, c cache.Cache, ttl time.Duration, logger *log.Logger) *Server {
	s := &Server{
		lib:    lib,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/formations", s.handleFormations)
		r.Get("/coverages", s.handleCoverages)
		r.Get("/blitzes", s.handleBlitzes)
		r.Get("/plays", s.handlePlays)
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/concept/{conceptType}/{key}", s.handleConcept)
		r.Get("/diagram", s.handleDiagram)
	})
	s.router = r
	return s
}

// Handler returns the root handler for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
