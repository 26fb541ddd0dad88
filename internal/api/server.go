// Package api implements the evoviz HTTP API.
//
// The API exposes the layout engine over HTTP for the visualization
// frontend: a document goes in, a positioned renderable graph comes out.
// Responses are memoized through the pipeline cache, and computed
// layouts can optionally be persisted per run ID when a store is
// configured.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/evoviz/evoviz/pkg/pipeline"
	"github.com/evoviz/evoviz/pkg/store"
)

// Server wires the pipeline runner and optional layout store into an
// HTTP handler.
type Server struct {
	runner *pipeline.Runner
	store  store.Store // nil when persistence is disabled
	logger *log.Logger
	router chi.Router
}

// New creates the API server. st may be nil to disable persistence.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	s := &Server{
		runner: runner,
		store:  st,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/layout/strategy", s.handleStrategyLayout)
		r.Post("/layout/lineage", s.handleLineageLayout)
		r.Get("/runs/{runID}/layout/{kind}", s.handleRunLayout)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.logger.Info("listening", "addr", addr)
	return srv.ListenAndServe()
}
