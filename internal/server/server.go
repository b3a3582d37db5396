// Package server provides the HTTP JSON API over the matching engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/engine"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	engine     *engine.Engine
	defaults   engine.Options
	logger     *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port        int
	NumToSearch int
	NumToShow   int
	Concurrency int
}

// New creates a new server instance over an already-wired engine.
func New(cfg Config, eng *engine.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine: eng,
		logger: logger,
		defaults: engine.Options{
			NumToSearch: cfg.NumToSearch,
			NumToShow:   cfg.NumToShow,
			Concurrency: cfg.Concurrency,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/profiles", s.handleCreateProfile)
	mux.HandleFunc("POST /api/profiles/analysis", s.handleCreateProfileFromAnalysis)
	mux.HandleFunc("GET /api/profiles/{id}", s.handleGetProfile)
	mux.HandleFunc("GET /api/profiles", s.handleListProfiles)

	mux.HandleFunc("POST /api/postings", s.handlePublishPosting)
	mux.HandleFunc("GET /api/postings/{id}", s.handleGetPosting)
	mux.HandleFunc("GET /api/postings", s.handleListPostings)
	mux.HandleFunc("GET /api/postings/stats", s.handlePostingStats)

	mux.HandleFunc("POST /api/recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /api/candidate-search", s.handleCandidateSearch)
	mux.HandleFunc("POST /api/simple-match", s.handleSimpleMatch)

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
