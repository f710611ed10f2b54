// Package server provides the HTTP REST API for the talent-search backend.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matchpoint/matchpoint/internal/ingestion"
	"github.com/matchpoint/matchpoint/internal/matchsvc"
	"github.com/matchpoint/matchpoint/internal/store"
)

// Matcher runs the candidate ranking computation. The production
// implementation is the matchsvc client pointed at the remote evaluator
// service; tests inject fakes.
type Matcher interface {
	Search(ctx context.Context, req *matchsvc.SearchRequest) (*matchsvc.SearchResponse, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *store.Store
	matcher    Matcher
	dataDir    string
	watch      bool
	mux        *http.ServeMux
}

// Config holds server configuration
type Config struct {
	Port    int
	DataDir string
	Watch   bool
}

// New creates a new server instance
func New(cfg Config, st *store.Store, matcher Matcher) *Server {
	s := &Server{
		store:   st,
		matcher: matcher,
		dataDir: cfg.DataDir,
		watch:   cfg.Watch,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/v1/ingest", s.handleIngest)
	mux.HandleFunc("POST /api/v1/search", s.handleSearch)
	mux.HandleFunc("GET /api/v1/resume/{name}", s.handleResume)
	mux.HandleFunc("POST /api/v1/export", s.handleExport)
	s.mux = mux

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // search requests wait on the remote evaluator
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the route handler without middleware, for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()

	if s.watch {
		go func() {
			if err := ingestion.Watch(watchCtx, s.dataDir, s.store); err != nil && watchCtx.Err() == nil {
				log.Printf("Resume watcher stopped: %v", err)
			}
		}()
	}

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")
	cancelWatch()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.store.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response. The "detail" key is the wire
// contract the frontend and the matchsvc client parse.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"detail": message})
}
