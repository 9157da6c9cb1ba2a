// Package server provides the HTTP API for the schema synthesis pipeline.
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

	"github.com/go-playground/validator/v10"

	"github.com/drmixer/seogenix-schema/internal/fetch"
	"github.com/drmixer/seogenix-schema/internal/llm"
	"github.com/drmixer/seogenix-schema/internal/pipeline"
	"github.com/drmixer/seogenix-schema/internal/recorder"
	"github.com/drmixer/seogenix-schema/internal/validate"
)

// Config holds server configuration.
type Config struct {
	Port int
	// DatabaseURL enables the Postgres run recorder; empty means runs are
	// not persisted.
	DatabaseURL string
	// GeminiAPIKey enables escalation; empty means lean-only operation.
	GeminiAPIKey string
	// ValidatorURL points at the optional remote conformance service.
	ValidatorURL string
	// UseBrowser enables headless-browser rendering for URL fetches.
	UseBrowser bool
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	runner     *pipeline.Runner
	store      *recorder.Store
	llmClient  llm.Client
	validate   *validator.Validate
}

// New creates a server and wires the pipeline's collaborators from config.
func New(ctx context.Context, cfg Config) (*Server, error) {
	s := &Server{validate: validator.New()}

	var rec recorder.Recorder = recorder.Noop{}
	if cfg.DatabaseURL != "" {
		store, err := recorder.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect run recorder: %w", err)
		}
		s.store = store
		rec = store
	}

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
	} else {
		log.Println("no API key configured, escalation disabled")
	}

	var remote validate.Validator
	if cfg.ValidatorURL != "" {
		remote = validate.NewRemote(cfg.ValidatorURL)
	}

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.UseBrowser = cfg.UseBrowser

	s.runner = pipeline.NewRunner(
		validate.NewResolver(remote, validate.NewLocal()),
		s.llmClient,
		fetch.NewClient(fetchOpts),
		rec,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /projects/{project_id}/runs", s.handleListRuns)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // escalation calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.store != nil {
		s.store.Close()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"message": message})
}
