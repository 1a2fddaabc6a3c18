// Package server provides the HTTP server for the Glide swipe typing
// engine.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/kmathur/glide/internal/decoder"
	"github.com/kmathur/glide/internal/dictionary"
	"github.com/kmathur/glide/internal/server/api"
	"github.com/kmathur/glide/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Dict      *dictionary.Dictionary
	Decoder   decoder.Config
}

// Server represents the HTTP server for the Glide application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		layoutHandler := api.NewLayoutHandler(s.config.Store)
		keysHandler := api.NewKeysHandler(s.config.Store)

		// Use a wrapper to route between layouts and keys handlers
		layoutRouter := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Check if this is a keys request: /api/layouts/{id}/keys
			if strings.HasSuffix(r.URL.Path, "/keys") {
				keysHandler.ServeHTTP(w, r)
				return
			}
			layoutHandler.ServeHTTP(w, r)
		})

		s.mux.Handle("/api/layouts", layoutRouter)
		s.mux.Handle("/api/layouts/", layoutRouter)

		decodeHandler := api.NewDecodeHandler(s.config.Store, s.config.Dict, s.config.Decoder)
		s.mux.Handle("/api/decode", decodeHandler)

		traceHandler := api.NewTraceHandler(s.config.Store)
		s.mux.Handle("/api/traces", traceHandler)
		s.mux.Handle("/api/traces/", traceHandler)

		swipeHandler := NewSwipeHandler(s.config.Store, s.config.Dict, s.config.Decoder)
		s.mux.Handle("/api/swipe", swipeHandler)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
