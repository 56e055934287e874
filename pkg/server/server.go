// Package server exposes the chat pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/kaelux/assistant/pkg/assistant"
)

// Config controls the HTTP listener.
type Config struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	AdminToken string `yaml:"admin_token"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.Port <= 0 {
		c.Port = 8080
	}
	return c
}

// Responder handles one chat message. Implemented by
// assistant.Orchestrator.
type Responder interface {
	Respond(ctx context.Context, message string) (*assistant.Reply, error)
}

// Server is the HTTP front for the assistant.
type Server struct {
	cfg        *Config
	responder  Responder
	authorizer Authorizer
	log        zerolog.Logger
	httpServer *http.Server
}

// New creates a server. A nil authorizer leaves the endpoint open.
func New(cfg *Config, responder Responder, authorizer Authorizer, log zerolog.Logger) *Server {
	cfg = cfg.WithDefaults()
	if authorizer == nil {
		authorizer = TokenAuthorizer{Token: cfg.AdminToken}
	}
	return &Server{
		cfg:        cfg,
		responder:  responder,
		authorizer: authorizer,
		log:        log.With().Str("component", "server").Logger(),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	r.Post("/api/chat", s.handleChat)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.log.Info().Str("addr", addr).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
