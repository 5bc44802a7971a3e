package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/theadtya/youtube-assistant/internal/app"
)

// Server manages the HTTP server and routes
type Server struct {
	app    *app.App
	router *http.ServeMux
	server *http.Server
}

// New creates a new HTTP server with the given app
func New(application *app.App) *Server {
	s := &Server{
		app: application,
	}

	s.router = s.setupRoutes()

	// Must outlast one ask: transcript fetch plus provider calls
	writeTimeout := 15 * time.Second
	if t := application.Config.GeminiTimeout() + application.Config.TranscriptTimeout(); t > writeTimeout {
		writeTimeout = t
	}

	s.server = &http.Server{
		Addr:         s.Addr(),
		Handler:      s.withMiddleware(s.router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Addr returns the host:port the server listens on
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.app.Config.Server.Host, s.app.Config.Server.Port)
}

// Handler returns the routed handler with middleware applied
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.app.Logger.Info().
		Str("address", s.Addr()).
		Msg("HTTP server starting")

	s.app.Logger.Info().
		Str("url", fmt.Sprintf("http://%s", s.Addr())).
		Msg("Web UI available")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.app.Logger.Info().Msg("Shutting down HTTP server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.app.Logger.Info().Msg("HTTP server stopped")
	return nil
}
