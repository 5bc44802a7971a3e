package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// UI page: GET renders the form, POST answers it
	mux.HandleFunc("/", s.app.PageHandler.IndexHandler)

	// API routes - Question answering
	mux.HandleFunc("/api/ask", s.app.AskHandler.AskHandler) // POST

	// API routes - System
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)

	// Unknown API paths get JSON rather than the form page
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
