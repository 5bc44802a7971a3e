package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/theadtya/youtube-assistant/internal/services/qa"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// StatusForError maps an Ask error kind to an HTTP status code.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, qa.ErrInvalidInput), errors.Is(err, qa.ErrCredentialRequired):
		return http.StatusBadRequest
	case errors.Is(err, qa.ErrTranscriptUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, qa.ErrEmbeddingFailure), errors.Is(err, qa.ErrGenerationFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
