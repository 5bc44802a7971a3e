package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/theadtya/youtube-assistant/internal/services/qa"
)

// AskHandler serves the JSON question answering endpoint
type AskHandler struct {
	service AskService
	logger  arbor.ILogger
}

// NewAskHandler creates a new ask handler
func NewAskHandler(service AskService, logger arbor.ILogger) *AskHandler {
	return &AskHandler{
		service: service,
		logger:  logger,
	}
}

type askChunk struct {
	Index        int     `json:"index"`
	Text         string  `json:"text"`
	StartSeconds float64 `json:"start_seconds"`
}

type askResponse struct {
	Success bool       `json:"success"`
	Answer  string     `json:"answer"`
	VideoID string     `json:"video_id"`
	Model   string     `json:"model"`
	Chunks  []askChunk `json:"chunks"`
}

// AskHandler handles POST /api/ask requests
func (h *AskHandler) AskHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req qa.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to decode ask request")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.logger.Info().
		Int("question_length", len(req.Question)).
		Int("k", req.K).
		Msg("Processing ask request")

	start := time.Now()
	answer, err := h.service.Ask(r.Context(), req)
	if err != nil {
		status := StatusForError(err)
		h.logger.Error().
			Err(err).
			Int("status", status).
			Msg("Ask request failed")
		WriteError(w, status, qa.UserMessage(err))
		return
	}

	chunks := make([]askChunk, 0, len(answer.Chunks))
	for _, c := range answer.Chunks {
		chunks = append(chunks, askChunk{
			Index:        c.Index,
			Text:         c.Text,
			StartSeconds: c.StartTime.Seconds(),
		})
	}

	h.logger.Info().
		Str("video_id", answer.VideoID).
		Dur("duration", time.Since(start)).
		Msg("Ask request completed")

	WriteJSON(w, http.StatusOK, askResponse{
		Success: true,
		Answer:  answer.Text,
		VideoID: answer.VideoID,
		Model:   answer.Model,
		Chunks:  chunks,
	})
}
