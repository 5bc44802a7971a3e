package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/theadtya/youtube-assistant/internal/common"
	"github.com/theadtya/youtube-assistant/internal/models"
	"github.com/theadtya/youtube-assistant/internal/services/qa"
)

// fakeAsker returns a canned answer or error and records requests
type fakeAsker struct {
	answer     *models.Answer
	err        error
	configured string
	requests   []qa.AskRequest
}

func (f *fakeAsker) Ask(ctx context.Context, req qa.AskRequest) (*models.Answer, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.answer, nil
}

func (f *fakeAsker) Credential(requestKey string) string {
	if strings.TrimSpace(requestKey) != "" {
		return requestKey
	}
	return f.configured
}

func sampleAnswer() *models.Answer {
	return &models.Answer{
		Text:    strings.Repeat("orbital mechanics ", 12),
		Model:   "gemini-test",
		VideoID: "dQw4w9WgXcQ",
		Chunks: []models.Chunk{
			{Index: 2, Text: "rockets need fuel", StartTime: 90 * time.Second},
			{Index: 0, Text: "welcome back", StartTime: 0},
		},
	}
}

func newTestPageHandler(t *testing.T, asker *fakeAsker) *PageHandler {
	t.Helper()
	h, err := NewPageHandler(asker, common.NewDefaultConfig().UI, arbor.NewLogger())
	require.NoError(t, err)
	return h
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAskHandler_Success(t *testing.T) {
	asker := &fakeAsker{answer: sampleAnswer()}
	h := NewAskHandler(asker, arbor.NewLogger())

	body := `{"video_url":"https://youtu.be/dQw4w9WgXcQ","question":"What is discussed?","api_key":"key","k":2}`
	rec := httptest.NewRecorder()
	h.AskHandler(rec, httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp askResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "dQw4w9WgXcQ", resp.VideoID)
	assert.Equal(t, "gemini-test", resp.Model)
	require.Len(t, resp.Chunks, 2)
	assert.Equal(t, 2, resp.Chunks[0].Index)
	assert.Equal(t, 90.0, resp.Chunks[0].StartSeconds)

	require.Len(t, asker.requests, 1)
	assert.Equal(t, 2, asker.requests[0].K)
	assert.Equal(t, "key", asker.requests[0].APIKey)
}

func TestAskHandler_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid input", fmt.Errorf("%w: question is required", qa.ErrInvalidInput), http.StatusBadRequest},
		{"credential", qa.ErrCredentialRequired, http.StatusBadRequest},
		{"transcript", fmt.Errorf("%w: failed to load transcript: %w", qa.ErrTranscriptUnavailable, errors.New("404")), http.StatusUnprocessableEntity},
		{"embedding", fmt.Errorf("%w: %w", qa.ErrEmbeddingFailure, errors.New("boom")), http.StatusBadGateway},
		{"generation", fmt.Errorf("%w: %w", qa.ErrGenerationFailure, errors.New("boom")), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAskHandler(&fakeAsker{err: tt.err}, arbor.NewLogger())

			rec := httptest.NewRecorder()
			h.AskHandler(rec, httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"video_url":"x","question":"y"}`)))

			assert.Equal(t, tt.status, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp["status"])
			assert.Equal(t, qa.UserMessage(tt.err), resp["error"])
		})
	}
}

func TestAskHandler_BadRequests(t *testing.T) {
	asker := &fakeAsker{answer: sampleAnswer()}
	h := NewAskHandler(asker, arbor.NewLogger())

	rec := httptest.NewRecorder()
	h.AskHandler(rec, httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.AskHandler(rec, httptest.NewRequest(http.MethodGet, "/api/ask", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	assert.Empty(t, asker.requests)
}

func TestPageHandler_GetShowsCredentialPrompt(t *testing.T) {
	h := newTestPageHandler(t, &fakeAsker{})

	rec := httptest.NewRecorder()
	h.IndexHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>YouTube Assistant</title>")
	assert.Contains(t, body, `maxlength="50"`)
	assert.Contains(t, body, `type="password"`)
	assert.Contains(t, body, qa.CredentialPrompt)
	assert.NotContains(t, body, "Answer:")
}

func TestPageHandler_GetWithConfiguredKey(t *testing.T) {
	h := newTestPageHandler(t, &fakeAsker{configured: "config-key"})

	rec := httptest.NewRecorder()
	h.IndexHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotContains(t, rec.Body.String(), qa.CredentialPrompt)
}

func TestPageHandler_PostRendersWrappedAnswer(t *testing.T) {
	asker := &fakeAsker{answer: sampleAnswer()}
	h := newTestPageHandler(t, asker)

	rec := httptest.NewRecorder()
	h.IndexHandler(rec, postForm(url.Values{
		"video_url": {"https://youtu.be/dQw4w9WgXcQ"},
		"question":  {"What is discussed?"},
		"api_key":   {"form-key"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h3>Answer:</h3>")
	assert.Contains(t, body, common.FillText(sampleAnswer().Text, 85))
	assert.Contains(t, body, "1:30")
	assert.Contains(t, body, "rockets need fuel")
	assert.Contains(t, body, `value="https://youtu.be/dQw4w9WgXcQ"`)

	require.Len(t, asker.requests, 1)
	assert.Equal(t, "form-key", asker.requests[0].APIKey)
}

func TestPageHandler_PostErrors(t *testing.T) {
	t.Run("credential required", func(t *testing.T) {
		h := newTestPageHandler(t, &fakeAsker{err: qa.ErrCredentialRequired})

		rec := httptest.NewRecorder()
		h.IndexHandler(rec, postForm(url.Values{"video_url": {"dQw4w9WgXcQ"}, "question": {"why?"}}))

		assert.Contains(t, rec.Body.String(), qa.CredentialPrompt)
		assert.NotContains(t, rec.Body.String(), "Answer:")
	})

	t.Run("no transcript", func(t *testing.T) {
		err := fmt.Errorf("%w: failed to load transcript: %w", qa.ErrTranscriptUnavailable, qa.ErrNoTranscript)
		h := newTestPageHandler(t, &fakeAsker{err: err})

		rec := httptest.NewRecorder()
		h.IndexHandler(rec, postForm(url.Values{"video_url": {"dQw4w9WgXcQ"}, "question": {"why?"}, "api_key": {"k"}}))

		assert.Contains(t, rec.Body.String(), qa.NoTranscriptMessage)
	})

	t.Run("empty form", func(t *testing.T) {
		asker := &fakeAsker{}
		h := newTestPageHandler(t, asker)

		rec := httptest.NewRecorder()
		h.IndexHandler(rec, postForm(url.Values{}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, asker.requests)
	})
}

func TestPageHandler_UnknownPath(t *testing.T) {
	h := newTestPageHandler(t, &fakeAsker{})

	rec := httptest.NewRecorder()
	h.IndexHandler(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIHandler(t *testing.T) {
	h := NewAPIHandler(arbor.NewLogger())

	rec := httptest.NewRecorder()
	h.HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.VersionHandler(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	var info map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, common.GetVersion(), info["version"])

	rec = httptest.NewRecorder()
	h.HealthHandler(rec, httptest.NewRequest(http.MethodPost, "/api/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
