package qa

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"credential", ErrCredentialRequired, CredentialPrompt},
		{"empty transcript", transcriptError(ErrNoTranscript), NoTranscriptMessage},
		{"fetch failure", transcriptError(errors.New("unexpected status 404")), "Failed to load transcript: unexpected status 404"},
		{"invalid input", fmt.Errorf("%w: question is required", ErrInvalidInput), "invalid input: question is required"},
		{"bad key", generationError(errors.New("API key not valid")), "The Gemini API key was rejected. Please check it and try again."},
		{"quota", embeddingError(errors.New("RESOURCE_EXHAUSTED")), "The Gemini API quota is exhausted. Please try again later."},
		{"embedding", embeddingError(errors.New("boom")), "Failed to index the transcript. Please try again."},
		{"generation", generationError(errors.New("boom")), "Failed to generate an answer. Please try again."},
		{"unknown", errors.New("boom"), "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
