package qa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theadtya/youtube-assistant/internal/services/llm"
)

// Error kinds. Failures wrap one of these together with their cause, so
// callers can test both with errors.Is.
var (
	// ErrTranscriptUnavailable covers fetch failures and empty transcripts
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	// ErrNoTranscript is the empty-transcript case of ErrTranscriptUnavailable
	ErrNoTranscript = errors.New("no transcript found for this video")
	// ErrEmbeddingFailure is an embedding provider error
	ErrEmbeddingFailure = errors.New("embedding failure")
	// ErrGenerationFailure is a completion provider error
	ErrGenerationFailure = errors.New("generation failure")
	// ErrCredentialRequired is returned before any provider call when no API key is available
	ErrCredentialRequired = errors.New("credential required")
	// ErrInvalidInput is a malformed request
	ErrInvalidInput = errors.New("invalid input")
)

const (
	// CredentialPrompt is shown when no API key is available
	CredentialPrompt = "Please add your Gemini API key to continue."
	// NoTranscriptMessage is shown for videos without caption text
	NoTranscriptMessage = "No transcript found for this video. Please check the URL or try another video."
)

// UserMessage turns an Ask error into text suitable for the person at the form
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCredentialRequired):
		return CredentialPrompt
	case errors.Is(err, ErrNoTranscript):
		return NoTranscriptMessage
	case errors.Is(err, ErrTranscriptUnavailable):
		msg := detail(err, ErrTranscriptUnavailable)
		return strings.ToUpper(msg[:1]) + msg[1:]
	case errors.Is(err, ErrInvalidInput):
		return err.Error()
	case errors.Is(err, ErrEmbeddingFailure), errors.Is(err, ErrGenerationFailure):
		switch llm.ErrorReason(err) {
		case "invalid_api_key":
			return "The Gemini API key was rejected. Please check it and try again."
		case "quota_exceeded":
			return "The Gemini API quota is exhausted. Please try again later."
		}
		if errors.Is(err, ErrEmbeddingFailure) {
			return "Failed to index the transcript. Please try again."
		}
		return "Failed to generate an answer. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}

// detail strips everything up to and including the kind prefix from the error text
func detail(err error, kind error) string {
	msg := err.Error()
	prefix := kind.Error() + ": "
	if idx := strings.Index(msg, prefix); idx >= 0 {
		msg = msg[idx+len(prefix):]
	}
	if msg == "" {
		return kind.Error()
	}
	return msg
}

func transcriptError(cause error) error {
	return fmt.Errorf("%w: failed to load transcript: %w", ErrTranscriptUnavailable, cause)
}

func embeddingError(cause error) error {
	return fmt.Errorf("%w: %w", ErrEmbeddingFailure, cause)
}

func generationError(cause error) error {
	return fmt.Errorf("%w: %w", ErrGenerationFailure, cause)
}
