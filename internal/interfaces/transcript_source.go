package interfaces

import (
	"context"

	"github.com/theadtya/youtube-assistant/internal/models"
)

// TranscriptSource fetches caption transcripts for video URLs
type TranscriptSource interface {
	// FetchTranscript returns the caption segments for the video at url.
	// A transcript with zero segments is a valid result; callers decide how to treat it.
	FetchTranscript(ctx context.Context, url string) (*models.Transcript, error)
}
