package qa

import (
	"context"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/theadtya/youtube-assistant/internal/interfaces"
	"github.com/theadtya/youtube-assistant/internal/services/chunking"
	"github.com/theadtya/youtube-assistant/internal/services/vectorindex"
)

// Indexer turns a video URL into a searchable index of its transcript
type Indexer struct {
	transcripts interfaces.TranscriptSource
	splitter    *chunking.Splitter
	logger      arbor.ILogger
}

// NewIndexer creates an indexer using the fixed 1000/100 chunk windows
func NewIndexer(transcripts interfaces.TranscriptSource, logger arbor.ILogger) *Indexer {
	return &Indexer{
		transcripts: transcripts,
		splitter:    chunking.NewDefaultSplitter(),
		logger:      logger,
	}
}

// BuildIndex fetches the transcript, splits it and embeds every chunk with embedder.
// Returns ErrTranscriptUnavailable when the fetch fails or yields no text and
// ErrEmbeddingFailure when any chunk cannot be embedded. No partial index is returned.
func (ix *Indexer) BuildIndex(ctx context.Context, videoURL string, embedder interfaces.EmbeddingService) (*vectorindex.Index, error) {
	start := time.Now()

	transcript, err := ix.transcripts.FetchTranscript(ctx, videoURL)
	if err != nil {
		ix.logger.Warn().Str("url", videoURL).Err(err).Msg("Transcript fetch failed")
		return nil, transcriptError(err)
	}
	if transcript.IsEmpty() {
		ix.logger.Warn().Str("url", videoURL).Msg("Transcript has no text")
		return nil, transcriptError(ErrNoTranscript)
	}

	chunks := ix.splitter.SplitTranscript(transcript)

	index, err := vectorindex.Build(ctx, chunks, embedder)
	if err != nil {
		ix.logger.Error().Str("video_id", transcript.VideoID).Int("chunks", len(chunks)).Err(err).Msg("Failed to embed transcript")
		return nil, embeddingError(err)
	}

	ix.logger.Info().
		Str("video_id", transcript.VideoID).
		Str("index_id", index.ID()).
		Str("language", transcript.Language).
		Int("segments", len(transcript.Segments)).
		Int("chunks", index.Len()).
		Int("dimension", index.Dimension()).
		Dur("duration", time.Since(start)).
		Msg("Transcript indexed")

	return index, nil
}
