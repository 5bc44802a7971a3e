package qa

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theadtya/youtube-assistant/internal/models"
)

func TestBuildIndex_ChunkCount(t *testing.T) {
	transcript := fiveThousandCharTranscript()
	require.Len(t, transcript.Text(), 5000)

	embedder := &mockEmbedder{}
	indexer := NewIndexer(&mockTranscriptSource{transcript: transcript}, testLogger())

	index, err := indexer.BuildIndex(context.Background(), "https://youtu.be/dQw4w9WgXcQ", embedder)
	require.NoError(t, err)

	require.Equal(t, 6, index.Len())
	assert.Equal(t, 6, embedder.calls, "one embedding per chunk")

	var starts []int
	for _, c := range index.Chunks() {
		starts = append(starts, c.StartOffset)
	}
	assert.Equal(t, []int{0, 900, 1800, 2700, 3600, 4500}, starts)
	assert.Equal(t, "dQw4w9WgXcQ", index.VideoID())
}

func TestBuildIndex_FetchFailure(t *testing.T) {
	cause := errors.New("network unreachable")
	embedder := &mockEmbedder{}
	indexer := NewIndexer(&mockTranscriptSource{err: cause}, testLogger())

	index, err := indexer.BuildIndex(context.Background(), "https://youtu.be/dQw4w9WgXcQ", embedder)
	assert.Nil(t, index)
	assert.ErrorIs(t, err, ErrTranscriptUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNoTranscript)
	assert.Contains(t, err.Error(), "failed to load transcript")
	assert.Zero(t, embedder.calls)
}

func TestBuildIndex_EmptyTranscript(t *testing.T) {
	for _, transcript := range []*models.Transcript{
		{VideoID: "dQw4w9WgXcQ"},
		{VideoID: "dQw4w9WgXcQ", Segments: []models.Segment{{Text: "   "}}},
	} {
		embedder := &mockEmbedder{}
		indexer := NewIndexer(&mockTranscriptSource{transcript: transcript}, testLogger())

		index, err := indexer.BuildIndex(context.Background(), "dQw4w9WgXcQ", embedder)
		assert.Nil(t, index)
		assert.ErrorIs(t, err, ErrTranscriptUnavailable)
		assert.ErrorIs(t, err, ErrNoTranscript)
		assert.Contains(t, err.Error(), "no transcript found")
		assert.Zero(t, embedder.calls)
	}
}

func TestBuildIndex_EmbeddingFailure(t *testing.T) {
	cause := errors.New("embedding quota exceeded")
	indexer := NewIndexer(&mockTranscriptSource{transcript: fiveThousandCharTranscript()}, testLogger())

	index, err := indexer.BuildIndex(context.Background(), "dQw4w9WgXcQ", &mockEmbedder{failWith: cause})
	assert.Nil(t, index)
	assert.ErrorIs(t, err, ErrEmbeddingFailure)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrTranscriptUnavailable)
}
