// Package vectorindex holds transcript chunks and their embeddings in memory
// and answers exact nearest-neighbour queries by cosine similarity.
package vectorindex

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/theadtya/youtube-assistant/internal/interfaces"
	"github.com/theadtya/youtube-assistant/internal/models"
)

var (
	// ErrNoEmbedder is returned by SimilaritySearch on an index built without an embedding service
	ErrNoEmbedder = errors.New("index has no embedding service")
	// ErrDimensionMismatch is returned when vectors of different lengths are mixed
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

// Match is one search hit
type Match struct {
	Chunk models.Chunk `json:"chunk"`
	Score float32      `json:"score"` // Cosine similarity, higher is closer
}

type entry struct {
	chunk  models.Chunk
	vector []float32
	norm   float64
}

// Index is an immutable set of (chunk, embedding) pairs.
// All methods are safe for concurrent use because nothing mutates after construction.
type Index struct {
	id        string
	videoID   string
	dimension int
	entries   []entry
	embedder  interfaces.EmbeddingService
}

// Build embeds every chunk in order with embedder and returns the finished index.
// The first embedding error aborts the build and no index is returned.
func Build(ctx context.Context, chunks []models.Chunk, embedder interfaces.EmbeddingService) (*Index, error) {
	if embedder == nil {
		return nil, ErrNoEmbedder
	}

	vectors := make([][]float32, 0, len(chunks))
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vector, err := embedder.GenerateEmbedding(ctx, chunk.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunk %d of %d: %w", i+1, len(chunks), err)
		}
		vectors = append(vectors, vector)
	}

	return New(chunks, vectors, embedder)
}

// New creates an index from precomputed vectors, one per chunk.
// embedder may be nil when only SearchByVector will be used.
func New(chunks []models.Chunk, vectors [][]float32, embedder interfaces.EmbeddingService) (*Index, error) {
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("got %d chunks but %d vectors", len(chunks), len(vectors))
	}

	ix := &Index{
		id:       uuid.NewString(),
		entries:  make([]entry, 0, len(chunks)),
		embedder: embedder,
	}

	for i, chunk := range chunks {
		vector := vectors[i]
		if len(vector) == 0 {
			return nil, fmt.Errorf("chunk %d has an empty embedding", i)
		}
		if ix.dimension == 0 {
			ix.dimension = len(vector)
			ix.videoID = chunk.VideoID
		} else if len(vector) != ix.dimension {
			return nil, fmt.Errorf("%w: chunk %d has %d dimensions, expected %d", ErrDimensionMismatch, i, len(vector), ix.dimension)
		}

		ix.entries = append(ix.entries, entry{
			chunk:  chunk,
			vector: append([]float32(nil), vector...),
			norm:   norm(vector),
		})
	}

	return ix, nil
}

// ID returns the identifier assigned at construction, used for log correlation
func (ix *Index) ID() string { return ix.id }

// VideoID returns the video the indexed chunks came from
func (ix *Index) VideoID() string { return ix.videoID }

// Len returns the number of indexed chunks
func (ix *Index) Len() int { return len(ix.entries) }

// Dimension returns the embedding length, zero for an empty index
func (ix *Index) Dimension() int { return ix.dimension }

// Chunks returns the indexed chunks in insertion order
func (ix *Index) Chunks() []models.Chunk {
	out := make([]models.Chunk, len(ix.entries))
	for i, e := range ix.entries {
		out[i] = e.chunk
	}
	return out
}

// SimilaritySearch embeds query with the index's embedding service and returns the k closest chunks
func (ix *Index) SimilaritySearch(ctx context.Context, query string, k int) ([]Match, error) {
	if ix.embedder == nil {
		return nil, ErrNoEmbedder
	}

	vector, err := ix.embedder.GenerateQueryEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	return ix.SearchByVector(vector, k)
}

// SearchByVector returns the k chunks most similar to vector, best first.
// Equal scores keep insertion order. k larger than Len returns every chunk.
func (ix *Index) SearchByVector(vector []float32, k int) ([]Match, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	if len(ix.entries) == 0 {
		return []Match{}, nil
	}
	if len(vector) != ix.dimension {
		return nil, fmt.Errorf("%w: query has %d dimensions, index has %d", ErrDimensionMismatch, len(vector), ix.dimension)
	}

	queryNorm := norm(vector)
	matches := make([]Match, len(ix.entries))
	for i, e := range ix.entries {
		matches[i] = Match{
			Chunk: e.chunk,
			Score: cosine(vector, queryNorm, e.vector, e.norm),
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

func cosine(a []float32, normA float64, b []float32, normB float64) float32 {
	if normA == 0 || normB == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return float32(dot / (normA * normB))
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
