package interfaces

import (
	"context"
)

// EmbeddingService generates vector embeddings
type EmbeddingService interface {
	// Generate embedding for transcript text that will be stored in an index
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)

	// Generate query embedding (may use a different task type than stored text)
	GenerateQueryEmbedding(ctx context.Context, query string) ([]float32, error)

	// Get model information
	ModelName() string
}

// EmbeddingProvider hands out embedding services bound to one credential.
// Each request asks for its own service, so no key is shared between requests.
type EmbeddingProvider interface {
	EmbeddingService(ctx context.Context, credential string) (EmbeddingService, error)
}
