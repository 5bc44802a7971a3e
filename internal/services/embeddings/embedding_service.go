package embeddings

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"google.golang.org/genai"

	"github.com/theadtya/youtube-assistant/internal/interfaces"
)

const (
	taskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	taskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// ContentEmbedder is the part of the genai models API used for embeddings.
// *genai.Models satisfies it.
type ContentEmbedder interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Service implements EmbeddingService interface on top of a Gemini embedding model
type Service struct {
	models  ContentEmbedder
	model   string
	timeout time.Duration
	logger  arbor.ILogger
}

var _ interfaces.EmbeddingService = (*Service)(nil)

// NewService creates a new embedding service. A zero timeout leaves deadlines to the caller's context.
func NewService(models ContentEmbedder, model string, timeout time.Duration, logger arbor.ILogger) *Service {
	return &Service{
		models:  models,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// GenerateEmbedding creates a vector embedding for text that will be stored in an index
func (s *Service) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return s.embed(ctx, text, taskRetrievalDocument)
}

// GenerateQueryEmbedding creates a vector embedding for a search query
func (s *Service) GenerateQueryEmbedding(ctx context.Context, query string) ([]float32, error) {
	return s.embed(ctx, query, taskRetrievalQuery)
}

// ModelName returns the model name
func (s *Service) ModelName() string {
	return s.model
}

func (s *Service) embed(ctx context.Context, text, taskType string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := s.models.EmbedContent(ctx, s.model,
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		&genai.EmbedContentConfig{TaskType: taskType})
	duration := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	var embedding []float32
	if result != nil && len(result.Embeddings) > 0 && result.Embeddings[0] != nil {
		embedding = result.Embeddings[0].Values
	}
	if len(embedding) == 0 {
		return nil, fmt.Errorf("no embedding returned from API")
	}

	s.logger.Debug().
		Str("model", s.model).
		Str("task", taskType).
		Int("embedding_dim", len(embedding)).
		Int("text_length", len(text)).
		Dur("duration", duration).
		Msg("Generated embedding")

	return embedding, nil
}
