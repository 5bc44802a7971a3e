package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"google.golang.org/genai"

	"github.com/theadtya/youtube-assistant/internal/common"
	"github.com/theadtya/youtube-assistant/internal/interfaces"
	"github.com/theadtya/youtube-assistant/internal/services/embeddings"
)

// ErrMissingAPIKey is returned when a call is made without a credential
var ErrMissingAPIKey = errors.New("gemini API key is required")

// ModelsAPI is the subset of *genai.Models used by this package
type ModelsAPI interface {
	embeddings.ContentEmbedder
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ModelsFactory opens the models API for one credential
type ModelsFactory func(ctx context.Context, apiKey string) (ModelsAPI, error)

// NewGeminiModels creates a genai client for apiKey against the Gemini API backend
func NewGeminiModels(ctx context.Context, apiKey string) (ModelsAPI, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client.Models, nil
}

// GeminiService implements LLMService and EmbeddingProvider using Google Gemini.
// It holds no credential: every call opens a client for the key it is given.
type GeminiService struct {
	config    *common.GeminiConfig
	timeout   time.Duration
	newModels ModelsFactory
	logger    arbor.ILogger
}

var (
	_ interfaces.LLMService        = (*GeminiService)(nil)
	_ interfaces.EmbeddingProvider = (*GeminiService)(nil)
)

// NewGeminiService creates the service. A nil factory uses NewGeminiModels.
func NewGeminiService(config *common.GeminiConfig, timeout time.Duration, newModels ModelsFactory, logger arbor.ILogger) *GeminiService {
	if newModels == nil {
		newModels = NewGeminiModels
	}
	return &GeminiService{
		config:    config,
		timeout:   timeout,
		newModels: newModels,
		logger:    logger,
	}
}

// DefaultModel returns the configured generation model
func (s *GeminiService) DefaultModel() string {
	return s.config.Model
}

// EmbeddingService returns an embedding service bound to credential
func (s *GeminiService) EmbeddingService(ctx context.Context, credential string) (interfaces.EmbeddingService, error) {
	if credential == "" {
		return nil, ErrMissingAPIKey
	}
	models, err := s.newModels(ctx, credential)
	if err != nil {
		return nil, err
	}
	return embeddings.NewService(models, s.config.EmbedModel, s.timeout, s.logger), nil
}

// Complete sends prompt as a single user turn and returns the response text.
// Failures are returned as-is; nothing is retried.
func (s *GeminiService) Complete(ctx context.Context, prompt, credential, model string) (string, error) {
	if credential == "" {
		return "", ErrMissingAPIKey
	}
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if model == "" {
		model = s.config.Model
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	models, err := s.newModels(ctx, credential)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(s.config.Temperature),
	}

	start := time.Now()
	resp, err := models.GenerateContent(ctx, model, genai.Text(prompt), config)
	duration := time.Since(start)
	if err != nil {
		s.logger.Warn().
			Str("model", model).
			Str("reason", ErrorReason(err)).
			Dur("duration", duration).
			Err(err).
			Msg("Gemini generation failed")
		return "", fmt.Errorf("generation failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("no response generated from model %s", model)
	}

	s.logger.Debug().
		Str("model", model).
		Int("prompt_length", len(prompt)).
		Int("response_length", len(text)).
		Dur("duration", duration).
		Msg("Gemini generation completed")

	return text, nil
}

// responseText returns the text parts of the first candidate that has any
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var response strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" && !part.Thought {
				response.WriteString(part.Text)
			}
		}
		if response.Len() > 0 {
			break
		}
	}
	return response.String()
}
