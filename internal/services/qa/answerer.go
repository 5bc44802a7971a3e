package qa

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/theadtya/youtube-assistant/internal/interfaces"
	"github.com/theadtya/youtube-assistant/internal/models"
	"github.com/theadtya/youtube-assistant/internal/services/vectorindex"
)

// DefaultK is the number of chunks retrieved when the caller does not choose
const DefaultK = 4

// Answerer retrieves context from an index and asks the model a single question
type Answerer struct {
	llm      interfaces.LLMService
	template string
	model    string
	logger   arbor.ILogger
}

// NewAnswerer creates an answerer. promptTemplate must reference {question} and {docs};
// an empty model uses the service default.
func NewAnswerer(llm interfaces.LLMService, promptTemplate, model string, logger arbor.ILogger) *Answerer {
	return &Answerer{
		llm:      llm,
		template: promptTemplate,
		model:    model,
		logger:   logger,
	}
}

// Answer returns the model's newline-free answer to query using the k chunks
// of index closest to it, along with those chunks in retrieval order.
// The credential is used for this call only.
func (a *Answerer) Answer(ctx context.Context, index *vectorindex.Index, query string, k int, credential string) (*models.Answer, error) {
	if index == nil {
		return nil, fmt.Errorf("%w: index is required", ErrInvalidInput)
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: question cannot be empty", ErrInvalidInput)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidInput, k)
	}
	if credential == "" {
		return nil, ErrCredentialRequired
	}

	start := time.Now()

	matches, err := index.SimilaritySearch(ctx, query, k)
	if err != nil {
		return nil, embeddingError(err)
	}

	chunks := make([]models.Chunk, len(matches))
	for i, m := range matches {
		chunks[i] = m.Chunk
	}

	prompt := BuildPrompt(a.template, query, JoinContext(chunks), a.logger)

	model := a.model
	if model == "" {
		model = a.llm.DefaultModel()
	}

	raw, err := a.llm.Complete(ctx, prompt, credential, model)
	if err != nil {
		return nil, generationError(err)
	}

	answer := &models.Answer{
		Text:    StripNewlines(raw),
		Chunks:  chunks,
		Model:   model,
		VideoID: index.VideoID(),
	}

	a.logger.Info().
		Str("index_id", index.ID()).
		Str("model", model).
		Int("k", k).
		Int("retrieved", len(chunks)).
		Int("prompt_length", len(prompt)).
		Int("answer_length", len(answer.Text)).
		Dur("duration", time.Since(start)).
		Msg("Question answered")

	return answer, nil
}
