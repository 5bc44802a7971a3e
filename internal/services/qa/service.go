package qa

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/theadtya/youtube-assistant/internal/common"
	"github.com/theadtya/youtube-assistant/internal/interfaces"
	"github.com/theadtya/youtube-assistant/internal/models"
	"github.com/theadtya/youtube-assistant/internal/services/vectorindex"
)

// IndexBuilder builds an index for one video
type IndexBuilder interface {
	BuildIndex(ctx context.Context, videoURL string, embedder interfaces.EmbeddingService) (*vectorindex.Index, error)
}

// QuestionAnswerer answers one question against a built index
type QuestionAnswerer interface {
	Answer(ctx context.Context, index *vectorindex.Index, query string, k int, credential string) (*models.Answer, error)
}

// AskRequest is one form or API submission
type AskRequest struct {
	VideoURL string `json:"video_url" validate:"required"`
	Question string `json:"question" validate:"required"`
	APIKey   string `json:"api_key"`
	K        int    `json:"k" validate:"gte=0"`
}

// Service runs the index-then-answer flow for a single request.
// Every call builds its own index; nothing is shared between requests.
type Service struct {
	indexer    IndexBuilder
	answerer   QuestionAnswerer
	embeddings interfaces.EmbeddingProvider
	config     *common.Config
	validate   *validator.Validate
	logger     arbor.ILogger
}

// NewService creates the ask service
func NewService(indexer IndexBuilder, answerer QuestionAnswerer, embeddings interfaces.EmbeddingProvider, config *common.Config, logger arbor.ILogger) *Service {
	return &Service{
		indexer:    indexer,
		answerer:   answerer,
		embeddings: embeddings,
		config:     config,
		validate:   newValidator(),
		logger:     logger,
	}
}

// Credential returns the key to use for a request: the submitted one, else the configured fallback
func (s *Service) Credential(requestKey string) string {
	if key := strings.TrimSpace(requestKey); key != "" {
		return key
	}
	return strings.TrimSpace(s.config.Gemini.APIKey)
}

// Validate checks required fields and the configured length limits
func (s *Service) Validate(req AskRequest) error {
	req.VideoURL = strings.TrimSpace(req.VideoURL)
	req.Question = strings.TrimSpace(req.Question)

	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, formatValidationErrors(err))
	}

	limits := []struct {
		field string
		value string
		max   int
	}{
		{"video_url", req.VideoURL, s.config.UI.MaxURLChars},
		{"question", req.Question, s.config.UI.MaxQuestionChars},
	}
	for _, l := range limits {
		if l.max <= 0 {
			continue
		}
		if err := s.validate.Var(l.value, fmt.Sprintf("max=%d", l.max)); err != nil {
			return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, l.field, l.max)
		}
	}

	if maxK := s.config.Answer.MaxK; maxK > 0 && req.K > maxK {
		return fmt.Errorf("%w: k must be at most %d", ErrInvalidInput, maxK)
	}
	return nil
}

// Ask validates the request, resolves the credential, builds the index and answers.
// Without a credential it returns ErrCredentialRequired before any other call.
func (s *Service) Ask(ctx context.Context, req AskRequest) (*models.Answer, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	credential := s.Credential(req.APIKey)
	if credential == "" {
		return nil, ErrCredentialRequired
	}

	k := req.K
	if k == 0 {
		k = s.config.Answer.DefaultK
	}
	if k < 1 {
		k = DefaultK
	}

	start := time.Now()

	embedder, err := s.embeddings.EmbeddingService(ctx, credential)
	if err != nil {
		return nil, embeddingError(err)
	}

	index, err := s.indexer.BuildIndex(ctx, strings.TrimSpace(req.VideoURL), embedder)
	if err != nil {
		return nil, err
	}

	answer, err := s.answerer.Answer(ctx, index, strings.TrimSpace(req.Question), k, credential)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("video_id", answer.VideoID).
		Int("k", k).
		Dur("duration", time.Since(start)).
		Msg("Ask completed")

	return answer, nil
}

// newValidator reports fields by their json names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formatValidationErrors renders validator errors as "field failed on tag" phrases
func formatValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fe.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed on the '%s' tag (%s)", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(messages, "; ")
}
