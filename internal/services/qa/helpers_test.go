package qa

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/ternarybob/arbor"

	"github.com/theadtya/youtube-assistant/internal/common"
	"github.com/theadtya/youtube-assistant/internal/interfaces"
	"github.com/theadtya/youtube-assistant/internal/models"
)

const testPrompt = "Q: {question}\nDOCS: {docs}\nSay \"I don't know\" if unsure."

func testLogger() arbor.ILogger {
	return arbor.NewLogger()
}

// mockTranscriptSource returns a fixed transcript or error
type mockTranscriptSource struct {
	transcript *models.Transcript
	err        error
	calls      int
}

func (m *mockTranscriptSource) FetchTranscript(ctx context.Context, url string) (*models.Transcript, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.transcript, nil
}

// mockEmbedder produces letter-frequency vectors so similar text scores higher
type mockEmbedder struct {
	mu       sync.Mutex
	failWith error
	calls    int
}

func (m *mockEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	return letterVector(text), nil
}

func (m *mockEmbedder) GenerateQueryEmbedding(ctx context.Context, query string) ([]float32, error) {
	return m.GenerateEmbedding(ctx, query)
}

func (m *mockEmbedder) ModelName() string { return "letters" }

func letterVector(text string) []float32 {
	v := make([]float32, 27)
	v[26] = 1
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			v[r-'a']++
		} else if unicode.IsSpace(r) {
			v[26] += 0.1
		}
	}
	return v
}

// mockEmbeddingProvider hands out the same embedder and records credentials
type mockEmbeddingProvider struct {
	embedder    *mockEmbedder
	err         error
	credentials []string
}

func (m *mockEmbeddingProvider) EmbeddingService(ctx context.Context, credential string) (interfaces.EmbeddingService, error) {
	m.credentials = append(m.credentials, credential)
	if m.err != nil {
		return nil, m.err
	}
	return m.embedder, nil
}

// mockLLM returns a canned response and records what it was asked
type mockLLM struct {
	response    string
	err         error
	prompts     []string
	credentials []string
	models      []string
}

func (m *mockLLM) Complete(ctx context.Context, prompt, credential, model string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	m.credentials = append(m.credentials, credential)
	m.models = append(m.models, model)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLM) DefaultModel() string { return "gemini-test" }

// fiveThousandCharTranscript has three segments of 1666 characters joined by spaces
func fiveThousandCharTranscript() *models.Transcript {
	words := []string{"the", "speaker", "discusses", "rockets", "orbital", "mechanics", "and", "fuel", "budgets"}
	var segments []models.Segment
	for s := 0; s < 3; s++ {
		var b strings.Builder
		for i := 0; b.Len() < 1666; i++ {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(words[(i+s)%len(words)])
		}
		segments = append(segments, models.Segment{
			Text:  b.String()[:1666],
			Start: time.Duration(s) * time.Minute,
		})
	}
	return &models.Transcript{VideoID: "dQw4w9WgXcQ", Language: "en", Segments: segments}
}

func testConfig() *common.Config {
	config := common.NewDefaultConfig()
	config.Gemini.APIKey = ""
	return config
}
