package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/theadtya/youtube-assistant/internal/common"
	"github.com/theadtya/youtube-assistant/internal/handlers"
	"github.com/theadtya/youtube-assistant/internal/httpclient"
	"github.com/theadtya/youtube-assistant/internal/interfaces"
	"github.com/theadtya/youtube-assistant/internal/services/llm"
	"github.com/theadtya/youtube-assistant/internal/services/qa"
	"github.com/theadtya/youtube-assistant/internal/services/transcript"
	"github.com/theadtya/youtube-assistant/internal/templates"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Transcript source (YouTube captions)
	TranscriptSource interfaces.TranscriptSource

	// Gemini generation and embeddings
	LLMService *llm.GeminiService

	// Question answering
	Indexer    *qa.Indexer
	Answerer   *qa.Answerer
	AskService *qa.Service

	// HTTP handlers
	APIHandler  *handlers.APIHandler
	AskHandler  *handlers.AskHandler
	PageHandler *handlers.PageHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if err := app.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	logger.Info().
		Str("model", cfg.Gemini.Model).
		Str("embed_model", cfg.Gemini.EmbedModel).
		Bool("api_key_configured", cfg.Gemini.APIKey != "").
		Msg("Application initialization complete")

	return app, nil
}

// initServices wires the transcript source, Gemini and the ask flow
func (a *App) initServices() error {
	client, err := httpclient.NewYouTubeClient(a.Config.TranscriptTimeout())
	if err != nil {
		return fmt.Errorf("failed to create transcript client: %w", err)
	}
	a.TranscriptSource = transcript.NewYouTubeFetcher(client, a.Config, a.Logger)

	a.LLMService = llm.NewGeminiService(&a.Config.Gemini, a.Config.GeminiTimeout(), llm.NewGeminiModels, a.Logger)

	prompt, err := templates.GetTemplate(templates.AnswerPrompt, a.Config.Answer.TemplatesDir)
	if err != nil {
		return fmt.Errorf("failed to load answer prompt: %w", err)
	}
	a.Logger.Debug().
		Str("template", prompt.Name).
		Strs("placeholders", prompt.Placeholders).
		Msg("Answer prompt loaded")

	a.Indexer = qa.NewIndexer(a.TranscriptSource, a.Logger)
	a.Answerer = qa.NewAnswerer(a.LLMService, prompt.Prompt, a.Config.Gemini.Model, a.Logger)
	a.AskService = qa.NewService(a.Indexer, a.Answerer, a.LLMService, a.Config, a.Logger)

	return nil
}

func (a *App) initHandlers() error {
	a.APIHandler = handlers.NewAPIHandler(a.Logger)
	a.AskHandler = handlers.NewAskHandler(a.AskService, a.Logger)

	pageHandler, err := handlers.NewPageHandler(a.AskService, a.Config.UI, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to create page handler: %w", err)
	}
	a.PageHandler = pageHandler

	return nil
}

// Close releases application resources. Provider clients are created per
// request, so there is nothing held open between requests.
func (a *App) Close() error {
	a.Logger.Info().Msg("Application closed")
	return nil
}
