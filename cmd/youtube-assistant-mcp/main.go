package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"
	"github.com/theadtya/youtube-assistant/internal/common"
	"github.com/theadtya/youtube-assistant/internal/httpclient"
	"github.com/theadtya/youtube-assistant/internal/services/llm"
	"github.com/theadtya/youtube-assistant/internal/services/qa"
	"github.com/theadtya/youtube-assistant/internal/services/transcript"
	"github.com/theadtya/youtube-assistant/internal/templates"
)

func main() {
	var configFiles []string
	if path := os.Getenv("YTA_CONFIG"); path != "" {
		configFiles = append(configFiles, path)
	} else if _, err := os.Stat("youtube-assistant.toml"); err == nil {
		configFiles = append(configFiles, "youtube-assistant.toml")
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Console only, warn and above, so stdio stays clean for the protocol
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn")

	client, err := httpclient.NewYouTubeClient(config.TranscriptTimeout())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create transcript client")
	}
	source := transcript.NewYouTubeFetcher(client, config, logger)
	gemini := llm.NewGeminiService(&config.Gemini, config.GeminiTimeout(), llm.NewGeminiModels, logger)

	prompt, err := templates.GetTemplate(templates.AnswerPrompt, config.Answer.TemplatesDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load answer prompt")
	}

	askService := qa.NewService(
		qa.NewIndexer(source, logger),
		qa.NewAnswerer(gemini, prompt.Prompt, config.Gemini.Model, logger),
		gemini,
		config,
		logger,
	)

	mcpServer := server.NewMCPServer(
		"youtube-assistant",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createAskVideoTool(), handleAskVideo(askService, logger))
	mcpServer.AddTool(createGetTranscriptTool(), handleGetTranscript(source, logger))

	// Blocks on stdio
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
