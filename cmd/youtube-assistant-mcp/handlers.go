package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	"github.com/theadtya/youtube-assistant/internal/handlers"
	"github.com/theadtya/youtube-assistant/internal/interfaces"
	"github.com/theadtya/youtube-assistant/internal/services/qa"
)

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// handleAskVideo implements the ask_video tool
func handleAskVideo(service handlers.AskService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		videoURL, err := request.RequireString("video_url")
		if err != nil || videoURL == "" {
			return textResult("Error: video_url parameter is required"), nil
		}

		question, err := request.RequireString("question")
		if err != nil || question == "" {
			return textResult("Error: question parameter is required"), nil
		}

		answer, err := service.Ask(ctx, qa.AskRequest{
			VideoURL: videoURL,
			Question: question,
			K:        request.GetInt("k", 0),
		})
		if err != nil {
			logger.Error().Err(err).Str("video_url", videoURL).Msg("ask_video failed")
			return textResult(fmt.Sprintf("Error: %s", qa.UserMessage(err))), nil
		}

		return textResult(formatAnswer(question, answer)), nil
	}
}

// handleGetTranscript implements the get_transcript tool
func handleGetTranscript(source interfaces.TranscriptSource, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		videoURL, err := request.RequireString("video_url")
		if err != nil || videoURL == "" {
			return textResult("Error: video_url parameter is required"), nil
		}

		transcript, err := source.FetchTranscript(ctx, videoURL)
		if err != nil {
			logger.Error().Err(err).Str("video_url", videoURL).Msg("get_transcript failed")
			return textResult(fmt.Sprintf("Transcript error: %v", err)), nil
		}

		if transcript.IsEmpty() {
			return textResult(qa.NoTranscriptMessage), nil
		}

		return textResult(formatTranscript(transcript)), nil
	}
}
