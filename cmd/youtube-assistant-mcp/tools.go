package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createAskVideoTool returns the ask_video tool definition
func createAskVideoTool() mcp.Tool {
	return mcp.NewTool("ask_video",
		mcp.WithDescription("Answer a question about a YouTube video using only its transcript"),
		mcp.WithString("video_url",
			mcp.Required(),
			mcp.Description("YouTube video URL or 11-character video ID"),
		),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("Question about the video"),
		),
		mcp.WithNumber("k",
			mcp.Description("Transcript chunks to retrieve as context (default: 4)"),
		),
	)
}

// createGetTranscriptTool returns the get_transcript tool definition
func createGetTranscriptTool() mcp.Tool {
	return mcp.NewTool("get_transcript",
		mcp.WithDescription("Fetch the caption transcript of a YouTube video with timestamps"),
		mcp.WithString("video_url",
			mcp.Required(),
			mcp.Description("YouTube video URL or 11-character video ID"),
		),
	)
}
