package main

import (
	"fmt"
	"strings"

	"github.com/theadtya/youtube-assistant/internal/common"
	"github.com/theadtya/youtube-assistant/internal/models"
)

// formatAnswer formats an answer and its context chunks as markdown
func formatAnswer(question string, answer *models.Answer) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", question))
	sb.WriteString(answer.Text)
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("**Video:** https://www.youtube.com/watch?v=%s\n", answer.VideoID))
	sb.WriteString(fmt.Sprintf("**Model:** %s\n\n", answer.Model))

	if len(answer.Chunks) > 0 {
		sb.WriteString("### Transcript context\n\n")
		for _, c := range answer.Chunks {
			text := c.Text
			if runes := []rune(text); len(runes) > 300 {
				text = string(runes[:300]) + "..."
			}
			sb.WriteString(fmt.Sprintf("- **[%s]** %s\n", common.FormatTimestamp(c.StartTime), text))
		}
	}

	return sb.String()
}

// formatTranscript formats caption segments as timestamped markdown lines
func formatTranscript(transcript *models.Transcript) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Transcript %s", transcript.VideoID))
	if transcript.Language != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", transcript.Language))
	}
	sb.WriteString(fmt.Sprintf("\n\n%d segments\n\n", len(transcript.Segments)))

	for _, seg := range transcript.Segments {
		sb.WriteString(fmt.Sprintf("**[%s]** %s\n", common.FormatTimestamp(seg.Start), seg.Text))
	}

	return sb.String()
}
