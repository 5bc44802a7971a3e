package qa

import (
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/theadtya/youtube-assistant/internal/common"
	"github.com/theadtya/youtube-assistant/internal/models"
)

// JoinContext concatenates chunk texts with single spaces in the given order
func JoinContext(chunks []models.Chunk) string {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	return strings.Join(texts, " ")
}

// BuildPrompt fills the {question} and {docs} placeholders of template
func BuildPrompt(template, question, docs string, logger arbor.ILogger) string {
	return common.ReplacePlaceholders(template, map[string]string{
		"question": question,
		"docs":     docs,
	}, logger)
}

// StripNewlines removes every newline from a model response without inserting spaces
func StripNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}
