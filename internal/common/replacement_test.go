package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/arbor"
)

// createTestLogger creates a logger for testing
func createTestLogger() arbor.ILogger {
	return arbor.NewLogger()
}

func TestReplacePlaceholders_Simple(t *testing.T) {
	result := ReplacePlaceholders("Question: {question}", map[string]string{"question": "Why?"}, createTestLogger())
	assert.Equal(t, "Question: Why?", result)
}

func TestReplacePlaceholders_Multiple(t *testing.T) {
	values := map[string]string{
		"question": "What is discussed?",
		"docs":     "chunk one chunk two",
	}

	result := ReplacePlaceholders("Q={question} D={docs} Q again={question}", values, createTestLogger())
	assert.Equal(t, "Q=What is discussed? D=chunk one chunk two Q again=What is discussed?", result)
}

func TestReplacePlaceholders_MissingKey(t *testing.T) {
	result := ReplacePlaceholders("value = {missing}", map[string]string{"other": "x"}, createTestLogger())
	assert.Equal(t, "value = {missing}", result)
}

func TestReplacePlaceholders_InvalidSyntax(t *testing.T) {
	// Space in name does not match the pattern
	result := ReplacePlaceholders("value = {not a key}", map[string]string{"not a key": "x"}, createTestLogger())
	assert.Equal(t, "value = {not a key}", result)
}

func TestReplacePlaceholders_ValuesAreNotRescanned(t *testing.T) {
	values := map[string]string{
		"question": "what does {docs} mean?",
		"docs":     "transcript text",
	}

	result := ReplacePlaceholders("{question} | {docs}", values, createTestLogger())
	assert.Equal(t, "what does {docs} mean? | transcript text", result)
}

func TestReplacePlaceholders_EmptyInput(t *testing.T) {
	assert.Equal(t, "", ReplacePlaceholders("", map[string]string{"a": "b"}, nil))
}

func TestPlaceholders(t *testing.T) {
	names := Placeholders("{question} and {docs} then {question} again")
	assert.Equal(t, []string{"question", "docs"}, names)
	assert.Empty(t, Placeholders("no references here"))
}
