// Package common provides configuration, logging and small text helpers.
//
// Placeholder replacement uses the {name} syntax. Prompt templates reference
// their inputs this way and the values are substituted in a single pass:
//
//	Input:  "Answer the following question: {question}"
//	Values: {"question": "What is discussed?"}
//	Output: "Answer the following question: What is discussed?"
//
// Substituted values are never scanned again, so user text containing braces
// is inserted literally.
package common

import (
	"regexp"

	"github.com/ternarybob/arbor"
)

// placeholderPattern matches {name} references in strings
// Allows alphanumeric characters, hyphens, and underscores
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_-]+)\}`)

// ReplacePlaceholders replaces all {name} references in the input string with
// values from the provided map. Unknown references are left unchanged and a
// warning is logged.
func ReplacePlaceholders(input string, values map[string]string, logger arbor.ILogger) string {
	if input == "" {
		return input
	}

	return placeholderPattern.ReplaceAllStringFunc(input, func(match string) string {
		name := match[1 : len(match)-1]
		if value, exists := values[name]; exists {
			return value
		}

		if logger != nil {
			logger.Warn().
				Str("reference", match).
				Msg("Unresolved placeholder left in text")
		}
		return match
	})
}

// Placeholders returns the distinct placeholder names referenced in the input, in order of first use
func Placeholders(input string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(input, -1) {
		if len(match) > 1 && !seen[match[1]] {
			seen[match[1]] = true
			names = append(names, match[1])
		}
	}
	return names
}
