// Package templates provides embedded prompt templates with user override support
// and the embedded HTML pages served by the web UI.
// Prompt templates are loaded with resolution order:
// 1. User override: templatesDir/{name}.toml
// 2. Embedded default: internal/templates/{name}.toml
package templates

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed *.toml pages/*.html
var fs embed.FS

// AnswerPrompt is the name of the question answering template
const AnswerPrompt = "answer_prompt"

// TemplateType defines the type of template
type TemplateType string

const (
	// TemplateTypePrompt is a model prompt with {name} placeholders
	TemplateTypePrompt TemplateType = "prompt"
)

// Template represents a loaded template
type Template struct {
	Type         TemplateType `toml:"type"`
	Name         string       `toml:"name"`
	Description  string       `toml:"description"`
	Placeholders []string     `toml:"placeholders"` // Names that must appear in Prompt as {name}
	Prompt       string       `toml:"prompt"`
}

// GetTemplate loads a template by name with resolution order:
// 1. User override: templatesDir/{name}.toml
// 2. Embedded default: internal/templates/{name}.toml
func GetTemplate(name string, templatesDir string) (*Template, error) {
	if templatesDir != "" {
		userPath := filepath.Join(templatesDir, name+".toml")
		if data, err := os.ReadFile(userPath); err == nil {
			return parseTemplate(data)
		}
	}

	data, err := fs.ReadFile(name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("template '%s' not found (checked user override and embedded)", name)
	}
	return parseTemplate(data)
}

// Page returns an embedded HTML page by file name
func Page(name string) ([]byte, error) {
	return fs.ReadFile("pages/" + name)
}

func parseTemplate(data []byte) (*Template, error) {
	var t Template
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	if strings.TrimSpace(t.Prompt) == "" {
		return nil, fmt.Errorf("template '%s' has an empty prompt", t.Name)
	}
	for _, p := range t.Placeholders {
		if !strings.Contains(t.Prompt, "{"+p+"}") {
			return nil, fmt.Errorf("template '%s' prompt does not reference {%s}", t.Name, p)
		}
	}
	return &t, nil
}
