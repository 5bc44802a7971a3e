package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Server      ServerConfig     `toml:"server"`
	Logging     LoggingConfig    `toml:"logging"`
	Gemini      GeminiConfig     `toml:"gemini"`
	Transcript  TranscriptConfig `toml:"transcript"`
	Answer      AnswerConfig     `toml:"answer"`
	UI          UIConfig         `toml:"ui"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "console", "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Go time layout for log lines
}

// GeminiConfig configures the hosted model used for embeddings and generation.
// APIKey is only a fallback; a key supplied with a request always wins.
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`       // Generation model
	EmbedModel  string  `toml:"embed_model"` // Embedding model
	Temperature float32 `toml:"temperature"`
	Timeout     string  `toml:"timeout"` // Per-call timeout, e.g. "2m"
}

type TranscriptConfig struct {
	Languages []string `toml:"languages"`  // Caption language preference, most preferred first
	Timeout   string   `toml:"timeout"`    // HTTP timeout for caption requests
	UserAgent string   `toml:"user_agent"` // User agent for the watch page request
}

type AnswerConfig struct {
	DefaultK     int    `toml:"default_k"`     // Chunks retrieved when a request does not say
	MaxK         int    `toml:"max_k"`         // Upper bound accepted from requests
	TemplatesDir string `toml:"templates_dir"` // Optional directory with prompt template overrides
}

type UIConfig struct {
	Title            string `toml:"title"`
	MaxURLChars      int    `toml:"max_url_chars"`
	MaxQuestionChars int    `toml:"max_question_chars"`
	WrapWidth        int    `toml:"wrap_width"`
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8501,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"console"},
			TimeFormat: "15:04:05",
		},
		Gemini: GeminiConfig{
			Model:       "gemini-2.5-flash",
			EmbedModel:  "gemini-embedding-001",
			Temperature: 0.7,
			Timeout:     "2m",
		},
		Transcript: TranscriptConfig{
			Languages: []string{"en"}, // Same default as the caption loader
			Timeout:   "30s",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
		},
		Answer: AnswerConfig{
			DefaultK: 4,
			MaxK:     20,
		},
		UI: UIConfig{
			Title:            "YouTube Assistant",
			MaxURLChars:      50,
			MaxQuestionChars: 50,
			WrapWidth:        85,
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority: default -> file1 -> file2 -> ... -> env.
// Later files override earlier files. CLI flags are applied afterwards with ApplyFlagOverrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("YTA_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("YTA_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("YTA_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Logging configuration
	if level := os.Getenv("YTA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("YTA_LOG_OUTPUT"); output != "" {
		config.Logging.Output = splitList(output)
	}

	// Gemini configuration
	if apiKey := ResolveAPIKey(""); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("YTA_GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
	if embedModel := os.Getenv("YTA_GEMINI_EMBED_MODEL"); embedModel != "" {
		config.Gemini.EmbedModel = embedModel
	}
	if temperature := os.Getenv("YTA_GEMINI_TEMPERATURE"); temperature != "" {
		if t, err := strconv.ParseFloat(temperature, 32); err == nil {
			config.Gemini.Temperature = float32(t)
		}
	}
	if timeout := os.Getenv("YTA_GEMINI_TIMEOUT"); timeout != "" {
		config.Gemini.Timeout = timeout
	}

	// Transcript configuration
	if languages := os.Getenv("YTA_TRANSCRIPT_LANGUAGES"); languages != "" {
		config.Transcript.Languages = splitList(languages)
	}
	if timeout := os.Getenv("YTA_TRANSCRIPT_TIMEOUT"); timeout != "" {
		config.Transcript.Timeout = timeout
	}

	// Answer configuration
	if k := os.Getenv("YTA_ANSWER_DEFAULT_K"); k != "" {
		if v, err := strconv.Atoi(k); err == nil {
			config.Answer.DefaultK = v
		}
	}
	if templatesDir := os.Getenv("YTA_TEMPLATES_DIR"); templatesDir != "" {
		config.Answer.TemplatesDir = templatesDir
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// ResolveAPIKey returns the first non-empty credential from the request value,
// YTA_GEMINI_API_KEY, GEMINI_API_KEY, GOOGLE_API_KEY, in that order.
// Returns an empty string when none is set.
func ResolveAPIKey(requestValue string) string {
	if key := strings.TrimSpace(requestValue); key != "" {
		return key
	}
	for _, name := range []string{"YTA_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			return key
		}
	}
	return ""
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Environment)
	return env == "production" || env == "prod"
}

// GeminiTimeout returns the parsed per-call timeout, falling back to 2 minutes
func (c *Config) GeminiTimeout() time.Duration {
	return parseDurationOr(c.Gemini.Timeout, 2*time.Minute)
}

// TranscriptTimeout returns the parsed caption HTTP timeout, falling back to 30 seconds
func (c *Config) TranscriptTimeout() time.Duration {
	return parseDurationOr(c.Transcript.Timeout, 30*time.Second)
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
