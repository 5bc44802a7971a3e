package common

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/banner"
)

// PrintBanner displays the application banner and logs the effective settings
func PrintBanner(config *Config, logger arbor.ILogger) {
	banner.PrintSimple(config.UI.Title, GetVersion())

	logger.Info().
		Str("version", GetFullVersion()).
		Str("environment", config.Environment).
		Str("model", config.Gemini.Model).
		Str("embed_model", config.Gemini.EmbedModel).
		Bool("api_key_configured", config.Gemini.APIKey != "").
		Msg("YouTube Assistant starting")
}
