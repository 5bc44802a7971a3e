package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/theadtya/youtube-assistant/internal/app"
	"github.com/theadtya/youtube-assistant/internal/common"
	"github.com/theadtya/youtube-assistant/internal/server"
)

// defaultConfigFile is picked up from the working directory when no -config is given
const defaultConfigFile = "youtube-assistant.toml"

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	serverPort   = flag.Int("port", 0, "Server port (overrides config)")
	serverPortP  = flag.Int("p", 0, "Server port (shorthand, overrides config)")
	serverHost   = flag.String("host", "", "Server host (overrides config)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("YouTube Assistant version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	if logsDir, err := common.LogsDir(); err == nil {
		common.InstallCrashHandler(logsDir)
	}
	defer common.RecoverWithCrashFile()

	// Shorthand takes precedence
	finalPort := *serverPort
	if *serverPortP != 0 {
		finalPort = *serverPortP
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file1 -> file2 -> ... -> env)
	// 2. Apply CLI overrides (highest priority)
	// 3. Initialize logger
	// 4. Print banner
	if len(configFiles) == 0 {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			configFiles = append(configFiles, defaultConfigFile)
		} else if _, err := os.Stat("deployments/local/" + defaultConfigFile); err == nil {
			// Running from the project root
			configFiles = append(configFiles, "deployments/local/"+defaultConfigFile)
		}
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		arbor.NewLogger().Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration files")
		os.Exit(1)
	}

	common.ApplyFlagOverrides(config, finalPort, *serverHost)

	logger := common.SetupLogger(config)

	common.PrintBanner(config, logger)

	logger.Debug().
		Str("environment", config.Environment).
		Str("log_level", config.Logging.Level).
		Strs("log_output", config.Logging.Output).
		Strs("transcript_languages", config.Transcript.Languages).
		Bool("api_key_configured", config.Gemini.APIKey != "").
		Msg("Resolved configuration (sanitized)")

	logger.Info().
		Strs("config_files", configFiles).
		Int("port", config.Server.Port).
		Str("host", config.Server.Host).
		Msg("Application configuration loaded")

	application, err := app.New(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer application.Close()

	srv := server.New(application)

	serverErr := make(chan error, 1)
	common.SafeGo(logger, "http-server", func() {
		serverErr <- srv.Start()
	})

	logger.Info().
		Str("url", fmt.Sprintf("http://%s", srv.Addr())).
		Msg("Server ready - Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info().Msg("Interrupt signal received")
	case err := <-serverErr:
		if err != nil {
			logger.Error().Err(err).Msg("Server failed")
			return
		}
	}

	logger.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown failed")
	}

	logger.Info().Msg("Server stopped")
}
