package common

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
)

var (
	globalLogger arbor.ILogger
	loggerMutex  sync.RWMutex
)

// GetLogger returns the global logger instance
func GetLogger() arbor.ILogger {
	loggerMutex.RLock()
	if globalLogger != nil {
		loggerMutex.RUnlock()
		return globalLogger
	}
	loggerMutex.RUnlock()

	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	// Double-check after acquiring write lock
	if globalLogger == nil {
		globalLogger = arbor.NewLogger().WithConsoleWriter(consoleWriter("15:04:05"))
	}
	return globalLogger
}

// SetupLogger builds the arbor logger from the logging section and stores it as the global logger
func SetupLogger(config *Config) arbor.ILogger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	timeFormat := config.Logging.TimeFormat
	if timeFormat == "" {
		timeFormat = "15:04:05"
	}

	logger := arbor.NewLogger()

	hasFileOutput := false
	hasConsoleOutput := false
	for _, output := range config.Logging.Output {
		switch output {
		case "file":
			hasFileOutput = true
		case "stdout", "console":
			hasConsoleOutput = true
		}
	}

	if hasFileOutput {
		if logFile, err := logFilePath(); err != nil {
			fmt.Printf("Warning: File logging disabled: %v\n", err)
			hasConsoleOutput = true
		} else {
			logger = logger.WithFileWriter(models.WriterConfiguration{
				Type:       models.LogWriterTypeFile,
				FileName:   logFile,
				TimeFormat: timeFormat,
				MaxSize:    20 * 1024 * 1024, // 20 MB
				MaxBackups: 3,
				OutputType: models.OutputFormatLogfmt,
			})
		}
	}

	// Never run silent
	if hasConsoleOutput || !hasFileOutput {
		logger = logger.WithConsoleWriter(consoleWriter(timeFormat))
	}

	logger = logger.WithLevelFromString(config.Logging.Level)

	globalLogger = logger

	return logger
}

func consoleWriter(timeFormat string) models.WriterConfiguration {
	return models.WriterConfiguration{
		Type:             models.LogWriterTypeConsole,
		TimeFormat:       timeFormat,
		OutputType:       models.OutputFormatLogfmt,
		DisableTimestamp: false,
	}
}

// LogsDir returns the logs directory next to the executable
func LogsDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(execPath), "logs"), nil
}

// logFilePath returns logs/youtube-assistant.log next to the executable, creating the directory
func logFilePath() (string, error) {
	logsDir, err := LogsDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create logs directory: %w", err)
	}
	return filepath.Join(logsDir, "youtube-assistant.log"), nil
}
