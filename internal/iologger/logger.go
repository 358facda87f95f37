// Package iologger initializes the slog logger of gnfish.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnfish/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "gnfish.log"

var logFile *os.File

// Init sets the default slog logger according to cfg. With the file
// destination the log file in logDir is truncated. Calling Init again
// closes the file opened by the previous call.
func Init(logDir string, cfg config.LogConfig) error {
	var writer io.Writer

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		file, err := os.Create(logPath)
		if err != nil {
			return LogFileError(logPath, err)
		}
		Close()
		logFile = file
		writer = file
	default:
		writer = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text", "tint":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// Close closes the log file, if there is one.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
