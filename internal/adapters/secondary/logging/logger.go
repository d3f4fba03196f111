// Package logging builds the process logger from the logging configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// New creates a structured logger. Records go to w, or to the configured log
// file when one is set. The returned close function releases the file and is
// never nil.
func New(config entities.LoggingConfig, w io.Writer) (*slog.Logger, func() error, error) {
	closer := func() error { return nil }

	if config.File != "" {
		file, err := os.OpenFile(config.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) // #nosec G304 - log path comes from the user's config
		if err != nil {
			return nil, closer, fmt.Errorf("opening log file: %w", err)
		}
		w = file
		closer = file.Close
	}

	options := &slog.HandlerOptions{Level: Level(config.GetLevel())}

	var handler slog.Handler
	if config.JSONFormat {
		handler = slog.NewJSONHandler(w, options)
	} else {
		handler = slog.NewTextHandler(w, options)
	}

	return slog.New(handler), closer, nil
}

// Level maps a configured level to its slog equivalent
func Level(level entities.LogLevel) slog.Level {
	switch level {
	case entities.LogLevelDebug:
		return slog.LevelDebug
	case entities.LogLevelWarn:
		return slog.LevelWarn
	case entities.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
