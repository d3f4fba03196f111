package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		level entities.LogLevel
		want  slog.Level
	}{
		{entities.LogLevelDebug, slog.LevelDebug},
		{entities.LogLevelInfo, slog.LevelInfo},
		{entities.LogLevelWarn, slog.LevelWarn},
		{entities.LogLevelError, slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.level))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("text output filtered by level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closeLog, err := New(entities.LoggingConfig{Level: "warn"}, &buf)
		require.NoError(t, err)
		defer func() { _ = closeLog() }()

		logger.Info("hidden")
		logger.Warn("shown", "slides", 12)

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, "slides=12")
	})

	t.Run("verbose forces debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger, _, err := New(entities.LoggingConfig{Level: "error", Verbose: true}, &buf)
		require.NoError(t, err)

		logger.Debug("details")
		assert.Contains(t, buf.String(), "details")
	})

	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		logger, _, err := New(entities.LoggingConfig{JSONFormat: true}, &buf)
		require.NoError(t, err)

		logger.Info("deck written", "path", "/tmp/deck.pptx")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "deck written", record["msg"])
		assert.Equal(t, "/tmp/deck.pptx", record["path"])
	})

	t.Run("log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deckgen.log")
		var buf bytes.Buffer

		logger, closeLog, err := New(entities.LoggingConfig{File: path}, &buf)
		require.NoError(t, err)
		logger.Info("to file")
		require.NoError(t, closeLog())

		assert.Empty(t, buf.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "to file")
	})

	t.Run("unopenable log file", func(t *testing.T) {
		_, closeLog, err := New(entities.LoggingConfig{File: filepath.Join(t.TempDir(), "missing", "x.log")}, &bytes.Buffer{})
		require.Error(t, err)
		assert.NotNil(t, closeLog)
	})
}
