package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realmfleet-go/internal/application/common"
	"github.com/andrescamacho/realmfleet-go/internal/infrastructure/config"
	"github.com/andrescamacho/realmfleet-go/internal/infrastructure/logging"
)

func TestSlogLogger_JSONWithMetadata(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	var logger common.Logger = logging.NewWriterLogger(&buf, &config.LoggingConfig{Level: "info", Format: "json"})

	// Act
	logger.Log("WARNING", "[Turn] duplicate bindings", map[string]interface{}{"turn": 3})
	logger.Log("DEBUG", "[Detour] hidden", nil)

	// Assert
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "[Turn] duplicate bindings", entry["msg"])
	assert.Equal(t, float64(3), entry["turn"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "realmfleet.log")
	logger, closer, err := logging.New(&config.LoggingConfig{Level: "debug", Format: "text", Output: "file", FilePath: path})
	require.NoError(t, err)

	logger.Log("INFO", "[CLI] started", map[string]interface{}{"turns": 5})
	require.NoError(t, closer.Close())

	_, _, err = logging.New(&config.LoggingConfig{Output: "syslog"})
	assert.ErrorContains(t, err, "unsupported log output")
}
