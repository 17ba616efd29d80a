package logger

import (
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want core.LogLevel
	}{
		{"debug", core.LogLevelDebug},
		{"INFO", core.LogLevelInfo},
		{"warning", core.LogLevelWarn},
		{"error", core.LogLevelError},
		{"", core.LogLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestZapLogger(t *testing.T) {
	t.Run("Level follows configuration and SetLevel", func(t *testing.T) {
		// Arrange
		l := NewZapLogger(config.LoggerConfig{Level: "warn", Format: "json"}, false)

		// Act & Assert
		assert.Equal(t, core.LogLevelWarn, l.GetLevel())
		l.SetLevel(core.LogLevelDebug)
		assert.Equal(t, core.LogLevelDebug, l.GetLevel())
		assert.True(t, l.(*ZapLogger).atom.Enabled(-1))
	})

	t.Run("Rotating file sink receives entries", func(t *testing.T) {
		// Arrange
		file := filepath.Join(t.TempDir(), "app.log")
		l := NewZapLogger(config.LoggerConfig{Level: "info", File: file, MaxSizeMB: 1}, true)

		// Act
		l.Info("Trade executed", map[string]any{"user_id": "0xabc"})
		_ = l.Flush()

		// Assert
		require.FileExists(t, file)
	})
}
