package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewWithWriter_ServiceAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "order-service", "info")

	log.Debug("dropped")
	log.Info("menu seeded", slog.String("action", "menu_seeded"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "menu seeded", record["msg"])
	assert.Equal(t, "order-service", record["service"])
	assert.Equal(t, "menu_seeded", record["action"])
	assert.Contains(t, record, "hostname")
}
