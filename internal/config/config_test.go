package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Slack.Token)
}

func TestGetServerAddr(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 9000}}
	assert.Equal(t, ":9000", cfg.GetServerAddr())
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"text info", "info", "text"},
		{"json debug", "debug", "json"},
		{"unknown level falls back", "verbose", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: tt.format}}
			assert.NotNil(t, cfg.NewLogger())
		})
	}
}
