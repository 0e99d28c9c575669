package main

import (
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"INFO", false},
		{"verbose", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			app := cli.NewApp()
			set := flag.NewFlagSet("test", flag.ContinueOnError)
			set.String("log-level", tt.level, "")
			c := cli.NewContext(app, set, nil)

			err := setupLogger(c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetupLogger_AppliesLevel(t *testing.T) {
	app := cli.NewApp()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", "error", "")
	c := cli.NewContext(app, set, nil)

	require.NoError(t, setupLogger(c))
	assert.False(t, slog.Default().Enabled(c.Context, slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(c.Context, slog.LevelError))
}

func TestAIConfigFromFlags(t *testing.T) {
	app := cli.NewApp()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("ai-host", "http://localhost:11434", "")
	set.String("embedding-model", "all-minilm", "")
	set.String("rerank-model", "qwen2.5:3b", "")
	set.String("token", "", "")
	c := cli.NewContext(app, set, nil)

	cfg, err := aiConfigFromFlags(c)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost, "host must be normalized")
	assert.Equal(t, "none", cfg.Token, "empty token must default")
}
