package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.RerankHost)
	assert.Equal(t, "all-minilm", cfg.EmbeddingModel)
	assert.Equal(t, "qwen2.5:3b", cfg.RerankModel)
	assert.Equal(t, 3*time.Second, cfg.RerankTimeout)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.RerankHost)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.RerankHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://embed:8080/v1"),
			WithRerankHost("http://rerank:9090/v1"),
		)

		assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://rerank:9090/v1", cfg.RerankHost)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingModel("text-embedding-3-small"),
			WithRerankModel("gpt-4o-mini"),
		)

		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
		assert.Equal(t, "gpt-4o-mini", cfg.RerankModel)
	})

	t.Run("with token and timeout", func(t *testing.T) {
		cfg := NewConfig(
			WithToken("secret"),
			WithRerankTimeout(5*time.Second),
		)

		assert.Equal(t, "secret", cfg.Token)
		assert.Equal(t, 5*time.Second, cfg.RerankTimeout)
	})
}

func TestConfig_Normalize(t *testing.T) {
	t.Run("adds v1 suffix", func(t *testing.T) {
		cfg := &Config{
			EmbeddingHost: "http://localhost:11434",
			RerankHost:    "http://localhost:11434/",
		}
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.RerankHost)
	})

	t.Run("keeps existing v1 suffix", func(t *testing.T) {
		cfg := &Config{
			EmbeddingHost: "http://localhost:11434/v1",
			RerankHost:    "http://localhost:11434/v1",
		}
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.RerankHost)
	})

	t.Run("defaults empty token", func(t *testing.T) {
		cfg := &Config{}
		cfg.Normalize()

		assert.Equal(t, "none", cfg.Token)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid default", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing embedding host", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EmbeddingHost = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing rerank host", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RerankHost = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing embedding model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EmbeddingModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing rerank model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RerankModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RerankTimeout = 0
		assert.Error(t, cfg.Validate())
	})
}
