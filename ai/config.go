// Copyright 2025 Talentsift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for AI service providers.
// It is read once at startup; changing it requires a restart.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// RerankHost is the base URL for the reranking chat service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	RerankHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "all-minilm", "text-embedding-3-small"
	EmbeddingModel string

	// RerankModel is the chat model identifier to use for candidate reranking.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	RerankModel string

	// Token is the API token passed to the services.
	// Local OpenAI-compatible servers accept any non-empty value.
	Token string

	// RerankTimeout bounds a single reranking exchange. On expiry the
	// reranking stage falls back to the retrieval ordering.
	// Default: 3 seconds
	RerankTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithRerankHost sets the reranking service host URL.
func WithRerankHost(host string) ConfigOption {
	return func(c *Config) {
		c.RerankHost = host
	}
}

// WithHost sets both embedding and reranking hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.RerankHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithRerankModel sets the reranking model identifier.
func WithRerankModel(model string) ConfigOption {
	return func(c *Config) {
		c.RerankModel = model
	}
}

// WithToken sets the API token for both services.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithRerankTimeout sets the timeout for a single reranking exchange.
func WithRerankTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.RerankTimeout = timeout
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
// By default, both embedding and reranking use the same host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:  defaultHost,
		RerankHost:     defaultHost,
		EmbeddingModel: "all-minilm",
		RerankModel:    "qwen2.5:3b",
		Token:          "none",
		RerankTimeout:  3 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("https://api.openai.com/v1"),
//	    ai.WithEmbeddingModel("text-embedding-3-small"),
//	    ai.WithRerankModel("gpt-4o-mini"),
//	    ai.WithToken(os.Getenv("OPENAI_API_KEY")),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/")
		c.EmbeddingHost = c.EmbeddingHost + "/v1"
	}
	if c.RerankHost != "" && !strings.HasSuffix(c.RerankHost, "/v1") {
		c.RerankHost = strings.TrimSuffix(c.RerankHost, "/")
		c.RerankHost = c.RerankHost + "/v1"
	}
	if c.Token == "" {
		c.Token = "none"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.RerankHost == "" {
		return errors.New("ai config: RerankHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.RerankModel == "" {
		return errors.New("ai config: RerankModel is required")
	}
	if c.RerankTimeout <= 0 {
		return errors.New("ai config: RerankTimeout must be positive")
	}
	return nil
}
