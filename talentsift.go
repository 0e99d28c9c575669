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


package talentsift

import (
	"context"
	"log/slog"

	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/ai/openai"
	"github.com/talentsift/talentsift/catalog"
	"github.com/talentsift/talentsift/catalog/badger"
	"github.com/talentsift/talentsift/ingestion"
	"github.com/talentsift/talentsift/recommend"
)

// System bundles the catalog store and AI provider behind one handle.
// It is the entry point for embedding applications: open the catalog,
// then build an engine or an ingestion pipeline from it.
type System struct {
	backend  *badger.Backend
	repo     catalog.Repository
	provider ai.AIProvider
	logger   *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig *ai.Config
	inMemory bool
	logger   *slog.Logger
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(cfg *ai.Config) SystemOption {
	return func(o *systemOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithInMemoryCatalog opens the catalog store in memory. Intended for
// tests and throwaway runs.
func WithInMemoryCatalog() SystemOption {
	return func(o *systemOptions) {
		o.inMemory = true
	}
}

// WithSystemLogger sets the logger used by the system and everything
// built from it.
func WithSystemLogger(logger *slog.Logger) SystemOption {
	return func(o *systemOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewSystem opens the catalog at filePath and connects the AI provider.
func NewSystem(filePath string, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	return &System{
		backend:  backend,
		repo:     repo,
		provider: provider,
		logger:   options.logger,
	}, nil
}

// Close releases everything in reverse construction order.
func (s *System) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}
	if err := s.repo.Close(); err != nil {
		s.logger.Error("error closing catalog repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// CatalogRepository returns the underlying catalog store.
func (s *System) CatalogRepository() catalog.Repository {
	return s.repo
}

// NewEngine builds a recommendation engine from the stored catalog.
func (s *System) NewEngine(ctx context.Context, opts ...recommend.Option) (*recommend.Engine, error) {
	opts = append([]recommend.Option{recommend.WithLogger(s.logger)}, opts...)
	return recommend.NewEngine(ctx, s.repo, s.provider, opts...)
}

// NewIngestionPipeline builds a catalog build pipeline writing into
// this system's store.
func (s *System) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	opts = append([]ingestion.Option{ingestion.WithLogger(s.logger)}, opts...)
	return ingestion.NewPipeline(s.repo, s.provider, opts...)
}
