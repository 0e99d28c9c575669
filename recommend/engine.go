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


package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/catalog"
	"github.com/talentsift/talentsift/core"
)

const (
	// DefaultRetrievalK is how many candidates vector search surfaces
	// before reranking and balancing narrow them down.
	DefaultRetrievalK = 20

	// DefaultResultSize is the length of the final recommendation list.
	DefaultResultSize = 10

	// MaxResultSize caps the final list.
	MaxResultSize = 10
)

// Engine runs the full recommendation pipeline: encode the query,
// retrieve nearest assessments, optionally rerank with an LLM, balance
// categories, and project the final list. An engine that constructed
// successfully is ready to serve; construction fails fast on an empty
// catalog or a dimension mismatch.
type Engine struct {
	store      *VectorStore
	encoder    *QueryEncoder
	retriever  *Retriever
	rerank     *RerankStage
	balancer   *Balancer
	retrievalK int
	resultSize int
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*engineConfig) error

type engineConfig struct {
	retrievalK         int
	resultSize         int
	rerankEnabled      bool
	rerankTimeout      time.Duration
	minBehavioralRatio float64
	logger             *slog.Logger
}

// WithRetrievalK sets the candidate pool size for vector search.
func WithRetrievalK(k int) Option {
	return func(cfg *engineConfig) error {
		if k <= 0 {
			return fmt.Errorf("retrieval k must be positive, got %d", k)
		}
		cfg.retrievalK = k
		return nil
	}
}

// WithResultSize sets the final list length, between 1 and MaxResultSize.
func WithResultSize(n int) Option {
	return func(cfg *engineConfig) error {
		if n < 1 || n > MaxResultSize {
			return fmt.Errorf("result size must be between 1 and %d, got %d", MaxResultSize, n)
		}
		cfg.resultSize = n
		return nil
	}
}

// WithReranking enables LLM reranking with the given per-query timeout.
// A non-positive timeout uses DefaultRerankTimeout.
func WithReranking(timeout time.Duration) Option {
	return func(cfg *engineConfig) error {
		cfg.rerankEnabled = true
		cfg.rerankTimeout = timeout
		return nil
	}
}

// WithMinBehavioralRatio sets the behavioral floor used for
// technical-heavy queries.
func WithMinBehavioralRatio(ratio float64) Option {
	return func(cfg *engineConfig) error {
		if ratio <= 0 || ratio > 1 {
			return fmt.Errorf("behavioral ratio must be in (0, 1], got %g", ratio)
		}
		cfg.minBehavioralRatio = ratio
		return nil
	}
}

// WithLogger sets the logger for the engine and its stages.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *engineConfig) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// NewEngine loads the full catalog into memory and wires the pipeline.
// Every catalog record is validated and the embedding dimension is
// checked once here, including a probe call against the embedding
// model, so queries never hit a dimension surprise.
func NewEngine(ctx context.Context, repo catalog.Repository, provider ai.AIProvider, opts ...Option) (*Engine, error) {
	if repo == nil {
		return nil, ErrCatalogRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	cfg := &engineConfig{
		retrievalK:    DefaultRetrievalK,
		resultSize:    DefaultResultSize,
		rerankTimeout: DefaultRerankTimeout,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	logger := cfg.logger.With("component", "recommend_engine")

	assessments, err := repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if len(assessments) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	store, err := NewVectorStore(assessments)
	if err != nil {
		return nil, err
	}

	encoder, err := NewQueryEncoder(provider.Embedder(), store.Dimension(), cfg.logger)
	if err != nil {
		return nil, err
	}
	if _, err := encoder.Encode(ctx, "dimension probe"); err != nil {
		return nil, fmt.Errorf("embedding model probe failed: %w", err)
	}

	engine := &Engine{
		store:      store,
		encoder:    encoder,
		retriever:  NewRetriever(store, cfg.logger),
		balancer:   NewBalancer(store, cfg.minBehavioralRatio, cfg.logger),
		retrievalK: cfg.retrievalK,
		resultSize: cfg.resultSize,
		logger:     logger,
	}
	if cfg.rerankEnabled {
		engine.rerank = NewRerankStage(provider.Reranker(), store, cfg.rerankTimeout, cfg.logger)
	}

	logger.Info("engine ready",
		"assessments", store.Len(),
		"dimension", store.Dimension(),
		"retrieval_k", engine.retrievalK,
		"result_size", engine.resultSize,
		"reranking", cfg.rerankEnabled)
	return engine, nil
}

// Size returns the number of assessments the engine serves from.
func (e *Engine) Size() int {
	return e.store.Len()
}

// Assessment returns the catalog record behind a candidate id, or nil
// when unknown.
func (e *Engine) Assessment(id core.ID) *core.Assessment {
	return e.store.Assessment(id)
}

// Recommend returns the ranked recommendations for a query.
func (e *Engine) Recommend(ctx context.Context, query string) ([]core.Recommendation, error) {
	return e.RecommendWithMonitor(ctx, query, nil)
}

// RecommendWithMonitor runs the pipeline while reporting each stage to
// the monitor. A nil monitor is allowed.
func (e *Engine) RecommendWithMonitor(ctx context.Context, query string, monitor Monitor) ([]core.Recommendation, error) {
	if monitor == nil {
		monitor = NoopMonitor{}
	}
	monitor.Start(query)
	started := time.Now()

	queryVec, err := e.encoder.Encode(ctx, query)
	if err != nil {
		return nil, err
	}

	emphasis := InferEmphasis(query)
	monitor.AfterEmphasis(emphasis)

	candidates, err := e.retriever.Retrieve(ctx, queryVec, e.retrievalK)
	if err != nil {
		return nil, fmt.Errorf("retrieval failed: %w", err)
	}
	monitor.AfterRetrieval(candidates)

	if e.rerank != nil {
		candidates = e.rerank.Apply(ctx, query, candidates)
		monitor.AfterRerank(candidates)
	}

	final := e.balancer.Balance(emphasis, candidates, e.resultSize)
	if len(final) == 0 || len(final) > e.resultSize {
		return nil, fmt.Errorf("%w: balancer returned %d candidates for target %d",
			ErrInvariantViolation, len(final), e.resultSize)
	}
	monitor.AfterBalance(final)

	recommendations := make([]core.Recommendation, len(final))
	for i, candidate := range final {
		assessment := e.store.Assessment(candidate.AssessmentId)
		if assessment == nil {
			return nil, fmt.Errorf("%w: candidate %d not in store", ErrInvariantViolation, candidate.AssessmentId)
		}
		recommendations[i] = core.NewRecommendation(assessment)
	}
	monitor.Finish(recommendations)

	e.logger.Debug("recommendation complete",
		"query_length", len(query),
		"results", len(recommendations),
		"elapsed", time.Since(started))
	return recommendations, nil
}
