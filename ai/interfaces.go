package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// RerankCandidate describes one retrieved assessment handed to a reranker.
type RerankCandidate struct {
	// ID identifies the assessment (used to map results back).
	ID uint64

	// Name is the assessment's display name.
	Name string

	// Description is the assessment's free-text description.
	Description string

	// Duration is the assessment length in minutes.
	Duration int

	// Categories are the assessment's taxonomy tags.
	Categories []string
}

// RerankResult is a reranked candidate with a relevance score.
type RerankResult struct {
	// ID matches the candidate ID for result mapping.
	ID uint64

	// Score is the reranker's relevance score, higher is more relevant.
	Score float32
}

// Requirements holds structured hiring requirements extracted from a query.
// It is the intermediate result of the reranking protocol's first step.
type Requirements struct {
	// SkillAreas lists required skill or knowledge areas, lowercase.
	SkillAreas []string `json:"skill_areas"`

	// Seniority describes the target seniority level ("junior", "senior", ...),
	// empty when the query does not state one.
	Seniority string `json:"seniority"`

	// TimeBudget is the maximum acceptable assessment duration in minutes,
	// 0 when the query does not state one.
	TimeBudget int `json:"time_budget"`
}

// Reranker reorders retrieved candidates using external reasoning.
// Implementations must be thread-safe for concurrent use.
//
// Rerank must return a scored permutation of the input candidates: the same
// set of IDs, no additions, no removals. Callers fall back to the original
// ordering when Rerank returns an error.
type Reranker interface {
	Rerank(ctx context.Context, query string, candidates []RerankCandidate) ([]RerankResult, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Reranker instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Reranker returns the candidate reranking service.
	// The returned Reranker is safe for concurrent use.
	Reranker() Reranker

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
