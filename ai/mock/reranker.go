package mock

import (
	"context"

	"github.com/talentsift/talentsift/ai"
)

// MockReranker is a test double for ai.Reranker.
// It allows custom behavior injection via function fields.
type MockReranker struct {
	// RerankFunc is called by Rerank if set.
	// If nil, uses default passthrough behavior.
	RerankFunc func(ctx context.Context, query string, candidates []ai.RerankCandidate) ([]ai.RerankResult, error)

	callCount int
}

// NewMockReranker creates a mock reranker with default passthrough behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockReranker() *MockReranker {
	return &MockReranker{}
}

// Rerank returns the candidates in their input order with descending scores.
// This passthrough default keeps the retrieval ordering intact, which makes
// a reranking-enabled pipeline behave exactly like a disabled one.
func (m *MockReranker) Rerank(ctx context.Context, query string, candidates []ai.RerankCandidate) ([]ai.RerankResult, error) {
	m.callCount++

	if m.RerankFunc != nil {
		return m.RerankFunc(ctx, query, candidates)
	}

	results := make([]ai.RerankResult, len(candidates))
	for i, candidate := range candidates {
		results[i] = ai.RerankResult{
			ID:    candidate.ID,
			Score: float32(len(candidates) - i),
		}
	}
	return results, nil
}

// CallCount returns the number of times Rerank was called.
func (m *MockReranker) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockReranker) Reset() {
	m.callCount = 0
	m.RerankFunc = nil
}
