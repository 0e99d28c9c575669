package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/ai/mock"
	"github.com/talentsift/talentsift/core"
)

func rerankFixture(t *testing.T) (*VectorStore, []core.Candidate, *core.Assessment, *core.Assessment, *core.Assessment) {
	t.Helper()
	a := testAssessment("alpha", []core.Category{core.CategoryTechnical}, []float32{1, 0, 0})
	b := testAssessment("beta", []core.Category{core.CategoryBehavioral}, []float32{0, 1, 0})
	c := testAssessment("gamma", []core.Category{core.CategoryCognitive}, []float32{0, 0, 1})

	store, err := NewVectorStore([]*core.Assessment{a, b, c})
	if err != nil {
		t.Fatalf("NewVectorStore failed: %v", err)
	}
	return store, candidateList(a, b, c), a, b, c
}

func TestRerankStage_AppliesModelOrder(t *testing.T) {
	store, candidates, a, b, c := rerankFixture(t)

	reranker := mock.NewMockReranker()
	reranker.RerankFunc = func(ctx context.Context, query string, input []ai.RerankCandidate) ([]ai.RerankResult, error) {
		return []ai.RerankResult{
			{ID: uint64(c.Id), Score: 9},
			{ID: uint64(a.Id), Score: 5},
			{ID: uint64(b.Id), Score: 2},
		}, nil
	}

	stage := NewRerankStage(reranker, store, time.Second, nil)
	result := stage.Apply(context.Background(), "query", candidates)

	if len(result) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(result))
	}
	if result[0].AssessmentId != c.Id || result[1].AssessmentId != a.Id || result[2].AssessmentId != b.Id {
		t.Errorf("expected model order gamma, alpha, beta; got %v", result)
	}
	for _, candidate := range result {
		if !candidate.Reranked {
			t.Errorf("candidate %d missing Reranked flag", candidate.AssessmentId)
		}
	}
	if result[0].RerankScore != 9 {
		t.Errorf("expected top score 9, got %f", result[0].RerankScore)
	}
}

func TestRerankStage_FallsBackOnError(t *testing.T) {
	store, candidates, _, _, _ := rerankFixture(t)

	reranker := mock.NewMockReranker()
	reranker.RerankFunc = func(ctx context.Context, query string, input []ai.RerankCandidate) ([]ai.RerankResult, error) {
		return nil, errors.New("model unavailable")
	}

	stage := NewRerankStage(reranker, store, time.Second, nil)
	result := stage.Apply(context.Background(), "query", candidates)

	if len(result) != len(candidates) {
		t.Fatalf("expected %d candidates, got %d", len(candidates), len(result))
	}
	for i := range candidates {
		if result[i] != candidates[i] {
			t.Errorf("position %d changed on fallback: %+v vs %+v", i, result[i], candidates[i])
		}
		if result[i].Reranked {
			t.Errorf("fallback candidate %d must not be marked reranked", result[i].AssessmentId)
		}
	}
}

func TestRerankStage_FallsBackOnTimeout(t *testing.T) {
	store, candidates, _, _, _ := rerankFixture(t)

	reranker := mock.NewMockReranker()
	reranker.RerankFunc = func(ctx context.Context, query string, input []ai.RerankCandidate) ([]ai.RerankResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	stage := NewRerankStage(reranker, store, 10*time.Millisecond, nil)
	result := stage.Apply(context.Background(), "query", candidates)

	for i := range candidates {
		if result[i] != candidates[i] {
			t.Fatalf("expected retrieval order preserved after timeout")
		}
	}
}

func TestRerankStage_RejectsMembershipViolations(t *testing.T) {
	store, candidates, a, b, _ := rerankFixture(t)

	tests := []struct {
		name    string
		results []ai.RerankResult
	}{
		{
			name: "foreign id",
			results: []ai.RerankResult{
				{ID: uint64(a.Id), Score: 3},
				{ID: uint64(b.Id), Score: 2},
				{ID: 999999, Score: 1},
			},
		},
		{
			name: "dropped candidate",
			results: []ai.RerankResult{
				{ID: uint64(a.Id), Score: 3},
				{ID: uint64(b.Id), Score: 2},
			},
		},
		{
			name: "duplicate id",
			results: []ai.RerankResult{
				{ID: uint64(a.Id), Score: 3},
				{ID: uint64(a.Id), Score: 2},
				{ID: uint64(b.Id), Score: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reranker := mock.NewMockReranker()
			reranker.RerankFunc = func(ctx context.Context, query string, input []ai.RerankCandidate) ([]ai.RerankResult, error) {
				return tt.results, nil
			}

			stage := NewRerankStage(reranker, store, time.Second, nil)
			result := stage.Apply(context.Background(), "query", candidates)

			for i := range candidates {
				if result[i] != candidates[i] {
					t.Fatalf("expected retrieval order preserved after violation")
				}
			}
		})
	}
}

func TestRerankStage_TieBrokenByRetrievalRank(t *testing.T) {
	store, candidates, a, b, c := rerankFixture(t)

	reranker := mock.NewMockReranker()
	reranker.RerankFunc = func(ctx context.Context, query string, input []ai.RerankCandidate) ([]ai.RerankResult, error) {
		return []ai.RerankResult{
			{ID: uint64(c.Id), Score: 5},
			{ID: uint64(a.Id), Score: 5},
			{ID: uint64(b.Id), Score: 5},
		}, nil
	}

	stage := NewRerankStage(reranker, store, time.Second, nil)
	result := stage.Apply(context.Background(), "query", candidates)

	if result[0].AssessmentId != a.Id || result[1].AssessmentId != b.Id || result[2].AssessmentId != c.Id {
		t.Errorf("expected equal scores to fall back to retrieval rank, got %v", result)
	}
}
