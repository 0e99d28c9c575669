package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/ai/mock"
	"github.com/talentsift/talentsift/catalog"
	badgercat "github.com/talentsift/talentsift/catalog/badger"
	"github.com/talentsift/talentsift/core"
)

// queryVectors maps test query texts to fixed embeddings so retrieval
// order is fully controlled. Unknown texts (including the startup
// probe) get a neutral vector.
var queryVectors = map[string][]float32{
	"Java developers with coding skills": {1, 0, 0, 0},
	"numerical reasoning":                {0, 0, 1, 0},
	"sales team":                         {0, 0, 0, 1},
}

func testEmbedder() *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.Dimension = 4
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if vector, ok := queryVectors[text]; ok {
			out := make([]float32, len(vector))
			copy(out, vector)
			return out, nil
		}
		return []float32{0.5, 0.5, 0.5, 0.5}, nil
	}
	return embedder
}

func seedCatalog(t *testing.T) catalog.Repository {
	t.Helper()
	repo, backend, err := badgercat.NewMemoryRepository()
	if err != nil {
		t.Fatalf("failed to create memory repository: %v", err)
	}
	t.Cleanup(func() { backend.Close() })

	seed := []*core.Assessment{
		testAssessment("java-test", []core.Category{core.CategoryTechnical}, []float32{1, 0, 0, 0}),
		testAssessment("python-test", []core.Category{core.CategoryTechnical}, []float32{0.9, 0.1, 0, 0}),
		testAssessment("numerical-reasoning", []core.Category{core.CategoryCognitive}, []float32{0, 0, 1, 0}),
		testAssessment("personality-profile", []core.Category{core.CategoryBehavioral}, []float32{0, 1, 0, 0}),
		testAssessment("sales-aptitude", []core.Category{core.CategoryDomain}, []float32{0, 0, 0, 1}),
	}
	if _, err := repo.PutAssessments(context.Background(), seed...); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
	return repo
}

func testEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	repo := seedCatalog(t)
	provider := mock.NewMockProviderWithServices(testEmbedder(), mock.NewMockReranker())

	engine, err := NewEngine(context.Background(), repo, provider, opts...)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func TestEngine_RequiresNonEmptyCatalog(t *testing.T) {
	repo, backend, err := badgercat.NewMemoryRepository()
	if err != nil {
		t.Fatalf("failed to create memory repository: %v", err)
	}
	t.Cleanup(func() { backend.Close() })

	provider := mock.NewMockProviderWithServices(testEmbedder(), mock.NewMockReranker())
	_, err = NewEngine(context.Background(), repo, provider)
	if !errors.Is(err, catalog.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestEngine_RequiresDependencies(t *testing.T) {
	if _, err := NewEngine(context.Background(), nil, mock.NewMockProvider()); !errors.Is(err, ErrCatalogRequired) {
		t.Errorf("expected ErrCatalogRequired, got %v", err)
	}
	repo := seedCatalog(t)
	if _, err := NewEngine(context.Background(), repo, nil); !errors.Is(err, ErrAIProviderRequired) {
		t.Errorf("expected ErrAIProviderRequired, got %v", err)
	}
}

func TestEngine_Recommend(t *testing.T) {
	engine := testEngine(t, WithResultSize(3))

	recommendations, err := engine.Recommend(context.Background(), "numerical reasoning")
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recommendations))
	}
	if recommendations[0].Name != "numerical-reasoning" {
		t.Errorf("expected numerical-reasoning first, got %q", recommendations[0].Name)
	}
	for _, rec := range recommendations {
		if rec.URL == "" || rec.Name == "" || rec.Description == "" || rec.Duration <= 0 {
			t.Errorf("incomplete recommendation: %+v", rec)
		}
		if len(rec.Categories) == 0 {
			t.Errorf("recommendation %q missing categories", rec.Name)
		}
	}
}

func TestEngine_RejectsBlankQuery(t *testing.T) {
	engine := testEngine(t)

	for _, query := range []string{"", "   "} {
		if _, err := engine.Recommend(context.Background(), query); !errors.Is(err, core.ErrEmptyQuery) {
			t.Errorf("expected ErrEmptyQuery for %q, got %v", query, err)
		}
	}
}

func TestEngine_Deterministic(t *testing.T) {
	engine := testEngine(t)

	first, err := engine.Recommend(context.Background(), "Java developers with coding skills")
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	second, err := engine.Recommend(context.Background(), "Java developers with coding skills")
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].URL != second[i].URL {
			t.Errorf("position %d differs: %q vs %q", i, first[i].URL, second[i].URL)
		}
	}
}

// captureMonitor records pipeline stages for assertions.
type captureMonitor struct {
	NoopMonitor
	retrieved []core.Candidate
	balanced  []core.Candidate
}

func (m *captureMonitor) AfterRetrieval(candidates []core.Candidate) {
	m.retrieved = append([]core.Candidate(nil), candidates...)
}

func (m *captureMonitor) AfterBalance(candidates []core.Candidate) {
	m.balanced = append([]core.Candidate(nil), candidates...)
}

func TestEngine_FinalListIsSubsetOfRetrieved(t *testing.T) {
	engine := testEngine(t, WithRetrievalK(3), WithResultSize(2))

	monitor := &captureMonitor{}
	recommendations, err := engine.RecommendWithMonitor(context.Background(), "Java developers with coding skills", monitor)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	retrievedIds := make(map[core.ID]bool)
	for _, candidate := range monitor.retrieved {
		retrievedIds[candidate.AssessmentId] = true
	}
	if len(monitor.retrieved) != 3 {
		t.Errorf("expected 3 retrieved candidates, got %d", len(monitor.retrieved))
	}
	for _, candidate := range monitor.balanced {
		if !retrievedIds[candidate.AssessmentId] {
			t.Errorf("final candidate %d was never retrieved", candidate.AssessmentId)
		}
	}
	if len(recommendations) != len(monitor.balanced) {
		t.Errorf("projection changed the list length: %d vs %d", len(recommendations), len(monitor.balanced))
	}
}

func TestEngine_PromotesBehavioralForTechnicalQuery(t *testing.T) {
	engine := testEngine(t, WithResultSize(2))

	recommendations, err := engine.Recommend(context.Background(), "Java developers with coding skills")
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recommendations))
	}
	if recommendations[0].Name != "java-test" {
		t.Errorf("expected java-test first, got %q", recommendations[0].Name)
	}
	if recommendations[1].Name != "personality-profile" {
		t.Errorf("expected behavioral item promoted into last slot, got %q", recommendations[1].Name)
	}
}

func TestEngine_RerankPassthroughMatchesDisabled(t *testing.T) {
	disabled := testEngine(t)
	enabled := testEngine(t, WithReranking(time.Second))

	query := "Java developers with coding skills"
	baseline, err := disabled.Recommend(context.Background(), query)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	reranked, err := enabled.Recommend(context.Background(), query)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if len(baseline) != len(reranked) {
		t.Fatalf("result lengths differ: %d vs %d", len(baseline), len(reranked))
	}
	for i := range baseline {
		if baseline[i].URL != reranked[i].URL {
			t.Errorf("position %d differs with passthrough reranker: %q vs %q",
				i, baseline[i].URL, reranked[i].URL)
		}
	}
}

func TestEngine_RerankTimeoutMatchesDisabled(t *testing.T) {
	repo := seedCatalog(t)
	reranker := mock.NewMockReranker()
	reranker.RerankFunc = func(ctx context.Context, query string, candidates []ai.RerankCandidate) ([]ai.RerankResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	provider := mock.NewMockProviderWithServices(testEmbedder(), reranker)

	enabled, err := NewEngine(context.Background(), repo, provider, WithReranking(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	disabled := testEngine(t)

	query := "numerical reasoning"
	baseline, err := disabled.Recommend(context.Background(), query)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	timedOut, err := enabled.Recommend(context.Background(), query)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if len(baseline) != len(timedOut) {
		t.Fatalf("result lengths differ: %d vs %d", len(baseline), len(timedOut))
	}
	for i := range baseline {
		if baseline[i].URL != timedOut[i].URL {
			t.Errorf("position %d differs after rerank timeout: %q vs %q",
				i, baseline[i].URL, timedOut[i].URL)
		}
	}
	if reranker.CallCount() != 1 {
		t.Errorf("expected exactly one rerank attempt, got %d", reranker.CallCount())
	}
}

func TestEngine_OptionValidation(t *testing.T) {
	repo := seedCatalog(t)
	provider := mock.NewMockProviderWithServices(testEmbedder(), mock.NewMockReranker())

	tests := []struct {
		name string
		opt  Option
	}{
		{"zero retrieval k", WithRetrievalK(0)},
		{"zero result size", WithResultSize(0)},
		{"oversized result size", WithResultSize(MaxResultSize + 1)},
		{"zero behavioral ratio", WithMinBehavioralRatio(0)},
		{"nil logger", WithLogger(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(context.Background(), repo, provider, tt.opt); err == nil {
				t.Error("expected option validation error")
			}
		})
	}
}
