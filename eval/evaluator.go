package eval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/talentsift/talentsift/core"
	"github.com/talentsift/talentsift/recommend"
)

// QueryResult holds the outcome of one evaluated query.
type QueryResult struct {
	Query           string   `json:"query"`
	PredictedURLs   []string `json:"predicted_urls"`
	RetrievalURLs   []string `json:"retrieval_urls"`
	RelevantURLs    []string `json:"relevant_urls"`
	Recall          float64  `json:"recall_at_k"`
	RetrievalRecall float64  `json:"retrieval_recall_at_k"`
}

// Report aggregates an evaluation run. RetrievalRecall measures the
// raw vector ranking before reranking and balancing, so the two means
// show what the later stages contribute.
type Report struct {
	K                   int           `json:"k"`
	Queries             int           `json:"queries"`
	MeanRecall          float64       `json:"mean_recall_at_k"`
	MeanRetrievalRecall float64       `json:"mean_retrieval_recall_at_k"`
	Results             []QueryResult `json:"results"`
}

// Evaluator measures recommendation quality against a labeled dataset.
type Evaluator struct {
	engine *recommend.Engine
	k      int
	logger *slog.Logger
}

// NewEvaluator creates an evaluator computing Recall@k.
func NewEvaluator(engine *recommend.Engine, k int, logger *slog.Logger) (*Evaluator, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		engine: engine,
		k:      k,
		logger: logger.With("component", "evaluator"),
	}, nil
}

// retrievalCapture records the raw retrieval list of a single query.
type retrievalCapture struct {
	recommend.NoopMonitor
	candidates []core.Candidate
}

func (m *retrievalCapture) AfterRetrieval(candidates []core.Candidate) {
	m.candidates = append([]core.Candidate(nil), candidates...)
}

// Run evaluates every labeled query and aggregates the recalls. A
// query failure aborts the run; a labeled dataset should always be
// answerable.
func (e *Evaluator) Run(ctx context.Context, dataset []LabeledQuery) (*Report, error) {
	if len(dataset) == 0 {
		return nil, ErrEmptyDataset
	}

	report := &Report{
		K:       e.k,
		Queries: len(dataset),
		Results: make([]QueryResult, 0, len(dataset)),
	}

	for _, example := range dataset {
		capture := &retrievalCapture{}
		recommendations, err := e.engine.RecommendWithMonitor(ctx, example.Query, capture)
		if err != nil {
			return nil, fmt.Errorf("query %q failed: %w", example.Query, err)
		}

		predicted := make([]string, len(recommendations))
		for i, rec := range recommendations {
			predicted[i] = rec.URL
		}
		retrieved := make([]string, 0, len(capture.candidates))
		for _, candidate := range capture.candidates {
			if assessment := e.engine.Assessment(candidate.AssessmentId); assessment != nil {
				retrieved = append(retrieved, assessment.URL)
			}
		}

		result := QueryResult{
			Query:           example.Query,
			PredictedURLs:   predicted,
			RetrievalURLs:   retrieved,
			RelevantURLs:    example.RelevantURLs,
			Recall:          RecallAtK(predicted, example.RelevantURLs, e.k),
			RetrievalRecall: RecallAtK(retrieved, example.RelevantURLs, e.k),
		}
		report.Results = append(report.Results, result)
		report.MeanRecall += result.Recall
		report.MeanRetrievalRecall += result.RetrievalRecall

		e.logger.Debug("evaluated query",
			"query", example.Query,
			"recall", result.Recall,
			"retrieval_recall", result.RetrievalRecall)
	}

	report.MeanRecall /= float64(len(dataset))
	report.MeanRetrievalRecall /= float64(len(dataset))

	e.logger.Info("evaluation complete",
		"queries", report.Queries,
		"k", report.K,
		"mean_recall", report.MeanRecall,
		"mean_retrieval_recall", report.MeanRetrievalRecall)
	return report, nil
}
