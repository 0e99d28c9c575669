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
	"log/slog"
	"sort"
	"time"

	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/core"
)

// DefaultRerankTimeout bounds a single rerank call. When the model does
// not answer in time the retrieval ranking is used unchanged.
const DefaultRerankTimeout = 3 * time.Second

// RerankStage reorders retrieved candidates with an LLM. It never fails
// the pipeline: any model error, timeout, or contract violation falls
// back to the input ranking, and the fallback is visible on the
// returned candidates through the Reranked flag.
type RerankStage struct {
	reranker ai.Reranker
	store    *VectorStore
	timeout  time.Duration
	logger   *slog.Logger
}

// NewRerankStage creates a rerank stage. A non-positive timeout falls
// back to DefaultRerankTimeout.
func NewRerankStage(reranker ai.Reranker, store *VectorStore, timeout time.Duration, logger *slog.Logger) *RerankStage {
	if timeout <= 0 {
		timeout = DefaultRerankTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RerankStage{
		reranker: reranker,
		store:    store,
		timeout:  timeout,
		logger:   logger.With("component", "rerank_stage"),
	}
}

// Apply reranks the candidates for a query. The result always contains
// exactly the input candidate set. On success candidates carry
// Reranked=true and their model scores; on fallback the input is
// returned as-is.
func (s *RerankStage) Apply(ctx context.Context, query string, candidates []core.Candidate) []core.Candidate {
	if len(candidates) == 0 {
		return candidates
	}

	input := make([]ai.RerankCandidate, len(candidates))
	for i, candidate := range candidates {
		assessment := s.store.Assessment(candidate.AssessmentId)
		if assessment == nil {
			s.logger.Error("candidate missing from store, skipping rerank", "id", candidate.AssessmentId)
			return candidates
		}
		categories := make([]string, len(assessment.Categories))
		for j, category := range assessment.Categories {
			categories[j] = string(category)
		}
		input[i] = ai.RerankCandidate{
			ID:          uint64(candidate.AssessmentId),
			Name:        assessment.Name,
			Description: assessment.Description,
			Duration:    assessment.Duration,
			Categories:  categories,
		}
	}

	rerankCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	results, err := s.reranker.Rerank(rerankCtx, query, input)
	if err != nil {
		s.logger.Warn("rerank failed, keeping retrieval order",
			"error", err, "elapsed", time.Since(started))
		return candidates
	}

	if !isPermutation(candidates, results) {
		s.logger.Error("reranker violated candidate set membership, keeping retrieval order",
			"input_count", len(candidates), "output_count", len(results))
		return candidates
	}

	byID := make(map[core.ID]core.Candidate, len(candidates))
	for _, candidate := range candidates {
		byID[candidate.AssessmentId] = candidate
	}

	reranked := make([]core.Candidate, len(results))
	for i, result := range results {
		candidate := byID[core.ID(result.ID)]
		candidate.Reranked = true
		candidate.RerankScore = result.Score
		reranked[i] = candidate
	}

	// Order by model score, keeping the retrieval rank as tie-break so
	// equal scores stay deterministic.
	sort.SliceStable(reranked, func(a, b int) bool {
		if reranked[a].RerankScore != reranked[b].RerankScore {
			return reranked[a].RerankScore > reranked[b].RerankScore
		}
		return reranked[a].Rank < reranked[b].Rank
	})

	s.logger.Debug("reranked candidates", "count", len(reranked), "elapsed", time.Since(started))
	return reranked
}

// isPermutation reports whether results contain exactly the candidate
// ids, each once.
func isPermutation(candidates []core.Candidate, results []ai.RerankResult) bool {
	if len(results) != len(candidates) {
		return false
	}
	expected := make(map[core.ID]bool, len(candidates))
	for _, candidate := range candidates {
		expected[candidate.AssessmentId] = true
	}
	for _, result := range results {
		id := core.ID(result.ID)
		if !expected[id] {
			return false
		}
		delete(expected, id)
	}
	return len(expected) == 0
}
