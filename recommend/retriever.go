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

	"github.com/talentsift/talentsift/core"
)

// Retriever runs exact nearest-neighbor search against the vector store
// and converts raw distances into ranked candidates.
type Retriever struct {
	store  *VectorStore
	logger *slog.Logger
}

// NewRetriever creates a retriever over an existing store.
func NewRetriever(store *VectorStore, logger *slog.Logger) *Retriever {
	if logger == nil {
		logger = slog.Default()
	}
	return &Retriever{
		store:  store,
		logger: logger.With("component", "retriever"),
	}
}

// Retrieve returns up to k candidates nearest to the query vector,
// ranked by similarity 1/(1+d) where d is the squared Euclidean
// distance. Rank positions start at 0 for the best match.
func (r *Retriever) Retrieve(ctx context.Context, queryVec []float32, k int) ([]core.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hits, err := r.store.Search(queryVec, k)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	candidates := make([]core.Candidate, len(hits))
	for i, hit := range hits {
		candidates[i] = core.Candidate{
			AssessmentId: hit.AssessmentId,
			Rank:         i,
			Similarity:   1.0 / (1.0 + hit.Distance),
		}
	}

	r.logger.Debug("retrieved candidates", "requested", k, "returned", len(candidates))
	return candidates, nil
}
