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
	"fmt"
	"sort"

	"github.com/talentsift/talentsift/core"
)

// Hit is a single nearest-neighbor result from the vector store.
type Hit struct {
	AssessmentId core.ID
	Distance     float32
}

// VectorStore is an immutable in-memory flat index over the assessment
// catalog. It is built once at startup and never mutated afterwards, so
// reads require no locking. Search is exact: every query is compared
// against every stored vector.
type VectorStore struct {
	dimension int
	ids       []core.ID
	vectors   [][]float32
	items     map[core.ID]*core.Assessment
}

// NewVectorStore builds the index from the full catalog. The embedding
// dimension is taken from the first record and every other record must
// match it exactly. Records missing required fields or vectors are
// rejected rather than skipped.
func NewVectorStore(assessments []*core.Assessment) (*VectorStore, error) {
	if len(assessments) == 0 {
		return nil, fmt.Errorf("%w: vector store needs at least one assessment", ErrInvariantViolation)
	}

	store := &VectorStore{
		dimension: len(assessments[0].Vector),
		ids:       make([]core.ID, 0, len(assessments)),
		vectors:   make([][]float32, 0, len(assessments)),
		items:     make(map[core.ID]*core.Assessment, len(assessments)),
	}

	for _, assessment := range assessments {
		if err := core.ValidateAssessment(assessment); err != nil {
			return nil, fmt.Errorf("invalid catalog record %q: %w", assessment.URL, err)
		}
		if len(assessment.Vector) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingVector, assessment.URL)
		}
		if len(assessment.Vector) != store.dimension {
			return nil, fmt.Errorf("%w: %q has %d dimensions, store has %d",
				ErrDimensionMismatch, assessment.URL, len(assessment.Vector), store.dimension)
		}
		store.ids = append(store.ids, assessment.Id)
		store.vectors = append(store.vectors, assessment.Vector)
		store.items[assessment.Id] = assessment
	}

	return store, nil
}

// Dimension returns the fixed embedding dimension of the index.
func (s *VectorStore) Dimension() int {
	return s.dimension
}

// Len returns the number of indexed assessments.
func (s *VectorStore) Len() int {
	return len(s.ids)
}

// Assessment returns the stored record for an id, or nil when unknown.
func (s *VectorStore) Assessment(id core.ID) *core.Assessment {
	return s.items[id]
}

// Search returns the k nearest assessments to queryVec under squared
// Euclidean distance, ordered by ascending distance. Equal distances
// are broken by catalog insertion order, so results are deterministic
// for a given catalog and query.
func (s *VectorStore) Search(queryVec []float32, k int) ([]Hit, error) {
	if len(queryVec) != s.dimension {
		return nil, fmt.Errorf("%w: query has %d dimensions, store has %d",
			ErrDimensionMismatch, len(queryVec), s.dimension)
	}
	if k <= 0 {
		return nil, nil
	}

	type scored struct {
		index    int
		distance float32
	}

	all := make([]scored, len(s.vectors))
	for i, vec := range s.vectors {
		all[i] = scored{index: i, distance: core.SquaredDistance(queryVec, vec)}
	}

	sort.Slice(all, func(a, b int) bool {
		if all[a].distance != all[b].distance {
			return all[a].distance < all[b].distance
		}
		return all[a].index < all[b].index
	})

	if k > len(all) {
		k = len(all)
	}

	hits := make([]Hit, k)
	for i := 0; i < k; i++ {
		hits[i] = Hit{
			AssessmentId: s.ids[all[i].index],
			Distance:     all[i].distance,
		}
	}
	return hits, nil
}
