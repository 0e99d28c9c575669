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
	"log/slog"
	"math"

	"github.com/talentsift/talentsift/core"
)

// DefaultMinBehavioralRatio is the behavioral floor applied to
// technical-heavy queries.
const DefaultMinBehavioralRatio = 0.2

// Balancer enforces minimum category presence in the final list. It
// only promotes candidates that vector retrieval already surfaced,
// never items from the wider catalog, and relaxes silently when the
// retrieved pool cannot satisfy a minimum.
type Balancer struct {
	store              *VectorStore
	minBehavioralRatio float64
	logger             *slog.Logger
}

// NewBalancer creates a balancer over the store's category metadata.
// A non-positive ratio falls back to DefaultMinBehavioralRatio.
func NewBalancer(store *VectorStore, minBehavioralRatio float64, logger *slog.Logger) *Balancer {
	if minBehavioralRatio <= 0 {
		minBehavioralRatio = DefaultMinBehavioralRatio
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Balancer{
		store:              store,
		minBehavioralRatio: minBehavioralRatio,
		logger:             logger.With("component", "balancer"),
	}
}

// Balance truncates the ranked candidates to targetSize and enforces
// the behavioral minimum for the given emphasis. Promoted candidates
// take the slots of the lowest-ranked non-behavioral items, so the
// relative order of everything kept is unchanged. Balancing an already
// balanced list is a no-op.
func (b *Balancer) Balance(emphasis Emphasis, candidates []core.Candidate, targetSize int) []core.Candidate {
	if len(candidates) == 0 || targetSize <= 0 {
		return nil
	}

	top := targetSize
	if top > len(candidates) {
		top = len(candidates)
	}
	final := make([]core.Candidate, top)
	copy(final, candidates[:top])
	remainder := candidates[top:]

	required := b.requiredBehavioral(emphasis, top)
	if required == 0 {
		return final
	}

	have := 0
	for _, candidate := range final {
		if b.isBehavioral(candidate.AssessmentId) {
			have++
		}
	}
	if have >= required {
		return final
	}

	// Pull behavioral candidates from the remainder of the retrieved
	// pool, best-ranked first, into the lowest non-behavioral slots.
	promotable := make([]core.Candidate, 0, required-have)
	for _, candidate := range remainder {
		if b.isBehavioral(candidate.AssessmentId) {
			promotable = append(promotable, candidate)
			if len(promotable) == required-have {
				break
			}
		}
	}
	if len(promotable) == 0 {
		b.logger.Debug("behavioral minimum unsatisfiable from retrieved pool",
			"required", required, "have", have)
		return final
	}

	// The top hit is never displaced; promotion fills from the bottom.
	slots := make([]int, 0, len(promotable))
	for slot := len(final) - 1; slot >= 1 && len(slots) < len(promotable); slot-- {
		if !b.isBehavioral(final[slot].AssessmentId) {
			slots = append(slots, slot)
		}
	}

	// Assign best-ranked promoted candidates to the highest replaced
	// slots so the promoted items keep their relative order.
	for i := len(slots) - 1; i >= 0; i-- {
		promoted := promotable[len(slots)-1-i]
		b.logger.Debug("promoting behavioral candidate",
			"replaced", final[slots[i]].AssessmentId, "promoted", promoted.AssessmentId)
		final[slots[i]] = promoted
	}

	return final
}

func (b *Balancer) requiredBehavioral(emphasis Emphasis, top int) int {
	required := 0
	if emphasis.Profile == EmphasisTechnicalHeavy {
		required = int(math.Ceil(b.minBehavioralRatio * float64(top)))
	}
	if emphasis.Leadership && required < 1 {
		required = 1
	}
	if required > top {
		required = top
	}
	return required
}

func (b *Balancer) isBehavioral(id core.ID) bool {
	assessment := b.store.Assessment(id)
	return assessment != nil && assessment.HasCategory(core.CategoryBehavioral)
}
