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

import "github.com/talentsift/talentsift/core"

// Monitor observes the stages of a single recommendation. Implementations
// must not mutate the slices they receive. Evaluation uses a monitor to
// compare the retrieval-only ranking against the final list.
type Monitor interface {
	// Start is called once with the raw query text.
	Start(query string)

	// AfterEmphasis reports the category emphasis inferred from the query.
	AfterEmphasis(emphasis Emphasis)

	// AfterRetrieval reports the candidates in vector-similarity order,
	// before any reranking or balancing.
	AfterRetrieval(candidates []core.Candidate)

	// AfterRerank reports the candidate order leaving the rerank stage.
	// Not called when reranking is disabled.
	AfterRerank(candidates []core.Candidate)

	// AfterBalance reports the final candidate list.
	AfterBalance(candidates []core.Candidate)

	// Finish is called once with the projected recommendations.
	Finish(recommendations []core.Recommendation)
}

// NoopMonitor ignores every event.
type NoopMonitor struct{}

func (NoopMonitor) Start(string)                    {}
func (NoopMonitor) AfterEmphasis(Emphasis)          {}
func (NoopMonitor) AfterRetrieval([]core.Candidate) {}
func (NoopMonitor) AfterRerank([]core.Candidate)    {}
func (NoopMonitor) AfterBalance([]core.Candidate)   {}
func (NoopMonitor) Finish([]core.Recommendation)    {}

var _ Monitor = NoopMonitor{}
