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


// Package recommend implements the assessment recommendation pipeline.
//
// A query flows through five stages: the QueryEncoder embeds the text,
// the Retriever runs exact nearest-neighbor search over the in-memory
// VectorStore, the optional RerankStage asks an LLM to reorder the
// candidates (falling back to retrieval order on any failure), the
// Balancer enforces category minimums from the query's inferred
// Emphasis, and the Engine projects the survivors into display-ready
// recommendations.
//
// The vector store is built once from the catalog at engine
// construction and is immutable afterwards. Retrieval is fully
// deterministic; with reranking disabled the whole pipeline is.
package recommend
