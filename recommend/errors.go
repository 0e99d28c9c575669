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

import "errors"

var (
	// ErrCatalogRequired is returned when a catalog repository is not provided.
	ErrCatalogRequired = errors.New("catalog repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrDimensionMismatch indicates a vector whose length does not match
	// the store's fixed dimension. At load time this is fatal.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrMissingVector indicates a catalog record without an embedding.
	ErrMissingVector = errors.New("assessment has no embedding vector")

	// ErrInvariantViolation indicates a pipeline stage broke its contract
	// (e.g. the balancer exceeded the target size). Reported, never
	// silently corrected.
	ErrInvariantViolation = errors.New("pipeline invariant violation")
)
