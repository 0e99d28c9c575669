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

	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/core"
)

// QueryEncoder turns free-form query text into a normalized embedding
// vector matching the store's dimension. Encoding the same text twice
// yields the same vector, since the embedding model is queried with
// identical input and the normalization is pure.
type QueryEncoder struct {
	embedder  ai.Embedder
	dimension int
	logger    *slog.Logger
}

// NewQueryEncoder creates an encoder bound to a fixed dimension.
func NewQueryEncoder(embedder ai.Embedder, dimension int, logger *slog.Logger) (*QueryEncoder, error) {
	if embedder == nil {
		return nil, ErrAIProviderRequired
	}
	if dimension <= 0 {
		return nil, fmt.Errorf("%w: encoder dimension must be positive, got %d", ErrDimensionMismatch, dimension)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryEncoder{
		embedder:  embedder,
		dimension: dimension,
		logger:    logger.With("component", "query_encoder"),
	}, nil
}

// Encode embeds the query text and L2-normalizes the result. Blank or
// whitespace-only text is rejected before any model call.
func (e *QueryEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	if err := core.ValidateQueryText(text); err != nil {
		return nil, err
	}

	vector, err := e.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vector) != e.dimension {
		return nil, fmt.Errorf("%w: embedding model returned %d dimensions, store has %d",
			ErrDimensionMismatch, len(vector), e.dimension)
	}

	e.logger.Debug("encoded query", "text_length", len(text), "dimension", len(vector))
	return core.NormalizeVector(vector), nil
}
