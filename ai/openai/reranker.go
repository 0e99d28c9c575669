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


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/talentsift/talentsift/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Reranker implements ai.Reranker using OpenAI-compatible chat APIs.
//
// Reranking is a two-step protocol: the query is first distilled into
// structured hiring requirements, then every candidate is scored against
// those requirements. Any failure in either step surfaces as an error so
// the caller can fall back to the retrieval ordering.
type Reranker struct {
	client llms.Model
	logger *slog.Logger
}

// rankingEntry is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type rankingEntry struct {
	ID    int     `json:"id"`
	Score float32 `json:"score"`
}

// ranking is the wrapper structure for the LLM's ranking response.
type ranking struct {
	Ranking []rankingEntry `json:"ranking"`
}

// newReranker is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newReranker(config *ai.Config) (*Reranker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.RerankHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.RerankModel),
	)
	if err != nil {
		return nil, err
	}

	return &Reranker{
		client: client,
		logger: slog.Default().With("component", "openai-reranker"),
	}, nil
}

// NewReranker creates a new reranker using the provided configuration.
//
// Returns ai.Reranker interface to enforce abstraction.
func NewReranker(config *ai.Config) (ai.Reranker, error) {
	return newReranker(config)
}

// Rerank scores candidates against the query's extracted requirements and
// returns them in relevance order. The result covers exactly the input set:
// candidates the model omits are appended in their original order, and ids
// outside the candidate list are discarded.
func (r *Reranker) Rerank(ctx context.Context, query string, candidates []ai.RerankCandidate) ([]ai.RerankResult, error) {
	if len(candidates) == 0 {
		return []ai.RerankResult{}, nil
	}

	requirements, err := r.extractRequirements(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("extract requirements: %w", err)
	}

	results, err := r.scoreCandidates(ctx, requirements, candidates)
	if err != nil {
		return nil, fmt.Errorf("score candidates: %w", err)
	}

	return results, nil
}

// extractRequirements distills the free-text query into structured
// hiring requirements (step one of the protocol).
func (r *Reranker) extractRequirements(ctx context.Context, query string) (*ai.Requirements, error) {
	systemPrompt := fmt.Sprintf(requirementsPromptTemplate, requirementsResponseSchema)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	var requirements ai.Requirements
	err := r.generateJSON(ctx, content, &requirements)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("extracted requirements",
		"skills", len(requirements.SkillAreas),
		"seniority", requirements.Seniority,
		"timeBudget", requirements.TimeBudget)

	return &requirements, nil
}

// scoreCandidates asks the model to score every candidate against the
// requirements (step two of the protocol).
func (r *Reranker) scoreCandidates(ctx context.Context, requirements *ai.Requirements, candidates []ai.RerankCandidate) ([]ai.RerankResult, error) {
	userPrompt, err := buildRankingInput(requirements, candidates)
	if err != nil {
		return nil, err
	}

	systemPrompt := fmt.Sprintf(rankingPromptTemplate, rankingResponseSchema)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	var parsed ranking
	if err := r.generateJSON(ctx, content, &parsed); err != nil {
		return nil, err
	}

	// Map local ids back to candidates, discarding duplicates and ids
	// outside the candidate list.
	seen := make(map[int]bool, len(candidates))
	results := make([]ai.RerankResult, 0, len(candidates))
	var lowest float32 = 10
	for _, entry := range parsed.Ranking {
		if entry.ID < 0 || entry.ID >= len(candidates) || seen[entry.ID] {
			r.logger.Warn("discarding invalid ranking entry", "id", entry.ID)
			continue
		}
		seen[entry.ID] = true
		results = append(results, ai.RerankResult{
			ID:    candidates[entry.ID].ID,
			Score: entry.Score,
		})
		if entry.Score < lowest {
			lowest = entry.Score
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("ranking response contained no usable entries")
	}

	// Candidates the model skipped keep their retrieval order at the tail,
	// scored below everything the model ranked.
	for i, candidate := range candidates {
		if !seen[i] {
			lowest -= 0.01
			if lowest < 0 {
				lowest = 0
			}
			results = append(results, ai.RerankResult{
				ID:    candidate.ID,
				Score: lowest,
			})
		}
	}

	return results, nil
}

// generateJSON runs a chat exchange in JSON mode and unmarshals the
// response into out, retrying on malformed output.
func (r *Reranker) generateJSON(ctx context.Context, content []llms.MessageContent, out any) error {
	// Try up to 3 times in case of malformed JSON
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := r.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			r.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return err
		}

		if len(response.Choices) < 1 {
			return fmt.Errorf("no choices returned from model")
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), out); err != nil {
			lastErr = err
			r.logger.Warn("error parsing reranker response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		return nil
	}

	r.logger.Error("failed to parse reranker response after retries", "err", lastErr)
	return lastErr
}

// buildRankingInput renders requirements and candidates as the JSON
// payload handed to the ranking step.
func buildRankingInput(requirements *ai.Requirements, candidates []ai.RerankCandidate) (string, error) {
	type candidateInfo struct {
		ID          int      `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Duration    int      `json:"duration"`
		Categories  []string `json:"categories"`
	}

	infos := make([]candidateInfo, len(candidates))
	for i, c := range candidates {
		infos[i] = candidateInfo{
			ID:          i,
			Name:        c.Name,
			Description: c.Description,
			Duration:    c.Duration,
			Categories:  c.Categories,
		}
	}

	payload := struct {
		Requirements *ai.Requirements `json:"requirements"`
		Candidates   []candidateInfo  `json:"candidates"`
	}{
		Requirements: requirements,
		Candidates:   infos,
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
