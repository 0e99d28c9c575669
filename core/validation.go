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


package core

import (
	"fmt"
	"strings"
)

// ValidateAssessment validates an Assessment according to domain rules.
//
// Validation rules:
//   - URL, Name and Description must not be empty
//   - Duration must be positive
//   - At least one category tag, each from the fixed taxonomy
//
// NOT validated (populated by the ingestion pipeline):
//   - Vector (can be empty until the embedding step runs)
//   - ID (derived from the URL at load time)
func ValidateAssessment(a *Assessment) error {
	if a == nil {
		return fmt.Errorf("%w: assessment is nil", ErrInvalidAssessment)
	}

	if strings.TrimSpace(a.URL) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrEmptyURL)
	}

	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrEmptyName)
	}

	if strings.TrimSpace(a.Description) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrEmptyDescription)
	}

	if a.Duration <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrInvalidDuration)
	}

	if len(a.Categories) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrNoCategories)
	}

	for _, c := range a.Categories {
		if !IsValidCategory(c) {
			return fmt.Errorf("%w: %w: %q", ErrInvalidAssessment, ErrInvalidCategory, c)
		}
	}

	return nil
}

// ValidateQueryText validates free-text query input.
// Empty or whitespace-only text is rejected before any retrieval work.
func ValidateQueryText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyQuery
	}
	return nil
}
