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

import "errors"

// Domain validation errors
var (
	// ErrInvalidAssessment indicates an Assessment failed validation.
	ErrInvalidAssessment = errors.New("invalid assessment")

	// ErrEmptyURL indicates the URL field is empty.
	ErrEmptyURL = errors.New("url cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyDescription indicates the Description field is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidDuration indicates a non-positive duration.
	ErrInvalidDuration = errors.New("duration must be positive")

	// ErrNoCategories indicates an assessment without category tags.
	ErrNoCategories = errors.New("assessment requires at least one category")

	// ErrInvalidCategory indicates a category outside the taxonomy.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrEmptyQuery indicates an empty or whitespace-only query text.
	ErrEmptyQuery = errors.New("query text cannot be empty")
)
