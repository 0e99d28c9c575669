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


// Package catalog provides the storage abstraction layer for the
// assessment catalog.
//
// This package defines the repository interface that decouples catalog
// persistence from the recommendation logic. The catalog is built offline
// by the ingestion pipeline and opened read-only by the serving process;
// reloading a new catalog happens via process restart, not hot-swap.
//
// # Constructor Return Type Pattern
//
// Public constructors return the Repository interface to enforce
// abstraction and enable alternative backends:
//
//	repo, err := badger.NewRepository(backend)  // returns catalog.Repository
//
// Use in tests with in-memory storage:
//
//	repo, backend, err := badger.NewMemoryRepository()
//	defer repo.Close()
//	defer backend.Close()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package catalog
