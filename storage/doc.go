// Copyright 2025 Culinate
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

// Package storage provides the storage abstraction layer for dishfinder.
//
// This package defines the repository interface that decouples the catalog
// implementation from business logic, allowing different backends (BadgerDB,
// in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a "return interface" pattern for public constructors
// to enforce abstraction:
//
//	catalog, err := badger.NewMemoryCatalog()  // returns storage.CatalogRepository
//
// Internal constructors (newCatalogRepository, newBackend) may return concrete
// types since they're only used within the implementation package.
//
// # Usage
//
// Create an in-memory catalog (the default for this tool, since the catalog
// is rebuilt from the guide file on each run):
//
//	catalog, err := badger.NewMemoryCatalog()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer catalog.Close()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
