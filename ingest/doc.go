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

// Package ingest loads parsed dish records into the catalog and enriches
// them with embedding vectors.
//
// The pipeline validates and stores records first, then embeds them in
// batches on a worker pool. Embedding is best-effort: when no embedder is
// configured, or a batch fails to embed, the affected records stay in the
// catalog without vectors and only lexical search covers them.
package ingest
