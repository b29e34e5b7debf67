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

// Package match provides multi-strategy dish search over a loaded catalog.
//
// The Matcher runs an ordered set of strategies against every record:
//   - exact name match
//   - partial (substring) match
//   - fuzzy match for typo tolerance (Levenshtein similarity)
//   - keyword overlap over name and description
//   - semantic similarity over precomputed embeddings
//
// Per record the maximum score across strategies wins; results are ranked
// by score descending with catalog order breaking ties. Semantic search
// only runs when an embedder is configured and the lexical strategies have
// not already produced enough high-confidence results.
package match
