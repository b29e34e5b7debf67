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


// Package ai provides the embedding abstraction used for semantic dish search.
//
// The package defines the Embedder interface, which generates vector
// embeddings from text. The matcher and the ingestion pipeline depend on this
// abstraction rather than on a concrete implementation, so the semantic
// search capability can be absent entirely without affecting the rest of the
// system.
//
// # Implementation Packages
//
// Two implementation sub-packages are included:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//     (Ollama, LocalAI, vLLM, OpenAI itself)
//   - ai/mock: Deterministic test double for unit testing without external
//     services
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434"), ai.WithModel("embeddinggemma"))
//	embedder, err := openai.NewEmbedder(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vec, err := embedder.EmbedText(ctx, "beef noodle soup")
//
// Constructors in ai/openai return the Embedder interface to enforce
// abstraction; mock constructors return concrete types so tests can inject
// behavior and assert call counts.
package ai
