package match

import "errors"

var (
	// ErrEmbedderRequired is returned by the semantic strategy when no
	// embedder is available for query embedding.
	ErrEmbedderRequired = errors.New("embedder required for semantic search")
)
