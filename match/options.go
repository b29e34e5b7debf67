package match

import (
	"log/slog"

	"github.com/culinate/dishfinder/ai"
)

const (
	// DefaultTopK is the result count limit when none is given.
	DefaultTopK = 5

	defaultFuzzyThreshold    = 0.5
	defaultKeywordThreshold  = 0.3
	defaultSemanticThreshold = 0.6
	defaultHighConfidence    = 0.9
)

// Option configures a Matcher.
type Option func(*Matcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// WithEmbedder enables the semantic strategy. Without an embedder only the
// lexical strategies run.
func WithEmbedder(embedder ai.Embedder) Option {
	return func(m *Matcher) error {
		m.embedder = embedder
		return nil
	}
}

// WithFuzzyThreshold sets the minimum Levenshtein similarity for fuzzy
// matches. Default is 0.5.
func WithFuzzyThreshold(threshold float64) Option {
	return func(m *Matcher) error {
		m.fuzzyThreshold = clampUnit(threshold)
		return nil
	}
}

// WithKeywordThreshold sets the minimum word overlap for keyword matches.
// Default is 0.3.
func WithKeywordThreshold(threshold float64) Option {
	return func(m *Matcher) error {
		m.keywordThreshold = clampUnit(threshold)
		return nil
	}
}

// WithSemanticThreshold sets the minimum cosine similarity for semantic
// matches. Default is 0.6.
func WithSemanticThreshold(threshold float64) Option {
	return func(m *Matcher) error {
		m.semanticThreshold = clampUnit(threshold)
		return nil
	}
}

// WithHighConfidenceThreshold sets the score at which a lexical result
// counts as high-confidence for the semantic early exit. Default is 0.9.
func WithHighConfidenceThreshold(threshold float64) Option {
	return func(m *Matcher) error {
		m.highConfidence = clampUnit(threshold)
		return nil
	}
}

// searchConfig holds per-call search parameters.
type searchConfig struct {
	topK     int
	minScore float64
}

// SearchOption configures a single Search call.
type SearchOption func(*searchConfig)

// WithTopK limits the number of results. Values below 1 are raised to 1.
// Default is DefaultTopK.
func WithTopK(k int) SearchOption {
	return func(c *searchConfig) {
		if k < 1 {
			k = 1
		}
		c.topK = k
	}
}

// WithMinScore drops results scoring below the given value, clamped to
// [0, 1]. Default is 0.
func WithMinScore(score float64) SearchOption {
	return func(c *searchConfig) {
		c.minScore = clampUnit(score)
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
