package match

import (
	"context"

	"github.com/culinate/dishfinder/core"
)

// Query is the prepared form of a search query, shared by all strategies
// during a single search call.
type Query struct {
	// Raw is the query as the caller typed it.
	Raw string
	// Text is the normalized query.
	Text string
	// Words are the keyword tokens of the normalized query.
	Words []string
	// Vector is the normalized query embedding, set by the semantic
	// strategy's Prepare. Empty when semantic search is unavailable.
	Vector []float32
}

func newQuery(raw string) *Query {
	text := Normalize(raw)
	return &Query{
		Raw:   raw,
		Text:  text,
		Words: tokenize(text),
	}
}

// Strategy scores dish records against a query. Implementations must be
// stateless across searches; per-search state lives on the Query.
type Strategy interface {
	// Kind identifies the strategy in match results.
	Kind() core.MatchKind

	// Score returns the match score for a record and whether the record
	// matched at all. Scores are in [0, 1].
	Score(q *Query, record *core.DishRecord) (float64, bool)
}

// preparer is implemented by strategies that need per-search setup, such as
// embedding the query. A Prepare error drops the strategy for that call
// only.
type preparer interface {
	Prepare(ctx context.Context, q *Query) error
}
