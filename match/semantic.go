package match

import (
	"context"
	"log/slog"

	"github.com/culinate/dishfinder/ai"
	"github.com/culinate/dishfinder/core"
)

// semanticStrategy matches on cosine similarity between the query embedding
// and precomputed dish vectors. Both sides are unit vectors, so the dot
// product is the cosine.
type semanticStrategy struct {
	embedder  ai.Embedder
	threshold float64
	logger    *slog.Logger
}

var (
	_ Strategy = (*semanticStrategy)(nil)
	_ preparer = (*semanticStrategy)(nil)
)

func (s *semanticStrategy) Kind() core.MatchKind {
	return core.MatchSemantic
}

// Prepare embeds the query. A failure here makes the matcher skip the
// strategy for this search only.
func (s *semanticStrategy) Prepare(ctx context.Context, q *Query) error {
	if s.embedder == nil {
		return ErrEmbedderRequired
	}

	vector, err := s.embedder.EmbedText(ctx, q.Text)
	if err != nil {
		return err
	}

	q.Vector = core.NormalizeVector(vector)
	return nil
}

func (s *semanticStrategy) Score(q *Query, record *core.DishRecord) (float64, bool) {
	if len(q.Vector) == 0 || len(record.Vector) == 0 {
		return 0, false
	}

	similarity := float64(core.DotProduct(q.Vector, record.Vector))
	if similarity < s.threshold {
		return 0, false
	}
	if similarity > 1 {
		// Guard against float drift pushing unit vectors past 1
		similarity = 1
	}
	return similarity, true
}
