package match

import (
	"context"
	"log/slog"
	"slices"

	"github.com/culinate/dishfinder/ai"
	"github.com/culinate/dishfinder/core"
)

// Matcher searches a loaded dish catalog with an ordered set of strategies.
// The catalog slice is treated as immutable; a Matcher is safe for
// concurrent Search calls.
type Matcher struct {
	records    []*core.DishRecord
	strategies []Strategy

	embedder          ai.Embedder
	fuzzyThreshold    float64
	keywordThreshold  float64
	semanticThreshold float64
	highConfidence    float64
	logger            *slog.Logger
}

// New creates a Matcher over the given records. The records are copied and
// ordered by ordinal so ranking ties resolve to catalog order regardless of
// input order.
func New(records []*core.DishRecord, opts ...Option) (*Matcher, error) {
	ordered := slices.Clone(records)
	slices.SortStableFunc(ordered, func(a, b *core.DishRecord) int {
		return a.Ordinal - b.Ordinal
	})

	m := &Matcher{
		records:           ordered,
		fuzzyThreshold:    defaultFuzzyThreshold,
		keywordThreshold:  defaultKeywordThreshold,
		semanticThreshold: defaultSemanticThreshold,
		highConfidence:    defaultHighConfidence,
		logger:            slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	// Strategy priority order; earlier strategies win score ties.
	m.strategies = []Strategy{
		&exactStrategy{},
		&partialStrategy{},
		&fuzzyStrategy{threshold: m.fuzzyThreshold},
		&keywordStrategy{threshold: m.keywordThreshold},
	}
	if m.embedder != nil {
		m.strategies = append(m.strategies, &semanticStrategy{
			embedder:  m.embedder,
			threshold: m.semanticThreshold,
			logger:    m.logger,
		})
	}

	return m, nil
}

// Records returns the catalog in ordinal order.
func (m *Matcher) Records() []*core.DishRecord {
	return m.records
}

// Search finds dishes matching the query, ranked by score descending with
// catalog order breaking ties. A blank query yields no results and no
// error.
func (m *Matcher) Search(ctx context.Context, query string, opts ...SearchOption) ([]core.MatchResult, error) {
	return m.SearchWithMonitor(ctx, query, nil, opts...)
}

// SearchWithMonitor is Search with per-stage observation hooks.
func (m *Matcher) SearchWithMonitor(ctx context.Context, query string, monitor SearchMonitor, opts ...SearchOption) ([]core.MatchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	cfg := searchConfig{topK: DefaultTopK}
	for _, opt := range opts {
		opt(&cfg)
	}

	monitor.Start(query)

	q := newQuery(query)
	monitor.AfterNormalize(q.Text)
	if q.Text == "" {
		monitor.Finish(nil)
		return nil, nil
	}

	// Best score per record, keyed by ordinal. Earlier strategies win ties
	// because only a strictly better score replaces an entry.
	merged := make(map[int]core.MatchResult)

	for _, strategy := range m.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if strategy.Kind() == core.MatchSemantic {
			confident := m.countHighConfidence(merged)
			if confident >= cfg.topK {
				m.logger.Debug("skipping semantic search, enough high-confidence results",
					"confident", confident, "topK", cfg.topK)
				monitor.SkippedSemantic(confident)
				continue
			}
		}

		if p, ok := strategy.(preparer); ok {
			if err := p.Prepare(ctx, q); err != nil {
				m.logger.Debug("strategy unavailable for this search",
					"kind", strategy.Kind(), "err", err)
				continue
			}
		}

		hits := 0
		for _, record := range m.records {
			score, ok := strategy.Score(q, record)
			if !ok {
				continue
			}
			hits++
			if prev, exists := merged[record.Ordinal]; !exists || score > prev.Score {
				merged[record.Ordinal] = core.MatchResult{
					Record: record,
					Score:  score,
					Kind:   strategy.Kind(),
				}
			}
		}
		monitor.AfterStrategy(strategy.Kind(), hits)
	}

	results := make([]core.MatchResult, 0, len(merged))
	for _, result := range merged {
		if result.Score >= cfg.minScore {
			results = append(results, result)
		}
	}

	slices.SortFunc(results, func(a, b core.MatchResult) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return a.Record.Ordinal - b.Record.Ordinal
	})

	if len(results) > cfg.topK {
		results = results[:cfg.topK]
	}

	monitor.Finish(results)
	return results, nil
}

func (m *Matcher) countHighConfidence(merged map[int]core.MatchResult) int {
	count := 0
	for _, result := range merged {
		if result.Score >= m.highConfidence {
			count++
		}
	}
	return count
}
