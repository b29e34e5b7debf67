package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culinate/dishfinder/ai/mock"
	"github.com/culinate/dishfinder/core"
)

func testCatalog() []*core.DishRecord {
	return []*core.DishRecord{
		{Ordinal: 0, Name: "Pho Bo", Description: "Beef noodle soup", Restaurant: "Goc Pho", Category: "Soups"},
		{Ordinal: 1, Name: "Pho Ga", Description: "Chicken noodle soup", Restaurant: "Goc Pho", Category: "Soups"},
		{Ordinal: 2, Name: "Bun Cha", Description: "Grilled pork with vermicelli", Restaurant: "Goc Pho", Category: "Mains"},
		{Ordinal: 3, Name: "Phad Thai", Description: "Stir-fried rice noodles", Restaurant: "Thong Thai", Category: "Mains"},
		{Ordinal: 4, Name: "Green Curry", Description: "Thai curry with coconut milk", Restaurant: "Thong Thai", Category: "Mains"},
		{Ordinal: 5, Name: "Tom Kha Gai", Description: "Coconut chicken soup", Restaurant: "Thong Thai", Category: "Soups"},
	}
}

func newTestMatcher(t *testing.T, opts ...Option) *Matcher {
	t.Helper()
	m, err := New(testCatalog(), opts...)
	require.NoError(t, err)
	return m
}

func TestSearch_ExactMatch(t *testing.T) {
	m := newTestMatcher(t)

	results, err := m.Search(context.Background(), "Pho Bo")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, "Pho Bo", results[0].Record.Name)
	assert.Equal(t, 1.0, results[0].Score)
	assert.Equal(t, core.MatchExact, results[0].Kind)
}

func TestSearch_PartialRanking(t *testing.T) {
	m := newTestMatcher(t)

	results, err := m.Search(context.Background(), "pho")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Pho Bo and Pho Ga tie on score; catalog order breaks the tie.
	assert.Equal(t, "Pho Bo", results[0].Record.Name)
	assert.Equal(t, "Pho Ga", results[1].Record.Name)
	assert.Equal(t, results[0].Score, results[1].Score)

	// Partial runs before keyword, so an equal keyword score must not
	// steal the match kind.
	assert.Equal(t, core.MatchPartial, results[0].Kind)
}

func TestSearch_FuzzyTypo(t *testing.T) {
	m := newTestMatcher(t)

	results, err := m.Search(context.Background(), "Pad Thai")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, "Phad Thai", results[0].Record.Name)
	assert.Equal(t, core.MatchFuzzy, results[0].Kind)
	assert.InDelta(t, 1.0-1.0/9.0, results[0].Score, 1e-6)
}

func TestSearch_KeywordOverlap(t *testing.T) {
	m := newTestMatcher(t)

	results, err := m.Search(context.Background(), "chicken soup")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Record.Name
	}
	assert.Contains(t, names, "Pho Ga")
	assert.Contains(t, names, "Tom Kha Gai")
}

func TestSearch_BlankQuery(t *testing.T) {
	m := newTestMatcher(t)

	for _, query := range []string{"", "   ", "\t\n"} {
		results, err := m.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, results)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	m := newTestMatcher(t)

	results, err := m.Search(context.Background(), "qqqqqqqqqqqqqqqqqqqq")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_TopK(t *testing.T) {
	m := newTestMatcher(t)

	results, err := m.Search(context.Background(), "pho", WithTopK(1))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Pho Bo", results[0].Record.Name)

	// Values below 1 are raised to 1
	results, err = m.Search(context.Background(), "pho", WithTopK(0))
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearch_MinScore(t *testing.T) {
	m := newTestMatcher(t)

	all, err := m.Search(context.Background(), "chicken soup")
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := m.Search(context.Background(), "chicken soup", WithMinScore(0.3))
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Pho Ga", filtered[0].Record.Name)
	assert.GreaterOrEqual(t, filtered[0].Score, 0.3)
}

func TestSearch_NoDuplicateRecords(t *testing.T) {
	m := newTestMatcher(t)

	// "pho bo" matches Pho Bo via exact, partial, fuzzy and keyword
	results, err := m.Search(context.Background(), "pho bo", WithTopK(10))
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, result := range results {
		assert.False(t, seen[result.Record.Ordinal], "record %q appeared twice", result.Record.Name)
		seen[result.Record.Ordinal] = true
	}
}

func TestSearch_Idempotent(t *testing.T) {
	m := newTestMatcher(t)

	first, err := m.Search(context.Background(), "noodle soup")
	require.NoError(t, err)
	second, err := m.Search(context.Background(), "noodle soup")
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Record.Id, second[i].Record.Id)
		assert.Equal(t, first[i].Score, second[i].Score)
		assert.Equal(t, first[i].Kind, second[i].Kind)
	}
}

func TestSearch_Semantic(t *testing.T) {
	embedder := mock.NewMockEmbedder()

	records := testCatalog()
	// Give Tom Kha Gai the embedding of a paraphrase the lexical
	// strategies cannot reach.
	records[5].Vector = mock.DeterministicVector("coconut chicken soup", 384)

	m, err := New(records, WithEmbedder(embedder))
	require.NoError(t, err)

	results, err := m.Search(context.Background(), "Coconut Chicken Soup")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	var semantic *core.MatchResult
	for i := range results {
		if results[i].Kind == core.MatchSemantic {
			semantic = &results[i]
			break
		}
	}
	require.NotNil(t, semantic, "expected a semantic match")
	assert.Equal(t, "Tom Kha Gai", semantic.Record.Name)
	assert.GreaterOrEqual(t, semantic.Score, 0.6)
}

func TestSearch_SemanticEarlyExit(t *testing.T) {
	embedder := mock.NewMockEmbedder()

	m, err := New(testCatalog(), WithEmbedder(embedder))
	require.NoError(t, err)

	// An exact hit fills topK=1 with a high-confidence result, so the
	// query must never be embedded.
	results, err := m.Search(context.Background(), "Pho Bo", WithTopK(1))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, core.MatchExact, results[0].Kind)
	assert.Zero(t, embedder.CallCount(), "semantic search should have been skipped")
}

func TestSearch_SemanticDegradation(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding service unavailable")
	}

	m, err := New(testCatalog(), WithEmbedder(embedder))
	require.NoError(t, err)

	// Lexical results still come back when query embedding fails.
	results, err := m.Search(context.Background(), "pho")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearch_WithoutEmbedder(t *testing.T) {
	m := newTestMatcher(t)

	for _, result := range mustSearch(t, m, "noodle soup") {
		assert.NotEqual(t, core.MatchSemantic, result.Kind)
	}
}

func mustSearch(t *testing.T, m *Matcher, query string, opts ...SearchOption) []core.MatchResult {
	t.Helper()
	results, err := m.Search(context.Background(), query, opts...)
	require.NoError(t, err)
	return results
}

func TestSearch_UnorderedInput(t *testing.T) {
	records := testCatalog()
	// Shuffle input order; the matcher must re-establish catalog order.
	records[0], records[4] = records[4], records[0]
	records[1], records[3] = records[3], records[1]

	m, err := New(records)
	require.NoError(t, err)

	results, err := m.Search(context.Background(), "pho")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Pho Bo", results[0].Record.Name)
	assert.Equal(t, "Pho Ga", results[1].Record.Name)
}

type recordingMonitor struct {
	started    string
	normalized string
	strategies []core.MatchKind
	skipped    bool
	finished   int
}

var _ SearchMonitor = (*recordingMonitor)(nil)

func (r *recordingMonitor) Start(query string)           { r.started = query }
func (r *recordingMonitor) AfterNormalize(text string)   { r.normalized = text }
func (r *recordingMonitor) SkippedSemantic(_ int)        { r.skipped = true }
func (r *recordingMonitor) Finish(rs []core.MatchResult) { r.finished = len(rs) }
func (r *recordingMonitor) AfterStrategy(kind core.MatchKind, _ int) {
	r.strategies = append(r.strategies, kind)
}

func TestSearchWithMonitor(t *testing.T) {
	m := newTestMatcher(t)

	monitor := &recordingMonitor{}
	results, err := m.SearchWithMonitor(context.Background(), "  Pho Bo  ", monitor)
	require.NoError(t, err)

	assert.Equal(t, "  Pho Bo  ", monitor.started)
	assert.Equal(t, "pho bo", monitor.normalized)
	assert.Equal(t, []core.MatchKind{core.MatchExact, core.MatchPartial, core.MatchFuzzy, core.MatchKeyword}, monitor.strategies)
	assert.Equal(t, len(results), monitor.finished)
}

func TestSearch_CancelledContext(t *testing.T) {
	m := newTestMatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Search(ctx, "pho")
	assert.Error(t, err)
}
