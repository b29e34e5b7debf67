package dishfinder

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culinate/dishfinder/ai/mock"
	"github.com/culinate/dishfinder/core"
	"github.com/culinate/dishfinder/match"
)

const testGuide = `# Guide

## 1. Goc Pho ⭐⭐⭐⭐

**Cuisine:** Vietnamese
**Address:** Schärfengäßchen 6, Frankfurt

**Soups:**
- Pho Bo (Beef noodle soup) - 14€
- Pho Ga (Chicken noodle soup) - 13€

## 2. Thong Thai ⭐⭐⭐

**Cuisine:** Thai

**Mains:**
- Phad Thai - 7€
- Green Curry - 7€
`

func TestFinderLifecycle(t *testing.T) {
	finder, err := NewFinder()
	require.NoError(t, err)
	defer finder.Close()

	ctx := context.Background()

	// Usable before any guide is loaded
	results, err := finder.Search(ctx, "pho")
	require.NoError(t, err)
	assert.Empty(t, results)

	loaded, err := finder.LoadGuideReader(ctx, strings.NewReader(testGuide))
	require.NoError(t, err)
	assert.Equal(t, 4, loaded)

	require.Len(t, finder.Restaurants(), 2)
	require.Len(t, finder.Records(), 4)
	assert.False(t, finder.SemanticEnabled())

	results, err = finder.Search(ctx, "Pho Bo")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Pho Bo", results[0].Record.Name)
	assert.Equal(t, core.MatchExact, results[0].Kind)
	assert.Equal(t, "Goc Pho", results[0].Record.Restaurant)
}

func TestFinderSearchOptions(t *testing.T) {
	finder, err := NewFinder()
	require.NoError(t, err)
	defer finder.Close()

	ctx := context.Background()
	_, err = finder.LoadGuideReader(ctx, strings.NewReader(testGuide))
	require.NoError(t, err)

	results, err := finder.Search(ctx, "pho", match.WithTopK(1))
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestFinderWithEmbedder(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	finder, err := NewFinder(WithEmbedder(embedder))
	require.NoError(t, err)
	defer finder.Close()

	ctx := context.Background()
	_, err = finder.LoadGuideReader(ctx, strings.NewReader(testGuide))
	require.NoError(t, err)

	assert.True(t, finder.SemanticEnabled())
	for _, record := range finder.Records() {
		assert.NotEmpty(t, record.Vector)
	}

	results, err := finder.Search(ctx, "beef noodle soup")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Pho Bo", results[0].Record.Name)
}

func TestFinderLoadSampleGuide(t *testing.T) {
	finder, err := NewFinder()
	require.NoError(t, err)
	defer finder.Close()

	loaded, err := finder.LoadSampleGuide(context.Background())
	require.NoError(t, err)
	assert.Greater(t, loaded, 30)
	assert.Len(t, finder.Restaurants(), 4)
}

func TestFinderBadGuide(t *testing.T) {
	finder, err := NewFinder()
	require.NoError(t, err)
	defer finder.Close()

	ctx := context.Background()

	_, err = finder.LoadGuide(ctx, "/nonexistent/guide.md")
	assert.Error(t, err)

	_, err = finder.LoadGuideReader(ctx, strings.NewReader("no sections"))
	assert.Error(t, err)

	// The finder stays usable with an empty catalog
	results, err := finder.Search(ctx, "pho")
	require.NoError(t, err)
	assert.Empty(t, results)
}
