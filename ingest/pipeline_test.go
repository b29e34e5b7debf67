package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culinate/dishfinder/ai/mock"
	"github.com/culinate/dishfinder/core"
	"github.com/culinate/dishfinder/storage/badger"
)

func testRecords() []*core.DishRecord {
	return []*core.DishRecord{
		{Name: "Pho Bo", Restaurant: "Goc Pho", Category: "Soups", Cuisine: "Vietnamese", Price: 14},
		{Name: "Pho Ga", Restaurant: "Goc Pho", Category: "Soups", Cuisine: "Vietnamese", Price: 13},
		{Name: "Phad Thai", Restaurant: "Thong Thai", Category: "Mains", Cuisine: "Thai", Price: 7},
	}
}

func TestPipelineRun_WithEmbedder(t *testing.T) {
	catalog, err := badger.NewMemoryCatalog()
	require.NoError(t, err)
	defer catalog.Close()

	embedder := mock.NewMockEmbedder()
	pipeline, err := NewPipeline(catalog, WithEmbedder(embedder), WithBatchSize(2))
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()
	stored, err := pipeline.Run(ctx, testRecords())
	require.NoError(t, err)
	assert.Equal(t, 3, stored)

	// Two batches of size 2 and 1
	assert.Equal(t, 2, embedder.CallCount())

	listed, err := catalog.ListDishRecords(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for _, record := range listed {
		assert.NotEmpty(t, record.Vector, "record %q should have a vector", record.Name)
	}
}

func TestPipelineRun_NoEmbedder(t *testing.T) {
	catalog, err := badger.NewMemoryCatalog()
	require.NoError(t, err)
	defer catalog.Close()

	pipeline, err := NewPipeline(catalog)
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()
	stored, err := pipeline.Run(ctx, testRecords())
	require.NoError(t, err)
	assert.Equal(t, 3, stored)

	listed, err := catalog.ListDishRecords(ctx)
	require.NoError(t, err)
	for _, record := range listed {
		assert.Empty(t, record.Vector)
	}
}

func TestPipelineRun_EmbedderFailure(t *testing.T) {
	catalog, err := badger.NewMemoryCatalog()
	require.NoError(t, err)
	defer catalog.Close()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("embedding service unavailable")
	}

	pipeline, err := NewPipeline(catalog, WithEmbedder(embedder))
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()
	stored, err := pipeline.Run(ctx, testRecords())
	require.NoError(t, err, "embedding failure must not fail the run")
	assert.Equal(t, 3, stored)

	listed, err := catalog.ListDishRecords(ctx)
	require.NoError(t, err)
	for _, record := range listed {
		assert.Empty(t, record.Vector)
	}
}

func TestPipelineRun_InvalidRecord(t *testing.T) {
	catalog, err := badger.NewMemoryCatalog()
	require.NoError(t, err)
	defer catalog.Close()

	pipeline, err := NewPipeline(catalog)
	require.NoError(t, err)
	defer pipeline.Release()

	bad := []*core.DishRecord{{Name: "", Restaurant: "Goc Pho"}}
	_, err = pipeline.Run(context.Background(), bad)
	assert.True(t, errors.Is(err, core.ErrEmptyDishName))

	count, err := catalog.CountDishRecords(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "nothing should be stored when validation fails")
}

func TestPipelineRun_Empty(t *testing.T) {
	catalog, err := badger.NewMemoryCatalog()
	require.NoError(t, err)
	defer catalog.Close()

	pipeline, err := NewPipeline(catalog)
	require.NoError(t, err)
	defer pipeline.Release()

	stored, err := pipeline.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, stored)
}

func TestNewPipeline_NilCatalog(t *testing.T) {
	_, err := NewPipeline(nil)
	assert.True(t, errors.Is(err, ErrCatalogRequired))
}

func TestEmbeddingText(t *testing.T) {
	record := &core.DishRecord{
		Name:        "Pho Bo",
		Category:    "Soups",
		Cuisine:     "Vietnamese",
		Description: "Beef noodle soup",
	}
	assert.Equal(t, "Pho Bo Soups Vietnamese Beef noodle soup", EmbeddingText(record))

	sparse := &core.DishRecord{Name: "Phad Thai"}
	assert.Equal(t, "Phad Thai", EmbeddingText(sparse))
}
