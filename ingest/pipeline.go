package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/culinate/dishfinder/ai"
	"github.com/culinate/dishfinder/core"
	"github.com/culinate/dishfinder/storage"
)

const defaultBatchSize = 16

// Pipeline loads dish records into the catalog and generates embeddings
// for them on a worker pool.
type Pipeline struct {
	catalog   storage.CatalogRepository
	embedder  ai.Embedder
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithEmbedder sets the embedder used to generate vectors. Without one the
// pipeline stores records but skips embedding entirely.
func WithEmbedder(embedder ai.Embedder) Option {
	return func(p *Pipeline) error {
		p.embedder = embedder
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many records are embedded per request.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an ingestion pipeline over the given catalog.
func NewPipeline(catalog storage.CatalogRepository, opts ...Option) (*Pipeline, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		catalog:   catalog,
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Run validates and stores the given records, then embeds them in batches.
// It blocks until all batches have been processed and returns the number of
// records stored. Embedding failures are logged and leave the affected
// records without vectors; they do not fail the run.
func (p *Pipeline) Run(ctx context.Context, records []*core.DishRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	for _, record := range records {
		if err := core.ValidateDishRecord(record); err != nil {
			return 0, fmt.Errorf("invalid record %q: %w", record.Name, err)
		}
	}

	added, err := p.catalog.AddDishRecords(ctx, records...)
	if err != nil {
		return 0, err
	}
	p.logger.Info("stored dish records", "records", len(added))

	if p.embedder == nil {
		p.logger.Debug("no embedder configured, skipping embeddings")
		return len(added), nil
	}

	var wg sync.WaitGroup
	for start := 0; start < len(added); start += p.batchSize {
		end := min(start+p.batchSize, len(added))
		batch := added[start:end]

		wg.Add(1)
		task := func() {
			defer wg.Done()
			if err := p.embedBatch(ctx, batch); err != nil {
				p.logger.Warn("embedding batch failed, records stay lexical-only",
					"records", len(batch), "err", err)
			}
		}
		if err := p.pool.Submit(task); err != nil {
			// Pool unavailable, fall back to running inline
			task()
		}
	}
	wg.Wait()

	return len(added), nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// embedBatch embeds a batch of records and writes the vectors back.
func (p *Pipeline) embedBatch(ctx context.Context, batch []*core.DishRecord) error {
	texts := make([]string, len(batch))
	for i, record := range batch {
		texts[i] = EmbeddingText(record)
	}

	p.logger.Debug("generating embeddings for dish records", "records", len(texts))
	vectors, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}
	if len(vectors) != len(batch) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(batch), len(vectors))
	}

	for i := range vectors {
		batch[i].Vector = core.NormalizeVector(vectors[i])
	}

	_, err = p.catalog.UpdateDishRecords(ctx, batch...)
	return err
}

// EmbeddingText builds the text embedded for a dish record. It combines the
// fields that carry meaning for semantic matching.
func EmbeddingText(record *core.DishRecord) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{record.Name, record.Category, record.Cuisine, record.Description} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}
