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

// Package dishfinder ties the guide parser, catalog storage, ingestion
// pipeline and matcher together behind a single Finder facade.
package dishfinder

import (
	"context"
	"io"
	"log/slog"

	"github.com/culinate/dishfinder/ai"
	"github.com/culinate/dishfinder/ai/openai"
	"github.com/culinate/dishfinder/core"
	"github.com/culinate/dishfinder/ingest"
	"github.com/culinate/dishfinder/match"
	"github.com/culinate/dishfinder/menu"
	"github.com/culinate/dishfinder/storage"
	"github.com/culinate/dishfinder/storage/badger"
)

// Finder loads restaurant guides and answers dish queries over them.
// After LoadGuide returns, concurrent Search calls are safe.
type Finder struct {
	backend     *badger.Backend
	catalog     storage.CatalogRepository
	embedder    ai.Embedder
	matcher     *match.Matcher
	restaurants []*menu.Restaurant
	logger      *slog.Logger
	matchOpts   []match.Option
}

// FinderOption configures a Finder.
type FinderOption func(*finderOptions)

type finderOptions struct {
	aiConfig  *ai.Config
	embedder  ai.Embedder
	logger    *slog.Logger
	matchOpts []match.Option
}

// WithAIConfig enables semantic search via an OpenAI-compatible embedding
// endpoint.
func WithAIConfig(config *ai.Config) FinderOption {
	return func(o *finderOptions) {
		o.aiConfig = config
	}
}

// WithEmbedder enables semantic search with a caller-provided embedder.
// Takes precedence over WithAIConfig.
func WithEmbedder(embedder ai.Embedder) FinderOption {
	return func(o *finderOptions) {
		o.embedder = embedder
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) FinderOption {
	return func(o *finderOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMatchOptions forwards options to the matcher built on guide load,
// e.g. match.WithFuzzyThreshold.
func WithMatchOptions(opts ...match.Option) FinderOption {
	return func(o *finderOptions) {
		o.matchOpts = append(o.matchOpts, opts...)
	}
}

// NewFinder creates a Finder with an empty in-memory catalog.
func NewFinder(opts ...FinderOption) (*Finder, error) {
	options := &finderOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	embedder := options.embedder
	if embedder == nil && options.aiConfig != nil {
		e, err := openai.NewEmbedder(options.aiConfig)
		if err != nil {
			return nil, err
		}
		embedder = e
	}

	backend, err := badger.OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	catalog, err := badger.NewCatalogRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	f := &Finder{
		backend:   backend,
		catalog:   catalog,
		embedder:  embedder,
		logger:    options.logger,
		matchOpts: options.matchOpts,
	}

	// An empty matcher keeps Search usable before any guide is loaded.
	if err := f.rebuildMatcher(nil); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// LoadGuide parses a guide file and ingests its dishes into the catalog.
// Returns the number of dishes loaded.
func (f *Finder) LoadGuide(ctx context.Context, path string) (int, error) {
	guide, err := menu.LoadGuideFile(path)
	if err != nil {
		return 0, err
	}
	return f.ingestGuide(ctx, guide)
}

// LoadGuideReader is LoadGuide over an io.Reader.
func (f *Finder) LoadGuideReader(ctx context.Context, r io.Reader) (int, error) {
	guide, err := menu.ParseGuide(r)
	if err != nil {
		return 0, err
	}
	return f.ingestGuide(ctx, guide)
}

// LoadSampleGuide ingests the embedded sample guide.
func (f *Finder) LoadSampleGuide(ctx context.Context) (int, error) {
	return f.ingestGuide(ctx, menu.SampleGuide())
}

func (f *Finder) ingestGuide(ctx context.Context, guide *menu.Guide) (int, error) {
	pipeline, err := ingest.NewPipeline(f.catalog,
		ingest.WithEmbedder(f.embedder),
		ingest.WithLogger(f.logger),
	)
	if err != nil {
		return 0, err
	}
	defer pipeline.Release()

	stored, err := pipeline.Run(ctx, guide.Records())
	if err != nil {
		return 0, err
	}

	records, err := f.catalog.ListDishRecords(ctx)
	if err != nil {
		return 0, err
	}
	if err := f.rebuildMatcher(records); err != nil {
		return 0, err
	}

	f.restaurants = append(f.restaurants, guide.Restaurants...)
	f.logger.Info("guide loaded", "restaurants", len(guide.Restaurants), "dishes", stored)
	return stored, nil
}

func (f *Finder) rebuildMatcher(records []*core.DishRecord) error {
	opts := append([]match.Option{match.WithLogger(f.logger)}, f.matchOpts...)
	if f.embedder != nil {
		opts = append(opts, match.WithEmbedder(f.embedder))
	}
	matcher, err := match.New(records, opts...)
	if err != nil {
		return err
	}
	f.matcher = matcher
	return nil
}

// Search finds dishes matching the query.
func (f *Finder) Search(ctx context.Context, query string, opts ...match.SearchOption) ([]core.MatchResult, error) {
	return f.matcher.Search(ctx, query, opts...)
}

// Restaurants returns the restaurants of all loaded guides, in load order.
func (f *Finder) Restaurants() []*menu.Restaurant {
	return f.restaurants
}

// Records returns the catalog in ordinal order.
func (f *Finder) Records() []*core.DishRecord {
	return f.matcher.Records()
}

// SemanticEnabled reports whether semantic search is configured.
func (f *Finder) SemanticEnabled() bool {
	return f.embedder != nil
}

// Close releases the catalog and its backing store.
func (f *Finder) Close() error {
	if err := f.catalog.Close(); err != nil {
		f.logger.Error("error closing catalog", "err", err)
		return err
	}
	if err := f.backend.Close(); err != nil {
		f.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
