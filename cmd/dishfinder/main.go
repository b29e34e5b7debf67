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

package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/culinate/dishfinder"
	"github.com/culinate/dishfinder/ai"
	"github.com/culinate/dishfinder/match"
)

func main() {
	app := &cli.App{
		Name:  "dishfinder",
		Usage: "Search dishes across a local restaurant guide",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "guide",
				Aliases: []string{"g"},
				Usage:   "Path to the markdown restaurant guide (embedded sample when omitted)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.BoolFlag{
				Name:  "semantic",
				Usage: "Enable semantic search via a local embedding service",
			},
			&cli.StringFlag{
				Name:  "embedding-host",
				Usage: "Embedding service host URL",
				Value: "http://localhost:11434/v1",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
				Value: "embeddinggemma",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Find dishes matching a query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Maximum number of results",
						Value:   match.DefaultTopK,
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Drop results scoring below this value",
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List all dishes grouped by restaurant",
				Action: listCommand,
			},
			{
				Name:   "repl",
				Usage:  "Interactive search loop",
				Action: replCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openFinder builds a Finder from the global flags and loads the guide,
// falling back to the embedded sample when none is given.
func openFinder(ctx context.Context, c *cli.Context) (*dishfinder.Finder, error) {
	var opts []dishfinder.FinderOption
	if c.Bool("semantic") {
		config := ai.NewConfig(
			ai.WithHost(c.String("embedding-host")),
			ai.WithModel(c.String("embedding-model")),
		)
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid embedding configuration: %w", err)
		}
		opts = append(opts, dishfinder.WithAIConfig(config))
	}

	finder, err := dishfinder.NewFinder(opts...)
	if err != nil {
		return nil, err
	}

	if guidePath := c.String("guide"); guidePath != "" {
		if _, err := finder.LoadGuide(ctx, guidePath); err != nil {
			finder.Close()
			return nil, fmt.Errorf("loading guide %s: %w", guidePath, err)
		}
	} else {
		slog.Info("no guide given, using embedded sample data")
		if _, err := finder.LoadSampleGuide(ctx); err != nil {
			finder.Close()
			return nil, err
		}
	}

	return finder, nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search query is required")
	}

	ctx := context.Background()
	finder, err := openFinder(ctx, c)
	if err != nil {
		return err
	}
	defer finder.Close()

	results, err := finder.Search(ctx, query,
		match.WithTopK(c.Int("top-k")),
		match.WithMinScore(c.Float64("min-score")),
	)
	if err != nil {
		return err
	}

	fmt.Print(FormatResults(query, results))
	return nil
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()
	finder, err := openFinder(ctx, c)
	if err != nil {
		return err
	}
	defer finder.Close()

	fmt.Print(FormatCatalog(finder.Restaurants()))
	return nil
}

func replCommand(c *cli.Context) error {
	ctx := context.Background()
	finder, err := openFinder(ctx, c)
	if err != nil {
		return err
	}
	defer finder.Close()

	fmt.Printf("Loaded %d dishes from %d restaurants.\n",
		len(finder.Records()), len(finder.Restaurants()))
	fmt.Println("Type a dish to search, 'list' for the full catalog, 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			// EOF exits cleanly
			fmt.Println()
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "list":
			fmt.Print(FormatCatalog(finder.Restaurants()))
			continue
		}

		results, err := finder.Search(ctx, input)
		if err != nil {
			fmt.Printf("search failed: %v\n", err)
			continue
		}
		fmt.Print(FormatResults(input, results))
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
