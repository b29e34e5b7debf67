package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	runWithLevel := func(level string) error {
		set := flag.NewFlagSet("test", flag.ContinueOnError)
		set.String("log-level", level, "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		return setupLogger(ctx)
	}

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "WARN", "Info"} {
			assert.NoError(t, runWithLevel(level), "level %q", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		err := runWithLevel("verbose")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestSearchCommand_RequiresQuery(t *testing.T) {
	app := &cli.App{
		Name: "dishfinder",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
			},
		},
	}

	err := app.Run([]string{"dishfinder", "search"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query is required")
}
