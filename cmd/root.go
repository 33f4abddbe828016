/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "newsfeed",
		Usage: "Read the latest news from a syndication feed in your terminal",
		Description: `Shows a menu of news sources, fetches the feed of the chosen
		source and prints the title, description and link of every entry.

		The built in sources can be replaced with a TOML file:

		[[sources]]
		name = "TVR"
		url = "http://stiri.tvr.ro/rss/stiri.xml"

		Flags can generally be set via environment variables or a .env file, e.g.:

		--sources => NEWSFEED_SOURCES=sources.toml
		--timeout => NEWSFEED_TIMEOUT=10s
		`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "sources",
				Aliases: []string{"f"},
				Usage:   "Path to a TOML file with news sources, overrides the built in list",
				EnvVars: []string{"NEWSFEED_SOURCES"},
			},
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "Name of the source to read, skips the menu",
				EnvVars: []string{"NEWSFEED_SOURCE"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   30 * time.Second,
				Usage:   "Timeout for fetching a feed, 0 disables it",
				EnvVars: []string{"NEWSFEED_TIMEOUT"},
			},
			&cli.BoolFlag{
				Name:    "strict-titles",
				Usage:   "Fail instead of skipping entries that have no title",
				EnvVars: []string{"NEWSFEED_STRICT_TITLES"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level written to stderr (debug, info, warn, error)",
				EnvVars: []string{"NEWSFEED_LOG_LEVEL"},
			},
		},
		Before: func(ctx *cli.Context) error {
			level, err := log.ParseLevel(ctx.String("log-level"))
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			sourcesCmd(),
		},
		Action: readAction,
	}
}

// Execute runs the app and exits with the resulting code
func Execute() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	// Keep stdout for news only
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is the only place that turns errors into an exit code: 0 on success
// and on a cancelled menu, 1 with a single line on stderr otherwise.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := RootApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.RunContext(ctx, args); err != nil {
		fmt.Fprintf(stderr, "newsfeed: %v\n", err)
		return 1
	}
	return 0
}
