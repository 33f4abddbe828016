/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"newsfeed/config"
	"newsfeed/feed"
	"newsfeed/fetcher"
	"newsfeed/menu"
	"newsfeed/news"
	"newsfeed/reader"
	"newsfeed/render"
	"newsfeed/sources"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// chooser drives the interactive menu
var chooser menu.Chooser = menu.PromptChooser{}

func readAction(ctx *cli.Context) error {
	registry, err := loadRegistry(ctx)
	if err != nil {
		return err
	}

	policy := news.Skip
	if ctx.Bool("strict-titles") {
		policy = news.Strict
	}

	log.WithFields(log.Fields{
		"sources":      registry.Names(),
		"timeout":      ctx.Duration("timeout").String(),
		"title_policy": policy.String(),
	}).Debug("Starting reader")

	r := &reader.Reader{
		Registry:    registry,
		Menu:        menu.New(ctx.App.Writer, chooser),
		Fetcher:     fetcher.WithTimeout(ctx.Duration("timeout")),
		Parser:      feed.NewParser(),
		Printer:     render.New(ctx.App.Writer),
		TitlePolicy: policy,
	}

	if name := ctx.String("source"); name != "" {
		return r.RunSource(ctx.Context, name)
	}
	return r.Run(ctx.Context)
}

// loadRegistry returns the built in sources unless a sources file is configured
func loadRegistry(ctx *cli.Context) (*sources.Registry, error) {
	path := ctx.String("sources")
	if path == "" {
		return sources.Default(), nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sources: %w", err)
	}
	return sources.FromConfig(cfg)
}
