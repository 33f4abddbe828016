// Package reader drives a single run: pick a source, fetch, parse, print
package reader

import (
	"context"
	"fmt"

	"newsfeed/feed"
	"newsfeed/models"
	"newsfeed/news"

	log "github.com/sirupsen/logrus"
)

// Stage names the step of the pipeline that failed
type Stage string

const (
	StageMenu    Stage = "menu"
	StageResolve Stage = "resolve"
	StageFetch   Stage = "fetch"
	StageParse   Stage = "parse"
	StageProject Stage = "project"
	StageRender  Stage = "render"
)

// StageError wraps the error that ended a run
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type Registry interface {
	Names() []string
	Resolve(name string) (string, error)
}

type Menu interface {
	Present(options []string) (name string, ok bool, err error)
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Parser interface {
	Parse(ctx context.Context, doc []byte) (*feed.Channel, error)
}

type Printer interface {
	Render(record models.Record) error
}

// Reader wires the pipeline components together
type Reader struct {
	Registry    Registry
	Menu        Menu
	Fetcher     Fetcher
	Parser      Parser
	Printer     Printer
	TitlePolicy news.TitlePolicy
}

// Run shows the menu and prints the chosen feed.
// A cancelled selection ends the run without error and without fetching.
func (r *Reader) Run(ctx context.Context) error {
	name, ok, err := r.Menu.Present(r.Registry.Names())
	if err != nil {
		return &StageError{Stage: StageMenu, Err: err}
	}
	if !ok {
		log.Info("No news source selected")
		return nil
	}

	return r.RunSource(ctx, name)
}

// RunSource prints the feed of the named source without showing the menu.
// Records are printed only once the whole feed was projected.
func (r *Reader) RunSource(ctx context.Context, name string) error {
	url, err := r.Registry.Resolve(name)
	if err != nil {
		return &StageError{Stage: StageResolve, Err: err}
	}

	logger := log.WithFields(log.Fields{
		"source": name,
		"url":    url,
	})

	doc, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return &StageError{Stage: StageFetch, Err: err}
	}

	channel, err := r.Parser.Parse(ctx, doc)
	if err != nil {
		return &StageError{Stage: StageParse, Err: err}
	}

	records, err := news.Project(channel, r.TitlePolicy)
	if err != nil {
		return &StageError{Stage: StageProject, Err: err}
	}

	logger.WithField("records", len(records)).Info("Rendering news")

	for _, record := range records {
		if err := r.Printer.Render(record); err != nil {
			return &StageError{Stage: StageRender, Err: err}
		}
	}

	return nil
}
