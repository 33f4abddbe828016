// Package sources holds the fixed set of news feeds a user can pick from
package sources

import (
	"errors"
	"fmt"

	"newsfeed/config"
	"newsfeed/models"

	"github.com/samber/lo"
)

// DefaultSources are the feeds shipped with the binary
var DefaultSources = []models.Source{
	{Name: "TVR", URL: "http://stiri.tvr.ro/rss/stiri.xml"},
	{Name: "MediaFax", URL: "https://www.mediafax.ro/rss"},
}

// LookupError is returned when a name is not part of the registry
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no news source named %q", e.Name)
}

// Registry is an immutable, ordered mapping from source name to feed URL
type Registry struct {
	entries []models.Source
	urls    map[string]string
}

// New builds a registry from entries, keeping their order
func New(entries []models.Source) (*Registry, error) {
	if len(entries) == 0 {
		return nil, errors.New("at least one news source is required")
	}

	urls := make(map[string]string, len(entries))
	for i, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("source #%d has no name", i+1)
		}
		if entry.URL == "" {
			return nil, fmt.Errorf("source %q has no url", entry.Name)
		}
		if _, exists := urls[entry.Name]; exists {
			return nil, fmt.Errorf("source %q is defined more than once", entry.Name)
		}
		urls[entry.Name] = entry.URL
	}

	return &Registry{
		entries: append([]models.Source(nil), entries...),
		urls:    urls,
	}, nil
}

// Default returns the registry of shipped sources
func Default() *Registry {
	registry, err := New(DefaultSources)
	if err != nil {
		panic(fmt.Sprintf("invalid default sources: %v", err))
	}
	return registry
}

// FromConfig creates a registry from a TOML configuration
func FromConfig(cfg *config.Config) (*Registry, error) {
	registry, err := New(cfg.ToSources())
	if err != nil {
		return nil, fmt.Errorf("invalid sources config: %w", err)
	}
	return registry, nil
}

// Names returns the source names in registry order
func (r *Registry) Names() []string {
	return lo.Map(r.entries, func(s models.Source, _ int) string {
		return s.Name
	})
}

// Entries returns a copy of all sources in registry order
func (r *Registry) Entries() []models.Source {
	return append([]models.Source(nil), r.entries...)
}

func (r *Registry) Resolve(name string) (string, error) {
	url, ok := r.urls[name]
	if !ok {
		return "", &LookupError{Name: name}
	}
	return url, nil
}
