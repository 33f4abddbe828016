package config

import (
	"fmt"
	"os"

	"newsfeed/models"

	"github.com/BurntSushi/toml"
)

// TomlSource represents a single news source entry from TOML
type TomlSource struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// Config represents the top-level configuration
type Config struct {
	Sources []TomlSource `toml:"sources"`
}

// ToSources converts the configured entries to models, keeping file order
func (c *Config) ToSources() []models.Source {
	sources := make([]models.Source, len(c.Sources))
	for i, s := range c.Sources {
		sources[i] = models.Source{
			Name: s.Name,
			URL:  s.URL,
		}
	}
	return sources
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes TOML source definitions, e.g.:
//
//	[[sources]]
//	name = "TVR"
//	url = "http://stiri.tvr.ro/rss/stiri.xml"
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &config, nil
}
