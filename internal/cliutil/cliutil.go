// Package cliutil holds the helpers shared by the command line tools.
package cliutil

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/lestrrat-go/xni"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// IsTty reports whether fd is a terminal.
func IsTty(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Config is the content of a parser configuration file:
//
//	locale: de
//	features:
//	  http://xml.org/sax/features/namespace-prefixes: true
//	parameters:
//	  comments: false
//	  schema-location: "a.xsd b.xsd"
type Config struct {
	Locale     string          `yaml:"locale"`
	Features   map[string]bool `yaml:"features"`
	Parameters map[string]any  `yaml:"parameters"`
}

// LoadConfig reads a parser configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply configures p. Features and parameters are applied in name
// order, and the first failure stops.
func (c *Config) Apply(p *xni.Parser) error {
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
		}
		p.SetLocale(tag)
	}

	for _, id := range slices.Sorted(maps.Keys(c.Features)) {
		if err := p.SetFeature(id, c.Features[id]); err != nil {
			return fmt.Errorf("failed to set feature %s: %w", id, err)
		}
	}

	cfg := p.Configuration()
	for _, name := range slices.Sorted(maps.Keys(c.Parameters)) {
		if err := cfg.SetParameter(name, c.Parameters[name]); err != nil {
			return fmt.Errorf("failed to set parameter %s: %w", name, err)
		}
	}
	return nil
}
