/*
Package theme holds named style aliases for markup.

A theme maps alias names to lists of attribute names. Inside markup an alias
may be used wherever an attribute name is allowed:

	@|warning;careful now|@

Themes are defined in YAML:

	name: mine
	styles:
	  warning: [bold, yellow]
	  code: [fg(#F4)]

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'termtext'
func tracer() tracing.Trace {
	return tracing.Select("termtext")
}

//go:embed default.yaml
var defaultTheme []byte

// config is the YAML representation of a theme.
type config struct {
	Name   string              `yaml:"name"`
	Styles map[string][]string `yaml:"styles"`
}

// Theme is an immutable set of named styles.
type Theme struct {
	name   string
	styles map[string]style.Style
}

// Default returns the built-in theme.
func Default() *Theme {
	t, err := FromYAML(defaultTheme)
	if err != nil {
		panic(err) // embedded theme is malformed
	}
	return t
}

// Load reads a theme from a YAML file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	t, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	return t, nil
}

// FromYAML creates a theme from its YAML definition. Every attribute name
// of every style must be known to style.LookupByName; otherwise
// termtext.ErrIllegalArguments is returned.
func FromYAML(data []byte) (*Theme, error) {
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	t := &Theme{name: cfg.Name, styles: make(map[string]style.Style, len(cfg.Styles))}
	for alias, names := range cfg.Styles {
		st, unknown := style.Empty().AcceptByName(names...)
		if len(unknown) > 0 {
			return nil, fmt.Errorf("%w: style %q has unknown attributes %v",
				termtext.ErrIllegalArguments, alias, unknown)
		}
		t.styles[strings.ToLower(alias)] = st
	}
	tracer().Debugf("theme %q with %d styles", t.name, len(t.styles))
	return t, nil
}

// Name returns the name of the theme.
func (t *Theme) Name() string {
	return t.name
}

// Lookup returns the style for an alias name. Names are case-insensitive.
func (t *Theme) Lookup(alias string) (style.Style, bool) {
	if t == nil {
		return style.Empty(), false
	}
	st, ok := t.styles[strings.ToLower(strings.TrimSpace(alias))]
	return st, ok
}

// Names returns the alias names of t in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
