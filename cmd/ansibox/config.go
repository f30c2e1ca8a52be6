package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/layout"
	"github.com/npillmayer/termtext/markup"
	"github.com/npillmayer/termtext/theme"
	"github.com/pelletier/go-toml/v2"
)

const configFile = "ansibox/config.toml"

// Config is the configuration of ansibox, read from TOML.
type Config struct {
	Theme  string       `toml:"theme"`
	Render RenderConfig `toml:"render"`
	Box    BoxConfig    `toml:"box"`
}

// RenderConfig selects the flavour of output.
type RenderConfig struct {
	Mode        string `toml:"mode"` // "auto", "content", "ansi", "debug" or "html"
	Squash      bool   `toml:"squash"`
	PrefixReset bool   `toml:"prefix_reset"`
	SuffixReset bool   `toml:"suffix_reset"`
}

// BoxConfig describes how texts are arranged.
type BoxConfig struct {
	Border     string `toml:"border"`
	Align      string `toml:"align"`
	Valign     string `toml:"valign"`
	Horizontal bool   `toml:"horizontal"`
	Padding    int    `toml:"padding"`
	Width      int    `toml:"width"`
	Style      string `toml:"style"` // markup attribute list, e.g. "bg(#EEEEEE)"
}

func defaultConfig() Config {
	return Config{
		Render: RenderConfig{Mode: "auto", Squash: true},
		Box:    BoxConfig{Border: "rounded", Align: "left", Valign: "top", Padding: 1},
	}
}

// loadConfig reads the configuration from path. With an empty path, the XDG
// config directories are searched; a missing file there is not an error.
func loadConfig(path string) (Config, error) {
	conf := defaultConfig()
	if path == "" {
		found, err := xdg.SearchConfigFile(configFile)
		if err != nil {
			tracer().Debugf("ansibox: no configuration file found")
			return conf, nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	if err := decodeConfig(data, &conf); err != nil {
		return conf, fmt.Errorf("configuration %s: %w", path, err)
	}
	tracer().Infof("ansibox: configuration loaded from %s", path)
	return conf, nil
}

func decodeConfig(data []byte, conf *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(conf)
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		return fmt.Errorf("%w: %s", termtext.ErrIllegalArguments, strict.String())
	}
	return err
}

// --- Resolving options -----------------------------------------------------

// boxOptions are the resolved layout settings.
type boxOptions struct {
	border     layout.Border
	alignH     layout.AlignH
	alignV     layout.AlignV
	horizontal bool
	padding    int
	width      int
	markup     []markup.Option
}

func (conf Config) boxOptions() (boxOptions, error) {
	opts := boxOptions{horizontal: conf.Box.Horizontal, padding: max(0, conf.Box.Padding), width: conf.Box.Width}
	var ok bool
	if opts.border, ok = layout.BorderByName(conf.Box.Border); !ok {
		return opts, fmt.Errorf("%w: unknown border %q", termtext.ErrIllegalArguments, conf.Box.Border)
	}
	var err error
	if opts.alignH, err = layout.ParseAlignH(conf.Box.Align); err != nil {
		return opts, err
	}
	if opts.alignV, err = layout.ParseAlignV(conf.Box.Valign); err != nil {
		return opts, err
	}
	if conf.Theme != "" {
		th, err := theme.Load(conf.Theme)
		if err != nil {
			return opts, err
		}
		opts.markup = append(opts.markup, markup.WithTheme(th))
	} else {
		opts.markup = append(opts.markup, markup.WithTheme(theme.Default()))
	}
	return opts, nil
}

func (conf Config) renderContext() termtext.RenderContext {
	return termtext.RenderContext{
		SiblingStylesSquash: conf.Render.Squash,
		LinePrefixResetAll:  conf.Render.PrefixReset,
		LineSuffixResetAll:  conf.Render.SuffixReset,
	}
}
