// Package config layers pathseg settings from built-in defaults and
// PATHSEG_* environment variables. Command-line flags are applied on top by
// main, using the loaded values as flag defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"pathseg/internal/model"
	"pathseg/internal/render"
	"pathseg/internal/shell"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "PATHSEG_"

type Config struct {
	Separator  string `koanf:"separator"`
	MaxElems   int    `koanf:"max_elems"` // negative means no limit
	Ellipsis   string `koanf:"ellipsis"`
	ShowHome   bool   `koanf:"show_home"`
	Foreground string `koanf:"fg"`
	Background string `koanf:"bg"`
	Color      string `koanf:"color"` // "always", "auto" or "never"
	Shell      string `koanf:"shell"` // prompt dialect, "" for none
}

func defaults() map[string]interface{} {
	p := model.DefaultJoinPolicy()
	return map[string]interface{}{
		"separator": p.Separator,
		"max_elems": p.MaxElems,
		"ellipsis":  p.Ellipsis,
		"show_home": true,
		"fg":        "blue",
		"bg":        "19",
		"color":     render.ColorAlways.String(),
		"shell":     "",
	}
}

// Load returns the defaults overridden by the environment. The result is
// not validated; call Validate after applying flags.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings and normalizes color names in place.
func (c *Config) Validate() error {
	var errs []error

	fg, err := model.NormalizeColor(c.Foreground)
	if err != nil {
		errs = append(errs, fmt.Errorf("fg: %w", err))
	}
	bg, err := model.NormalizeColor(c.Background)
	if err != nil {
		errs = append(errs, fmt.Errorf("bg: %w", err))
	}
	if _, err := render.ParseColorMode(c.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err := shell.Lookup(c.Shell); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	c.Foreground, c.Background = fg, bg
	return nil
}

// JoinPolicy returns the join policy described by the settings.
func (c *Config) JoinPolicy() model.JoinPolicy {
	maxElems := c.MaxElems
	if maxElems < 0 {
		maxElems = model.Unbounded
	}
	return model.JoinPolicy{
		Separator: c.Separator,
		MaxElems:  maxElems,
		Ellipsis:  c.Ellipsis,
	}
}

// Style returns the configured color pair.
func (c *Config) Style() model.Style {
	return model.Style{Foreground: c.Foreground, Background: c.Background}
}

// ColorMode returns the parsed color mode. Invalid values were rejected by
// Validate and fall back to ColorAlways.
func (c *Config) ColorMode() render.ColorMode {
	mode, _ := render.ParseColorMode(c.Color)
	return mode
}

// Dialect returns the prompt dialect, PlainShell when unset or invalid.
func (c *Config) Dialect() shell.Shell {
	sh, err := shell.Lookup(c.Shell)
	if err != nil {
		return &shell.PlainShell{}
	}
	return sh
}
