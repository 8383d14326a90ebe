// Package config loads rinkplot plot descriptions.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override scalar settings,
// e.g. RINKPLOT_OUTPUT.
const EnvPrefix = "RINKPLOT"

// TeamConfig describes one side of the rink.
type TeamConfig struct {
	// Team is the tricode used to find the logo. Empty skips the logo.
	Team string `mapstructure:"team"`
	// Name is the label drawn above the rink. Defaults to the team's
	// registered name when Team is known.
	Name string `mapstructure:"name"`
	Stat string `mapstructure:"stat"`
}

// MarkerSet is one scatter layer.
type MarkerSet struct {
	Side       string    `mapstructure:"side"`
	X          []float64 `mapstructure:"x"`
	Y          []float64 `mapstructure:"y"`
	Fill       string    `mapstructure:"fill"`
	Edge       string    `mapstructure:"edge"`
	Shape      string    `mapstructure:"shape"`
	Size       float64   `mapstructure:"size"`
	Labels     []string  `mapstructure:"labels"`
	ShowLabels bool      `mapstructure:"showLabels"`
}

// Plot is a complete figure description.
type Plot struct {
	Width    float64     `mapstructure:"width"`
	DPI      float64     `mapstructure:"dpi"`
	Assets   string      `mapstructure:"assets"`
	Output   string      `mapstructure:"output"`
	Credit   string      `mapstructure:"credit"`
	LogLevel string      `mapstructure:"logLevel"`
	Title    string      `mapstructure:"title"`
	Home     TeamConfig  `mapstructure:"home"`
	Away     TeamConfig  `mapstructure:"away"`
	Markers  []MarkerSet `mapstructure:"markers"`
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"output":    "output",
	"dpi":       "dpi",
	"width":     "width",
	"assets":    "assets",
	"log-level": "logLevel",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", 20.0)
	v.SetDefault("dpi", 100.0)
	v.SetDefault("assets", "")
	v.SetDefault("output", "rink.png")
	v.SetDefault("credit", "rinkplot")
	v.SetDefault("logLevel", "info")
}

// Load reads the plot description at path. The format follows the file
// extension (json, yaml, toml). Flags in fs that were set on the command
// line override file values; fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Plot, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var p Plot
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Normalize fills per-marker defaults, which viper cannot express for
// list items.
func (p *Plot) Normalize() {
	for i := range p.Markers {
		m := &p.Markers[i]
		if m.Shape == "" {
			m.Shape = "o"
		}
		if m.Edge == "" {
			m.Edge = "black"
		}
	}
}

// Validate reports settings that cannot produce a figure. Per-element
// checks are left to the rink package.
func (p *Plot) Validate() error {
	var errs []error
	if p.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %v", p.Width))
	}
	if p.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi must be positive, got %v", p.DPI))
	}
	if p.Output == "" {
		errs = append(errs, errors.New("output must not be empty"))
	}
	return errors.Join(errs...)
}
