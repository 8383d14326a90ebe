// Command rinkplot renders an ice-hockey rink figure described by a config file.
//
// Usage:
//
//	rinkplot --config plot.yaml [--output shots.png] [--log-level debug]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/hockeyviz/rink"
	"github.com/hockeyviz/rink/internal/config"
	"github.com/hockeyviz/rink/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "rinkplot: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := pflag.NewFlagSet("rinkplot", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.StringP("config", "c", "plot.yaml", "plot description (json, yaml or toml)")
	fs.StringP("output", "o", "", "output image, overrides the config file")
	fs.Float64("width", 0, "figure width in inches, overrides the config file")
	fs.Float64("dpi", 0, "pixels per inch, overrides the config file")
	fs.String("assets", "", "directory with rink.png and teams/, overrides the config file")
	fs.String("log-level", "", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	plot, err := config.Load(*configPath, fs)
	if err != nil {
		return err
	}

	logger := logging.New(stderr, plot.LogLevel)
	rink.SetLogger(logger)
	defer rink.SetLogger(nil)

	logger.Debug("rinkplot: config loaded", "path", *configPath, "markers", len(plot.Markers))
	if err := render(plot); err != nil {
		return err
	}
	logger.Info("rinkplot: done", "output", plot.Output)
	return nil
}
