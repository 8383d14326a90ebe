package rink

import (
	"image/color"
	"io/fs"
	"os"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultDPI is the pixel density used when no WithDPI option is given.
const DefaultDPI = 100.0

// DefaultCredit is the label stamped in the bottom-right corner of every figure.
const DefaultCredit = "rinkplot"

// Option configures a Figure during creation.
//
// Example:
//
//	// 20 inch figure at the default density with embedded assets
//	fig, err := rink.NewFigure(20)
//
//	// High density figure reading assets from disk
//	fig, err := rink.NewFigure(20, rink.WithDPI(300), rink.WithAssetDir("./images"))
type Option func(*options)

// options holds optional configuration for Figure creation.
type options struct {
	dpi        float64
	assets     fs.FS
	font       []byte
	credit     string
	background color.Color
}

// defaultOptions returns the default figure options.
func defaultOptions() options {
	return options{
		dpi:        DefaultDPI,
		assets:     nil, // DefaultAssets() if nil
		font:       goregular.TTF,
		credit:     DefaultCredit,
		background: colornames.White,
	}
}

// WithDPI sets the number of pixels per inch of figure width.
// Non-positive values are ignored.
func WithDPI(dpi float64) Option {
	return func(o *options) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// WithAssets reads the rink image and team logos from fsys.
// The filesystem must contain "rink.png" and "teams/<TRICODE>.png" files.
func WithAssets(fsys fs.FS) Option {
	return func(o *options) {
		o.assets = fsys
	}
}

// WithAssetDir reads the rink image and team logos from a directory on disk.
func WithAssetDir(dir string) Option {
	return WithAssets(os.DirFS(dir))
}

// WithFont sets the TrueType or OpenType font used for all text.
// The Go Regular font is used by default.
func WithFont(data []byte) Option {
	return func(o *options) {
		if len(data) > 0 {
			o.font = data
		}
	}
}

// WithCredit replaces the credit label. An empty string disables it.
func WithCredit(credit string) Option {
	return func(o *options) {
		o.credit = credit
	}
}

// WithBackground sets the color painted behind the rink.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}
