package rink

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Opacity of the pre-rendered raster layers.
const (
	rinkOpacity = 0.9
	logoOpacity = 0.5
)

// Figure is a canvas sized to rink proportions with the rink background
// drawn. Elements are added on top of it in call order.
//
// A Figure is not safe for concurrent use. Figure implements io.Closer.
type Figure struct {
	dc     *gg.Context
	width  float64 // inches
	height float64 // inches
	dpi    float64

	assets fs.FS
	font   *text.FontSource
	layers []*MarkerLayer

	closed bool
}

var _ io.Closer = (*Figure)(nil)

// NewFigure creates a figure width inches wide. The height is always
// AspectRatio times the width. The rink background is loaded from the
// asset filesystem and drawn before NewFigure returns.
//
// Example:
//
//	fig, err := rink.NewFigure(20, rink.WithDPI(150))
//	if err != nil {
//	    return err
//	}
//	defer fig.Close()
func NewFigure(width float64, opts ...Option) (*Figure, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidWidth, width)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.assets == nil {
		o.assets = DefaultAssets()
	}

	height := AspectRatio * width
	pw := int(math.Round(width * o.dpi))
	ph := int(math.Round(height * o.dpi))
	if pw < 1 || ph < 1 {
		return nil, fmt.Errorf("%w: %vin at %v dpi is smaller than a pixel", ErrInvalidWidth, width, o.dpi)
	}

	font, err := text.NewFontSource(o.font)
	if err != nil {
		return nil, fmt.Errorf("rink: load font: %w", err)
	}

	dc := gg.NewContext(pw, ph)
	dc.ClearWithColor(gg.FromColor(o.background))

	f := &Figure{
		dc:     dc,
		width:  width,
		height: height,
		dpi:    o.dpi,
		assets: o.assets,
		font:   font,
	}

	if err := f.drawRink(); err != nil {
		_ = f.Close()
		return nil, err
	}
	if o.credit != "" {
		x, y := creditAnchor()
		f.drawText(o.credit, x, y, 1, 0, creditPoints, creditColor)
	}

	Logger().Debug("rink: figure created",
		"width_in", width, "height_in", height, "width_px", pw, "height_px", ph)
	return f, nil
}

// drawRink draws the background rink image over RinkExtent.
func (f *Figure) drawRink() error {
	img, err := loadImage(f.assets, rinkAsset)
	if err != nil {
		return fmt.Errorf("rink: load background: %w", err)
	}
	f.drawImage(img, RinkExtent, rinkOpacity)
	return nil
}

// drawImage stretches img over the extent e given in rink feet.
func (f *Figure) drawImage(img *gg.ImageBuf, e Extent, opacity float64) {
	x0, y0 := f.ToPixel(e.XMin, e.YMax)
	x1, y1 := f.ToPixel(e.XMax, e.YMin)
	f.dc.DrawImageEx(img, gg.DrawImageOptions{
		X:             x0,
		Y:             y0,
		DstWidth:      x1 - x0,
		DstHeight:     y1 - y0,
		Interpolation: gg.InterpBilinear,
		Opacity:       opacity,
		BlendMode:     gg.BlendNormal,
	})
}

// AddTeamLogo draws the logo of team on the given side of the rink.
// team is a tricode such as "WSH"; the logo is read from
// "teams/<TRICODE>.png". An unknown tricode returns an error wrapping
// ErrUnknownTeam.
func (f *Figure) AddTeamLogo(side Side, team string) error {
	if f.closed {
		return ErrClosed
	}
	if err := side.validate(); err != nil {
		return err
	}
	if !isTricode(team) {
		return fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}

	img, err := loadImage(f.assets, teamAsset(team))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}
	if err != nil {
		return fmt.Errorf("rink: load logo: %w", err)
	}

	e, err := LogoExtent(side, img.Width(), img.Height())
	if err != nil {
		return err
	}
	Logger().Debug("rink: team logo", "side", side, "team", team,
		"x_min", e.XMin, "x_max", e.XMax, "y_min", e.YMin, "y_max", e.YMax)
	f.drawImage(img, e, logoOpacity)
	return nil
}

// AddTitle draws s centered above the rink. It does nothing once the
// figure is closed.
func (f *Figure) AddTitle(s string) {
	if f.closed {
		return
	}
	x, y := titleAnchor()
	f.drawText(s, x, y, 0.5, 0, titlePoints, textColor)
}

// AddTeamName draws a team name next to center ice above the rink. The
// home name ends just left of center and the away name starts just right of
// it. A non-empty statistic is appended in parentheses, e.g. "Capitals (3)".
func (f *Figure) AddTeamName(side Side, name, statistic string) error {
	if f.closed {
		return ErrClosed
	}
	x, y, ax, err := TeamNameAnchor(side)
	if err != nil {
		return err
	}
	f.drawText(teamLabel(name, statistic), x, y, ax, 0, teamNamePoints, textColor)
	return nil
}

// teamLabel formats a team name with its optional statistic.
func teamLabel(name, statistic string) string {
	if statistic == "" {
		return name
	}
	return name + " (" + statistic + ")"
}

// ToPixel converts a point in rink feet to canvas pixel coordinates. The
// corners of FigureExtent map to the corners of the canvas.
func (f *Figure) ToPixel(x, y float64) (px, py float64) {
	w := float64(f.dc.Width())
	h := float64(f.dc.Height())
	px = (x - FigureExtent.XMin) / FigureExtent.Width() * w
	py = (FigureExtent.YMax - y) / FigureExtent.Height() * h
	return px, py
}

// Width returns the figure width in inches.
func (f *Figure) Width() float64 { return f.width }

// Height returns the figure height in inches.
func (f *Figure) Height() float64 { return f.height }

// DPI returns the figure pixel density.
func (f *Figure) DPI() float64 { return f.dpi }

// PixelSize returns the canvas size in pixels.
func (f *Figure) PixelSize() (width, height int) {
	return f.dc.Width(), f.dc.Height()
}

// Extent returns the visible area of the figure in rink feet.
func (f *Figure) Extent() Extent { return FigureExtent }

// Layers returns the marker layers in the order they were drawn.
func (f *Figure) Layers() []*MarkerLayer {
	out := make([]*MarkerLayer, len(f.layers))
	copy(out, f.layers)
	return out
}

// Image returns the composed figure.
func (f *Figure) Image() image.Image {
	return f.dc.Image()
}

// Close releases the canvas and font. Close is idempotent. Drawing and
// encoding methods return ErrClosed afterwards.
func (f *Figure) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return errors.Join(f.dc.Close(), f.font.Close())
}

// isTricode reports whether team can name a logo asset.
func isTricode(team string) bool {
	if team == "" {
		return false
	}
	for _, r := range team {
		if !('A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' || '0' <= r && r <= '9') {
			return false
		}
	}
	return true
}
