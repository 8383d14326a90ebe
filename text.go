package rink

import (
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/text/unicode/norm"
)

// Font sizes in points.
const (
	titlePoints    = 20
	teamNamePoints = 16
	labelPoints    = 7
	creditPoints   = 8
)

var (
	textColor   color.Color = colornames.Black
	creditColor color.Color = colornames.Gray
)

// drawText draws s with its anchor at (x, y) in rink feet. ax and ay follow
// gg.Context.DrawStringAnchored: (0, 0) puts the start of the baseline at
// the point, ax = 1 puts the end of the text there.
func (f *Figure) drawText(s string, x, y, ax, ay, points float64, col color.Color) {
	if s == "" {
		return
	}
	px, py := f.ToPixel(x, y)
	f.dc.SetFont(f.font.Face(f.pointsToPixels(points)))
	f.dc.SetColor(col)
	// Composed form so accented names hit precomposed glyphs.
	f.dc.DrawStringAnchored(norm.NFC.String(s), px, py, ax, ay)
}

// pointsToPixels converts a font size in points to pixels at the figure DPI.
func (f *Figure) pointsToPixels(points float64) float64 {
	return points * f.dpi / 72
}
