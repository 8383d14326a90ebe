package rink

import "fmt"

// Rink dimensions in feet. Offsets are measured from the center line.
const (
	RinkLength   = 200.0
	RinkWidth    = 85.0
	BlueLineDX   = 25.0
	FaceOffDotDX = 69.0
	GoalLineDX   = 89.0

	// BufferX and BufferY are the margins around the rink.
	BufferX = 5.0
	BufferY = 5.0

	// HeaderY is the headroom above the rink reserved for the title and
	// team names.
	HeaderY = 15.0
)

// Text placement in feet.
const (
	titleDY     = 10.0 // title baseline above the top boards
	teamNameDY  = 3.0  // team name baseline above the top boards
	teamNameDX  = 2.0  // gap between center ice and a team name
	creditInset = 1.0
)

// AspectRatio is the figure height divided by its width.
const AspectRatio = (RinkWidth + 2*BufferY + HeaderY) / (RinkLength + 2*BufferX)

// Extent is an axis-aligned box in rink feet.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns the horizontal size of the extent.
func (e Extent) Width() float64 { return e.XMax - e.XMin }

// Height returns the vertical size of the extent.
func (e Extent) Height() float64 { return e.YMax - e.YMin }

// Center returns the midpoint of the extent.
func (e Extent) Center() (x, y float64) {
	return (e.XMin + e.XMax) / 2, (e.YMin + e.YMax) / 2
}

// Contains reports whether (x, y) lies inside the extent, edges included.
func (e Extent) Contains(x, y float64) bool {
	return x >= e.XMin && x <= e.XMax && y >= e.YMin && y <= e.YMax
}

// centered returns an extent of size w×h centered at (cx, cy).
func centered(cx, cy, w, h float64) Extent {
	return Extent{
		XMin: cx - w/2,
		XMax: cx + w/2,
		YMin: cy - h/2,
		YMax: cy + h/2,
	}
}

// RinkExtent is the area covered by the rink background image.
var RinkExtent = Extent{
	XMin: -RinkLength / 2,
	XMax: RinkLength / 2,
	YMin: -RinkWidth / 2,
	YMax: RinkWidth / 2,
}

// FigureExtent is the visible area of a figure: the rink plus margins.
var FigureExtent = Extent{
	XMin: RinkExtent.XMin - BufferX,
	XMax: RinkExtent.XMax + BufferX,
	YMin: RinkExtent.YMin - BufferY,
	YMax: RinkExtent.YMax + BufferY + HeaderY,
}

// logoWidth is the display width of every team logo.
const logoWidth = (BlueLineDX + FaceOffDotDX) / 3

// LogoExtent returns where a logo of srcWidth×srcHeight pixels is drawn for
// side. The logo is centered between the blue line and the offensive zone
// face-off dot, keeps its aspect ratio and has a fixed width.
func LogoExtent(side Side, srcWidth, srcHeight int) (Extent, error) {
	if err := side.validate(); err != nil {
		return Extent{}, err
	}
	if srcWidth <= 0 || srcHeight <= 0 {
		return Extent{}, fmt.Errorf("%w: logo size %dx%d", ErrInvalidInput, srcWidth, srcHeight)
	}
	cx := side.mirror() * (BlueLineDX + FaceOffDotDX) / 2
	h := logoWidth * float64(srcHeight) / float64(srcWidth)
	return centered(cx, 0, logoWidth, h), nil
}

// TeamNameAnchor returns the baseline point of a team name and its
// horizontal text anchor: 1 for right-aligned (home), 0 for left-aligned
// (away).
func TeamNameAnchor(side Side) (x, y, ax float64, err error) {
	if err := side.validate(); err != nil {
		return 0, 0, 0, err
	}
	x = side.mirror() * teamNameDX
	y = RinkExtent.YMax + teamNameDY
	if side == Home {
		ax = 1
	}
	return x, y, ax, nil
}

// titleAnchor returns the baseline center of the figure title.
func titleAnchor() (x, y float64) {
	return 0, RinkExtent.YMax + titleDY
}

// creditAnchor returns the bottom-right point of the credit label.
func creditAnchor() (x, y float64) {
	return FigureExtent.XMax - creditInset, FigureExtent.YMin + creditInset
}
