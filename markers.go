package rink

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// Marker sizes in points.
const (
	DefaultMarkerSize = 8.0
	DefaultEdgeWidth  = 1.0
)

// MarkerStyle describes how a scatter layer is drawn.
type MarkerStyle struct {
	// Fill is the marker interior color. Unfilled shapes (Plus, Cross) are
	// stroked with it. Defaults to steel blue.
	Fill color.Color

	// Edge is the outline color. Defaults to black.
	Edge color.Color

	Shape Marker

	// Size is the marker diameter in points. Defaults to DefaultMarkerSize.
	Size float64

	// EdgeWidth is the outline width in points. Defaults to DefaultEdgeWidth.
	EdgeWidth float64

	// ShowLabels draws each label to the right of its marker.
	ShowLabels bool
}

// withDefaults fills zero fields of s.
func (s MarkerStyle) withDefaults() MarkerStyle {
	if s.Fill == nil {
		s.Fill = colornames.Steelblue
	}
	if s.Edge == nil {
		s.Edge = colornames.Black
	}
	if s.Size <= 0 {
		s.Size = DefaultMarkerSize
	}
	if s.EdgeWidth <= 0 {
		s.EdgeWidth = DefaultEdgeWidth
	}
	return s
}

// Point is a location in rink feet.
type Point struct {
	X, Y float64
}

// MarkerLayer is one scatter layer drawn on a figure.
type MarkerLayer struct {
	Side  Side
	Style MarkerStyle

	// Points are the drawn positions, after home-side mirroring.
	Points []Point

	// Labels are parallel to Points, or nil.
	Labels []string
}

// Len returns the number of markers in the layer.
func (l *MarkerLayer) Len() int { return len(l.Points) }

// truncate keeps the first n markers.
func (l *MarkerLayer) truncate(n int) {
	l.Points = l.Points[:n]
	if l.Labels != nil {
		l.Labels = l.Labels[:n]
	}
}

// Label returns the label of marker i, or "" when the layer has no labels.
func (l *MarkerLayer) Label(i int) string {
	if l.Labels == nil {
		return ""
	}
	return l.Labels[i]
}

// AddMarkers draws a scatter layer of markers at the points (x[i], y[i]) in
// rink feet. Points for the home side are mirrored across the center line so
// both teams can be given in the same attacking direction.
//
// x and y must have equal lengths. labels may be nil; otherwise it must have
// one entry per point. Mismatched lengths return an error wrapping
// ErrLengthMismatch. If drawing fails partway, the markers already on the
// canvas stay recorded in Layers.
func (f *Figure) AddMarkers(side Side, x, y []float64, style MarkerStyle, labels []string) (*MarkerLayer, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if err := side.validate(); err != nil {
		return nil, err
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(x), len(y))
	}
	if labels != nil && len(labels) != len(x) {
		return nil, fmt.Errorf("%w: %d points, %d labels", ErrLengthMismatch, len(x), len(labels))
	}
	if style.Shape.Symbol() == "" {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMarker, style.Shape)
	}

	layer := &MarkerLayer{
		Side:   side,
		Style:  style.withDefaults(),
		Points: make([]Point, len(x)),
	}
	if labels != nil {
		layer.Labels = append([]string(nil), labels...)
	}
	for i := range x {
		layer.Points[i] = Point{X: side.mirror() * x[i], Y: y[i]}
	}

	for i, p := range layer.Points {
		if err := f.drawMarker(p, layer.Style); err != nil {
			layer.truncate(i)
			f.layers = append(f.layers, layer)
			return nil, fmt.Errorf("rink: draw marker %d: %w", i, err)
		}
	}
	if layer.Style.ShowLabels {
		// marker radius plus 2 points, in feet
		dx := f.pixelsToFeet(f.pointsToPixels(layer.Style.Size/2 + 2))
		for i, p := range layer.Points {
			f.drawText(layer.Label(i), p.X+dx, p.Y, 0, 0.5, labelPoints, textColor)
		}
	}

	f.layers = append(f.layers, layer)
	Logger().Debug("rink: markers added", "side", side, "count", layer.Len(), "shape", layer.Style.Shape)
	return layer, nil
}

// drawMarker draws a single marker centered at p.
func (f *Figure) drawMarker(p Point, style MarkerStyle) error {
	dc := f.dc
	cx, cy := f.ToPixel(p.X, p.Y)
	r := f.pointsToPixels(style.Size) / 2
	dc.SetLineWidth(f.pointsToPixels(style.EdgeWidth))

	if !style.Shape.filled() {
		switch style.Shape {
		case Plus:
			dc.DrawLine(cx-r, cy, cx+r, cy)
			dc.DrawLine(cx, cy-r, cx, cy+r)
		case Cross:
			d := r / math.Sqrt2
			dc.DrawLine(cx-d, cy-d, cx+d, cy+d)
			dc.DrawLine(cx-d, cy+d, cx+d, cy-d)
		}
		dc.SetColor(style.Fill)
		return dc.Stroke()
	}

	switch {
	case style.Shape == ThinDiamond:
		dc.MoveTo(cx, cy-r)
		dc.LineTo(cx+r*0.6, cy)
		dc.LineTo(cx, cy+r)
		dc.LineTo(cx-r*0.6, cy)
		dc.ClosePath()
	case style.Shape == Circle:
		dc.DrawCircle(cx, cy, r)
	default:
		n, rot, ok := style.Shape.polygon()
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownMarker, style.Shape)
		}
		dc.DrawRegularPolygon(n, cx, cy, r, rot)
	}

	dc.SetColor(style.Fill)
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetColor(style.Edge)
	return dc.Stroke()
}

// pixelsToFeet converts a horizontal pixel distance to rink feet.
func (f *Figure) pixelsToFeet(px float64) float64 {
	return px * FigureExtent.Width() / float64(f.dc.Width())
}
