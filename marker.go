package rink

import (
	"fmt"
	"math"
	"strings"
)

// Marker is the shape drawn for each point of a scatter layer.
type Marker int

// Marker shapes. The zero value is Circle.
const (
	Circle Marker = iota
	Square
	TriangleUp
	TriangleDown
	Diamond
	ThinDiamond
	Pentagon
	Hexagon
	Plus
	Cross
)

var markerSymbols = [...]string{
	Circle:       "o",
	Square:       "s",
	TriangleUp:   "^",
	TriangleDown: "v",
	Diamond:      "D",
	ThinDiamond:  "d",
	Pentagon:     "p",
	Hexagon:      "h",
	Plus:         "+",
	Cross:        "x",
}

var markerNames = [...]string{
	Circle:       "circle",
	Square:       "square",
	TriangleUp:   "triangle-up",
	TriangleDown: "triangle-down",
	Diamond:      "diamond",
	ThinDiamond:  "thin-diamond",
	Pentagon:     "pentagon",
	Hexagon:      "hexagon",
	Plus:         "plus",
	Cross:        "cross",
}

// ParseMarker converts a marker symbol ("o", "s", "^", "v", "D", "d", "p",
// "h", "+", "x") or name ("circle", "square", ...) to a Marker.
// Symbols are case-sensitive, names are not.
func ParseMarker(s string) (Marker, error) {
	s = strings.TrimSpace(s)
	for m, sym := range markerSymbols {
		if s == sym {
			return Marker(m), nil
		}
	}
	lower := strings.ToLower(s)
	for m, name := range markerNames {
		if lower == name {
			return Marker(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMarker, s)
}

// String returns the marker name.
func (m Marker) String() string {
	if m < 0 || int(m) >= len(markerNames) {
		return fmt.Sprintf("Marker(%d)", int(m))
	}
	return markerNames[m]
}

// Symbol returns the one-character marker code.
func (m Marker) Symbol() string {
	if m < 0 || int(m) >= len(markerSymbols) {
		return ""
	}
	return markerSymbols[m]
}

// filled reports whether the marker has an interior. Unfilled markers are
// stroked with the fill color.
func (m Marker) filled() bool {
	return m != Plus && m != Cross
}

// polygon returns the side count and rotation of markers drawn as regular
// polygons. Angles are in canvas space, where y grows downwards.
func (m Marker) polygon() (sides int, rotation float64, ok bool) {
	switch m {
	case Square:
		return 4, math.Pi / 4, true
	case TriangleUp:
		return 3, -math.Pi / 2, true
	case TriangleDown:
		return 3, math.Pi / 2, true
	case Diamond:
		return 4, 0, true
	case Pentagon:
		return 5, -math.Pi / 2, true
	case Hexagon:
		return 6, -math.Pi / 2, true
	}
	return 0, 0, false
}
