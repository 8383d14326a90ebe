package rink

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor converts a color specification to a color.Color.
//
// Accepted forms:
//   - "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - SVG 1.1 color names such as "red" or "steelblue", case-insensitive
//   - "none" for a fully transparent color
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "none" || name == "transparent" {
		return color.Transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(name, "#"); ok && isHexColor(hex) {
		return gg.Hex(hex).Color(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func isHexColor(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}
