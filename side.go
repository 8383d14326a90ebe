package rink

import (
	"fmt"
	"strings"
)

// Side selects which half of the rink an element belongs to.
type Side string

// Recognized sides.
const (
	// Home elements are placed on the left half of the rink.
	Home Side = "home"

	// Away elements are placed on the right half of the rink.
	Away Side = "away"
)

// ParseSide converts a case-insensitive side name to a Side.
func ParseSide(s string) (Side, error) {
	side := Side(strings.ToLower(strings.TrimSpace(s)))
	if err := side.validate(); err != nil {
		return "", err
	}
	return side, nil
}

// String implements fmt.Stringer.
func (s Side) String() string {
	return string(s)
}

// Valid reports whether s is Home or Away.
func (s Side) Valid() bool {
	return s == Home || s == Away
}

// mirror returns -1 for the home side and 1 for the away side.
func (s Side) mirror() float64 {
	if s == Home {
		return -1
	}
	return 1
}

func (s Side) validate() error {
	if !s.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidSide, string(s))
	}
	return nil
}
