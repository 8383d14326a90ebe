package rink

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every validation failure in this package.
var ErrInvalidInput = errors.New("rink: invalid input")

// ErrClosed is returned by Figure methods called after Close.
var ErrClosed = errors.New("rink: figure closed")

// Sentinel errors for rink figures. Each wraps [ErrInvalidInput].
var (
	// ErrUnknownTeam is returned when no logo asset exists for a tricode.
	ErrUnknownTeam = fmt.Errorf("%w: unknown team", ErrInvalidInput)

	// ErrInvalidSide is returned when a side is neither "home" nor "away".
	ErrInvalidSide = fmt.Errorf("%w: side must be home or away", ErrInvalidInput)

	// ErrLengthMismatch is returned when marker coordinates or labels differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrInvalidInput)

	// ErrInvalidWidth is returned for a non-positive or non-finite figure width.
	ErrInvalidWidth = fmt.Errorf("%w: figure width must be positive", ErrInvalidInput)

	// ErrUnknownMarker is returned by ParseMarker for unrecognized shapes.
	ErrUnknownMarker = fmt.Errorf("%w: unknown marker", ErrInvalidInput)

	// ErrUnknownColor is returned by ParseColor for unrecognized colors.
	ErrUnknownColor = fmt.Errorf("%w: unknown color", ErrInvalidInput)

	// ErrUnknownFormat is returned when an output file extension is not supported.
	ErrUnknownFormat = fmt.Errorf("%w: unsupported image format", ErrInvalidInput)
)
