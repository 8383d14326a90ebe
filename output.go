package rink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is an output image encoding.
type Format int

// Supported output formats.
const (
	PNG Format = iota
	JPEG
)

// jpegQuality is used for every JPEG written by Save and Encode.
const jpegQuality = 95

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the output format from a file extension. A path
// without an extension is written as PNG.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Encode writes the whole canvas to w in the given format.
func (f *Figure) Encode(w io.Writer, format Format) error {
	if f.closed {
		return ErrClosed
	}
	switch format {
	case PNG:
		return f.dc.EncodePNG(w)
	case JPEG:
		return f.dc.EncodeJPEG(w, jpegQuality)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// Save writes the figure to filename with no padding around the canvas.
// The format is chosen from the extension: ".png" or none for PNG, ".jpg"
// or ".jpeg" for JPEG.
func (f *Figure) Save(filename string) (err error) {
	if f.closed {
		return ErrClosed
	}
	format, err := FormatFromPath(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("rink: save: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if err := f.Encode(file, format); err != nil {
		return fmt.Errorf("rink: encode %s: %w", format, err)
	}

	w, h := f.PixelSize()
	Logger().Info("rink: figure saved", "path", filename, "format", format, "width", w, "height", h)
	return nil
}
