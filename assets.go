package rink

import (
	"embed"
	"fmt"
	"image"
	_ "image/jpeg" // logo assets may be JPEG
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/gogpu/gg"
)

//go:embed assets
var embedded embed.FS

// Asset paths inside an asset filesystem.
const (
	rinkAsset = "rink.png"
	teamsDir  = "teams"
)

// DefaultAssets returns the rink image and team logos shipped with the module.
func DefaultAssets() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		// embedded always contains the assets directory
		panic(err)
	}
	return sub
}

// teamAsset returns the logo path for a tricode.
func teamAsset(team string) string {
	return path.Join(teamsDir, strings.ToUpper(team)+".png")
}

// loadImage decodes an image from fsys into a gg image buffer.
func loadImage(fsys fs.FS, name string) (*gg.ImageBuf, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	Logger().Debug("rink: asset loaded", "name", name,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return gg.ImageBufFromImage(img), nil
}
