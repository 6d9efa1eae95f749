// Package generator encodes rendered posters to image files.
//
// All output follows one pipeline: produce an image.Image first, then encode
// it as PNG or JPEG depending on the target extension.
package generator

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used when Config.Quality is unset.
const DefaultJPEGQuality = 92

// Config holds parameters for output generation.
type Config struct {
	Width   int         // pixel width of a solid image (default: 720)
	Height  int         // pixel height of a solid image (default: 487)
	Color   string      // "#rrggbb" or "#rrggbbaa" for a solid image
	Quality int         // JPEG quality 1-100
	Image   image.Image // pre-rendered image; overrides Width/Height/Color
}

// Generate writes an output file. The format is inferred from the extension:
//   - ".png" → PNG
//   - ".jpg", ".jpeg" → JPEG
//
// If cfg.Image is nil, a solid-color image is created from cfg.Color.
func Generate(output string, cfg Config) error {
	if _, err := format(filepath.Ext(output)); err != nil {
		return err
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := GenerateToWriter(f, filepath.Ext(output), cfg); err != nil {
		return err
	}
	return f.Close()
}

// GenerateToWriter encodes to w. The format is given by ext (".png", ".jpg"
// or ".jpeg").
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	fmtID, err := format(ext)
	if err != nil {
		return err
	}
	img, err := resolveImage(cfg)
	if err != nil {
		return err
	}

	if fmtID == imaging.PNG {
		return encodePNG(w, img)
	}
	q := cfg.Quality
	if q <= 0 || q > 100 {
		q = DefaultJPEGQuality
	}
	if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(q)); err != nil {
		return fmt.Errorf("encode JPEG: %w", err)
	}
	return nil
}

// Supported reports whether ext names an output format.
func Supported(ext string) bool {
	_, err := format(ext)
	return err == nil
}

func format(ext string) (imaging.Format, error) {
	switch strings.ToLower(ext) {
	case ".png":
		return imaging.PNG, nil
	case ".jpg", ".jpeg":
		return imaging.JPEG, nil
	default:
		return 0, fmt.Errorf("unsupported format %q: use .png, .jpg or .jpeg", ext)
	}
}

// resolveImage returns the source image from config, creating a solid-color
// image if none is provided.
func resolveImage(cfg Config) (image.Image, error) {
	if cfg.Image != nil {
		return cfg.Image, nil
	}

	w := cfg.Width
	if w <= 0 {
		w = 720
	}
	h := cfg.Height
	if h <= 0 {
		h = 487
	}

	c, err := ParseColor(cfg.Color)
	if err != nil {
		return nil, err
	}
	return NewSolidImage(w, h, c), nil
}
