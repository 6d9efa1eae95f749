// fonts.go - Font management with custom TTF support and embedded fallback fonts.
// Defaults to the Go Regular and Go Bold fonts when no custom font is given or
// when it cannot be loaded.
package compose

import (
	"fmt"
	"math"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontManager hands out font faces by size and weight.
type FontManager struct {
	regular *truetype.Font
	bold    *truetype.Font
	faces   map[faceKey]font.Face
	dpi     float64
}

type faceKey struct {
	size float64
	bold bool
}

// NewFontManager parses the custom font at customPath, or the embedded Go
// fonts when customPath is empty. A custom font is used for both weights.
// The returned warning is non-empty when the custom font was unusable and
// the fallback applies.
func NewFontManager(customPath string) (*FontManager, string, error) {
	var warning string
	fm := &FontManager{faces: make(map[faceKey]font.Face), dpi: 72}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err == nil {
			fm.regular, err = truetype.Parse(data)
		}
		if err != nil {
			warning = fmt.Sprintf("could not load font %q, using default: %v", customPath, err)
			fm.regular = nil
		} else {
			fm.bold = fm.regular
		}
	}

	if fm.regular == nil {
		var err error
		if fm.regular, err = truetype.Parse(goregular.TTF); err != nil {
			return nil, "", fmt.Errorf("failed to parse font: %w", err)
		}
		if fm.bold, err = truetype.Parse(gobold.TTF); err != nil {
			return nil, "", fmt.Errorf("failed to parse font: %w", err)
		}
	}

	return fm, warning, nil
}

// Face returns a face at size pixels. Faces are cached and not safe for
// concurrent use.
func (fm *FontManager) Face(size float64, bold bool) font.Face {
	if !(size > 0) || math.IsInf(size, 0) {
		size = 1
	}
	key := faceKey{size: size, bold: bold}
	if f, ok := fm.faces[key]; ok {
		return f
	}

	ttf := fm.regular
	if bold {
		ttf = fm.bold
	}
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     fm.dpi,
		Hinting: font.HintingFull,
	})
	fm.faces[key] = f
	return f
}
