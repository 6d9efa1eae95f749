package layer

import (
	"math"

	"github.com/xob0t/PosterStencil/pkg/content"
	"github.com/xob0t/PosterStencil/pkg/frame"
)

// Id prefixes for derived layers. Ids are deterministic so re-applying a
// frame replaces layers instead of duplicating them.
const (
	FramePrefix    = "frame-"
	TemplatePrefix = "template-"
)

const (
	// BaseZIndex is the paint order of the first derived layer; frame art
	// paints below it.
	BaseZIndex = 10

	// DefaultFontSize applies to text placeholders without a font size.
	DefaultFontSize = 16.0

	// TextLineReserve is how many lines of height a derived text layer
	// reserves, in lieu of measuring the text.
	TextLineReserve = 3.0

	defaultImageSide = 80.0
	defaultTextColor = "#ffffff"
	defaultTextAlign = "left"
)

// GenerateFromFrame emits one layer per placeholder that has content, scaled
// from the frame's reference canvas to canvasWidth × canvasHeight.
func GenerateFromFrame(f *frame.Frame, m content.Mapping, canvasWidth, canvasHeight float64) []Layer {
	return Generate(f, m, canvasWidth, canvasHeight, FramePrefix)
}

// Generate is GenerateFromFrame with a custom id prefix. Fill placeholders
// are emitted regardless of content. Only the first placeholder of a key
// with content is used, so ids stay unique.
func Generate(f *frame.Frame, m content.Mapping, canvasWidth, canvasHeight float64, idPrefix string) []Layer {
	if f == nil {
		return nil
	}

	refW, refH := f.Reference()
	sx := ratio(nonNeg(canvasWidth), refW)
	sy := ratio(nonNeg(canvasHeight), refH)
	uniform := math.Min(sx, sy)

	layers := make([]Layer, 0, len(f.Placeholders))
	seen := make(map[string]struct{}, len(f.Placeholders))
	z := BaseZIndex

	for _, p := range f.Placeholders {
		if _, dup := seen[p.Key]; dup {
			continue
		}
		var l Layer

		switch {
		case p.IsFill():
			l = fillLayer(p, refW, refH, sx, sy)
		default:
			value := m.Get(p.Key)
			if value == "" {
				continue
			}
			if p.IsImage() {
				l = imageLayer(p, value, sx, sy)
			} else {
				l = textLayer(p, value, refW, sx, sy, uniform)
			}
		}

		seen[p.Key] = struct{}{}
		l.ID = idPrefix + p.Key
		l.FieldType = p.Key
		l.ZIndex = z
		l.Position = sanitizePoint(Point{X: p.X * sx, Y: p.Y * sy})
		l.Size = sanitizeSize(l.Size)
		z++

		layers = append(layers, l)
	}

	return layers
}

func textLayer(p frame.Placeholder, value string, refW, sx, sy, uniform float64) Layer {
	fontSize := p.FontSize
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	fontSize = nonNeg(fontSize * uniform)

	maxWidth := p.MaxWidth
	if maxWidth <= 0 {
		maxWidth = refW - p.X
	}

	color := p.Color
	if color == "" {
		color = defaultTextColor
	}
	align := p.TextAlign
	if align == "" {
		align = defaultTextAlign
	}

	return Layer{
		Kind:    KindText,
		Content: value,
		Size:    Size{Width: maxWidth * sx, Height: fontSize * TextLineReserve},
		Paint: TextPaint{
			FontSize:   fontSize,
			Color:      color,
			FontFamily: p.FontFamily,
			FontWeight: p.FontWeight,
			TextAlign:  align,
		},
	}
}

func imageLayer(p frame.Placeholder, value string, sx, sy float64) Layer {
	w, h := p.Width, p.Height
	if w <= 0 {
		w = defaultImageSide
	}
	if h <= 0 {
		h = w
	}

	kind := KindImage
	if p.Key == content.KeyLogo || p.Key == content.KeyCompanyLogo {
		kind = KindLogo
	}

	return Layer{
		Kind:    kind,
		Content: value,
		Size:    Size{Width: w * sx, Height: h * sy},
	}
}

func fillLayer(p frame.Placeholder, refW, refH, sx, sy float64) Layer {
	w, h := p.Width, p.Height
	if w <= 0 {
		w = refW - p.X
	}
	if h <= 0 {
		h = refH - p.Y
	}

	return Layer{
		Kind:  KindFill,
		Size:  Size{Width: w * sx, Height: h * sy},
		Paint: FillPaint{BackgroundColor: p.Color},
	}
}
