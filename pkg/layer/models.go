// Package layer is the canvas geometry engine: it turns frames into
// positioned layers, rescales them across canvas sizes, clamps them to the
// canvas and computes snap guides while a layer is dragged.
//
// Every function in this package is pure. Inputs are never mutated and
// results are always finite and non-negative.
package layer

// Kind discriminates what a layer paints.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindLogo  Kind = "logo"
	KindFill  Kind = "fill"
)

// Point is a canvas pixel position, top-left origin.
type Point struct {
	X, Y float64
}

// Size is a canvas pixel extent.
type Size struct {
	Width, Height float64
}

// Layer is one positioned, paintable unit on the live canvas. Position and
// Size are always expressed in the current canvas pixel space.
type Layer struct {
	ID        string
	Kind      Kind
	Content   string // text value, or image/logo URI; empty for fill bands
	Position  Point
	Size      Size
	Rotation  float64
	ZIndex    int
	FieldType string // role key; empty for free-form layers
	Paint     Paint  // TextPaint for text, FillPaint for fill, nil for images
}

// Paint is the sealed set of layer paints.
type Paint interface {
	isPaint()
}

// TextPaint styles a text layer.
type TextPaint struct {
	FontSize   float64
	Color      string
	FontFamily string
	FontWeight string
	TextAlign  string
}

// FillPaint styles a content-free band. GradientColors, when set, holds at
// least two stops and takes precedence over BackgroundColor.
type FillPaint struct {
	BackgroundColor string
	GradientColors  []string
}

func (TextPaint) isPaint() {}
func (FillPaint) isPaint() {}

// Text returns the layer's text paint.
func (l Layer) Text() (TextPaint, bool) {
	p, ok := l.Paint.(TextPaint)
	return p, ok
}

// Fill returns the layer's fill paint.
func (l Layer) Fill() (FillPaint, bool) {
	p, ok := l.Paint.(FillPaint)
	return p, ok
}

// FontSize returns the text font size, or DefaultFontSize for layers
// without a usable one.
func (l Layer) FontSize() float64 {
	if p, ok := l.Text(); ok && p.FontSize > 0 {
		return p.FontSize
	}
	return DefaultFontSize
}

// Bounds returns the layer rectangle as min/max corners.
func (l Layer) Bounds() (minX, minY, maxX, maxY float64) {
	return l.Position.X, l.Position.Y, l.Position.X + l.Size.Width, l.Position.Y + l.Size.Height
}

// Clone returns a deep copy of l.
func Clone(l Layer) Layer {
	if fill, ok := l.Paint.(FillPaint); ok && fill.GradientColors != nil {
		stops := make([]string, len(fill.GradientColors))
		copy(stops, fill.GradientColors)
		fill.GradientColors = stops
		l.Paint = fill
	}
	return l
}

// CloneAll deep-copies a layer set. A nil input yields nil.
func CloneAll(layers []Layer) []Layer {
	if layers == nil {
		return nil
	}
	out := make([]Layer, len(layers))
	for i, l := range layers {
		out[i] = Clone(l)
	}
	return out
}

// Index returns the position of the layer with id, or -1.
func Index(layers []Layer, id string) int {
	for i := range layers {
		if layers[i].ID == id {
			return i
		}
	}
	return -1
}
