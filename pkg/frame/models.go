// Package frame provides the static catalog of poster frames: background art
// plus named placeholders authored against a fixed reference canvas.
package frame

// Default reference canvas for poster frames.
const (
	ReferenceWidth  = 720.0
	ReferenceHeight = 487.2
)

// Placeholder types.
const (
	TypeText  = "text"
	TypeImage = "image"
	TypeFill  = "fill" // content-free band, e.g. the footer background
)

// Frame is one author-defined template. Frames are immutable once loaded.
type Frame struct {
	ID              string        `yaml:"id" json:"id"`
	Name            string        `yaml:"name" json:"name"`
	Background      string        `yaml:"background" json:"background"` // art path or asset handle
	Category        string        `yaml:"category" json:"category"`
	Description     string        `yaml:"description" json:"description"`
	ReferenceWidth  float64       `yaml:"referenceWidth,omitempty" json:"referenceWidth,omitempty"`
	ReferenceHeight float64       `yaml:"referenceHeight,omitempty" json:"referenceHeight,omitempty"`
	Placeholders    []Placeholder `yaml:"placeholders" json:"placeholders"`
}

// Placeholder is one named slot within a Frame. All geometry is in the
// frame's reference coordinate space.
type Placeholder struct {
	Key    string  `yaml:"key" json:"key"`
	Type   string  `yaml:"type" json:"type"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height float64 `yaml:"height,omitempty" json:"height,omitempty"`

	// Text defaults.
	MaxWidth   float64 `yaml:"maxWidth,omitempty" json:"maxWidth,omitempty"`
	FontSize   float64 `yaml:"fontSize,omitempty" json:"fontSize,omitempty"`
	Color      string  `yaml:"color,omitempty" json:"color,omitempty"`
	FontFamily string  `yaml:"fontFamily,omitempty" json:"fontFamily,omitempty"`
	FontWeight string  `yaml:"fontWeight,omitempty" json:"fontWeight,omitempty"`
	TextAlign  string  `yaml:"textAlign,omitempty" json:"textAlign,omitempty"`
}

// Reference returns the frame's reference canvas, falling back to the
// poster default for unset or non-positive dimensions.
func (f *Frame) Reference() (w, h float64) {
	w, h = f.ReferenceWidth, f.ReferenceHeight
	if !(w > 0) {
		w = ReferenceWidth
	}
	if !(h > 0) {
		h = ReferenceHeight
	}
	return w, h
}

// Keys returns the placeholder keys in declaration order.
func (f *Frame) Keys() []string {
	keys := make([]string, 0, len(f.Placeholders))
	for _, p := range f.Placeholders {
		keys = append(keys, p.Key)
	}
	return keys
}

// IsFill reports whether the placeholder is a content-free fill band.
func (p Placeholder) IsFill() bool { return p.Type == TypeFill }

// IsImage reports whether the placeholder holds an image or logo.
func (p Placeholder) IsImage() bool { return p.Type == TypeImage }
