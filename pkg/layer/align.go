package layer

import (
	"math"
	"unicode/utf8"
)

const (
	// DefaultSnapThreshold is the inclusive snap distance in pixels.
	DefaultSnapThreshold = 8.0

	// Text box estimate used while dragging: average glyph advance and line
	// height as fractions of the font size.
	glyphAdvance = 0.55
	lineHeight   = 1.3
)

// Guides is the result of one alignment pass.
type Guides struct {
	Vertical   []float64 // at most one x position
	Horizontal []float64 // at most one y position
	SnapDx     float64   // correction that lands the moving edge on the vertical guide
	SnapDy     float64
	Dx, Dy     float64 // the proposed translation after clamping
}

// Aligner computes snap guides with a configurable threshold.
type Aligner struct {
	Threshold float64
}

// NewAligner returns an Aligner; non-positive thresholds use the default.
func NewAligner(threshold float64) Aligner {
	if !(threshold > 0) || math.IsInf(threshold, 0) {
		threshold = DefaultSnapThreshold
	}
	return Aligner{Threshold: threshold}
}

// ComputeAlignmentGuides runs an alignment pass with DefaultSnapThreshold.
func ComputeAlignmentGuides(movingID string, dx, dy float64, layers []Layer, visibility map[string]bool, canvasWidth, canvasHeight float64) Guides {
	return Aligner{Threshold: DefaultSnapThreshold}.Compute(movingID, dx, dy, layers, visibility, canvasWidth, canvasHeight)
}

// Compute clamps the proposed translation of the moving layer to the canvas,
// then finds, per axis, the closest reference line within the threshold.
// Reference lines are the canvas start/center/end followed by the
// start/center/end of every other visible layer in slice order; on equal
// distance the first pair found wins.
func (a Aligner) Compute(movingID string, dx, dy float64, layers []Layer, visibility map[string]bool, canvasWidth, canvasHeight float64) Guides {
	w, h := nonNeg(canvasWidth), nonNeg(canvasHeight)

	mi := Index(layers, movingID)
	if mi < 0 {
		return Guides{Dx: finite(dx), Dy: finite(dy)}
	}
	moving := layers[mi]

	cdx, cdy := ClampTranslation(moving, dx, dy, w, h)
	eff := EffectiveSize(moving, w, h)

	left := moving.Position.X + cdx
	top := moving.Position.Y + cdy
	edgesX := [3]float64{left, left + eff.Width/2, left + eff.Width}
	edgesY := [3]float64{top, top + eff.Height/2, top + eff.Height}

	sx := snapSearch{threshold: a.Threshold}
	sy := snapSearch{threshold: a.Threshold}

	sx.line(0, &edgesX)
	sx.line(w/2, &edgesX)
	sx.line(w, &edgesX)
	sy.line(0, &edgesY)
	sy.line(h/2, &edgesY)
	sy.line(h, &edgesY)

	for i := range layers {
		if i == mi || !IsVisible(layers[i], visibility) {
			continue
		}
		other := layers[i]
		oe := EffectiveSize(other, w, h)
		x, y := other.Position.X, other.Position.Y

		sx.line(x, &edgesX)
		sx.line(x+oe.Width/2, &edgesX)
		sx.line(x+oe.Width, &edgesX)
		sy.line(y, &edgesY)
		sy.line(y+oe.Height/2, &edgesY)
		sy.line(y+oe.Height, &edgesY)
	}

	g := Guides{Dx: cdx, Dy: cdy}
	if sx.found {
		g.Vertical = []float64{sx.guide}
		g.SnapDx = sx.snap
	}
	if sy.found {
		g.Horizontal = []float64{sy.guide}
		g.SnapDy = sy.snap
	}
	return g
}

// snapSearch tracks the best (reference line, moving edge) pair on one axis.
type snapSearch struct {
	threshold float64
	found     bool
	dist      float64
	guide     float64
	snap      float64
}

func (s *snapSearch) line(ref float64, edges *[3]float64) {
	for _, e := range edges {
		d := math.Abs(ref - e)
		if d > s.threshold {
			continue
		}
		if !s.found || d < s.dist {
			s.found = true
			s.dist = d
			s.guide = ref
			s.snap = ref - e
		}
	}
}

// EffectiveSize is the box used for clamping and snapping. Text layers use a
// character-count estimate instead of measuring glyphs; other layers use
// Size. Both are capped at the canvas.
func EffectiveSize(l Layer, canvasWidth, canvasHeight float64) Size {
	w, h := nonNeg(canvasWidth), nonNeg(canvasHeight)

	if l.Kind == KindText {
		fs := l.FontSize()
		n := float64(utf8.RuneCountInString(l.Content))
		return Size{
			Width:  math.Min(w, math.Max(fs, n*fs*glyphAdvance)),
			Height: math.Min(h, fs*lineHeight),
		}
	}

	s := sanitizeSize(l.Size)
	return Size{Width: math.Min(s.Width, w), Height: math.Min(s.Height, h)}
}

// ClampTranslation limits a proposed translation so the layer's effective
// box stays on the canvas.
func ClampTranslation(l Layer, dx, dy, canvasWidth, canvasHeight float64) (float64, float64) {
	w, h := nonNeg(canvasWidth), nonNeg(canvasHeight)
	eff := EffectiveSize(l, w, h)

	x := clamp(l.Position.X+finite(dx), 0, w-eff.Width)
	y := clamp(l.Position.Y+finite(dy), 0, h-eff.Height)
	return finite(x - l.Position.X), finite(y - l.Position.Y)
}

// CommitDrag returns the layer at its final drag position: original position
// plus clamped translation plus snap correction, clamped once more.
func CommitDrag(l Layer, g Guides, canvasWidth, canvasHeight float64) Layer {
	out := Clone(l)
	out.Position = Point{
		X: l.Position.X + finite(g.Dx) + finite(g.SnapDx),
		Y: l.Position.Y + finite(g.Dy) + finite(g.SnapDy),
	}
	return ClampLayer(out, canvasWidth, canvasHeight)
}

// ScaleLayer resizes a layer by factor, as a pinch gesture does. Text layers
// scale their font size with their box. Non-positive factors are ignored.
func ScaleLayer(l Layer, factor, canvasWidth, canvasHeight float64) Layer {
	if !(factor > 0) || math.IsInf(factor, 0) {
		factor = 1
	}

	out := Clone(l)
	out.Size = Size{Width: l.Size.Width * factor, Height: l.Size.Height * factor}
	if p, ok := out.Text(); ok {
		p.FontSize = math.Max(1, nonNeg(p.FontSize*factor))
		out.Paint = p
	}
	return ClampLayer(out, canvasWidth, canvasHeight)
}
