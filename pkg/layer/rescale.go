package layer

import "math"

// RescaleLayer maps a layer from an old canvas to a new one by scaling each
// axis independently, then clamps it inside the new canvas. Text font size
// follows the smaller axis ratio.
//
// Use this only for layers with no normalized origin; derived layers should
// be regenerated from their frame instead.
func RescaleLayer(l Layer, oldWidth, oldHeight, newWidth, newHeight float64) Layer {
	sx := ratio(newWidth, oldWidth)
	sy := ratio(newHeight, oldHeight)

	out := Clone(l)
	out.Position = Point{X: l.Position.X * sx, Y: l.Position.Y * sy}
	out.Size = Size{Width: l.Size.Width * sx, Height: l.Size.Height * sy}
	if p, ok := out.Text(); ok {
		p.FontSize = nonNeg(p.FontSize * math.Min(sx, sy))
		out.Paint = p
	}

	return ClampLayer(out, newWidth, newHeight)
}

// RescaleLayers applies RescaleLayer to every layer.
func RescaleLayers(layers []Layer, oldWidth, oldHeight, newWidth, newHeight float64) []Layer {
	out := make([]Layer, len(layers))
	for i, l := range layers {
		out[i] = RescaleLayer(l, oldWidth, oldHeight, newWidth, newHeight)
	}
	return out
}

// ClampLayer keeps the layer inside [0,w]×[0,h]. Boxes larger than the
// canvas shrink to it; positions move toward 0. Text layers are positioned
// by their EffectiveSize estimate, then their Size is trimmed to the canvas.
func ClampLayer(l Layer, canvasWidth, canvasHeight float64) Layer {
	w, h := nonNeg(canvasWidth), nonNeg(canvasHeight)

	out := Clone(l)
	out.Size = sanitizeSize(out.Size)
	out.Size.Width = math.Min(out.Size.Width, w)
	out.Size.Height = math.Min(out.Size.Height, h)

	eff := EffectiveSize(out, w, h)
	out.Position = Point{
		X: clamp(nonNeg(out.Position.X), 0, w-eff.Width),
		Y: clamp(nonNeg(out.Position.Y), 0, h-eff.Height),
	}

	// A text wrap box may extend past its estimate; trim it at the canvas edge.
	out.Size.Width = nonNeg(math.Min(out.Size.Width, w-out.Position.X))
	out.Size.Height = nonNeg(math.Min(out.Size.Height, h-out.Position.Y))
	return out
}
