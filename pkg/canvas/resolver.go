// Package canvas derives the editor canvas size from screen metrics and,
// for video backgrounds, the media's natural size.
package canvas

import (
	"math"

	"github.com/xob0t/PosterStencil/pkg/frame"
)

// Orientation of the device screen.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// Insets are safe-area insets in screen pixels.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Screen describes the device viewport.
type Screen struct {
	Width       float64
	Height      float64
	Insets      Insets
	Orientation Orientation
}

// Size is a resolved canvas size in pixels.
type Size struct {
	Width, Height float64
}

// Valid reports whether both dimensions are positive and finite.
func (s Size) Valid() bool {
	return positive(s.Width) && positive(s.Height)
}

// Resolver turns screen metrics into canvas sizes.
type Resolver struct {
	Padding       float64 // margin kept around the canvas on every side
	ToolbarHeight float64 // editor chrome: below the canvas in portrait, beside it in landscape
	PosterAspect  float64 // width / height of poster canvases
}

// NewResolver returns a Resolver with the poster reference aspect.
func NewResolver(padding, toolbarHeight float64) Resolver {
	return Resolver{
		Padding:       padding,
		ToolbarHeight: toolbarHeight,
		PosterAspect:  frame.ReferenceWidth / frame.ReferenceHeight,
	}
}

// Available returns the usable area once insets, padding and chrome are taken.
func (r Resolver) Available(s Screen) Size {
	w := nonNeg(s.Width) - nonNeg(s.Insets.Left) - nonNeg(s.Insets.Right) - 2*nonNeg(r.Padding)
	h := nonNeg(s.Height) - nonNeg(s.Insets.Top) - nonNeg(s.Insets.Bottom) - 2*nonNeg(r.Padding)

	if s.Orientation == Landscape {
		w -= nonNeg(r.ToolbarHeight)
	} else {
		h -= nonNeg(r.ToolbarHeight)
	}

	return Size{Width: nonNeg(w), Height: nonNeg(h)}
}

// Poster returns the largest poster-aspect box inside the usable area.
func (r Resolver) Poster(s Screen) Size {
	aspect := r.PosterAspect
	if !positive(aspect) {
		aspect = frame.ReferenceWidth / frame.ReferenceHeight
	}
	return fit(r.Available(s), aspect)
}

// Video returns a box with the media's aspect ratio, scaled to fit the usable
// area. An unknown natural size falls back to Poster.
func (r Resolver) Video(s Screen, naturalWidth, naturalHeight float64) Size {
	if !positive(naturalWidth) || !positive(naturalHeight) {
		return r.Poster(s)
	}
	return fit(r.Available(s), naturalWidth/naturalHeight)
}

// fit returns the largest box of the given aspect inside avail.
func fit(avail Size, aspect float64) Size {
	if !avail.Valid() {
		return Size{}
	}
	w := avail.Width
	h := w / aspect
	if h > avail.Height {
		h = avail.Height
		w = h * aspect
	}
	return Size{Width: nonNeg(w), Height: nonNeg(h)}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNeg(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
