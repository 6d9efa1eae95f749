package editor

import (
	"math"

	"go.uber.org/zap"

	"github.com/xob0t/PosterStencil/pkg/layer"
)

// BeginGesture starts a drag or pinch on a layer, resetting any previous
// gesture state for it.
func (s *Session) BeginGesture(id string) error {
	i := layer.Index(s.layers, id)
	if i < 0 {
		return ErrLayerNotFound
	}
	s.gestures.Reset(id, s.layers[i].Position)
	return nil
}

// Drag updates the translation of an active gesture. dx and dy are measured
// from the gesture start. The layer itself does not move until EndGesture;
// the returned guides describe the lines to draw and the pending snap.
func (s *Session) Drag(id string, dx, dy float64) (layer.Guides, error) {
	st, err := s.activeGesture(id)
	if err != nil {
		return layer.Guides{}, err
	}

	g := s.aligner.Compute(id, dx, dy, s.layers, s.visible, s.width, s.height)
	st.Translation = layer.Point{X: g.Dx, Y: g.Dy}
	st.Guides = g
	return g, nil
}

// Pinch sets the scale factor of an active gesture relative to its start.
func (s *Session) Pinch(id string, scale float64) error {
	st, err := s.activeGesture(id)
	if err != nil {
		return err
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}
	st.Scale = scale
	return nil
}

// EndGesture commits the gesture to the layer and returns the result.
// Edits to derived layers are remembered so they survive regeneration.
func (s *Session) EndGesture(id string) (layer.Layer, error) {
	st, err := s.activeGesture(id)
	if err != nil {
		return layer.Layer{}, err
	}
	i := layer.Index(s.layers, id)
	if i < 0 {
		s.gestures.Remove(id)
		return layer.Layer{}, ErrLayerNotFound
	}

	l := s.layers[i]
	if st.Scale != 1 {
		l = layer.ScaleLayer(l, st.Scale, s.width, s.height)
	}
	l = layer.CommitDrag(l, st.Guides, s.width, s.height)
	s.layers[i] = l

	if IsDerived(id) {
		o := s.overrides[id]
		if o.scale == 0 {
			o.scale = 1
		}
		o.scale *= st.Scale
		o.moved = true
		o.x, o.y = fraction(l.Position.X, s.width), fraction(l.Position.Y, s.height)
		s.overrides[id] = o
	}

	st.Active = false
	s.logger.Debug("gesture committed",
		zap.String("layer", id),
		zap.Float64("x", l.Position.X),
		zap.Float64("y", l.Position.Y),
		zap.Float64("scale", st.Scale),
	)
	return layer.Clone(l), nil
}

// Gesture returns a copy of the gesture state for a layer.
func (s *Session) Gesture(id string) (layer.GestureState, bool) {
	st, ok := s.gestures.Get(id)
	if !ok {
		return layer.GestureState{}, false
	}
	return *st, true
}

func (s *Session) activeGesture(id string) (*layer.GestureState, error) {
	st, ok := s.gestures.Get(id)
	if !ok || !st.Active {
		return nil, ErrNoGesture
	}
	return st, nil
}

func fraction(v, total float64) float64 {
	if !(total > 0) {
		return 0
	}
	return v / total
}
