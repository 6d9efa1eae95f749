package editor

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/xob0t/PosterStencil/pkg/frame"
	"github.com/xob0t/PosterStencil/pkg/layer"
)

const (
	userFontSize  = 24.0
	userTextColor = "#ffffff"
	userImageSide = 0.3 // fraction of the shorter canvas side
)

// AddText adds a free text layer centred on the canvas and returns its id.
func (s *Session) AddText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyContent
	}

	fs := userFontSize * math.Min(s.width/frame.ReferenceWidth, s.height/frame.ReferenceHeight)
	if !(fs > 0) {
		fs = layer.DefaultFontSize
	}
	l := layer.Layer{
		Kind:    layer.KindText,
		Content: text,
		Paint:   layer.TextPaint{FontSize: fs, Color: userTextColor, TextAlign: "center"},
	}
	eff := layer.EffectiveSize(l, s.width, s.height)
	l.Size = eff
	return s.addCentred(l), nil
}

// AddImage adds an image layer centred on the canvas and returns its id.
func (s *Session) AddImage(uri string) (string, error) {
	return s.addPicture(layer.KindImage, uri)
}

// AddLogo adds a logo layer centred on the canvas and returns its id.
func (s *Session) AddLogo(uri string) (string, error) {
	return s.addPicture(layer.KindLogo, uri)
}

func (s *Session) addPicture(kind layer.Kind, uri string) (string, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", ErrEmptyContent
	}
	side := math.Min(s.width, s.height) * userImageSide
	return s.addCentred(layer.Layer{
		Kind:    kind,
		Content: uri,
		Size:    layer.Size{Width: side, Height: side},
	}), nil
}

func (s *Session) addCentred(l layer.Layer) string {
	l.ID = s.newID()
	l.ZIndex = layer.MaxZIndex(s.layers) + 1
	l.Position = layer.Point{
		X: (s.width - l.Size.Width) / 2,
		Y: (s.height - l.Size.Height) / 2,
	}
	l = layer.ClampLayer(l, s.width, s.height)
	s.layers = append(s.layers, l)

	s.logger.Debug("layer added", zap.String("layer", l.ID), zap.String("kind", string(l.Kind)))
	return l.ID
}

// UpdateText replaces the content of a text layer. Edits to derived layers
// are kept across regeneration.
func (s *Session) UpdateText(id, text string) error {
	i := layer.Index(s.layers, id)
	if i < 0 {
		return ErrLayerNotFound
	}
	s.layers[i].Content = text
	if IsDerived(id) {
		o := s.overrides[id]
		o.edited, o.content = true, text
		s.overrides[id] = o
	}
	return nil
}

// DeleteLayer removes a layer and its gesture state. Deleted derived layers
// stay gone across regeneration until the layout source changes.
func (s *Session) DeleteLayer(id string) error {
	i := layer.Index(s.layers, id)
	if i < 0 {
		return ErrLayerNotFound
	}
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	s.gestures.Remove(id)
	delete(s.overrides, id)
	if IsDerived(id) {
		s.removed[id] = struct{}{}
	}

	s.logger.Debug("layer deleted", zap.String("layer", id))
	return nil
}
