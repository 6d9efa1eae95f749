package editor

import "github.com/xob0t/PosterStencil/pkg/layer"

// Export is what a renderer needs to draw the poster.
type Export struct {
	Width      float64
	Height     float64
	Background string
	Layers     []layer.Layer // visible layers in paint order
}

// ValidateExport fails with ErrNoVisibleContent when no visible layer other
// than the footer band has content.
func (s *Session) ValidateExport() error {
	if !layer.HasVisibleContent(s.layers, s.visible) {
		s.logger.Info("export rejected: nothing visible")
		return ErrNoVisibleContent
	}
	return nil
}

// Export validates the session and returns the drawable document.
func (s *Session) Export() (Export, error) {
	if err := s.ValidateExport(); err != nil {
		return Export{}, err
	}

	bg := s.background
	if s.frame != nil && s.frame.Background != "" {
		bg = s.frame.Background
	}
	return Export{
		Width:      s.width,
		Height:     s.height,
		Background: bg,
		Layers:     layer.SortByZ(layer.Visible(s.layers, s.visible)),
	}, nil
}
