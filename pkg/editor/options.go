package editor

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xob0t/PosterStencil/pkg/frame"
	"github.com/xob0t/PosterStencil/pkg/layer"
	"github.com/xob0t/PosterStencil/pkg/observability"
)

// Option customises a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = observability.OrNop(logger)
	}
}

// WithSnapThreshold sets the drag snap distance in pixels.
func WithSnapThreshold(px float64) Option {
	return func(s *Session) {
		s.aligner = layer.NewAligner(px)
	}
}

// WithTemplate sets the initial template.
func WithTemplate(id string) Option {
	return func(s *Session) {
		s.template = id
	}
}

// WithCanvas sets the initial canvas size.
func WithCanvas(width, height float64) Option {
	return func(s *Session) {
		s.width, s.height = width, height
	}
}

// WithIDGenerator replaces the random id source for user-added layers.
func WithIDGenerator(next func() string) Option {
	return func(s *Session) {
		if next != nil {
			s.newID = next
		}
	}
}

func defaultOptions(s *Session) {
	s.logger = zap.NewNop()
	s.aligner = layer.NewAligner(layer.DefaultSnapThreshold)
	s.newID = uuid.NewString
	s.width, s.height = frame.ReferenceWidth, frame.ReferenceHeight
}
