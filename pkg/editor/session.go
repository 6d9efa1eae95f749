// Package editor holds the state of one poster editing session: content,
// template, active frame, layers, visibility and gestures. A Session is not
// safe for concurrent use.
package editor

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/xob0t/PosterStencil/pkg/content"
	"github.com/xob0t/PosterStencil/pkg/frame"
	"github.com/xob0t/PosterStencil/pkg/layer"
	"github.com/xob0t/PosterStencil/pkg/theme"
)

// override records a user edit on a derived layer so it survives
// regeneration. Positions are fractions of the canvas.
type override struct {
	moved   bool
	x, y    float64
	scale   float64
	edited  bool
	content string
}

func (o override) apply(l layer.Layer, w, h float64) layer.Layer {
	if o.edited {
		l.Content = o.content
	}
	if o.scale > 0 && o.scale != 1 {
		l = layer.ScaleLayer(l, o.scale, w, h)
	}
	if o.moved {
		l.Position = layer.Point{X: o.x * w, Y: o.y * h}
	}
	return layer.ClampLayer(l, w, h)
}

// snapshot is the no-frame state captured when the first frame is applied.
type snapshot struct {
	layers    []layer.Layer
	template  string
	width     float64
	height    float64
	visible   map[string]bool
	overrides map[string]override
	removed   map[string]struct{}
}

// Session is the editor aggregate.
type Session struct {
	catalog *frame.Catalog
	styles  *theme.Table
	aligner layer.Aligner
	logger  *zap.Logger
	newID   func() string

	profile    content.BusinessProfile
	mapping    content.Mapping
	template   string
	frame      *frame.Frame
	background string

	width, height float64
	layers        []layer.Layer
	visible       map[string]bool
	overrides     map[string]override
	removed       map[string]struct{}
	gestures      *layer.GestureStates

	baseline *snapshot
}

// NewSession returns a session in template mode with no content.
func NewSession(catalog *frame.Catalog, styles *theme.Table, opts ...Option) *Session {
	if catalog == nil {
		catalog = frame.NewCatalog()
	}
	if styles == nil {
		styles = theme.Builtin()
	}

	s := &Session{
		catalog:   catalog,
		styles:    styles,
		mapping:   content.Mapping{},
		visible:   make(map[string]bool),
		overrides: make(map[string]override),
		removed:   make(map[string]struct{}),
		gestures:  layer.NewGestureStates(),
	}
	defaultOptions(s)
	for _, opt := range opts {
		opt(s)
	}

	s.width, s.height = sanitize(s.width), sanitize(s.height)
	s.template = styles.Resolve(s.template)
	s.layers = s.assemble(s.derive(), nil)
	return s
}

// SelectProfile replaces the content source. Derived layers are regenerated
// and user layers kept. With a frame applied the frame is re-laid out with
// the new content and the baseline is re-captured as the template layout
// for the new profile.
func (s *Session) SelectProfile(p content.BusinessProfile) {
	s.profile = p
	s.mapping = content.MapProfile(p)
	s.baseline = nil
	s.overrides = make(map[string]override)
	s.removed = make(map[string]struct{})

	prev := s.layers
	users := s.userLayers()
	if s.frame != nil {
		s.baseline = &snapshot{
			layers:    s.assemble(s.styles.GenerateTemplateLayers(s.template, s.mapping, s.width, s.height), users),
			template:  s.template,
			width:     s.width,
			height:    s.height,
			visible:   copyVisibility(s.visible),
			overrides: make(map[string]override),
			removed:   make(map[string]struct{}),
		}
	}
	s.layers = s.assemble(s.derive(), users)
	s.dropStaleGestures(prev)

	s.logger.Debug("profile selected",
		zap.String("profile", p.Name),
		zap.Bool("frame_active", s.frame != nil),
		zap.Int("layers", len(s.layers)),
	)
}

// ApplyTemplate switches the template. It is rejected with ErrFrameActive
// while a frame is applied and leaves the session unchanged.
func (s *Session) ApplyTemplate(id string) error {
	if s.frame != nil {
		s.logger.Info("template change rejected",
			zap.String("template", id),
			zap.String("frame", s.frame.ID),
		)
		return ErrFrameActive
	}

	s.template = s.styles.Resolve(id)
	s.baseline = nil
	prev := s.layers
	s.layers = s.assemble(s.rebuildDerived(), s.userLayers())
	s.dropStaleGestures(prev)

	s.logger.Debug("template applied", zap.String("template", s.template))
	return nil
}

// ApplyFrame lays out the current content with a catalog frame. The first
// frame applied after template mode captures the baseline; switching between
// frames keeps the original baseline. Every placeholder key is made visible.
func (s *Session) ApplyFrame(id string) error {
	f, ok := s.catalog.Get(id)
	if !ok {
		s.logger.Info("frame not found", zap.String("frame", id))
		return fmt.Errorf("%w: %q", ErrUnknownFrame, id)
	}

	if s.baseline == nil {
		s.baseline = s.capture()
		s.logger.Debug("baseline captured",
			zap.String("template", s.baseline.template),
			zap.Int("layers", len(s.baseline.layers)),
		)
	}

	s.frame = f
	s.overrides = make(map[string]override)
	s.removed = make(map[string]struct{})
	for _, key := range f.Keys() {
		s.visible[key] = true
	}

	prev := s.layers
	s.layers = s.assemble(s.derive(), s.userLayers())
	s.dropStaleGestures(prev)

	s.logger.Debug("frame applied", zap.String("frame", f.ID), zap.Int("layers", len(s.layers)))
	return nil
}

// RemoveFrame returns to template mode, restoring the baseline captured by
// the first ApplyFrame and re-applying the template styling. Without a
// baseline the frame is cleared and layers are left as they are.
func (s *Session) RemoveFrame() {
	if s.frame == nil && s.baseline == nil {
		return
	}

	frameID := ""
	if s.frame != nil {
		frameID = s.frame.ID
	}
	s.frame = nil
	prev := s.layers

	if b := s.baseline; b != nil {
		s.template = b.template
		s.visible = copyVisibility(b.visible)
		s.overrides = copyOverrides(b.overrides)
		s.removed = copyRemoved(b.removed)

		if b.width == s.width && b.height == s.height {
			s.layers = s.styles.Apply(s.template, layer.CloneAll(b.layers))
		} else {
			users := layer.RescaleLayers(userLayersOf(b.layers), b.width, b.height, s.width, s.height)
			s.layers = s.assemble(s.rebuildDerived(), users)
		}
		s.baseline = nil
	}
	s.dropStaleGestures(prev)

	s.logger.Debug("frame removed", zap.String("frame", frameID), zap.String("template", s.template))
}

// Resize moves the session to a new canvas. Derived layers are regenerated
// from their layout so repeated resizes do not drift; user layers scale
// proportionally. The baseline keeps its own canvas size. A canvas with a
// non-positive or non-finite side is ignored.
func (s *Session) Resize(width, height float64) {
	if !usable(width) || !usable(height) {
		s.logger.Debug("resize ignored",
			zap.Float64("width", width),
			zap.Float64("height", height),
		)
		return
	}
	if width == s.width && height == s.height {
		return
	}

	oldW, oldH := s.width, s.height
	s.width, s.height = width, height

	users := layer.RescaleLayers(s.userLayers(), oldW, oldH, width, height)
	s.layers = s.assemble(s.rebuildDerived(), users)

	s.logger.Debug("canvas resized",
		zap.Float64("width", width),
		zap.Float64("height", height),
	)
}

// SetBackground sets the poster image used in template mode. A frame's own
// background takes precedence while it is applied.
func (s *Session) SetBackground(path string) {
	s.background = strings.TrimSpace(path)
}

// SetVisible shows or hides every layer bound to a content field.
func (s *Session) SetVisible(field string, shown bool) {
	s.visible[field] = shown
}

// Layers returns a copy of the current layers.
func (s *Session) Layers() []layer.Layer { return layer.CloneAll(s.layers) }

// Layer returns a copy of one layer.
func (s *Session) Layer(id string) (layer.Layer, bool) {
	i := layer.Index(s.layers, id)
	if i < 0 {
		return layer.Layer{}, false
	}
	return layer.Clone(s.layers[i]), true
}

// Visibility returns a copy of the visibility flags.
func (s *Session) Visibility() map[string]bool { return copyVisibility(s.visible) }

// TemplateID returns the current template.
func (s *Session) TemplateID() string { return s.template }

// ActiveFrame returns the applied frame, or nil in template mode.
func (s *Session) ActiveFrame() *frame.Frame {
	if s.frame == nil {
		return nil
	}
	f := *s.frame
	return &f
}

// HasBaseline reports whether a no-frame baseline is held.
func (s *Session) HasBaseline() bool { return s.baseline != nil }

// Canvas returns the current canvas size.
func (s *Session) Canvas() (width, height float64) { return s.width, s.height }

// Profile returns the selected profile.
func (s *Session) Profile() content.BusinessProfile { return s.profile }

// derive generates the layers of the active layout at the current canvas.
func (s *Session) derive() []layer.Layer {
	if s.frame != nil {
		return layer.GenerateFromFrame(s.frame, s.mapping, s.width, s.height)
	}
	return s.styles.GenerateTemplateLayers(s.template, s.mapping, s.width, s.height)
}

// rebuildDerived regenerates derived layers and re-applies user edits.
func (s *Session) rebuildDerived() []layer.Layer {
	derived := s.derive()
	out := derived[:0]
	for _, l := range derived {
		if _, gone := s.removed[l.ID]; gone {
			continue
		}
		if o, ok := s.overrides[l.ID]; ok {
			l = o.apply(l, s.width, s.height)
		}
		out = append(out, l)
	}
	return out
}

// assemble places user layers above the derived ones, keeping their order.
func (s *Session) assemble(derived, users []layer.Layer) []layer.Layer {
	out := make([]layer.Layer, 0, len(derived)+len(users))
	for _, l := range derived {
		if _, gone := s.removed[l.ID]; gone {
			continue
		}
		out = append(out, l)
	}
	z := layer.MaxZIndex(out)
	for _, l := range layer.SortByZ(users) {
		z++
		l.ZIndex = z
		out = append(out, l)
	}
	return out
}

func (s *Session) userLayers() []layer.Layer {
	return userLayersOf(s.layers)
}

func (s *Session) capture() *snapshot {
	return &snapshot{
		layers:    layer.CloneAll(s.layers),
		template:  s.template,
		width:     s.width,
		height:    s.height,
		visible:   copyVisibility(s.visible),
		overrides: copyOverrides(s.overrides),
		removed:   copyRemoved(s.removed),
	}
}

// dropStaleGestures forgets gesture state for layers that no longer exist.
func (s *Session) dropStaleGestures(prev []layer.Layer) {
	for _, l := range prev {
		if layer.Index(s.layers, l.ID) < 0 {
			s.gestures.Remove(l.ID)
		}
	}
}

// IsDerived reports whether a layer id was generated from a layout.
func IsDerived(id string) bool {
	return strings.HasPrefix(id, layer.FramePrefix) || strings.HasPrefix(id, layer.TemplatePrefix)
}

func userLayersOf(layers []layer.Layer) []layer.Layer {
	var out []layer.Layer
	for _, l := range layers {
		if !IsDerived(l.ID) {
			out = append(out, layer.Clone(l))
		}
	}
	return out
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func copyVisibility(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyOverrides(m map[string]override) map[string]override {
	out := make(map[string]override, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyRemoved(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}
