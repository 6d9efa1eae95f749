package frame

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed frames.yaml
var builtinYAML []byte

// catalogFile is the on-disk shape of frames.yaml.
type catalogFile struct {
	Frames []Frame `yaml:"frames"`
}

// Catalog is an ordered, id-indexed set of frames.
type Catalog struct {
	frames []Frame
	byID   map[string]int
}

// NewCatalog builds a catalog from frames. Later frames replace earlier ones
// with the same id, keeping the original position.
func NewCatalog(frames ...Frame) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(frames))}
	c.Add(frames...)
	return c
}

// Builtin parses the embedded frame catalog.
func Builtin() (*Catalog, error) {
	frames, err := ParseFrames(builtinYAML)
	if err != nil {
		return nil, fmt.Errorf("builtin frames: %w", err)
	}
	return NewCatalog(frames...), nil
}

// ParseFrames decodes a frames.yaml document. JSON input is accepted too.
func ParseFrames(data []byte) ([]Frame, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse frames: %w", err)
	}
	return file.Frames, nil
}

// Add inserts or replaces frames by id.
func (c *Catalog) Add(frames ...Frame) {
	for _, f := range frames {
		if i, ok := c.byID[f.ID]; ok {
			c.frames[i] = f
			continue
		}
		c.byID[f.ID] = len(c.frames)
		c.frames = append(c.frames, f)
	}
}

// Get returns the frame with the given id.
func (c *Catalog) Get(id string) (*Frame, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	f := c.frames[i]
	return &f, true
}

// All returns every frame in catalog order.
func (c *Catalog) All() []Frame {
	out := make([]Frame, len(c.frames))
	copy(out, c.frames)
	return out
}

// ByCategory returns the frames in a category, in catalog order.
func (c *Catalog) ByCategory(category string) []Frame {
	var out []Frame
	for _, f := range c.frames {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	for _, f := range c.frames {
		if f.Category != "" {
			seen[f.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of frames.
func (c *Catalog) Len() int { return len(c.frames) }
