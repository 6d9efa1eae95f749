// Package theme holds the template style tables and applies template
// colours to the footer band and footer text layers.
package theme

import "sort"

// DefaultTemplate is used whenever a template id is unknown.
const DefaultTemplate = "classic"

// Fill is a template's footer band paint.
type Fill struct {
	Color    string
	Gradient []string // nil when the template has a solid band
}

// Template is one named colour scheme.
type Template struct {
	ID        string
	Name      string
	Fill      Fill
	TextColor string
}

// Table maps template ids to their band fill and text colour. Fills and text
// colours are kept in separate tables so either can be overridden alone.
type Table struct {
	names    map[string]string
	fills    map[string]Fill
	text     map[string]string
	fallback string
}

// NewTable builds a table. The first template is the fallback unless one
// with id DefaultTemplate is present.
func NewTable(templates ...Template) *Table {
	t := &Table{
		names: make(map[string]string, len(templates)),
		fills: make(map[string]Fill, len(templates)),
		text:  make(map[string]string, len(templates)),
	}
	for _, tpl := range templates {
		t.names[tpl.ID] = tpl.Name
		t.fills[tpl.ID] = tpl.Fill
		t.text[tpl.ID] = tpl.TextColor
		if t.fallback == "" || tpl.ID == DefaultTemplate {
			t.fallback = tpl.ID
		}
	}
	return t
}

// Builtin returns the built-in template table.
func Builtin() *Table {
	return NewTable(builtins...)
}

var builtins = []Template{
	{ID: "classic", Name: "Classic", Fill: Fill{Color: "#1f2937"}, TextColor: "#ffffff"},
	{ID: "ocean", Name: "Ocean", Fill: Fill{Color: "#0e7490", Gradient: []string{"#0e7490", "#1e3a8a"}}, TextColor: "#ffffff"},
	{ID: "sunset", Name: "Sunset", Fill: Fill{Color: "#f97316", Gradient: []string{"#f97316", "#db2777"}}, TextColor: "#ffffff"},
	{ID: "forest", Name: "Forest", Fill: Fill{Color: "#166534", Gradient: []string{"#166534", "#65a30d"}}, TextColor: "#f0fdf4"},
	{ID: "royal", Name: "Royal", Fill: Fill{Color: "#4c1d95", Gradient: []string{"#4c1d95", "#a21caf", "#f59e0b"}}, TextColor: "#fef3c7"},
	{ID: "midnight", Name: "Midnight", Fill: Fill{Color: "#0f172a"}, TextColor: "#e2e8f0"},
	{ID: "monochrome", Name: "Monochrome", Fill: Fill{Color: "#f5f5f5"}, TextColor: "#111111"},
}

// Has reports whether id is a known template.
func (t *Table) Has(id string) bool {
	_, ok := t.fills[id]
	return ok
}

// Resolve returns id when known, otherwise the fallback template id.
func (t *Table) Resolve(id string) string {
	if t.Has(id) {
		return id
	}
	return t.fallback
}

// Fill returns the band paint for id, falling back to the default template.
func (t *Table) Fill(id string) Fill {
	f := t.fills[t.Resolve(id)]
	if f.Gradient != nil {
		f.Gradient = append([]string(nil), f.Gradient...)
	}
	return f
}

// TextColor returns the footer text colour for id, falling back to the
// default template.
func (t *Table) TextColor(id string) string {
	if c, ok := t.text[id]; ok && c != "" {
		return c
	}
	return t.text[t.fallback]
}

// Name returns the display name for id.
func (t *Table) Name(id string) string {
	return t.names[t.Resolve(id)]
}

// IDs returns every template id, sorted.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.fills))
	for id := range t.fills {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
