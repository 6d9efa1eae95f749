package theme

import (
	"github.com/xob0t/PosterStencil/pkg/content"
	"github.com/xob0t/PosterStencil/pkg/layer"
)

// footerTextRoles are the text fields recoloured by a template. Company name
// and logo keep the frame's own styling.
var footerTextRoles = map[string]struct{}{
	content.KeyPhone:    {},
	content.KeyEmail:    {},
	content.KeyWebsite:  {},
	content.KeyCategory: {},
	content.KeyAddress:  {},
	content.KeyServices: {},
}

// IsFooterTextRole reports whether a field type takes the template text colour.
func IsFooterTextRole(fieldType string) bool {
	_, ok := footerTextRoles[fieldType]
	return ok
}

// Apply returns a copy of layers with template styling applied: the footer
// band gets the template fill and gradient, footer text roles get the
// template text colour. Other layers pass through. Apply is idempotent and
// does not modify its input.
func (t *Table) Apply(templateID string, layers []layer.Layer) []layer.Layer {
	fill := t.Fill(templateID)
	textColor := t.TextColor(templateID)

	out := layer.CloneAll(layers)
	for i := range out {
		l := &out[i]

		switch {
		case l.FieldType == content.KeyFooterBackground:
			p, _ := l.Fill()
			p.BackgroundColor = fill.Color
			p.GradientColors = nil
			if len(fill.Gradient) >= 2 {
				p.GradientColors = append([]string(nil), fill.Gradient...)
			}
			l.Paint = p

		case IsFooterTextRole(l.FieldType):
			p, ok := l.Text()
			if !ok {
				continue
			}
			p.Color = textColor
			l.Paint = p
		}
	}
	return out
}
