package theme

import (
	"github.com/xob0t/PosterStencil/pkg/content"
	"github.com/xob0t/PosterStencil/pkg/frame"
	"github.com/xob0t/PosterStencil/pkg/layer"
)

// FooterBandHeight is the footer band's height on the reference canvas.
const FooterBandHeight = 110.0

var footerLayout = frame.Frame{
	ID:          "template-footer",
	Name:        "Template footer",
	Description: "Layout used when no frame is applied.",
	Placeholders: []frame.Placeholder{
		{Key: content.KeyLogo, Type: frame.TypeImage, X: 20, Y: 20, Width: 72, Height: 72},
		{Key: content.KeyCompanyName, Type: frame.TypeText, X: 104, Y: 30, MaxWidth: 596, FontSize: 26, FontWeight: "bold"},
		{Key: content.KeyDescription, Type: frame.TypeText, X: 104, Y: 70, MaxWidth: 596, FontSize: 13},
		{Key: content.KeyFooterBackground, Type: frame.TypeFill, X: 0, Y: frame.ReferenceHeight - FooterBandHeight, Width: frame.ReferenceWidth, Height: FooterBandHeight},
		{Key: content.KeyCategory, Type: frame.TypeText, X: 20, Y: 386, MaxWidth: 680, FontSize: 13, FontWeight: "bold"},
		{Key: content.KeyServices, Type: frame.TypeText, X: 20, Y: 406, MaxWidth: 680, FontSize: 12},
		{Key: content.KeyPhone, Type: frame.TypeText, X: 20, Y: 430, MaxWidth: 220, FontSize: 12},
		{Key: content.KeyEmail, Type: frame.TypeText, X: 250, Y: 430, MaxWidth: 220, FontSize: 12},
		{Key: content.KeyWebsite, Type: frame.TypeText, X: 480, Y: 430, MaxWidth: 220, FontSize: 12},
		{Key: content.KeyAddress, Type: frame.TypeText, X: 20, Y: 454, MaxWidth: 680, FontSize: 11},
	},
}

// FooterLayout returns the layout used when no frame is applied. The footer
// band is anchored to the bottom of the canvas.
func FooterLayout() *frame.Frame {
	f := footerLayout
	f.Placeholders = append([]frame.Placeholder(nil), footerLayout.Placeholders...)
	return &f
}

// GenerateTemplateLayers lays out content with the footer layout and styles
// it with the template.
func (t *Table) GenerateTemplateLayers(templateID string, m content.Mapping, canvasWidth, canvasHeight float64) []layer.Layer {
	layers := layer.Generate(FooterLayout(), m, canvasWidth, canvasHeight, layer.TemplatePrefix)
	return t.Apply(templateID, layers)
}
