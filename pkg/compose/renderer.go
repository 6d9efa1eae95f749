// renderer.go - Poster compositor. Flattens styled layers to pixels at canvas
// resolution: background art or colour first, then layers in paint order.
package compose

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/xob0t/PosterStencil/pkg/generator"
	"github.com/xob0t/PosterStencil/pkg/layer"
)

// DefaultBackgroundColor fills the canvas when no background art is set.
const DefaultBackgroundColor = "#1f2937"

// lineSpacing is the text line advance as a multiple of the font height.
const lineSpacing = 1.3

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

// Document is everything the renderer draws.
type Document struct {
	Width           float64
	Height          float64
	Background      string // image path; empty for a solid background
	BackgroundColor string
	AssetDir        string        // base for relative image paths
	Layers          []layer.Layer // drawn in ZIndex order
}

// Renderer composes documents into images.
type Renderer struct {
	fonts *FontManager
}

// NewRenderer creates a renderer using the font at fontPath, or the embedded
// Go fonts. The warning is non-empty when fontPath could not be used.
func NewRenderer(fontPath string) (*Renderer, string, error) {
	fm, warning, err := NewFontManager(fontPath)
	if err != nil {
		return nil, "", err
	}
	return &Renderer{fonts: fm}, warning, nil
}

// Render draws the document. Problems with individual assets are returned
// as warnings; the affected layer is skipped.
func (r *Renderer) Render(doc Document) (image.Image, []string, error) {
	w, h := int(math.Round(doc.Width)), int(math.Round(doc.Height))
	if w < 1 || h < 1 {
		return nil, nil, fmt.Errorf("invalid canvas %gx%g", doc.Width, doc.Height)
	}

	var warnings []string
	dc := gg.NewContext(w, h)

	if warn := r.drawBackground(dc, doc, w, h); warn != "" {
		warnings = append(warnings, warn)
	}

	for _, l := range layer.SortByZ(doc.Layers) {
		var err error
		switch l.Kind {
		case layer.KindFill:
			r.drawFill(dc, l)
		case layer.KindText:
			r.drawText(dc, l)
		case layer.KindImage, layer.KindLogo:
			err = r.drawPicture(dc, l, doc.AssetDir)
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("layer %s: %v", l.ID, err))
		}
	}

	return dc.Image(), warnings, nil
}

// RenderFile renders the document and writes it to output as PNG or JPEG.
func (r *Renderer) RenderFile(doc Document, output string) ([]string, error) {
	img, warnings, err := r.Render(doc)
	if err != nil {
		return warnings, err
	}
	if err := generator.Generate(output, generator.Config{Image: img}); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// drawBackground fills the canvas with background art, falling back to the
// background colour.
func (r *Renderer) drawBackground(dc *gg.Context, doc Document, w, h int) string {
	bgColor := doc.BackgroundColor
	if bgColor == "" {
		bgColor = DefaultBackgroundColor
	}
	dc.SetColor(generator.ParseHexRGBA(bgColor, black))
	dc.Clear()

	if doc.Background == "" {
		return ""
	}
	src, err := openAsset(doc.Background, doc.AssetDir)
	if err != nil {
		return fmt.Sprintf("background: %v, using colour fallback", err)
	}
	dc.DrawImage(imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos), 0, 0)
	return ""
}

// drawFill paints a band in its solid colour or horizontal gradient.
func (r *Renderer) drawFill(dc *gg.Context, l layer.Layer) {
	p, _ := l.Fill()
	x, y := l.Position.X, l.Position.Y
	w, h := l.Size.Width, l.Size.Height
	if w <= 0 || h <= 0 {
		return
	}

	if len(p.GradientColors) >= 2 {
		grad := gg.NewLinearGradient(x, y, x+w, y)
		last := float64(len(p.GradientColors) - 1)
		for i, c := range p.GradientColors {
			grad.AddColorStop(float64(i)/last, generator.ParseHexRGBA(c, black))
		}
		dc.SetFillStyle(grad)
	} else {
		dc.SetColor(generator.ParseHexRGBA(p.BackgroundColor, black))
	}

	r.rotated(dc, l, func() {
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
	})
}

// drawText renders wrapped, aligned text inside the layer box. Lines that
// would start below the box are dropped.
func (r *Renderer) drawText(dc *gg.Context, l layer.Layer) {
	text := strings.TrimSpace(l.Content)
	if text == "" {
		return
	}
	p, _ := l.Text()

	face := r.fonts.Face(l.FontSize(), isBold(p.FontWeight))
	dc.SetFontFace(face)
	dc.SetColor(generator.ParseHexRGBA(p.Color, white))

	ax, x := 0.0, l.Position.X
	switch p.TextAlign {
	case "center":
		ax, x = 0.5, l.Position.X+l.Size.Width/2
	case "right":
		ax, x = 1, l.Position.X+l.Size.Width
	}

	lineHeight := dc.FontHeight() * lineSpacing
	lines := fitLines(wrapText(text, l.Size.Width, face), l.Size.Height, lineHeight)

	r.rotated(dc, l, func() {
		for i, line := range lines {
			dc.DrawStringAnchored(line, x, l.Position.Y+float64(i)*lineHeight, ax, 1)
		}
	})
}

// drawPicture fits an image or logo into the layer box, centred.
func (r *Renderer) drawPicture(dc *gg.Context, l layer.Layer, assetDir string) error {
	w, h := int(math.Round(l.Size.Width)), int(math.Round(l.Size.Height))
	if w < 1 || h < 1 {
		return nil
	}

	src, err := openAsset(l.Content, assetDir)
	if err != nil {
		return err
	}
	fitted := fitInside(src, w, h)

	cx := l.Position.X + l.Size.Width/2
	cy := l.Position.Y + l.Size.Height/2
	r.rotated(dc, l, func() {
		dc.DrawImageAnchored(fitted, int(math.Round(cx)), int(math.Round(cy)), 0.5, 0.5)
	})
	return nil
}

// fitInside scales src up or down to the largest size that fits w×h while
// keeping its aspect ratio.
func fitInside(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return src
	}
	scale := math.Min(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	fw := max(1, int(math.Round(float64(b.Dx())*scale)))
	fh := max(1, int(math.Round(float64(b.Dy())*scale)))
	return imaging.Resize(src, fw, fh, imaging.Lanczos)
}

func (r *Renderer) rotated(dc *gg.Context, l layer.Layer, draw func()) {
	if l.Rotation == 0 || math.IsNaN(l.Rotation) || math.IsInf(l.Rotation, 0) {
		draw()
		return
	}
	dc.Push()
	defer dc.Pop()
	cx := l.Position.X + l.Size.Width/2
	cy := l.Position.Y + l.Size.Height/2
	dc.RotateAbout(gg.Radians(l.Rotation), cx, cy)
	draw()
}

// wrapText breaks text into lines that each fit within maxWidth pixels,
// using the metrics of face. Explicit newlines are kept.
func wrapText(text string, maxWidth float64, face font.Face) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		if maxWidth <= 0 {
			lines = append(lines, strings.Join(words, " "))
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if float64(font.MeasureString(face, candidate).Ceil()) > maxWidth {
				lines = append(lines, current)
				current = word
			} else {
				current = candidate
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// fitLines keeps the lines that fit in boxHeight. The first line is always
// kept; a non-positive height means no limit.
func fitLines(lines []string, boxHeight, lineHeight float64) []string {
	if boxHeight <= 0 || lineHeight <= 0 || math.IsNaN(boxHeight) || math.IsInf(boxHeight, 0) {
		return lines
	}
	n := max(1, int(math.Floor(boxHeight/lineHeight)))
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

// openAsset decodes a local image. Remote URIs are not fetched.
func openAsset(uri, baseDir string) (image.Image, error) {
	uri = strings.TrimSpace(uri)
	switch {
	case uri == "":
		return nil, fmt.Errorf("empty image path")
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return nil, fmt.Errorf("remote image %q is not fetched", uri)
	}

	path := strings.TrimPrefix(uri, "file://")
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	return img, nil
}

func isBold(weight string) bool {
	switch strings.ToLower(strings.TrimSpace(weight)) {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}
