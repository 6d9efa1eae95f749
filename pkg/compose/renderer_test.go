package compose

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xob0t/PosterStencil/pkg/generator"
	"github.com/xob0t/PosterStencil/pkg/layer"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, warning, err := NewRenderer("")
	require.NoError(t, err)
	require.Empty(t, warning)
	return r
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func requireColor(t *testing.T, want, got color.RGBA) {
	t.Helper()
	require.InDelta(t, want.R, got.R, 3, "red")
	require.InDelta(t, want.G, got.G, 3, "green")
	require.InDelta(t, want.B, got.B, 3, "blue")
	require.InDelta(t, want.A, got.A, 3, "alpha")
}

func writeSolid(t *testing.T, dir, name string, c color.RGBA) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, generator.WritePNG(path, generator.NewSolidImage(10, 10, c)))
	return path
}

func TestRenderBackgroundColor(t *testing.T) {
	t.Parallel()

	img, warnings, err := newRenderer(t).Render(Document{Width: 40, Height: 30, BackgroundColor: "#336699"})
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())
	requireColor(t, color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 255}, rgbaAt(img, 20, 15))
}

func TestRenderBackgroundArt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSolid(t, dir, "art.png", color.RGBA{G: 200, A: 255})

	img, warnings, err := newRenderer(t).Render(Document{Width: 64, Height: 48, Background: "art.png", AssetDir: dir})
	require.NoError(t, err)
	require.Empty(t, warnings)
	requireColor(t, color.RGBA{G: 200, A: 255}, rgbaAt(img, 32, 24))
}

func TestRenderMissingBackgroundFallsBack(t *testing.T) {
	t.Parallel()

	img, warnings, err := newRenderer(t).Render(Document{Width: 10, Height: 10, Background: "/nope/art.png", BackgroundColor: "#ff0000"})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	requireColor(t, color.RGBA{R: 255, A: 255}, rgbaAt(img, 5, 5))
}

func TestRenderFillBands(t *testing.T) {
	t.Parallel()

	doc := Document{
		Width: 100, Height: 100, BackgroundColor: "#000000",
		Layers: []layer.Layer{
			{ID: "solid", Kind: layer.KindFill, ZIndex: 10, Position: layer.Point{X: 0, Y: 0}, Size: layer.Size{Width: 100, Height: 40}, Paint: layer.FillPaint{BackgroundColor: "#00ff00"}},
			{ID: "grad", Kind: layer.KindFill, ZIndex: 11, Position: layer.Point{X: 0, Y: 60}, Size: layer.Size{Width: 100, Height: 40}, Paint: layer.FillPaint{BackgroundColor: "#ff0000", GradientColors: []string{"#ff0000", "#0000ff"}}},
		},
	}
	img, _, err := newRenderer(t).Render(doc)
	require.NoError(t, err)

	requireColor(t, color.RGBA{G: 255, A: 255}, rgbaAt(img, 50, 20))
	requireColor(t, color.RGBA{A: 255}, rgbaAt(img, 50, 50))

	left, right := rgbaAt(img, 2, 80), rgbaAt(img, 97, 80)
	require.Greater(t, left.R, left.B)
	require.Greater(t, right.B, right.R)
}

func TestRenderZOrder(t *testing.T) {
	t.Parallel()

	band := func(id string, z int, c string) layer.Layer {
		return layer.Layer{ID: id, Kind: layer.KindFill, ZIndex: z, Size: layer.Size{Width: 20, Height: 20}, Paint: layer.FillPaint{BackgroundColor: c}}
	}
	doc := Document{Width: 20, Height: 20, Layers: []layer.Layer{band("top", 12, "#0000ff"), band("bottom", 10, "#ff0000")}}
	img, _, err := newRenderer(t).Render(doc)
	require.NoError(t, err)
	requireColor(t, color.RGBA{B: 255, A: 255}, rgbaAt(img, 10, 10))
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	doc := Document{
		Width: 200, Height: 60, BackgroundColor: "#000000",
		Layers: []layer.Layer{{
			ID: "t", Kind: layer.KindText, Content: "Hello poster", ZIndex: 10,
			Position: layer.Point{X: 10, Y: 10}, Size: layer.Size{Width: 180, Height: 40},
			Paint: layer.TextPaint{FontSize: 24, Color: "#ffffff", FontWeight: "bold"},
		}},
	}
	img, _, err := newRenderer(t).Render(doc)
	require.NoError(t, err)

	lit := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if rgbaAt(img, x, y).R > 128 {
				lit++
				require.GreaterOrEqual(t, x, 8, "text drawn inside its box")
			}
		}
	}
	require.Positive(t, lit)
}

func TestRenderTextStaysInBox(t *testing.T) {
	t.Parallel()

	doc := Document{
		Width: 200, Height: 200, BackgroundColor: "#000000",
		Layers: []layer.Layer{{
			ID: "t", Kind: layer.KindText, Content: "A\nB\nC\nD", ZIndex: 10,
			Position: layer.Point{X: 10, Y: 10}, Size: layer.Size{Width: 180, Height: 20},
			Paint: layer.TextPaint{FontSize: 20, Color: "#ffffff"},
		}},
	}
	img, _, err := newRenderer(t).Render(doc)
	require.NoError(t, err)

	lit := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if rgbaAt(img, x, y).R > 128 {
				lit++
				require.Less(t, y, 45, "only the first line is drawn")
			}
		}
	}
	require.Positive(t, lit)
}

func TestFitLines(t *testing.T) {
	t.Parallel()

	lines := []string{"a", "b", "c", "d"}
	require.Equal(t, []string{"a", "b"}, fitLines(lines, 55, 26))
	require.Equal(t, []string{"a"}, fitLines(lines, 10, 26))
	require.Equal(t, lines, fitLines(lines, 0, 26))
	require.Equal(t, lines, fitLines(lines, 500, 26))
}

func TestRenderPictures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logo := writeSolid(t, dir, "logo.png", color.RGBA{B: 255, A: 255})

	doc := Document{
		Width: 100, Height: 100, BackgroundColor: "#000000",
		Layers: []layer.Layer{
			{ID: "logo", Kind: layer.KindLogo, Content: "file://" + logo, ZIndex: 10, Position: layer.Point{X: 10, Y: 10}, Size: layer.Size{Width: 40, Height: 40}},
			{ID: "missing", Kind: layer.KindImage, Content: "gone.png", ZIndex: 11, Size: layer.Size{Width: 10, Height: 10}},
			{ID: "remote", Kind: layer.KindImage, Content: "https://example.test/a.png", ZIndex: 12, Size: layer.Size{Width: 10, Height: 10}},
		},
		AssetDir: dir,
	}
	img, warnings, err := newRenderer(t).Render(doc)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	require.Contains(t, warnings[0], "layer missing")
	require.Contains(t, warnings[1], "layer remote")

	requireColor(t, color.RGBA{B: 255, A: 255}, rgbaAt(img, 30, 30))
	requireColor(t, color.RGBA{B: 255, A: 255}, rgbaAt(img, 12, 47))
	requireColor(t, color.RGBA{A: 255}, rgbaAt(img, 70, 70))
}

func TestRenderInvalidCanvas(t *testing.T) {
	t.Parallel()

	_, _, err := newRenderer(t).Render(Document{Width: 0, Height: 10})
	require.Error(t, err)
}

func TestRenderFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "poster.jpg")
	_, err := newRenderer(t).RenderFile(Document{Width: 16, Height: 16}, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestWrapText(t *testing.T) {
	t.Parallel()

	fm, _, err := NewFontManager("")
	require.NoError(t, err)
	face := fm.Face(12, false)

	require.Equal(t, []string{"one two three"}, wrapText("one  two three", 0, face))
	require.Equal(t, []string{"one", "two", "three"}, wrapText("one two three", 1, face))
	require.Equal(t, []string{"a b", "c"}, wrapText("a b\n\nc", 500, face))
	require.Empty(t, wrapText("   ", 100, face))
}

func TestFontManagerFallback(t *testing.T) {
	t.Parallel()

	fm, warning, err := NewFontManager(filepath.Join(t.TempDir(), "missing.ttf"))
	require.NoError(t, err)
	require.Contains(t, warning, "missing.ttf")
	require.NotNil(t, fm.Face(14, true))
	require.Same(t, fm.Face(14, true), fm.Face(14, true))

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(bad, []byte("not a font"), 0o644))
	_, warning, err = NewFontManager(bad)
	require.NoError(t, err)
	require.NotEmpty(t, warning)
}

func TestIsBold(t *testing.T) {
	t.Parallel()

	for weight, want := range map[string]bool{"bold": true, "Bold": true, "700": true, "600": true, "400": false, "": false, "normal": false} {
		require.Equal(t, want, isBold(weight), weight)
	}
}
