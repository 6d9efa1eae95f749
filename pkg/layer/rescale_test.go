package layer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRescaleLayerProportional(t *testing.T) {
	t.Parallel()

	l := Layer{ID: "u", Kind: KindText, Content: "Hi", Position: Point{X: 100, Y: 50}, Size: Size{Width: 200, Height: 60}, Paint: TextPaint{FontSize: 20}}
	out := RescaleLayer(l, 400, 200, 800, 300)

	require.Equal(t, Point{X: 200, Y: 75}, out.Position)
	require.Equal(t, Size{Width: 400, Height: 90}, out.Size)
	require.Equal(t, 30.0, out.FontSize())
	require.Equal(t, 20.0, l.FontSize(), "input untouched")
}

func TestRescaleLayerClampsInside(t *testing.T) {
	t.Parallel()

	l := box("u", 350, 180, 100, 30)
	out := RescaleLayer(l, 400, 200, 400, 200)

	require.Equal(t, Point{X: 300, Y: 170}, out.Position)

	huge := box("h", 10, 10, 1000, 1000)
	out = RescaleLayer(huge, 500, 500, 250, 250)
	require.Equal(t, Size{Width: 250, Height: 250}, out.Size)
	require.Equal(t, Point{}, out.Position)
}

func TestClampLayerContainsTextBox(t *testing.T) {
	t.Parallel()

	const w, h = 400.0, 300.0
	l := Layer{ID: "t", Kind: KindText, Content: "Hi", Position: Point{X: 350, Y: 280}, Size: Size{Width: 200, Height: 60}, Paint: TextPaint{FontSize: 10}}
	out := ClampLayer(l, w, h)

	require.Equal(t, Point{X: 350, Y: 280}, out.Position, "estimate fits, so no move")
	require.LessOrEqual(t, out.Position.X+out.Size.Width, w)
	require.LessOrEqual(t, out.Position.Y+out.Size.Height, h)
	require.Equal(t, Size{Width: 50, Height: 20}, out.Size)
}

func TestRescaleLayerBadDimensions(t *testing.T) {
	t.Parallel()

	l := box("u", 10, 10, 20, 20)

	out := RescaleLayer(l, 0, 0, 100, 100)
	require.Equal(t, l.Position, out.Position)

	out = RescaleLayer(l, 100, 100, math.NaN(), math.Inf(1))
	require.Equal(t, Point{}, out.Position)
	require.Equal(t, Size{}, out.Size)
}

func TestRescaleRoundTripWithinOnePixel(t *testing.T) {
	t.Parallel()

	original := []Layer{
		box("a", 12.5, 40, 80, 80),
		box("b", 200, 100, 50, 25),
	}
	sizes := [][2]float64{{400, 270}, {812, 375}, {375, 812}, {390.5, 264.3}, {400, 270}}

	current := CloneAll(original)
	prev := sizes[0]
	for _, s := range sizes[1:] {
		current = RescaleLayers(current, prev[0], prev[1], s[0], s[1])
		prev = s
	}

	for i := range original {
		require.InDelta(t, original[i].Position.X, current[i].Position.X, 1)
		require.InDelta(t, original[i].Position.Y, current[i].Position.Y, 1)
		require.InDelta(t, original[i].Size.Width, current[i].Size.Width, 1)
		require.InDelta(t, original[i].Size.Height, current[i].Size.Height, 1)
	}
}

func TestCloneDeepCopiesGradient(t *testing.T) {
	t.Parallel()

	l := Layer{ID: "f", Kind: KindFill, Paint: FillPaint{GradientColors: []string{"#000000", "#ffffff"}}}
	c := Clone(l)

	fill, _ := c.Fill()
	fill.GradientColors[0] = "#123456"

	orig, _ := l.Fill()
	require.Equal(t, "#000000", orig.GradientColors[0])
	require.Nil(t, CloneAll(nil))
}
