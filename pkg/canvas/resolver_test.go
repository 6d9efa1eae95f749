package canvas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosterPortrait(t *testing.T) {
	t.Parallel()

	r := NewResolver(0, 0)
	got := r.Poster(Screen{Width: 720, Height: 1600})
	require.InDelta(t, 720, got.Width, 1e-9)
	require.InDelta(t, 487.2, got.Height, 1e-9)
}

func TestPosterLandscapeIsHeightBound(t *testing.T) {
	t.Parallel()

	r := NewResolver(10, 60)
	s := Screen{Width: 1600, Height: 720, Insets: Insets{Top: 20, Bottom: 20, Left: 40, Right: 40}, Orientation: Landscape}

	avail := r.Available(s)
	require.Equal(t, Size{Width: 1600 - 80 - 20 - 60, Height: 720 - 40 - 20}, avail)

	got := r.Poster(s)
	require.InDelta(t, 660, got.Height, 1e-9)
	require.InDelta(t, 660*r.PosterAspect, got.Width, 1e-9)
	require.LessOrEqual(t, got.Width, avail.Width)
}

func TestVideoPreservesAspect(t *testing.T) {
	t.Parallel()

	r := NewResolver(0, 100)
	s := Screen{Width: 400, Height: 900}

	got := r.Video(s, 1080, 1920)
	require.InDelta(t, 1080.0/1920.0, got.Width/got.Height, 1e-9)
	require.LessOrEqual(t, got.Height, 800.0)
	require.InDelta(t, 400, got.Width, 1e-9)
	require.InDelta(t, 400*1920.0/1080.0, got.Height, 1e-9)

	tall := r.Video(s, 540, 1920)
	require.InDelta(t, 800, tall.Height, 1e-9)
	require.InDelta(t, 225, tall.Width, 1e-9)

	wide := r.Video(s, 1920, 1080)
	require.InDelta(t, 400, wide.Width, 1e-9)
	require.InDelta(t, 225, wide.Height, 1e-9)
}

func TestVideoUnknownSizeFallsBack(t *testing.T) {
	t.Parallel()

	r := NewResolver(0, 0)
	s := Screen{Width: 720, Height: 1600}
	require.Equal(t, r.Poster(s), r.Video(s, 0, 0))
	require.Equal(t, r.Poster(s), r.Video(s, math.NaN(), 100))
}

func TestDegenerateScreen(t *testing.T) {
	t.Parallel()

	r := NewResolver(50, 50)
	require.Equal(t, Size{}, r.Poster(Screen{Width: 80, Height: 80}))
	require.Equal(t, Size{}, r.Poster(Screen{Width: math.Inf(1), Height: math.NaN()}))
	require.False(t, Size{}.Valid())
}
