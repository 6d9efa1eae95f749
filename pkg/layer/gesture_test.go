package layer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xob0t/PosterStencil/pkg/content"
)

func TestGestureStatesLifecycle(t *testing.T) {
	t.Parallel()

	g := NewGestureStates()

	s := g.Ensure("a")
	require.Equal(t, 1.0, s.Scale)
	require.False(t, s.Active)
	require.Same(t, s, g.Ensure("a"))

	s.Translation = Point{X: 5}
	r := g.Reset("a", Point{X: 10, Y: 20})
	require.Same(t, s, r)
	require.True(t, r.Active)
	require.Equal(t, Point{}, r.Translation)
	require.Equal(t, Point{X: 10, Y: 20}, r.Origin)

	g.Ensure("b")
	require.Equal(t, 2, g.Len())

	g.Remove("a")
	_, ok := g.Get("a")
	require.False(t, ok)

	g.Clear()
	require.Zero(t, g.Len())
}

func TestVisibilityHelpers(t *testing.T) {
	t.Parallel()

	layers := []Layer{
		{ID: "bg", Kind: KindFill, FieldType: content.KeyFooterBackground, ZIndex: 11},
		{ID: "p", Kind: KindText, FieldType: "phone", Content: "555", ZIndex: 12},
		{ID: "free", Kind: KindText, Content: "  ", ZIndex: 10},
	}

	require.True(t, IsVisible(layers[1], nil))
	require.True(t, IsVisible(layers[2], map[string]bool{"": false}))
	require.True(t, HasVisibleContent(layers, nil))
	require.False(t, HasVisibleContent(layers, map[string]bool{"phone": false}))
	require.Len(t, Visible(layers, map[string]bool{"phone": false}), 2)

	sorted := SortByZ(layers)
	require.Equal(t, []string{"free", "bg", "p"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	require.Equal(t, "bg", layers[0].ID)

	require.Equal(t, 12, MaxZIndex(layers))
	require.Equal(t, BaseZIndex-1, MaxZIndex(nil))
}
