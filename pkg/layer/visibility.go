package layer

import (
	"sort"
	"strings"

	"github.com/xob0t/PosterStencil/pkg/content"
)

// IsVisible reports whether a layer is shown under the visibility flags.
// Layers without a field type, and fields without a flag, are visible.
func IsVisible(l Layer, visibility map[string]bool) bool {
	if l.FieldType == "" {
		return true
	}
	shown, ok := visibility[l.FieldType]
	return !ok || shown
}

// HasVisibleContent reports whether any visible layer other than the footer
// band has non-blank content. Export requires it.
func HasVisibleContent(layers []Layer, visibility map[string]bool) bool {
	for _, l := range layers {
		if l.FieldType == content.KeyFooterBackground {
			continue
		}
		if IsVisible(l, visibility) && strings.TrimSpace(l.Content) != "" {
			return true
		}
	}
	return false
}

// Visible returns the visible layers in their original order.
func Visible(layers []Layer, visibility map[string]bool) []Layer {
	out := make([]Layer, 0, len(layers))
	for _, l := range layers {
		if IsVisible(l, visibility) {
			out = append(out, l)
		}
	}
	return out
}

// SortByZ returns a copy ordered by ZIndex; equal indexes keep their order.
func SortByZ(layers []Layer) []Layer {
	out := CloneAll(layers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZIndex < out[j].ZIndex
	})
	return out
}

// MaxZIndex returns the highest ZIndex, or BaseZIndex-1 for an empty set.
func MaxZIndex(layers []Layer) int {
	z := BaseZIndex - 1
	for _, l := range layers {
		if l.ZIndex > z {
			z = l.ZIndex
		}
	}
	return z
}
