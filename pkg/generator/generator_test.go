package generator

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{in: "#ff8000", want: color.RGBA{R: 255, G: 128, B: 0, A: 255}, ok: true},
		{in: "00ff00", want: color.RGBA{G: 255, A: 255}, ok: true},
		{in: "#fff", want: color.RGBA{R: 255, G: 255, B: 255, A: 255}, ok: true},
		{in: "#ffffff00", want: color.RGBA{}, ok: true},
		{in: "#ff000080", want: color.RGBA{R: 128, A: 128}, ok: true},
		{in: "", ok: false},
		{in: "#12345", ok: false},
		{in: "#gg0000", ok: false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if !tt.ok {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseHexRGBAFallback(t *testing.T) {
	t.Parallel()

	white := color.RGBA{255, 255, 255, 255}
	require.Equal(t, white, ParseHexRGBA("nope", white))
	require.Equal(t, color.RGBA{A: 255}, ParseHexRGBA("#000000", white))
}

func TestNewSolidImage(t *testing.T) {
	t.Parallel()

	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	img := NewSolidImage(4, 3, c)
	require.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	require.Equal(t, c, img.RGBAAt(3, 2))
}

func TestGenerateToWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, GenerateToWriter(&buf, ".png", Config{Width: 8, Height: 6, Color: "#102030"}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())

	buf.Reset()
	require.NoError(t, GenerateToWriter(&buf, ".JPG", Config{Width: 8, Height: 6, Color: "#102030"}))
	_, err = jpeg.Decode(&buf)
	require.NoError(t, err)

	require.Error(t, GenerateToWriter(&buf, ".avi", Config{}))
	require.Error(t, GenerateToWriter(&buf, ".png", Config{Color: "bad"}))
}

func TestGenerateFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "poster.png")
	src := NewSolidImage(5, 5, color.RGBA{R: 200, A: 255})

	require.NoError(t, Generate(out, Config{Image: src}))
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), img.Bounds())

	require.Error(t, Generate(filepath.Join(dir, "poster.gif"), Config{Image: src}))
	require.True(t, Supported(".jpeg"))
	require.False(t, Supported(".bmp"))
}

func TestWritePNG(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "plain.png")
	require.NoError(t, WritePNG(out, NewSolidImage(2, 2, color.RGBA{A: 255})))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}
