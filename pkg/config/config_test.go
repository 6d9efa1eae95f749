package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithoutSystemEnv())
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
	require.Equal(t, 8.0, cfg.Editor.SnapThreshold)
	require.Equal(t, "classic", cfg.Editor.DefaultTemplate)
}

func TestLoadPrecedence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
editor:
  snapThreshold: 6
  defaultTemplate: ocean
canvas:
  padding: 4
export:
  fontPath: /fonts/a.ttf
`), 0o644))

	cfg, err := Load(WithoutSystemEnv(), WithFile(path), WithEnvMap(map[string]string{
		EnvDefaultTemplate: "sunset",
		EnvLogLevel:        "debug",
	}))
	require.NoError(t, err)

	require.Equal(t, 6.0, cfg.Editor.SnapThreshold)
	require.Equal(t, "sunset", cfg.Editor.DefaultTemplate)
	require.Equal(t, 4.0, cfg.Canvas.Padding)
	require.Equal(t, defaultToolbarHeight, cfg.Canvas.ToolbarHeight)
	require.Equal(t, "/fonts/a.ttf", cfg.Export.FontPath)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	_, err := Load(WithoutSystemEnv(), WithEnvMap(map[string]string{
		EnvSnapThreshold: "abc",
		EnvCanvasPadding: "-3",
	}))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []string{"Editor.SnapThreshold", "Canvas.Padding"}, verr.Fields())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(WithoutSystemEnv(), WithFile(filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
}

func TestExampleMatchesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "posterstencil.yaml")
	require.NoError(t, os.WriteFile(path, []byte(Example()), 0o644))

	cfg, err := Load(WithFile(path), WithoutSystemEnv())
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}
