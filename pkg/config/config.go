// Package config loads editor and export settings from defaults, an optional
// YAML file and environment variables.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xob0t/PosterStencil/pkg/frame"
)

const (
	defaultSnapThreshold = 8.0
	defaultTemplate      = "classic"
	defaultPadding       = 16.0
	defaultToolbarHeight = 56.0
	defaultLogLevel      = "info"
)

// Environment keys.
const (
	EnvSnapThreshold   = "POSTERSTENCIL_SNAP_THRESHOLD"
	EnvDefaultTemplate = "POSTERSTENCIL_DEFAULT_TEMPLATE"
	EnvCanvasPadding   = "POSTERSTENCIL_CANVAS_PADDING"
	EnvToolbarHeight   = "POSTERSTENCIL_TOOLBAR_HEIGHT"
	EnvFontPath        = "POSTERSTENCIL_FONT_PATH"
	EnvOutputDir       = "POSTERSTENCIL_OUTPUT_DIR"
	EnvLogLevel        = "LOG_LEVEL"
)

// Config captures runtime configuration organised by concern.
type Config struct {
	Editor EditorConfig `yaml:"editor"`
	Canvas CanvasConfig `yaml:"canvas"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// EditorConfig tunes the interactive editor.
type EditorConfig struct {
	SnapThreshold   float64 `yaml:"snapThreshold"`
	DefaultTemplate string  `yaml:"defaultTemplate"`
}

// CanvasConfig feeds the canvas size resolver.
type CanvasConfig struct {
	Padding       float64 `yaml:"padding"`
	ToolbarHeight float64 `yaml:"toolbarHeight"`
	PosterAspect  float64 `yaml:"posterAspect"`
}

// ExportConfig controls poster export.
type ExportConfig struct {
	FontPath  string `yaml:"fontPath"`
	OutputDir string `yaml:"outputDir"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ValidationError is returned when configuration fields are invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	file         string
	envMap       map[string]string
	useSystemEnv bool
}

// WithFile reads a YAML config file before applying environment overrides.
func WithFile(path string) Option {
	return func(o *loaderOptions) {
		o.file = path
	}
}

// WithEnvMap injects explicit environment values. They take precedence over
// system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			SnapThreshold:   defaultSnapThreshold,
			DefaultTemplate: defaultTemplate,
		},
		Canvas: CanvasConfig{
			Padding:       defaultPadding,
			ToolbarHeight: defaultToolbarHeight,
			PosterAspect:  frame.ReferenceWidth / frame.ReferenceHeight,
		},
		Log: LogConfig{Level: defaultLogLevel},
	}
}

// Load assembles the configuration: defaults, then the YAML file, then the
// system environment, then the explicit env map.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{useSystemEnv: true}
	for _, opt := range opts {
		opt(&options)
	}

	cfg := Defaults()

	if options.file != "" {
		data, err := os.ReadFile(options.file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		return "", false
	}

	var invalid []string

	floatVar := func(key, field string, dst *float64) {
		raw, ok := lookup(key)
		if !ok || strings.TrimSpace(raw) == "" {
			return
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			invalid = append(invalid, field)
			return
		}
		*dst = v
	}
	stringVar := func(key string, dst *string) {
		if raw, ok := lookup(key); ok && strings.TrimSpace(raw) != "" {
			*dst = strings.TrimSpace(raw)
		}
	}

	floatVar(EnvSnapThreshold, "Editor.SnapThreshold", &cfg.Editor.SnapThreshold)
	floatVar(EnvCanvasPadding, "Canvas.Padding", &cfg.Canvas.Padding)
	floatVar(EnvToolbarHeight, "Canvas.ToolbarHeight", &cfg.Canvas.ToolbarHeight)
	stringVar(EnvDefaultTemplate, &cfg.Editor.DefaultTemplate)
	stringVar(EnvFontPath, &cfg.Export.FontPath)
	stringVar(EnvOutputDir, &cfg.Export.OutputDir)
	stringVar(EnvLogLevel, &cfg.Log.Level)

	invalid = append(invalid, cfg.validate()...)
	if len(invalid) > 0 {
		return Config{}, &ValidationError{fields: dedupe(invalid)}
	}

	return cfg, nil
}

func (c Config) validate() []string {
	var invalid []string
	if !finitePositive(c.Editor.SnapThreshold) {
		invalid = append(invalid, "Editor.SnapThreshold")
	}
	if c.Editor.DefaultTemplate == "" {
		invalid = append(invalid, "Editor.DefaultTemplate")
	}
	if c.Canvas.Padding < 0 || math.IsNaN(c.Canvas.Padding) || math.IsInf(c.Canvas.Padding, 0) {
		invalid = append(invalid, "Canvas.Padding")
	}
	if c.Canvas.ToolbarHeight < 0 || math.IsNaN(c.Canvas.ToolbarHeight) || math.IsInf(c.Canvas.ToolbarHeight, 0) {
		invalid = append(invalid, "Canvas.ToolbarHeight")
	}
	if !finitePositive(c.Canvas.PosterAspect) {
		invalid = append(invalid, "Canvas.PosterAspect")
	}
	return invalid
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func dedupe(fields []string) []string {
	seen := make(map[string]struct{}, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// Example returns the sample config written by `posterstencil init`. Its
// values match Defaults.
func Example() string {
	return `# posterstencil configuration. Environment variables override these values.
editor:
  snapThreshold: 8
  defaultTemplate: classic
canvas:
  padding: 16
  toolbarHeight: 56
export:
  fontPath: ""
  outputDir: ""
log:
  level: info
`
}
