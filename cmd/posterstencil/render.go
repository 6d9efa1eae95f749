package main

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/xob0t/PosterStencil/pkg/canvas"
	"github.com/xob0t/PosterStencil/pkg/compose"
	"github.com/xob0t/PosterStencil/pkg/config"
	"github.com/xob0t/PosterStencil/pkg/content"
	"github.com/xob0t/PosterStencil/pkg/editor"
	"github.com/xob0t/PosterStencil/pkg/frame"
	"github.com/xob0t/PosterStencil/pkg/generator"
	"github.com/xob0t/PosterStencil/pkg/observability"
	"github.com/xob0t/PosterStencil/pkg/theme"
)

type renderOptions struct {
	output      string
	profilePath string
	frameID     string
	templateID  string
	bundlePath  string
	background  string
	hide        string
	width       float64
	height      float64
	screen      string
	landscape   bool
	media       string
	configPath  string
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)

	var o renderOptions
	fs.StringVar(&o.output, "o", "", "Output file path (.png, .jpg or .jpeg)")
	fs.StringVar(&o.output, "output", "", "Output file path (.png, .jpg or .jpeg)")
	fs.StringVar(&o.profilePath, "profile", "", "Business profile YAML/JSON")
	fs.StringVar(&o.frameID, "frame", "", "Frame id to apply")
	fs.StringVar(&o.templateID, "template", "", "Template id for the no-frame layout")
	fs.StringVar(&o.bundlePath, "bundle", "", "Path to a .gsframes bundle")
	fs.StringVar(&o.background, "background", "", "Poster art used without a frame")
	fs.StringVar(&o.hide, "hide", "", "Comma-separated fields to hide")
	fs.Float64Var(&o.width, "width", 0, "Canvas width in pixels")
	fs.Float64Var(&o.height, "height", 0, "Canvas height in pixels")
	fs.StringVar(&o.screen, "screen", "", "Screen size WxH to derive the canvas from")
	fs.BoolVar(&o.landscape, "landscape", false, "Screen is in landscape orientation")
	fs.StringVar(&o.media, "media", "", "Natural size WxH of a video background")
	fs.StringVar(&o.configPath, "config", "", "Path to config YAML")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if o.output == "" {
		printUsage()
		return fmt.Errorf("output file is required (-o)")
	}
	if !generator.Supported(filepath.Ext(o.output)) {
		return fmt.Errorf("unsupported output %q: use .png, .jpg or .jpeg", o.output)
	}
	if o.profilePath == "" {
		return fmt.Errorf("--profile is required")
	}

	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return render(o, cfg, logger)
}

func render(o renderOptions, cfg config.Config, logger *zap.Logger) error {
	catalog, cleanup, err := loadCatalog(o.bundlePath, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	profile, err := content.LoadProfile(o.profilePath)
	if err != nil {
		return err
	}

	size, err := canvasSize(o, cfg.Canvas)
	if err != nil {
		return err
	}

	session := editor.NewSession(catalog, theme.Builtin(),
		editor.WithLogger(logger),
		editor.WithSnapThreshold(cfg.Editor.SnapThreshold),
		editor.WithTemplate(cfg.Editor.DefaultTemplate),
		editor.WithCanvas(size.Width, size.Height),
	)
	session.SelectProfile(profile)
	session.SetBackground(o.background)

	if o.templateID != "" {
		if err := session.ApplyTemplate(o.templateID); err != nil {
			return err
		}
	}
	if o.frameID != "" {
		if err := session.ApplyFrame(o.frameID); err != nil {
			return fmt.Errorf("%w (run 'posterstencil frames' to list frames)", err)
		}
	}
	for _, key := range splitList(o.hide) {
		session.SetVisible(key, false)
	}

	exp, err := session.Export()
	if err != nil {
		if errors.Is(err, editor.ErrNoVisibleContent) {
			return fmt.Errorf("nothing to export: %w", err)
		}
		return err
	}

	renderer, warning, err := compose.NewRenderer(cfg.Export.FontPath)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	if warning != "" {
		logger.Warn(warning)
	}

	output := o.output
	if cfg.Export.OutputDir != "" && !filepath.IsAbs(output) {
		output = filepath.Join(cfg.Export.OutputDir, output)
	}

	fmt.Printf("Rendering %gx%g poster: %s\n", exp.Width, exp.Height, output)
	warnings, err := renderer.RenderFile(compose.Document{
		Width:      exp.Width,
		Height:     exp.Height,
		Background: exp.Background,
		AssetDir:   filepath.Dir(o.profilePath),
		Layers:     exp.Layers,
	}, output)
	for _, w := range warnings {
		logger.Warn("render warning", zap.String("detail", w))
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	logger.Info("poster rendered",
		zap.String("output", output),
		zap.String("template", session.TemplateID()),
		zap.String("frame", o.frameID),
		zap.Int("layers", len(exp.Layers)),
	)
	fmt.Printf("Done: %s\n", output)
	return nil
}

func loadConfig(path string) (config.Config, error) {
	var opts []config.Option
	if path != "" {
		opts = append(opts, config.WithFile(path))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// loadCatalog returns the built-in frames plus those of an optional bundle.
func loadCatalog(bundlePath string, logger *zap.Logger) (*frame.Catalog, func(), error) {
	noop := func() {}

	catalog, err := frame.Builtin()
	if err != nil {
		return nil, noop, err
	}
	if bundlePath == "" {
		return catalog, noop, nil
	}

	frames, cleanup, warnings, err := frame.LoadBundle(bundlePath)
	if err != nil {
		return nil, noop, fmt.Errorf("load bundle: %w", err)
	}
	for _, w := range warnings {
		logger.Warn("bundle warning", zap.String("bundle", bundlePath), zap.String("detail", w))
	}
	catalog.Add(frames...)
	return catalog, cleanup, nil
}

// canvasSize picks the canvas from explicit dimensions, a screen size, or
// the reference poster size.
func canvasSize(o renderOptions, cc config.CanvasConfig) (canvas.Size, error) {
	if o.width > 0 || o.height > 0 {
		s := canvas.Size{Width: o.width, Height: o.height}
		if !s.Valid() {
			return canvas.Size{}, fmt.Errorf("--width and --height must both be positive")
		}
		return s, nil
	}

	if o.screen == "" {
		return canvas.Size{Width: frame.ReferenceWidth, Height: frame.ReferenceHeight}, nil
	}

	sw, sh, err := parseSize(o.screen)
	if err != nil {
		return canvas.Size{}, fmt.Errorf("--screen: %w", err)
	}
	screen := canvas.Screen{Width: sw, Height: sh}
	if o.landscape {
		screen.Orientation = canvas.Landscape
	}

	r := canvas.NewResolver(cc.Padding, cc.ToolbarHeight)
	if cc.PosterAspect > 0 {
		r.PosterAspect = cc.PosterAspect
	}

	var s canvas.Size
	if o.media != "" {
		mw, mh, err := parseSize(o.media)
		if err != nil {
			return canvas.Size{}, fmt.Errorf("--media: %w", err)
		}
		s = r.Video(screen, mw, mh)
	} else {
		s = r.Poster(screen)
	}
	if !s.Valid() {
		return canvas.Size{}, fmt.Errorf("screen %s leaves no room for the canvas", o.screen)
	}
	return s, nil
}

// parseSize parses "WxH".
func parseSize(s string) (float64, float64, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: expected WxH", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(ws), 64)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hs), 64)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
