package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/xob0t/PosterStencil/pkg/config"
	"github.com/xob0t/PosterStencil/pkg/content"
	"github.com/xob0t/PosterStencil/pkg/frame"
	"github.com/xob0t/PosterStencil/pkg/theme"
)

func runFrames(args []string) error {
	fs := flag.NewFlagSet("frames", flag.ExitOnError)
	var category, bundlePath string
	fs.StringVar(&category, "category", "", "Only list frames in this category")
	fs.StringVar(&bundlePath, "bundle", "", "Also list frames from a .gsframes bundle")
	if err := fs.Parse(args); err != nil {
		return err
	}

	catalog, err := frame.Builtin()
	if err != nil {
		return err
	}
	if bundlePath != "" {
		frames, cleanup, warnings, err := frame.LoadBundle(bundlePath)
		if err != nil {
			return fmt.Errorf("load bundle: %w", err)
		}
		defer cleanup()
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
		catalog.Add(frames...)
	}

	if category != "" {
		catalog = frame.NewCatalog(catalog.ByCategory(category)...)
	}
	fmt.Print(frame.FormatCatalog(catalog))
	return nil
}

func runTemplates(args []string) error {
	fs := flag.NewFlagSet("templates", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Print(formatTemplates(theme.Builtin()))
	return nil
}

func formatTemplates(t *theme.Table) string {
	var b strings.Builder
	for _, id := range t.IDs() {
		fill := t.Fill(id)
		swatch := fill.Color
		if len(fill.Gradient) >= 2 {
			swatch = fmt.Sprintf("%s → %s", fill.Gradient[0], fill.Gradient[len(fill.Gradient)-1])
		}
		fmt.Fprintf(&b, "  %-12s %-14s %s\n", id, t.Name(id), swatch)
	}
	return b.String()
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var profileOut, configOut string
	fs.StringVar(&profileOut, "profile", "profile.yaml", "Output path for sample profile")
	fs.StringVar(&configOut, "config", "posterstencil.yaml", "Output path for sample config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.WriteFile(profileOut, []byte(content.ExampleProfile()), 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.WriteFile(configOut, []byte(config.Example()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Created: %s, %s\n", profileOut, configOut)
	fmt.Printf("Run: posterstencil render -o poster.png --profile %s --config %s\n", profileOut, configOut)
	return nil
}
