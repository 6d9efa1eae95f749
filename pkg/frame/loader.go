// loader.go - Load .gsframes (ZIP) bundles of frames and their art.
package frame

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BundleManifest is the file every bundle must carry at its root.
const BundleManifest = "frames.yaml"

// LoadBundle opens a .gsframes ZIP, extracts it to a temp directory, parses
// frames.yaml and resolves background paths against the extracted files.
// The returned cleanup function removes the temp directory.
func LoadBundle(path string) ([]Frame, func(), []string, error) {
	noop := func() {}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, noop, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	tmpDir, err := os.MkdirTemp("", "gsframes-*")
	if err != nil {
		return nil, noop, nil, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	if err := extractZip(&r.Reader, tmpDir); err != nil {
		cleanup()
		return nil, noop, nil, fmt.Errorf("extract %s: %w", path, err)
	}

	frames, err := LoadFile(filepath.Join(tmpDir, BundleManifest))
	if err != nil {
		cleanup()
		return nil, noop, nil, err
	}

	resolveBackgrounds(frames, tmpDir)

	return frames, cleanup, ValidateAll(frames), nil
}

// LoadFile reads a standalone frames.yaml. Backgrounds are resolved
// relative to the file's directory.
func LoadFile(path string) ([]Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	frames, err := ParseFrames(data)
	if err != nil {
		return nil, err
	}
	resolveBackgrounds(frames, filepath.Dir(path))
	return frames, nil
}

// resolveBackgrounds makes relative background paths absolute using baseDir.
func resolveBackgrounds(frames []Frame, baseDir string) {
	for i := range frames {
		bg := frames[i].Background
		if bg == "" || filepath.IsAbs(bg) {
			continue
		}
		frames[i].Background = filepath.Join(baseDir, bg)
	}
}

// extractZip extracts all files from a zip reader into destDir.
func extractZip(r *zip.Reader, destDir string) error {
	for _, f := range r.File {
		target := filepath.Join(destDir, f.Name)

		// Guard against zip slip.
		if !strings.HasPrefix(filepath.Clean(target), filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal path in zip: %s", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}

		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

// extractFile writes a single zip entry to disk.
func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}
