// Package outfile derives output paths for generated images and writes them
// to disk. The extension of the final path always follows the detected
// image format, never what the caller asked for.
package outfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/fancyboi999/nano-image-generate/pkg/imagefmt"
)

// DefaultDir is the directory used for auto-generated output paths.
const DefaultDir = "generated"

// maxSlugLen caps the prompt-derived part of auto-generated file names.
const maxSlugLen = 50

// Slugify turns free prompt text into a filesystem-safe name: word
// characters, spaces and hyphens survive, everything else is dropped, then
// the result is trimmed, lowercased, hyphen/space runs collapse to single
// hyphens, and the name is truncated to 50 characters. Empty results become
// "untitled".
func Slugify(prompt string) string {
	var kept []rune
	for _, r := range prompt {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || unicode.IsSpace(r) {
			kept = append(kept, r)
		}
	}

	s := strings.ToLower(strings.TrimSpace(string(kept)))

	var out []rune
	run := false
	for _, r := range s {
		if r == '-' || unicode.IsSpace(r) {
			run = true
			continue
		}
		if run {
			out = append(out, '-')
			run = false
		}
		out = append(out, r)
	}
	if run {
		out = append(out, '-')
	}

	if len(out) > maxSlugLen {
		out = out[:maxSlugLen]
	}
	if len(out) == 0 {
		return "untitled"
	}
	return string(out)
}

// Resolve returns the output path for a generated image. A non-empty
// requested path wins; otherwise a name is synthesized under dir
// (DefaultDir when dir is empty) from the prompt slug and ts. In both cases
// the extension is forced to match f. changed reports whether the final
// path differs from the requested one, which is always true for synthesized
// names.
func Resolve(requested, prompt, dir string, f imagefmt.Format, ts time.Time) (path string, changed bool) {
	if requested != "" {
		path = forceExt(requested, f.Ext)
		return path, path != requested
	}
	if dir == "" {
		dir = DefaultDir
	}
	name := Slugify(prompt) + "-" + strconv.FormatInt(ts.Unix(), 10) + f.Ext
	return filepath.Join(dir, name), true
}

// forceExt replaces the file extension of path with ext, or appends ext if
// path has none.
func forceExt(path, ext string) string {
	old := filepath.Ext(path)
	if old == filepath.Base(path) {
		// Dotfiles like ".hidden" have no real extension.
		return path + ext
	}
	return strings.TrimSuffix(path, old) + ext
}

// Write writes data to path, creating parent directories as needed.
func Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}
