package derive

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/seakay/imgderive/internal/geometry"
)

// Derived filenames are the cache keys of the memoization protocol: they are
// computed deterministically from the request (no randomness, no timestamps)
// and must never change shape, or every existing artifact becomes stale.

// splitPath separates a source path into directory, filename stem, and
// extension (leading dot included).
func splitPath(source string) (dir, stem, ext string) {
	dir = filepath.Dir(source)
	base := filepath.Base(source)
	ext = filepath.Ext(base)
	stem = strings.TrimSuffix(base, ext)
	return dir, stem, ext
}

// join places a derived filename next to its source, under prefix when one
// is given.
func join(prefix, dir, name string) string {
	if prefix != "" {
		return filepath.Join(prefix, dir, name)
	}
	return filepath.Join(dir, name)
}

// thumbName builds the thumbnail template: <stem>-thumb<rw>x<rh>w<width>.
func thumbName(source, prefix string, r geometry.AspectRatio, width int) string {
	dir, stem, ext := splitPath(source)
	return join(prefix, dir, fmt.Sprintf("%s-thumb%dx%dw%d%s", stem, r.W, r.H, width, ext))
}

// cropName builds the crop template: <stem><rw>x<rh>w<width>.
func cropName(source, prefix string, r geometry.AspectRatio, width int) string {
	dir, stem, ext := splitPath(source)
	return join(prefix, dir, fmt.Sprintf("%s%dx%dw%d%s", stem, r.W, r.H, width, ext))
}

// formatName builds the generic template used in suffix mode:
// <stem>-<width>x<height>[-<rw>x<rh>].
func formatName(source, prefix string, width, height int, r geometry.AspectRatio) string {
	dir, stem, ext := splitPath(source)
	name := fmt.Sprintf("%s-%dx%d", stem, width, height)
	if !r.IsZero() {
		name += fmt.Sprintf("-%dx%d", r.W, r.H)
	}
	return join(prefix, dir, name+ext)
}

// viewName builds the sized-view template: <stem><suffix>, defaulting the
// suffix to "i"+width.
func viewName(source, prefix, suffix string, width int) string {
	dir, stem, ext := splitPath(source)
	if suffix == "" {
		suffix = fmt.Sprintf("i%d", width)
	}
	return join(prefix, dir, stem+suffix+ext)
}

// sourceCopyName is the untouched-copy path written by Format with
// keepSource set.
func sourceCopyName(source string) string {
	return source + ".src"
}
