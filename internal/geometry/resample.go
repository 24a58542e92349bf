package geometry

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// transparent is the background fill for letterbox padding and fresh
// canvases. Codecs with an alpha channel keep it transparent on encode.
var transparent = color.NRGBA{0, 0, 0, 0}

// Resample scales the full source bitmap onto a new dstW x dstH canvas.
//
// Smooth mode uses box filtering (area averaging). Sharp mode uses
// nearest-neighbor via bild and exists to avoid blurring pixel-art-like
// sources.
func Resample(img image.Image, dstW, dstH int, sharp bool) (*image.NRGBA, error) {
	if dstW <= 0 || dstH <= 0 {
		return nil, fmt.Errorf("cannot allocate %dx%d canvas", dstW, dstH)
	}
	if sharp {
		return imaging.Clone(transform.Resize(img, dstW, dstH, transform.NearestNeighbor)), nil
	}
	return imaging.Resize(img, dstW, dstH, imaging.Box), nil
}

// newCanvas allocates a transparent canvas, rejecting non-positive sizes.
func newCanvas(w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("cannot allocate %dx%d canvas", w, h)
	}
	return imaging.New(w, h, transparent), nil
}

func sourceSize(img image.Image) (int, int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
