// Package mask holds cosmetic raster filters applied after a geometry
// transform. It is independent of the orchestration core: filters consume a
// bitmap and return a new one.
package mask

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/seakay/imgderive/internal/geometry"
)

// stencilScale is the oversampling factor for the corner stencil. The
// stencil is drawn at radius*stencilScale and smoothly downscaled, which
// antialiases the circular boundary.
const stencilScale = 4

var opaqueWhite = color.NRGBA{255, 255, 255, 255}

// Round makes the four corners of the bitmap transparent outside a circle of
// the given radius. The radius is clamped to half the shorter image side.
func Round(img image.Image, radius int) (*image.NRGBA, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("corner radius must be positive, got %d", radius)
	}
	out := imaging.Clone(img)
	w, h := out.Bounds().Dx(), out.Bounds().Dy()
	if min := minInt(w, h) / 2; radius > min {
		radius = min
	}
	if radius == 0 {
		return out, nil
	}

	stencil, err := cornerStencil(radius)
	if err != nil {
		return nil, err
	}

	for y := 0; y < radius; y++ {
		for x := 0; x < radius; x++ {
			a := stencil.NRGBAAt(x, y).A
			scaleAlpha(out, x, y, a)         // top-left
			scaleAlpha(out, w-1-x, y, a)     // top-right
			scaleAlpha(out, x, h-1-y, a)     // bottom-left
			scaleAlpha(out, w-1-x, h-1-y, a) // bottom-right
		}
	}
	return out, nil
}

// cornerStencil draws the top-left corner coverage mask: opaque inside a
// circle centered at the stencil's bottom-right, transparent outside. Each
// row is painted with one horizontal fill up to the boundary
// x = r - round(sqrt(r^2 - y^2)), then the oversampled stencil is downscaled
// to the target radius.
func cornerStencil(radius int) (*image.NRGBA, error) {
	rs := radius * stencilScale
	big := imaging.New(rs, rs, opaqueWhite)

	for y := 0; y < rs; y++ {
		dy := float64(rs - y)
		span := math.Sqrt(float64(rs)*float64(rs) - dy*dy)
		boundary := rs - int(math.Round(span))
		for x := 0; x < boundary; x++ {
			big.Pix[big.PixOffset(x, y)+3] = 0
		}
	}

	return geometry.Resample(big, radius, radius, false)
}

// scaleAlpha multiplies one pixel's alpha by a/255.
func scaleAlpha(img *image.NRGBA, x, y int, a uint8) {
	i := img.PixOffset(x, y) + 3
	img.Pix[i] = uint8(uint16(img.Pix[i]) * uint16(a) / 255)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
