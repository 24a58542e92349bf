package derive

import (
	"fmt"
	"image"

	"github.com/seakay/imgderive/internal/geometry"
	"github.com/seakay/imgderive/internal/mask"
)

// defaultRatio applies the 3:2 default used by Thumbnail and Crop.
func defaultRatio(ratio string) (geometry.AspectRatio, error) {
	if ratio == "" {
		ratio = "3:2"
	}
	r, err := geometry.ParseRatio(ratio)
	if err != nil {
		return geometry.AspectRatio{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return r, nil
}

// Thumbnail derives a letterboxed thumbnail of the given width and ratio
// (default 3:2) and returns its path. An existing artifact is reused; with
// check set its size metadata is validated first and a mismatch regenerates.
func (d *Deriver) Thumbnail(source string, width int, prefix, ratio string, check bool) (string, error) {
	r, err := defaultRatio(ratio)
	if err != nil {
		return "", err
	}
	height := r.HeightFor(width)
	derived := thumbName(source, prefix, r, width)

	return d.memoize(source, derived, geometry.Dimensions{Width: width, Height: height}, check,
		func(img image.Image) (image.Image, error) {
			if d.cfg.RotateThreshold > 0 {
				normalized, err := geometry.ResizeRotate(img, width,
					d.cfg.RotateThreshold, d.cfg.Background, d.cfg.Sharp)
				if err != nil {
					return nil, err
				}
				img = normalized
			}
			out, err := geometry.Thumb(img, width, height, d.cfg.Sharp)
			if err != nil {
				return nil, err
			}
			if d.cfg.CornerRadius > 0 {
				return mask.Round(out, d.cfg.CornerRadius)
			}
			return out, nil
		})
}

// Crop derives a crop-to-fill variant of the given width and ratio (default
// 3:2): the source is scaled and cropped per the configured anchor so the
// artifact is exactly width x ratio-height.
func (d *Deriver) Crop(source string, width int, prefix, ratio string, check bool) (string, error) {
	r, err := defaultRatio(ratio)
	if err != nil {
		return "", err
	}
	height := r.HeightFor(width)
	derived := cropName(source, prefix, r, width)

	return d.memoize(source, derived, geometry.Dimensions{Width: width, Height: height}, check,
		func(img image.Image) (image.Image, error) {
			return geometry.Adapt(img, width, height, d.cfg.Anchor, d.cfg.Sharp)
		})
}

// View derives a sized view: an aspect-preserving reduction to the given
// width, or a crop to the given ratio at that width. The artifact name uses
// the suffix, defaulting to "i"+width.
func (d *Deriver) View(source string, width int, prefix, suffix, ratio string, check bool) (string, error) {
	var r geometry.AspectRatio
	if ratio != "" {
		var err error
		if r, err = geometry.ParseRatio(ratio); err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
	}
	derived := viewName(source, prefix, suffix, width)

	expect := geometry.Dimensions{Width: width}
	if !r.IsZero() {
		expect.Height = r.HeightFor(width)
	}

	return d.memoize(source, derived, expect, check,
		func(img image.Image) (image.Image, error) {
			if !r.IsZero() {
				return geometry.Adapt(img, width, r.HeightFor(width), d.cfg.Anchor, d.cfg.Sharp)
			}
			return geometry.Reduce(img, width, d.cfg.Sharp)
		})
}
