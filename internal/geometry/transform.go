package geometry

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Resize scales to the given width, preserving the source aspect ratio
// exactly: height = round(srcH / (srcW / width)).
func Resize(img image.Image, width int, sharp bool) (*image.NRGBA, error) {
	iw, ih := sourceSize(img)
	height := int(math.Round(float64(ih) / (float64(iw) / float64(width))))
	return Resample(img, width, height, sharp)
}

// Reduce behaves as Resize when the source is wider than the target width and
// is the identity otherwise. Upscaling never happens.
func Reduce(img image.Image, width int, sharp bool) (image.Image, error) {
	iw, _ := sourceSize(img)
	if iw > width {
		return Resize(img, width, sharp)
	}
	return img, nil
}

// Fit scales the source to lie entirely within a w x h box, preserving the
// aspect ratio and never upscaling. A zero height delegates to Reduce.
// Sources already inside the box pass through unchanged.
func Fit(img image.Image, w, h int, sharp bool) (image.Image, error) {
	if h == 0 {
		return Reduce(img, w, sharp)
	}
	iw, ih := sourceSize(img)
	if iw <= w && ih <= h {
		return img, nil
	}
	rw := float64(iw) / float64(w)
	rh := float64(ih) / float64(h)
	if rw >= rh {
		return Resample(img, w, int(math.Round(float64(ih)/rw)), sharp)
	}
	return Resample(img, int(math.Round(float64(iw)/rh)), h, sharp)
}

// Thumb letterboxes the source onto a transparent canvas of exactly w x h.
//
// A source smaller than the canvas on both axes is centered unscaled.
// Otherwise the source is scaled to fill the limiting axis and padded on the
// other. Centering uses the legacy 2.01 divisor (see package doc).
func Thumb(img image.Image, w, h int, sharp bool) (*image.NRGBA, error) {
	canvas, err := newCanvas(w, h)
	if err != nil {
		return nil, err
	}
	iw, ih := sourceSize(img)

	if iw <= w && ih <= h {
		return imaging.Paste(canvas, img, image.Pt(centerOffset(w, iw), centerOffset(h, ih))), nil
	}

	var cw, ch int
	if float64(w)/float64(h) > float64(iw)/float64(ih) {
		// Canvas is relatively wider: height limits.
		ch = h
		cw = int(math.Round(float64(iw) / (float64(ih) / float64(h))))
	} else {
		cw = w
		ch = int(math.Round(float64(ih) / (float64(iw) / float64(w))))
	}
	content, err := Resample(img, cw, ch, sharp)
	if err != nil {
		return nil, err
	}
	return imaging.Paste(canvas, content, image.Pt(centerOffset(w, cw), centerOffset(h, ch))), nil
}

// Adapt crops and/or scales the source so it exactly fills a w x h canvas,
// discarding overflow per the anchor. The output is always w x h.
func Adapt(img image.Image, w, h int, anchor Anchor, sharp bool) (*image.NRGBA, error) {
	canvas, err := newCanvas(w, h)
	if err != nil {
		return nil, err
	}
	iw, ih := sourceSize(img)

	switch {
	case iw <= w && ih <= h:
		// Smaller on both axes: pad, no crop.
		return imaging.Paste(canvas, img, image.Pt(centerOffset(w, iw), centerOffset(h, ih))), nil

	case w >= iw:
		// Width fits, height overflows: keep the full width, crop the
		// height to h and pad horizontally.
		y := VerticalOffset(anchor, ih, h)
		cropped := imaging.Crop(img, image.Rect(0, y, iw, y+h))
		return imaging.Paste(canvas, cropped, image.Pt(centerOffset(w, iw), 0)), nil

	case h >= ih:
		// Height fits, width overflows: symmetric case.
		x := HorizontalOffset(anchor, iw, w)
		cropped := imaging.Crop(img, image.Rect(x, 0, x+w, ih))
		return imaging.Paste(canvas, cropped, image.Pt(0, centerOffset(h, ih))), nil
	}

	// Both axes overflow: crop to the target aspect, then scale down.
	switch {
	case w*ih > h*iw:
		// Target aspect wider than source: crop source height.
		ch := int(math.Round(float64(iw) * float64(h) / float64(w)))
		y := VerticalOffset(anchor, ih, ch)
		cropped := imaging.Crop(img, image.Rect(0, y, iw, y+ch))
		return Resample(cropped, w, h, sharp)
	case w*ih < h*iw:
		// Target aspect narrower: crop source width.
		cw := int(math.Round(float64(ih) * float64(w) / float64(h)))
		x := HorizontalOffset(anchor, iw, cw)
		cropped := imaging.Crop(img, image.Rect(x, 0, x+cw, ih))
		return Resample(cropped, w, h, sharp)
	default:
		// Equal aspect: direct scale.
		return Resample(img, w, h, sharp)
	}
}

// Rotate rotates the bitmap counter-clockwise by the given angle in degrees,
// filling the grown canvas corners with bg.
func Rotate(img image.Image, degrees float64, bg color.Color) *image.NRGBA {
	return imaging.Rotate(img, degrees, bg)
}

// ResizeRotate normalizes portrait sources before resizing: when
// srcH > srcW * threshold the bitmap is rotated 90 degrees first, then
// resized to width using the rotated dimensions. Canvas exposed by the
// rotation is filled with bg.
func ResizeRotate(img image.Image, width int, threshold float64, bg color.Color, sharp bool) (*image.NRGBA, error) {
	iw, ih := sourceSize(img)
	if float64(ih) > float64(iw)*threshold {
		img = Rotate(img, 90, bg)
	}
	return Resize(img, width, sharp)
}
