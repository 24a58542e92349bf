package geometry

import (
	"image"
	"image/color"
	"testing"
)

// fill creates a solid-color NRGBA test image.
func fill(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

var red = color.NRGBA{255, 0, 0, 255}

func TestResize_PreservesAspect(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		target int
		wantH  int
	}{
		{"half", 400, 200, 200, 100},
		{"third", 300, 100, 100, 33},
		{"portrait", 100, 400, 50, 200},
		{"odd rounding", 100, 75, 33, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Resize(fill(tt.w, tt.h, red), tt.target, false)
			if err != nil {
				t.Fatalf("Resize failed: %v", err)
			}
			if got := out.Bounds().Dx(); got != tt.target {
				t.Errorf("width: got %d, want %d", got, tt.target)
			}
			if got := out.Bounds().Dy(); got != tt.wantH {
				t.Errorf("height: got %d, want %d", got, tt.wantH)
			}
		})
	}
}

func TestReduce_IdentityWhenSmall(t *testing.T) {
	src := fill(100, 50, red)

	out, err := Reduce(src, 200, false)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if out != image.Image(src) {
		t.Error("Reduce should return the source unchanged when it fits")
	}

	out, err = Reduce(src, 100, false)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if out != image.Image(src) {
		t.Error("Reduce should be the identity at exactly the target width")
	}
}

func TestReduce_ShrinksWhenWide(t *testing.T) {
	out, err := Reduce(fill(400, 200, red), 200, false)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 100 {
		t.Errorf("got %dx%d, want 200x100", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		boxW, boxH   int
		wantW, wantH int
		identity     bool
	}{
		{"already fits", 100, 100, 200, 200, 100, 100, true},
		{"width limits", 400, 200, 200, 200, 200, 100, false},
		{"height limits", 200, 400, 200, 200, 100, 200, false},
		{"both exceed width limits more", 800, 400, 200, 300, 200, 100, false},
		{"both exceed height limits more", 400, 800, 300, 200, 100, 200, false},
		{"zero height reduces", 400, 200, 200, 0, 200, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fill(tt.srcW, tt.srcH, red)
			out, err := Fit(src, tt.boxW, tt.boxH, false)
			if err != nil {
				t.Fatalf("Fit failed: %v", err)
			}
			if tt.identity && out != image.Image(src) {
				t.Error("Fit should pass the source through unchanged")
			}
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestThumb_ExactCanvas(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		w, h       int
	}{
		{"smaller source", 50, 50, 200, 100},
		{"wider source", 400, 100, 200, 100},
		{"taller source", 100, 400, 200, 100},
		{"same size", 200, 100, 200, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Thumb(fill(tt.srcW, tt.srcH, red), tt.w, tt.h, false)
			if err != nil {
				t.Fatalf("Thumb failed: %v", err)
			}
			if out.Bounds().Dx() != tt.w || out.Bounds().Dy() != tt.h {
				t.Errorf("got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestThumb_CenteringBias(t *testing.T) {
	// 100x100 source on a 200x100 canvas: x gap is 100, y gap is 0.
	// The legacy divisor gives x = round(100/2.01) = 50, y = 0.
	out, err := Thumb(fill(100, 100, red), 200, 100, false)
	if err != nil {
		t.Fatalf("Thumb failed: %v", err)
	}

	// Pixel just left of the expected content start must be padding.
	if _, _, _, a := out.At(49, 50).RGBA(); a != 0 {
		t.Error("pixel at x=49 should be transparent padding")
	}
	if _, _, _, a := out.At(50, 50).RGBA(); a == 0 {
		t.Error("pixel at x=50 should be content")
	}
	if _, _, _, a := out.At(149, 50).RGBA(); a == 0 {
		t.Error("pixel at x=149 should be content")
	}
	if _, _, _, a := out.At(150, 50).RGBA(); a != 0 {
		t.Error("pixel at x=150 should be transparent padding")
	}
}

func TestCenterOffset_BiasDiffersFromExactHalf(t *testing.T) {
	// A 101-pixel gap: exact centering rounds to 51, the 2.01 divisor to 50.
	if got := centerOffset(201, 100); got != 50 {
		t.Errorf("centerOffset(201, 100): got %d, want 50", got)
	}
	if got := centerOffset(200, 100); got != 50 {
		t.Errorf("centerOffset(200, 100): got %d, want 50", got)
	}
	if got := centerOffset(100, 50); got != 25 {
		t.Errorf("centerOffset(100, 50): got %d, want 25", got)
	}
	if got := centerOffset(100, 100); got != 0 {
		t.Errorf("centerOffset(100, 100): got %d, want 0", got)
	}
}

func TestAdapt_AlwaysExactSize(t *testing.T) {
	sizes := []struct{ srcW, srcH int }{
		{50, 50},    // smaller on both axes
		{100, 500},  // height overflows only
		{500, 100},  // width overflows only
		{500, 500},  // both overflow, square
		{800, 300},  // both overflow, wider than target
		{300, 800},  // both overflow, narrower than target
	}
	anchors := []Anchor{AnchorCenter, AnchorTop, AnchorBottom, AnchorLeft, AnchorRight}

	for _, sz := range sizes {
		for _, a := range anchors {
			out, err := Adapt(fill(sz.srcW, sz.srcH, red), 200, 150, a, false)
			if err != nil {
				t.Fatalf("Adapt(%dx%d, %s) failed: %v", sz.srcW, sz.srcH, a, err)
			}
			if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 150 {
				t.Errorf("Adapt(%dx%d, %s): got %dx%d, want 200x150",
					sz.srcW, sz.srcH, a, out.Bounds().Dx(), out.Bounds().Dy())
			}
		}
	}
}

func TestAdapt_AnchorSelectsCrop(t *testing.T) {
	// Top half red, bottom half blue, 100x400 source cropped to 100x100.
	src := image.NewNRGBA(image.Rect(0, 0, 100, 400))
	blue := color.NRGBA{0, 0, 255, 255}
	for y := 0; y < 400; y++ {
		c := red
		if y >= 200 {
			c = blue
		}
		for x := 0; x < 100; x++ {
			src.SetNRGBA(x, y, c)
		}
	}

	top, err := Adapt(src, 100, 100, AnchorTop, false)
	if err != nil {
		t.Fatalf("Adapt top failed: %v", err)
	}
	if r, _, b, _ := top.At(50, 50).RGBA(); r>>8 != 255 || b>>8 != 0 {
		t.Error("top anchor should keep the red top of the source")
	}

	bottom, err := Adapt(src, 100, 100, AnchorBottom, false)
	if err != nil {
		t.Fatalf("Adapt bottom failed: %v", err)
	}
	if r, _, b, _ := bottom.At(50, 50).RGBA(); r>>8 != 0 || b>>8 != 255 {
		t.Error("bottom anchor should keep the blue bottom of the source")
	}
}

func TestAdapt_PadsSmallSource(t *testing.T) {
	out, err := Adapt(fill(50, 50, red), 200, 100, AnchorCenter, false)
	if err != nil {
		t.Fatalf("Adapt failed: %v", err)
	}
	// Corners are padding, middle is content.
	if _, _, _, a := out.At(0, 0).RGBA(); a != 0 {
		t.Error("corner should be transparent padding")
	}
	if _, _, _, a := out.At(100, 40).RGBA(); a == 0 {
		t.Error("center should be content")
	}
}

func TestResample_RejectsBadDimensions(t *testing.T) {
	src := fill(10, 10, red)
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -1}} {
		if _, err := Resample(src, dims[0], dims[1], false); err == nil {
			t.Errorf("Resample(%d, %d) should fail", dims[0], dims[1])
		}
	}
}

func TestResample_SharpMode(t *testing.T) {
	out, err := Resample(fill(10, 10, red), 30, 30, true)
	if err != nil {
		t.Fatalf("Resample sharp failed: %v", err)
	}
	if out.Bounds().Dx() != 30 || out.Bounds().Dy() != 30 {
		t.Errorf("got %dx%d, want 30x30", out.Bounds().Dx(), out.Bounds().Dy())
	}
	// Nearest-neighbor on a solid source stays exactly solid.
	if r, g, b, a := out.At(15, 15).RGBA(); r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Error("sharp resample should not blend colors")
	}
}

func TestRotate(t *testing.T) {
	out := Rotate(fill(100, 50, red), 90, color.NRGBA{0, 0, 0, 0})
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 100 {
		t.Errorf("got %dx%d, want 50x100", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestResizeRotate(t *testing.T) {
	// Tall portrait beyond the threshold rotates first: 100x400 becomes
	// 400x100, then resizes to width 200.
	bg := color.NRGBA{0, 0, 0, 0}
	out, err := ResizeRotate(fill(100, 400, red), 200, 1.5, bg, false)
	if err != nil {
		t.Fatalf("ResizeRotate failed: %v", err)
	}
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 50 {
		t.Errorf("rotated: got %dx%d, want 200x50", out.Bounds().Dx(), out.Bounds().Dy())
	}

	// Landscape under the threshold resizes without rotating.
	out, err = ResizeRotate(fill(400, 100, red), 200, 1.5, bg, false)
	if err != nil {
		t.Fatalf("ResizeRotate failed: %v", err)
	}
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 50 {
		t.Errorf("unrotated: got %dx%d, want 200x50", out.Bounds().Dx(), out.Bounds().Dy())
	}
}
