package geometry

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Dimensions is a width/height pair. Every transform output has both
// components positive.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AspectRatio is a target width:height proportion, e.g. 3:2. The zero value
// means "unconstrained".
type AspectRatio struct {
	W int
	H int
}

var ratioPattern = regexp.MustCompile(`^(\d+)\D+(\d+)$`)

// ParseRatio parses a free-form ratio string: two positive integers separated
// by any run of non-digit characters ("3:2", "16x9", "4 / 3").
func ParseRatio(s string) (AspectRatio, error) {
	m := ratioPattern.FindStringSubmatch(s)
	if m == nil {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q", s)
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	r := AspectRatio{W: w, H: h}
	if r.W <= 0 || r.H <= 0 {
		return AspectRatio{}, fmt.Errorf("aspect ratio %q has a zero component", s)
	}
	return r, nil
}

// IsZero reports whether the ratio is unconstrained.
func (r AspectRatio) IsZero() bool {
	return r.W == 0 || r.H == 0
}

// HeightFor cross-multiplies the ratio to the height matching the given width.
func (r AspectRatio) HeightFor(width int) int {
	return int(math.Round(float64(width) * float64(r.H) / float64(r.W)))
}

// WidthFor cross-multiplies the ratio to the width matching the given height.
func (r AspectRatio) WidthFor(height int) int {
	return int(math.Round(float64(height) * float64(r.W) / float64(r.H)))
}

func (r AspectRatio) String() string {
	return fmt.Sprintf("%d:%d", r.W, r.H)
}
