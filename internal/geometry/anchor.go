package geometry

import (
	"fmt"
	"math"
)

// Anchor selects which edge of the source survives when a crop removes
// overflow along one axis. The zero value is AnchorCenter.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTop
	AnchorBottom
	AnchorLeft
	AnchorRight
)

// ParseAnchor maps a lower-case anchor name to an Anchor. The empty string
// means center.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "", "center":
		return AnchorCenter, nil
	case "top":
		return AnchorTop, nil
	case "bottom":
		return AnchorBottom, nil
	case "left":
		return AnchorLeft, nil
	case "right":
		return AnchorRight, nil
	}
	return AnchorCenter, fmt.Errorf("unknown anchor %q", s)
}

func (a Anchor) String() string {
	switch a {
	case AnchorTop:
		return "top"
	case AnchorBottom:
		return "bottom"
	case AnchorLeft:
		return "left"
	case AnchorRight:
		return "right"
	default:
		return "center"
	}
}

// VerticalOffset returns the y offset of a crop of height inner taken from a
// source of height outer. Horizontal anchors fall back to center.
func VerticalOffset(a Anchor, outer, inner int) int {
	switch a {
	case AnchorTop:
		return 0
	case AnchorBottom:
		return outer - inner
	default:
		return int(math.Round(float64(outer-inner) / 2))
	}
}

// HorizontalOffset returns the x offset of a crop of width inner taken from a
// source of width outer. Vertical anchors fall back to center.
func HorizontalOffset(a Anchor, outer, inner int) int {
	switch a {
	case AnchorLeft:
		return 0
	case AnchorRight:
		return outer - inner
	default:
		return int(math.Round(float64(outer-inner) / 2))
	}
}

// centerOffset places content inside a box with the legacy 2.01 divisor.
// Cached artifacts depend on the exact byte output, so the bias stays.
func centerOffset(box, content int) int {
	return int(math.Round(float64(box-content) / 2.01))
}
