// Package classify is the format orchestrator: it maps a (current size,
// constraint) pair onto the geometry operation that must run, or decides that
// no transform is needed. Artifact names encode its outputs, so every branch
// must agree bit-for-bit with the geometry arithmetic.
package classify

import (
	"math"

	"github.com/seakay/imgderive/internal/geometry"
)

// Action is the kind of geometry call a decision requires.
type Action int

const (
	// ActionNone means the source already satisfies the constraint.
	ActionNone Action = iota
	// ActionResize is an aspect-preserving resample to Width x Height.
	ActionResize
	// ActionAdapt is a crop-to-ratio transform to Width x Height.
	ActionAdapt
	// ActionUnsupported means the source dimensions are invalid.
	ActionUnsupported
)

// Case tags the decision-table branch that fired. Downstream layers encode
// branch outputs into artifact names, so tags stay stable.
type Case int

const (
	CaseInvalidSource Case = iota
	CaseUnbounded
	CaseWithinBounds
	CaseExceedsWidth
	CaseExceedsHeight
	CaseExceedsBoth
	CaseRatioMatchWithin
	CaseRatioMatchExceedsWidth
	CaseRatioMatchExceedsHeight
	CaseRatioMatchExceedsBoth
	CaseWiderUnbounded
	CaseWiderExceedsWidth
	CaseWiderExceedsHeight
	CaseWiderWithin
	CaseNarrowerUnbounded
	CaseNarrowerExceedsWidth
	CaseNarrowerExceedsHeight
	CaseNarrowerWithin
)

// Decision describes the transform a request needs: which branch fired,
// which geometry entry point to run, and the exact target dimensions
// (secondary dimension cross-multiplied from the ratio where one applies).
type Decision struct {
	Case   Case
	Action Action
	Width  int
	Height int
}

// Needed reports whether a geometry transform must run.
func (d Decision) Needed() bool {
	return d.Action == ActionResize || d.Action == ActionAdapt
}

// Classify decides how a source of size cur must be transformed to satisfy
// the requested width, height, and ratio. Zero width or height means that
// axis is unconstrained; a zero ratio means no aspect constraint.
func Classify(cur geometry.Dimensions, width, height int, ratio geometry.AspectRatio) Decision {
	iw, ih := cur.Width, cur.Height
	if iw <= 0 || ih <= 0 {
		return Decision{Case: CaseInvalidSource, Action: ActionUnsupported}
	}

	if ratio.IsZero() {
		return classifyFree(iw, ih, width, height)
	}

	switch cross := iw*ratio.H - ih*ratio.W; {
	case cross == 0:
		return classifyMatching(iw, ih, width, height, ratio)
	case cross > 0:
		return classifyWider(iw, ih, width, height, ratio)
	default:
		return classifyNarrower(iw, ih, width, height, ratio)
	}
}

// classifyFree handles requests with no aspect constraint: transform only
// when the source exceeds a constrained axis.
func classifyFree(iw, ih, width, height int) Decision {
	switch {
	case width == 0 && height == 0:
		return Decision{Case: CaseUnbounded, Action: ActionNone}

	case width > 0 && height > 0 && iw > width && ih > height:
		w, h := fitBox(iw, ih, width, height)
		return Decision{Case: CaseExceedsBoth, Action: ActionResize, Width: w, Height: h}

	case width > 0 && iw > width:
		h := int(math.Round(float64(ih) / (float64(iw) / float64(width))))
		return Decision{Case: CaseExceedsWidth, Action: ActionResize, Width: width, Height: h}

	case height > 0 && ih > height:
		w := int(math.Round(float64(iw) / (float64(ih) / float64(height))))
		return Decision{Case: CaseExceedsHeight, Action: ActionResize, Width: w, Height: height}

	default:
		return Decision{Case: CaseWithinBounds, Action: ActionNone}
	}
}

// classifyMatching handles sources whose aspect already equals the requested
// ratio: a plain resize suffices, tagged separately so width-driven and
// box-driven resizes stay distinguishable downstream.
func classifyMatching(iw, ih, width, height int, ratio geometry.AspectRatio) Decision {
	switch {
	case width > 0 && height > 0 && iw > width && ih > height:
		return Decision{Case: CaseRatioMatchExceedsBoth, Action: ActionResize,
			Width: width, Height: ratio.HeightFor(width)}

	case width > 0 && iw > width:
		return Decision{Case: CaseRatioMatchExceedsWidth, Action: ActionResize,
			Width: width, Height: ratio.HeightFor(width)}

	case height > 0 && ih > height:
		return Decision{Case: CaseRatioMatchExceedsHeight, Action: ActionResize,
			Width: ratio.WidthFor(height), Height: height}

	default:
		return Decision{Case: CaseRatioMatchWithin, Action: ActionNone}
	}
}

// classifyWider handles sources relatively wider than the requested ratio:
// the limiting axis is width and overflow is cropped.
func classifyWider(iw, ih, width, height int, ratio geometry.AspectRatio) Decision {
	switch {
	case width == 0 && height == 0:
		// No bounds: a width-only crop to the ratio is always required.
		return Decision{Case: CaseWiderUnbounded, Action: ActionAdapt,
			Width: ratio.WidthFor(ih), Height: ih}

	case width > 0 && iw > width:
		return Decision{Case: CaseWiderExceedsWidth, Action: ActionAdapt,
			Width: width, Height: ratio.HeightFor(width)}

	case height > 0 && ih > height:
		return Decision{Case: CaseWiderExceedsHeight, Action: ActionAdapt,
			Width: ratio.WidthFor(height), Height: height}

	default:
		return Decision{Case: CaseWiderWithin, Action: ActionNone}
	}
}

// classifyNarrower is the symmetric case: source relatively taller than the
// ratio, limiting axis height.
func classifyNarrower(iw, ih, width, height int, ratio geometry.AspectRatio) Decision {
	switch {
	case width == 0 && height == 0:
		return Decision{Case: CaseNarrowerUnbounded, Action: ActionAdapt,
			Width: iw, Height: ratio.HeightFor(iw)}

	case width > 0 && iw > width:
		return Decision{Case: CaseNarrowerExceedsWidth, Action: ActionAdapt,
			Width: width, Height: ratio.HeightFor(width)}

	case height > 0 && ih > height:
		return Decision{Case: CaseNarrowerExceedsHeight, Action: ActionAdapt,
			Width: ratio.WidthFor(height), Height: height}

	default:
		return Decision{Case: CaseNarrowerWithin, Action: ActionNone}
	}
}

// fitBox computes fit-inside-the-box dimensions: the axis with the larger
// source/target ratio is fixed to its target and the other follows the
// source aspect. Mirrors geometry.Fit.
func fitBox(iw, ih, w, h int) (int, int) {
	rw := float64(iw) / float64(w)
	rh := float64(ih) / float64(h)
	if rw >= rh {
		return w, int(math.Round(float64(ih) / rw))
	}
	return int(math.Round(float64(iw) / rh)), h
}
