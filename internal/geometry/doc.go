// Package geometry implements the arithmetic behind every derived-image
// transform: aspect-preserving resizes, fit-inside-a-box scaling, letterbox
// padding, and anchor-driven crop-to-fill.
//
// All functions are pure with respect to their inputs: they never retain the
// source bitmap and always return a freshly allocated result (or the source
// itself for identity transforms). Rounding is round-half-away-from-zero
// (math.Round) applied after float64 division, so outputs are reproducible
// across platforms.
//
// # Centering bias
//
// Thumb and Adapt center unscaled content using round((box-content)/2.01)
// rather than an exact half. The 2.01 divisor is a legacy quirk that existing
// cached artifacts depend on; it must not be "fixed" to 2 without a
// compatibility-breaking decision.
//
// # Interpolation
//
// Every scaling operation takes a sharp flag. Smooth mode uses box
// (area-averaging) resampling; sharp mode uses nearest-neighbor and exists so
// pixel-art-like sources are not blurred.
package geometry
