// Package derive is the public surface of the engine: it computes derived
// image paths from deterministic naming templates, memoizes generated
// artifacts on the file store, and orchestrates codec decode, geometry
// transform, and codec encode on cache misses.
//
// Four naming templates exist, one per entry point, and they are the
// addressable cache keys:
//
//	thumbnail  <dir>/<stem>-thumb<rw>x<rh>w<width>.<ext>
//	crop       <dir>/<stem><rw>x<rh>w<width>.<ext>
//	format     <dir>/<stem>-<width>x<height>[-<rw>x<rh>].<ext>  (suffix mode)
//	view       <dir>/<stem><suffix or "i"+width>.<ext>
//
// Stale artifacts are never deleted here; they persist until external
// cleanup.
package derive
