package derive

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/seakay/imgderive/internal/codec"
	"github.com/seakay/imgderive/internal/geometry"
	"github.com/seakay/imgderive/internal/store"
)

// Config configures a Deriver. Zero values fall back to the real filesystem,
// a null logger, center cropping, smooth resampling, and a transparent
// rotation background.
type Config struct {
	// Store is the filesystem the memoization protocol runs against.
	Store store.FileStore

	// Logger receives per-request debug output.
	Logger hclog.Logger

	// Sharp selects nearest-neighbor resampling for all transforms, for
	// pixel-art-like sources that must not be blurred.
	Sharp bool

	// Anchor is the crop anchor used when overflow is discarded.
	Anchor geometry.Anchor

	// Background fills canvas corners exposed by rotation.
	Background color.Color

	// RotateThreshold, when positive, normalizes tall portrait sources
	// before thumbnailing: a source with height > width*threshold is
	// rotated 90 degrees first.
	RotateThreshold float64

	// CornerRadius, when positive, rounds thumbnail corners by that many
	// pixels.
	CornerRadius int
}

// Deriver computes derived images and memoizes them as files. Every entry
// point is idempotent: identical inputs either short-circuit on an existing
// artifact or regenerate the same bytes at the same path.
//
// The exists-else-create sequence is deliberately unlocked. Concurrent
// callers racing on the same missing artifact will each transform and the
// last writer's bytes persist; callers needing single-writer semantics must
// serialize externally.
type Deriver struct {
	store store.FileStore
	log   hclog.Logger
	cfg   Config
}

// New creates a Deriver from cfg, applying defaults for unset fields.
func New(cfg Config) *Deriver {
	if cfg.Store == nil {
		cfg.Store = store.Disk{}
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	if cfg.Background == nil {
		cfg.Background = color.NRGBA{}
	}
	return &Deriver{store: cfg.Store, log: cfg.Logger, cfg: cfg}
}

// Probe validates that file is a readable image and returns its natural
// dimensions. Missing files, unreadable files, non-image content, and
// zero-sized images all return an error.
func (d *Deriver) Probe(file string) (*geometry.Dimensions, error) {
	if !d.store.Exists(file) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, file)
	}
	info, err := codec.Probe(d.store, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, file, err)
	}
	return &geometry.Dimensions{Width: info.Width, Height: info.Height}, nil
}

// decode loads the source bitmap together with its codec. The returned
// bitmap is owned by the caller until it is handed to encode.
func (d *Deriver) decode(file string) (image.Image, codec.Codec, error) {
	if !d.store.Exists(file) {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, file)
	}
	info, err := codec.Probe(d.store, file)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, file, err)
	}
	c, err := codec.ByMIME(info.MIME)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, info.MIME)
	}

	f, err := d.store.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, file, err)
	}
	defer f.Close()

	img, err := c.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, file, err)
	}
	return img, c, nil
}

// encode buffers the encoded bytes before touching the store, so a failed
// encode never leaves a partial artifact at the derived path.
func (d *Deriver) encode(c codec.Codec, img image.Image, path string) error {
	var buf bytes.Buffer
	if err := c.Encode(&buf, img); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	w, err := d.store.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		w.Close()
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	return nil
}

// memoize runs the cache protocol for one derived artifact: reuse the
// existing file (optionally validating its size metadata), or decode the
// source, apply transform, and encode to derived.
func (d *Deriver) memoize(source, derived string, expect geometry.Dimensions, check bool,
	transform func(image.Image) (image.Image, error)) (string, error) {

	if d.store.Exists(derived) {
		if !check {
			d.log.Debug("cache hit", "derived", derived)
			return derived, nil
		}
		if info, err := codec.Probe(d.store, derived); err == nil &&
			info.Width == expect.Width &&
			(expect.Height == 0 || info.Height == expect.Height) {
			d.log.Debug("cache hit validated", "derived", derived)
			return derived, nil
		}
		d.log.Debug("stale artifact, regenerating", "derived", derived)
	}

	img, c, err := d.decode(source)
	if err != nil {
		return "", err
	}
	out, err := transform(img)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	if err := d.encode(c, out, derived); err != nil {
		return "", err
	}
	d.log.Debug("artifact generated", "source", source, "derived", derived)
	return derived, nil
}

// copyOnce preserves an untouched copy of src at dst the first time it is
// called; an existing copy is never overwritten.
func (d *Deriver) copyOnce(src, dst string) error {
	if d.store.Exists(dst) {
		return nil
	}
	r, err := d.store.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreadable, src, err)
	}
	defer r.Close()
	w, err := d.store.Create(dst)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, dst, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("%w: %s: %v", ErrEncode, dst, err)
	}
	return w.Close()
}
