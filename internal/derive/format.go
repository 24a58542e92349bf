package derive

import (
	"fmt"
	"image"
	"io"

	"github.com/seakay/imgderive/internal/classify"
	"github.com/seakay/imgderive/internal/codec"
	"github.com/seakay/imgderive/internal/geometry"
)

// Format conforms a file to the given width/height bounds and ratio, driven
// by the classification table. When no transform is needed the original path
// is returned untouched (identity: no regeneration, no new file).
//
// With suffixMode the derived artifact lands at the generic template path
// and an existing artifact short-circuits; otherwise the file is rewritten
// in place. keepSource preserves one untouched ".src" copy before the first
// transform and never overwrites it.
func (d *Deriver) Format(file string, width, height int, ratio, prefix string, keepSource, suffixMode bool) (string, error) {
	decision, c, err := d.classifyFile(file, width, height, ratio)
	if err != nil {
		return "", err
	}
	if !decision.Needed() {
		return file, nil
	}

	target := file
	if suffixMode {
		r, _ := parseOptionalRatio(ratio)
		target = formatName(file, prefix, width, height, r)
		if d.store.Exists(target) {
			d.log.Debug("cache hit", "derived", target)
			return target, nil
		}
	}

	if keepSource {
		if err := d.copyOnce(file, sourceCopyName(file)); err != nil {
			return "", err
		}
	}

	img, _, err := d.decode(file)
	if err != nil {
		return "", err
	}
	out, err := d.apply(decision, img)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	if err := d.encode(c, out, target); err != nil {
		return "", err
	}
	d.log.Debug("artifact generated", "source", file, "derived", target)
	return target, nil
}

// Send streams the (possibly transformed) image to out, preceded by a
// Content-Type header reflecting the source MIME type. No artifact is
// written.
func (d *Deriver) Send(file string, width, height int, ratio string, out io.Writer) error {
	decision, c, err := d.classifyFile(file, width, height, ratio)
	if err != nil {
		return err
	}
	img, _, err := d.decode(file)
	if err != nil {
		return err
	}
	if decision.Needed() {
		if img, err = d.apply(decision, img); err != nil {
			return fmt.Errorf("%w: %v", ErrAllocation, err)
		}
	}
	if err := codec.Stream(c, img, out); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

// classifyFile probes the file and runs the decision table for the request.
func (d *Deriver) classifyFile(file string, width, height int, ratio string) (classify.Decision, codec.Codec, error) {
	r, err := parseOptionalRatio(ratio)
	if err != nil {
		return classify.Decision{}, nil, err
	}
	if !d.store.Exists(file) {
		return classify.Decision{}, nil, fmt.Errorf("%w: %s", ErrNotFound, file)
	}
	info, err := codec.Probe(d.store, file)
	if err != nil {
		return classify.Decision{}, nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, file, err)
	}
	c, err := codec.ByMIME(info.MIME)
	if err != nil {
		return classify.Decision{}, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, info.MIME)
	}

	decision := classify.Classify(geometry.Dimensions{Width: info.Width, Height: info.Height}, width, height, r)
	if decision.Action == classify.ActionUnsupported {
		return classify.Decision{}, nil, fmt.Errorf("%w: %s", ErrUnreadable, file)
	}
	return decision, c, nil
}

// apply runs the geometry operation a decision calls for.
func (d *Deriver) apply(decision classify.Decision, img image.Image) (image.Image, error) {
	switch decision.Action {
	case classify.ActionResize:
		return geometry.Resample(img, decision.Width, decision.Height, d.cfg.Sharp)
	case classify.ActionAdapt:
		return geometry.Adapt(img, decision.Width, decision.Height, d.cfg.Anchor, d.cfg.Sharp)
	default:
		return img, nil
	}
}

func parseOptionalRatio(ratio string) (geometry.AspectRatio, error) {
	if ratio == "" {
		return geometry.AspectRatio{}, nil
	}
	r, err := geometry.ParseRatio(ratio)
	if err != nil {
		return geometry.AspectRatio{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return r, nil
}
