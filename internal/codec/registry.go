package codec

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF with image.DecodeConfig
	_ "image/jpeg" // register JPEG with image.DecodeConfig
	_ "image/png"  // register PNG with image.DecodeConfig
	"io"
	"strings"

	_ "golang.org/x/image/bmp" // register BMP with image.DecodeConfig
)

// ErrUnknownFormat is returned when no codec variant matches a format tag,
// MIME type, or extension.
var ErrUnknownFormat = errors.New("no codec for image format")

// codecs is the closed set of supported format variants.
var codecs = map[string]Codec{
	"png":  pngCodec{},
	"jpeg": jpegCodec{},
	"gif":  gifCodec{},
	"bmp":  bmpCodec{},
}

// ByFormat selects a codec by the format tag reported by image.DecodeConfig.
func ByFormat(name string) (Codec, error) {
	if c, ok := codecs[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ByMIME selects a codec by MIME type.
func ByMIME(mime string) (Codec, error) {
	for _, c := range codecs {
		if c.MIME() == mime {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, mime)
}

// ByExtension selects a codec by file extension (leading dot, any case).
func ByExtension(ext string) (Codec, error) {
	ext = strings.ToLower(ext)
	for _, c := range codecs {
		for _, e := range c.Extensions() {
			if e == ext {
				return c, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// Opener is the part of the file store the metadata reader needs.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// SourceInfo is immutable metadata captured when a source is probed: its
// natural dimensions and MIME type tag.
type SourceInfo struct {
	Width  int
	Height int
	MIME   string
}

// Probe validates that path is a readable image and returns its natural size
// and MIME type without decoding pixel data. Zero-sized images fail.
func Probe(store Opener, path string) (*SourceInfo, error) {
	f, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("not a readable image: %w", err)
	}
	c, err := ByFormat(format)
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("image %s has zero-sized dimensions", path)
	}
	return &SourceInfo{Width: cfg.Width, Height: cfg.Height, MIME: c.MIME()}, nil
}
