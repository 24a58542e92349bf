package codec

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// jpegQuality is the fixed encode quality for derived JPEG artifacts. It is
// part of the artifact byte contract: changing it changes regenerated bytes.
const jpegQuality = 90

// Codec decodes and encodes one image format.
type Codec interface {
	// Decode reads a full bitmap. It reports an error for unreadable or
	// corrupt input instead of returning a partial image.
	Decode(r io.Reader) (image.Image, error)

	// Encode writes the bitmap to w in this codec's format.
	Encode(w io.Writer, img image.Image) error

	// MIME is the canonical MIME type, e.g. "image/png".
	MIME() string

	// Extensions lists the file extensions this codec claims, leading dot
	// included, canonical extension first.
	Extensions() []string
}

// Stream writes a CGI-style Content-Type header line followed by the encoded
// bytes. Used when a derived image is sent to an output stream instead of a
// file.
func Stream(c Codec, img image.Image, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Content-Type: %s\r\n\r\n", c.MIME()); err != nil {
		return err
	}
	return c.Encode(w, img)
}

type pngCodec struct{}

func (pngCodec) Decode(r io.Reader) (image.Image, error) { return png.Decode(r) }
func (pngCodec) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
func (pngCodec) MIME() string         { return "image/png" }
func (pngCodec) Extensions() []string { return []string{".png"} }

type jpegCodec struct{}

func (jpegCodec) Decode(r io.Reader) (image.Image, error) { return jpeg.Decode(r) }
func (jpegCodec) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
}
func (jpegCodec) MIME() string         { return "image/jpeg" }
func (jpegCodec) Extensions() []string { return []string{".jpg", ".jpeg"} }

type gifCodec struct{}

func (gifCodec) Decode(r io.Reader) (image.Image, error) { return gif.Decode(r) }
func (gifCodec) Encode(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}
func (gifCodec) MIME() string         { return "image/gif" }
func (gifCodec) Extensions() []string { return []string{".gif"} }

type bmpCodec struct{}

func (bmpCodec) Decode(r io.Reader) (image.Image, error) { return bmp.Decode(r) }
func (bmpCodec) Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}
func (bmpCodec) MIME() string         { return "image/bmp" }
func (bmpCodec) Extensions() []string { return []string{".bmp"} }
