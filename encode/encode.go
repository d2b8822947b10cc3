// Package encode writes grayscale pixel buffers to image files.
package encode

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	mandel "github.com/marben/bandmandel"
)

// Format encodes an image to w.
type Format func(w io.Writer, img image.Image) error

var formats = map[string]Format{
	"":      png.Encode,
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// FormatFor picks the encoder for path by its extension.
// Files without an extension are written as PNG.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formats[ext]
	if !ok {
		supported := lo.Without(lo.Keys(formats), "")
		slices.Sort(supported)
		return nil, fmt.Errorf("unsupported output format %q (supported: %s)", ext, strings.Join(supported, ", "))
	}
	return f, nil
}

// Gray wraps pix as an 8-bit grayscale image without copying it.
func Gray(pix []uint8, width, height int) (*image.Gray, error) {
	if len(pix) != width*height {
		return nil, fmt.Errorf("buffer has %d pixels, %dx%d image needs %d", len(pix), width, height, width*height)
	}
	return &image.Gray{
		Pix:    pix,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// File writes images to the local filesystem.
type File struct{}

var _ mandel.Encoder = File{}

// Encode writes pix as a width x height grayscale image to path.
func (File) Encode(path string, pix []uint8, width, height int) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	img, err := Gray(pix, width, height)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := format(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
