// Package render renders the Mandelbrot set into grayscale pixel buffers.
//
// The image is cut into horizontal bands which are rendered concurrently,
// each goroutine owning a disjoint slice of the buffer:
//
//	pix := render.NewImage(bounds)
//	s := render.Scheduler{Threads: 8}
//	if err := s.Render(ctx, pix, bounds, mandel.FullSet); err != nil {
//		return err
//	}
package render

import (
	"fmt"

	mandel "github.com/marben/bandmandel"
)

// NewImage allocates a zero-filled buffer for an image of size bounds.
func NewImage(bounds mandel.Bounds) []uint8 {
	return make([]uint8, bounds.Pixels())
}

// RenderBand fills pix, a row-major buffer of size bounds, with the
// intensities of vp.
//
// len(pix) must equal bounds.Pixels(); anything else is a bug in the caller
// and panics.
func RenderBand(pix []uint8, bounds mandel.Bounds, vp mandel.Viewport, limit int) {
	if len(pix) != bounds.Pixels() {
		panic(fmt.Sprintf("render: buffer has %d pixels, bounds %s need %d", len(pix), bounds, bounds.Pixels()))
	}

	for row := range bounds.Height {
		for col := range bounds.Width {
			c := mandel.PixelToPoint(bounds, col, row, vp)
			pix[row*bounds.Width+col] = mandel.Intensity(mandel.EscapeTime(c, limit))
		}
	}
}
