package render

import (
	"fmt"
	"image"

	mandel "github.com/marben/bandmandel"
)

// Band is a horizontal strip of the image: rows [Top, Top+Height).
type Band struct {
	Index  int
	Top    int
	Height int
}

func (b Band) String() string {
	return fmt.Sprintf("band %d rows [%d,%d)", b.Index, b.Top, b.Top+b.Height)
}

// Empty reports whether the band covers no rows.
func (b Band) Empty() bool {
	return b.Height == 0
}

// Rect returns the band in global image coordinates.
func (b Band) Rect(width int) image.Rectangle {
	return image.Rect(0, b.Top, width, b.Top+b.Height)
}

// Bounds returns the band's own pixel bounds.
func (b Band) Bounds(width int) mandel.Bounds {
	return mandel.Bounds{Width: width, Height: b.Height}
}

// Viewport returns the part of vp covered by the band. Corners are mapped
// with the global bounds, so the band's rows land where they belong in the
// full image.
func (b Band) Viewport(global mandel.Bounds, vp mandel.Viewport) mandel.Viewport {
	return mandel.Viewport{
		UpperLeft:  mandel.PixelToPoint(global, 0, b.Top, vp),
		LowerRight: mandel.PixelToPoint(global, global.Width, b.Top+b.Height, vp),
	}
}

// Partition splits height rows into exactly threads bands of
// ceil(height/threads) rows. The last non-empty band takes whatever is left;
// trailing bands are empty when height is small.
// threads < 1 is treated as 1.
func Partition(height, threads int) []Band {
	if threads < 1 {
		threads = 1
	}
	rows := (height + threads - 1) / threads

	bands := make([]Band, threads)
	for i := range bands {
		top := min(i*rows, height)
		bands[i] = Band{
			Index:  i,
			Top:    top,
			Height: min(rows, height-top),
		}
	}
	return bands
}
