package mandel

// DefaultLimit is the iteration budget used when none is given.
const DefaultLimit = 255

// Bounds is the size of the rendered image in pixels.
type Bounds struct {
	Width, Height int
}

// Pixels returns the number of pixels covered by b.
func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

// Viewport is the rectangle of the complex plane that maps onto the image.
// UpperLeft has the smallest real and the largest imaginary part.
type Viewport struct {
	UpperLeft, LowerRight complex128
}

// Valid reports whether v is a non-inverted rectangle.
// Degenerate viewports are rendered as given; Valid is only a caller check.
func (v Viewport) Valid() bool {
	return real(v.UpperLeft) <= real(v.LowerRight) && imag(v.UpperLeft) >= imag(v.LowerRight)
}

// PixelToPoint maps pixel (col, row) of an image of size bounds to the point
// of the complex plane it samples.
//
// Row 0 is the top of the image, so increasing row moves toward smaller
// imaginary values.
func PixelToPoint(bounds Bounds, col, row int, vp Viewport) complex128 {
	width := real(vp.LowerRight) - real(vp.UpperLeft)
	height := imag(vp.UpperLeft) - imag(vp.LowerRight)

	return complex(
		real(vp.UpperLeft)+float64(col)*width/float64(bounds.Width),
		imag(vp.UpperLeft)-float64(row)*height/float64(bounds.Height),
	)
}

// EscapeTime tests whether c belongs to the Mandelbrot set using at most
// limit iterations of z = z*z + c.
//
// If z leaves the circle of radius 2 it returns the iteration i at which that
// happened and escaped == true. Points that stay bounded are reported as
// members (escaped == false).
func EscapeTime(c complex128, limit int) (iter int, escaped bool) {
	z := complex(0, 0)

	for i := range limit {
		z = z*z + c
		// |z|^2 == 4 still counts as bounded
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
	}
	return 0, false
}

// Intensity converts an EscapeTime result into a grayscale value.
// Members are white; points that escape late are brighter than points that
// escape early. Counts above 255 saturate at black.
func Intensity(iter int, escaped bool) uint8 {
	if !escaped {
		return 255
	}
	if iter >= 255 {
		return 0
	}
	return uint8(255 - iter)
}
