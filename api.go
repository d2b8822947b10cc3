package mandel

// Encoder writes a finished grayscale raster to path.
// pix is row-major, one byte per pixel, len(pix) == width*height.
type Encoder interface {
	Encode(path string, pix []uint8, width, height int) error
}
