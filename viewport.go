package mandel

// Bounds are the pixel dimensions of the output raster.
type Bounds struct {
	Width, Height int
}

// Pixels is the number of entries an intensity buffer for b must hold.
func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

// Viewport is the rectangle of the complex plane mapped onto the image.
// The corners are not validated; a viewport whose "upper left" lies right
// of or below its "lower right" simply renders with that axis flipped.
type Viewport struct {
	UpperLeft, LowerRight complex128
}

// Point maps a pixel coordinate to its point in the complex plane.
// The row index grows downward while the imaginary axis grows upward,
// hence the subtraction on the imaginary component. Bounds must be
// positive; that is the caller's invariant and is not re-checked here.
func (v Viewport) Point(b Bounds, column, row int) complex128 {
	spanRe := real(v.LowerRight) - real(v.UpperLeft)
	spanIm := imag(v.UpperLeft) - imag(v.LowerRight)
	return complex(
		real(v.UpperLeft)+float64(column)*spanRe/float64(b.Width),
		imag(v.UpperLeft)-float64(row)*spanIm/float64(b.Height),
	)
}
