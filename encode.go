package mandel

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
)

// GrayImage wraps a finished intensity buffer as an 8-bit grayscale image.
// The pixel data is shared with buf, not copied. Panics on a buffer whose
// length does not match b.
func GrayImage(buf []byte, b Bounds) *image.Gray {
	checkBuffer(buf, b)
	return &image.Gray{
		Pix:    buf,
		Stride: b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// EncodePNG writes buf as a grayscale PNG.
func EncodePNG(w io.Writer, buf []byte, b Bounds) error {
	if err := png.Encode(w, GrayImage(buf, b)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EncodePGM writes buf as a binary (P5) PGM, which stores the intensity
// buffer byte for byte after a short header.
func EncodePGM(w io.Writer, buf []byte, b Bounds) error {
	checkBuffer(buf, b)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P5\n%d %d\n255\n", b.Width, b.Height)
	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("write pgm data: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write pgm data: %w", err)
	}
	return nil
}
