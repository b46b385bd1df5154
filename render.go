package mandel

import (
	"fmt"
	"sync"
)

// Render fills buf with one grayscale intensity per pixel of b, row-major.
// Points that never escape within IterLimit iterations are written as 0,
// a point escaping at iteration count as 255 - count, so the set itself is
// the darkest region and fast-escaping surroundings are the brightest.
// Panics if buf is not exactly b.Pixels() long; a wrongly sized buffer is
// a caller bug, not user input.
func Render(buf []byte, b Bounds, vp Viewport) {
	checkBuffer(buf, b)
	renderRows(buf, b, vp, 0, b.Height)
}

// RenderWorkers renders like Render, split across at most workers
// goroutines, each owning a contiguous band of rows. The bands map to
// disjoint slices of buf, so no synchronization beyond the final join is
// needed. workers <= 1 renders sequentially.
func RenderWorkers(buf []byte, b Bounds, vp Viewport, workers int) {
	checkBuffer(buf, b)
	if workers <= 1 {
		renderRows(buf, b, vp, 0, b.Height)
		return
	}
	if workers > b.Height {
		workers = b.Height
	}

	var wg sync.WaitGroup
	for _, band := range splitRows(b.Height, workers) {
		band := band
		wg.Add(1)
		go func() {
			defer wg.Done()
			renderRows(buf, b, vp, band.top, band.bottom)
		}()
	}
	wg.Wait()
}

func renderRows(buf []byte, b Bounds, vp Viewport, top, bottom int) {
	for row := top; row < bottom; row++ {
		for col := 0; col < b.Width; col++ {
			count, escaped := EscapeTime(vp.Point(b, col, row), IterLimit)
			var v byte
			if escaped {
				v = byte(255 - count)
			}
			buf[row*b.Width+col] = v
		}
	}
}

type rowBand struct {
	top, bottom int // rows [top, bottom)
}

// splitRows splits height rows into at most n contiguous bands.
// The last band is smaller if height is not divisible.
func splitRows(height, n int) []rowBand {
	if n <= 0 {
		panic("band count must be positive")
	}

	bandH := (height + n - 1) / n

	var bands []rowBand
	for top := 0; top < height; top += bandH {
		bottom := top + bandH
		if bottom > height {
			bottom = height
		}
		bands = append(bands, rowBand{top: top, bottom: bottom})
	}
	return bands
}

func checkBuffer(buf []byte, b Bounds) {
	if len(buf) != b.Pixels() {
		panic(fmt.Sprintf("intensity buffer has %d bytes, bounds %dx%d need %d",
			len(buf), b.Width, b.Height, b.Pixels()))
	}
}
