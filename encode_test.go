package mandel

import (
	"bytes"
	"image/png"
	"testing"
)

func TestEncodePNGRoundTrip(t *testing.T) {
	b := Bounds{Width: 3, Height: 2}
	buf := []byte{0, 50, 100, 150, 200, 250}

	var out bytes.Buffer
	if err := EncodePNG(&out, buf, b); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decoding the written PNG: %v", err)
	}
	if img.Bounds().Dx() != b.Width || img.Bounds().Dy() != b.Height {
		t.Fatalf("decoded dimensions %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), b.Width, b.Height)
	}
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			r, g, bl, _ := img.At(col, row).RGBA()
			want := uint32(buf[row*b.Width+col])
			want |= want << 8
			if r != want || g != want || bl != want {
				t.Errorf("pixel (%d, %d) decoded as (%d, %d, %d), want gray %d", col, row, r, g, bl, want)
			}
		}
	}
}

func TestEncodePGM(t *testing.T) {
	b := Bounds{Width: 3, Height: 2}
	buf := []byte{0, 50, 100, 150, 200, 250}

	var out bytes.Buffer
	if err := EncodePGM(&out, buf, b); err != nil {
		t.Fatalf("EncodePGM: %v", err)
	}

	wantHeader := []byte("P5\n3 2\n255\n")
	if !bytes.HasPrefix(out.Bytes(), wantHeader) {
		t.Fatalf("PGM header = %q, want prefix %q", out.Bytes()[:min(len(out.Bytes()), 16)], wantHeader)
	}
	if got := out.Bytes()[len(wantHeader):]; !bytes.Equal(got, buf) {
		t.Errorf("PGM pixel data = %v, want %v", got, buf)
	}
}

func TestGrayImageSharesBuffer(t *testing.T) {
	b := Bounds{Width: 2, Height: 2}
	buf := []byte{1, 2, 3, 4}

	img := GrayImage(buf, b)
	buf[3] = 99
	if img.Pix[3] != 99 {
		t.Errorf("GrayImage should wrap the buffer, not copy it")
	}
	if img.Stride != b.Width {
		t.Errorf("stride = %d, want %d", img.Stride, b.Width)
	}
}

func TestGrayImageWrongSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("GrayImage accepted a buffer of the wrong size")
		}
	}()
	GrayImage(make([]byte, 3), Bounds{Width: 2, Height: 2})
}
