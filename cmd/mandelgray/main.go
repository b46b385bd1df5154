// mandelgray renders a grayscale view of the Mandelbrot set and saves it
// as a PNG or PGM file. The viewport is given either as explicit complex
// corners or as a named preset.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	mandel "github.com/marben/mandelgray"
)

var (
	workers     = flag.Int("workers", 1, "number of row-band render workers")
	supersample = flag.Int("supersample", 1, "render at N times the size, then downscale")
	presetName  = flag.String("preset", "", "render a named viewport preset instead of explicit corners")
	presetsPath = flag.String("presets", "", "TOML file with additional viewport presets")
)

const usageText = `usage:
  mandelgray [flags] FILE WIDTHxHEIGHT UPPERLEFT LOWERRIGHT
  mandelgray [flags] -preset NAME FILE WIDTHxHEIGHT

corners are complex numbers written as RE,IM; the output format is chosen
by the FILE extension (.pgm writes binary PGM, anything else PNG).

example:
  mandelgray mandel.png 4000x3000 -1.20,0.35 -1.0,0.20
  mandelgray -preset seahorse-valley -supersample 2 seahorse.png 1920x1080

flags:
`

func usage() {
	fmt.Fprint(os.Stderr, usageText)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	want := 4
	if *presetName != "" {
		want = 2 // viewport corners come from the preset
	}
	if len(args) != want {
		usage()
		os.Exit(2)
	}

	if err := run(args); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run parses the positional arguments, renders the image and writes it to
// the named file. Returns an error if any step fails.
func run(args []string) error {
	filename := args[0]

	bounds, ok := mandel.ParseBounds(args[1])
	if !ok {
		return fmt.Errorf("invalid pixel bounds %q (want WIDTHxHEIGHT, e.g. 1000x750)", args[1])
	}
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return fmt.Errorf("pixel bounds must be positive, got %dx%d", bounds.Width, bounds.Height)
	}
	if *supersample < 1 {
		return fmt.Errorf("supersample factor must be at least 1, got %d", *supersample)
	}
	if bounds.Width > math.MaxInt/bounds.Height/(*supersample)/(*supersample) {
		return fmt.Errorf("pixel bounds %dx%d do not fit in memory", bounds.Width, bounds.Height)
	}

	vp, err := viewportFromArgs(args)
	if err != nil {
		return err
	}

	log.Printf("rendering %dx%d, viewport %v .. %v, %d worker(s)...",
		bounds.Width, bounds.Height, vp.UpperLeft, vp.LowerRight, *workers)
	start := time.Now()

	img, err := mandel.RenderSupersampled(bounds, vp, *supersample, *workers)
	if err != nil {
		return err
	}
	log.Printf("render took %s", time.Since(start))

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pgm":
		err = mandel.EncodePGM(f, img.Pix, bounds)
	default:
		err = mandel.EncodePNG(f, img.Pix, bounds)
	}
	if err != nil {
		return fmt.Errorf("writing %q: %w", filename, err)
	}

	log.Printf("image saved to %q", filename)
	return nil
}

// viewportFromArgs resolves the viewport either from the -preset flag or
// from the two corner arguments.
func viewportFromArgs(args []string) (mandel.Viewport, error) {
	if *presetName == "" {
		ul, ok := mandel.ParseComplex(args[2])
		if !ok {
			return mandel.Viewport{}, fmt.Errorf("invalid upper-left corner %q (want RE,IM, e.g. -1.20,0.35)", args[2])
		}
		lr, ok := mandel.ParseComplex(args[3])
		if !ok {
			return mandel.Viewport{}, fmt.Errorf("invalid lower-right corner %q (want RE,IM, e.g. -1.0,0.20)", args[3])
		}
		return mandel.Viewport{UpperLeft: ul, LowerRight: lr}, nil
	}

	presets := make(map[string]mandel.Viewport, len(mandel.Landmarks))
	maps.Copy(presets, mandel.Landmarks)
	if *presetsPath != "" {
		loaded, err := mandel.LoadPresets(*presetsPath)
		if err != nil {
			return mandel.Viewport{}, err
		}
		maps.Copy(presets, loaded) // file entries may shadow landmarks
	}

	vp, ok := presets[*presetName]
	if !ok {
		known := make([]string, 0, len(presets))
		for name := range presets {
			known = append(known, name)
		}
		slices.Sort(known)
		return mandel.Viewport{}, fmt.Errorf("unknown preset %q (known: %s)", *presetName, strings.Join(known, ", "))
	}
	return vp, nil
}
