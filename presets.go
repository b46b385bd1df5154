package mandel

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Classic regions / landmarks in the Mandelbrot set, usable by name
// instead of spelling out viewport corners.
var Landmarks = map[string]Viewport{
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	"seahorse-valley": {
		UpperLeft:  complex(-0.8, 0.15),
		LowerRight: complex(-0.7, 0.05),
	},

	// Elephant Valley – large bulb with trunk-like tendrils
	"elephant-valley": {
		UpperLeft:  complex(-1.85, -0.02),
		LowerRight: complex(-1.75, -0.10),
	},

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	"spiral-minibrot": {
		UpperLeft:  complex(-0.7435, 0.1325),
		LowerRight: complex(-0.7420, 0.1310),
	},

	// Triple Spiral – threefold symmetric spiral structure
	"triple-spiral": {
		UpperLeft:  complex(-0.7480, 0.0980),
		LowerRight: complex(-0.7450, 0.0950),
	},

	// Valley of the Dragon – deep, highly detailed spiral filaments
	"dragon-valley": {
		UpperLeft:  complex(-0.7400, 0.1850),
		LowerRight: complex(-0.7350, 0.1800),
	},

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	"mini-spiral-minibrot": {
		UpperLeft:  complex(-1.7390, -0.0220),
		LowerRight: complex(-1.7375, -0.0235),
	},
}

type presetFile struct {
	Presets map[string]presetEntry `toml:"presets"`
}

type presetEntry struct {
	UpperLeft  string `toml:"upper_left"`
	LowerRight string `toml:"lower_right"`
}

// LoadPresets reads additional named viewports from a TOML file:
//
//	[presets.my-spot]
//	upper_left = "-0.75,0.11"
//	lower_right = "-0.73,0.09"
//
// Corners use the same "RE,IM" syntax as the command line.
func LoadPresets(path string) (map[string]Viewport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file %s: %w", path, err)
	}

	var pf presetFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing presets file %s: %w", path, err)
	}

	out := make(map[string]Viewport, len(pf.Presets))
	for name, p := range pf.Presets {
		ul, ok := ParseComplex(p.UpperLeft)
		if !ok {
			return nil, fmt.Errorf("preset %q: invalid upper_left %q (want RE,IM)", name, p.UpperLeft)
		}
		lr, ok := ParseComplex(p.LowerRight)
		if !ok {
			return nil, fmt.Errorf("preset %q: invalid lower_right %q (want RE,IM)", name, p.LowerRight)
		}
		out[name] = Viewport{UpperLeft: ul, LowerRight: lr}
	}
	return out, nil
}
