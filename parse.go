package mandel

import (
	"strconv"
	"strings"
)

// Number covers the element types pair-formatted CLI arguments carry.
type Number interface {
	int | float64
}

// ParsePair splits s on the first occurrence of sep and parses both sides
// as T. It reports ok = false for an empty string, a missing separator, an
// empty side, or any side that does not parse completely ("10,20xy" fails).
func ParsePair[T Number](s string, sep byte) (left, right T, ok bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return left, right, false
	}
	left, ok = parseNumber[T](s[:i])
	if !ok {
		return left, right, false
	}
	right, ok = parseNumber[T](s[i+1:])
	return left, right, ok
}

func parseNumber[T Number](s string) (T, bool) {
	var v T
	switch p := any(&v).(type) {
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return v, false
		}
		*p = n
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, false
		}
		*p = f
	}
	return v, true
}

// ParseComplex parses "RE,IM" with both parts as float64.
func ParseComplex(s string) (complex128, bool) {
	re, im, ok := ParsePair[float64](s, ',')
	if !ok {
		return 0, false
	}
	return complex(re, im), true
}

// ParseBounds parses "WIDTHxHEIGHT". It is purely syntactic; positivity of
// the dimensions is checked by the caller.
func ParseBounds(s string) (Bounds, bool) {
	w, h, ok := ParsePair[int](s, 'x')
	if !ok {
		return Bounds{}, false
	}
	return Bounds{Width: w, Height: h}, true
}
