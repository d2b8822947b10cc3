package mandel

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ParsePair parses s as two values separated by sep, e.g. "400x600" or "1.0,0.5".
// Both halves are parsed independently with parse; ok is false if sep is
// missing or either half fails to parse.
func ParsePair[T any](s string, sep byte, parse func(string) (T, error)) (l, r T, ok bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return l, r, false
	}

	left, errL := parse(s[:i])
	right, errR := parse(s[i+1:])
	if errL != nil || errR != nil {
		return l, r, false
	}
	return left, right, true
}

// ParseComplex parses "re,im" into a complex number.
func ParseComplex(s string) (complex128, bool) {
	re, im, ok := ParsePair(s, ',', parseFloat)
	if !ok {
		return 0, false
	}
	return complex(re, im), true
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// UnmarshalText parses "WIDTHxHEIGHT". Both sides must be positive.
// Surrounding whitespace is ignored.
func (b *Bounds) UnmarshalText(text []byte) error {
	text = bytes.TrimSpace(text)
	w, h, ok := ParsePair(string(text), 'x', strconv.Atoi)
	if !ok {
		return fmt.Errorf("invalid image dimensions %q: want WIDTHxHEIGHT", text)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid image dimensions %q: width and height must be positive", text)
	}
	b.Width, b.Height = w, h
	return nil
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}
