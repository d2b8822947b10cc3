package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/profile"

	mandel "github.com/marben/bandmandel"
	"github.com/marben/bandmandel/encode"
)

const usageExample = "Example: mandel mandel.png 1000x750 -1.20,0.35 -1,0.20"

var errUsage = errors.New("invalid arguments")

// corner is a complex number given on the command line as "re,im".
type corner complex128

func (c *corner) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	z, ok := mandel.ParseComplex(s)
	if !ok {
		return fmt.Errorf("invalid corner point %q: want RE,IM", s)
	}
	*c = corner(z)
	return nil
}

type args struct {
	Output     string        `arg:"positional,required" placeholder:"OUTPUT" help:"image file to write (.png, .bmp, .tif)"`
	Bounds     mandel.Bounds `arg:"positional,required" placeholder:"WIDTHxHEIGHT" help:"image size in pixels"`
	UpperLeft  corner        `arg:"positional,required" placeholder:"UL_RE,UL_IM" help:"upper left corner of the viewport"`
	LowerRight corner        `arg:"positional,required" placeholder:"LR_RE,LR_IM" help:"lower right corner of the viewport"`

	Threads int    `arg:"-t,--threads" default:"8" help:"number of bands rendered in parallel"`
	Profile string `arg:"--profile" placeholder:"MODE" help:"write a cpu, mem or trace profile to the current directory"`
	Quiet   bool   `arg:"-q,--quiet" help:"do not log progress"`
}

func (args) Description() string {
	return "mandel renders the Mandelbrot set between two corners of the complex plane into a grayscale image."
}

func (a args) Viewport() mandel.Viewport {
	return mandel.Viewport{
		UpperLeft:  complex128(a.UpperLeft),
		LowerRight: complex128(a.LowerRight),
	}
}

var profiles = map[string]func(*profile.Profile){
	"cpu":   profile.CPUProfile,
	"mem":   profile.MemProfile,
	"trace": profile.TraceProfile,
}

// parseArgs parses command line arguments (without the program name).
// It returns nil args and nil error if help was requested and written to out.
func parseArgs(argv []string, out io.Writer) (*args, error) {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "mandel"}, &a)
	if err != nil {
		return nil, err
	}

	switch err := p.Parse(shieldNegatives(argv)); {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(out)
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	if a.Threads < 1 {
		return nil, fmt.Errorf("%w: --threads must be at least 1, got %d", errUsage, a.Threads)
	}
	if _, ok := profiles[a.Profile]; a.Profile != "" && !ok {
		return nil, fmt.Errorf("%w: unknown profile mode %q (want cpu, mem or trace)", errUsage, a.Profile)
	}
	if _, err := encode.FormatFor(a.Output); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	return &a, nil
}

// shieldNegatives prefixes corners with a negative real part, such as
// "-1.20,0.35", with a space so the parser does not take them for flags.
// corner trims it. Other arguments, including output paths, pass unchanged.
func shieldNegatives(argv []string) []string {
	out := make([]string, len(argv))
	for i, s := range argv {
		if _, ok := mandel.ParseComplex(s); ok && s[0] == '-' {
			s = " " + s
		}
		out[i] = s
	}
	return out
}
