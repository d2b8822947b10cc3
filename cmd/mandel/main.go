// Command mandel renders the Mandelbrot set into a grayscale image file.
//
// Usage:
//
//	mandel [--threads N] [--profile cpu|mem|trace] [--quiet] OUTPUT WIDTHxHEIGHT UL_RE,UL_IM LR_RE,LR_IM
//
// The image is split into horizontal bands rendered in parallel. The output
// format follows the file extension: .png (default), .bmp, .tif or .tiff.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/profile"

	mandel "github.com/marben/bandmandel"
	"github.com/marben/bandmandel/encode"
	"github.com/marben/bandmandel/render"
)

var encoder mandel.Encoder = encode.File{}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mandel: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usageExample)
		}
		log.Fatalf("FATAL: %v", err)
	}
}

func run(argv []string, stdout io.Writer) error {
	a, err := parseArgs(argv, stdout)
	if err != nil {
		return err
	}
	if a == nil {
		return nil
	}

	if a.Quiet {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}
	if a.Profile != "" {
		defer profile.Start(profiles[a.Profile], profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	vp := a.Viewport()
	if !vp.Valid() {
		log.Printf("warning: viewport %v - %v is inverted, the image will be mirrored", vp.UpperLeft, vp.LowerRight)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("rendering %s of %v - %v in %d bands", a.Bounds, vp.UpperLeft, vp.LowerRight, a.Threads)
	s := render.Scheduler{
		Threads:      a.Threads,
		OnBandRender: func(b render.Band) { log.Printf("rendering %s", b) },
	}

	start := time.Now()
	pix, err := s.Image(ctx, a.Bounds, vp)
	if err != nil {
		return err
	}
	log.Printf("render took %s", time.Since(start))

	if err := encoder.Encode(a.Output, pix, a.Bounds.Width, a.Bounds.Height); err != nil {
		return err
	}
	log.Printf("image saved to %q", a.Output)
	return nil
}
