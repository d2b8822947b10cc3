package render

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	mandel "github.com/marben/bandmandel"
)

// DefaultThreads is the number of bands used when Scheduler.Threads is zero.
const DefaultThreads = 8

// Scheduler renders an image as Threads horizontal bands, one goroutine per
// band. The zero value is ready to use.
type Scheduler struct {
	Threads int // bands per image, DefaultThreads if <= 0
	Limit   int // iteration limit, mandel.DefaultLimit if <= 0

	// OnBandRender, if set, is called from the band's goroutine right before
	// the band is rendered.
	OnBandRender func(b Band)

	// renderBand is replaced in tests.
	renderBand func(pix []uint8, bounds mandel.Bounds, vp mandel.Viewport, limit int)
}

// BandPanic carries a panic raised while rendering a band. Render re-panics
// with it in the calling goroutine once all bands have stopped.
type BandPanic struct {
	Band  Band
	Value any
	Stack []byte
}

func (p *BandPanic) Error() string {
	return fmt.Sprintf("%s panicked: %v\n%s", p.Band, p.Value, p.Stack)
}

func (s Scheduler) threads() int {
	if s.Threads <= 0 {
		return DefaultThreads
	}
	return s.Threads
}

func (s Scheduler) limit() int {
	if s.Limit <= 0 {
		return mandel.DefaultLimit
	}
	return s.Limit
}

// Image allocates a buffer for bounds and renders vp into it.
func (s Scheduler) Image(ctx context.Context, bounds mandel.Bounds, vp mandel.Viewport) ([]uint8, error) {
	pix := NewImage(bounds)
	if err := s.Render(ctx, pix, bounds, vp); err != nil {
		return nil, err
	}
	return pix, nil
}

// Render fills pix with vp rendered at bounds and returns once every band is
// done.
//
// Each band goroutine gets its own sub-slice of pix; bands never overlap, so
// no locking is involved. Bands that have not started when ctx is done are
// skipped and Render returns the context error. A panic in any band is
// re-raised here as a *BandPanic after all other bands have stopped.
func (s Scheduler) Render(ctx context.Context, pix []uint8, bounds mandel.Bounds, vp mandel.Viewport) error {
	if len(pix) != bounds.Pixels() {
		return fmt.Errorf("buffer has %d pixels, bounds %s need %d", len(pix), bounds, bounds.Pixels())
	}

	renderBand := s.renderBand
	if renderBand == nil {
		renderBand = RenderBand
	}
	limit := s.limit()

	g, gctx := errgroup.WithContext(ctx)
	for _, band := range Partition(bounds.Height, s.threads()) {
		if band.Empty() {
			continue
		}

		r := band.Rect(bounds.Width)
		lo, hi := r.Min.Y*bounds.Width, r.Max.Y*bounds.Width
		bandPix := pix[lo:hi:hi]
		bandBounds := band.Bounds(bounds.Width)
		bandVp := band.Viewport(bounds, vp)

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &BandPanic{Band: band, Value: r, Stack: debug.Stack()}
				}
			}()

			if gctx.Err() != nil {
				return fmt.Errorf("%s not started: %w", band, context.Cause(gctx))
			}
			if s.OnBandRender != nil {
				s.OnBandRender(band)
			}
			renderBand(bandPix, bandBounds, bandVp, limit)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var bp *BandPanic
		if errors.As(err, &bp) {
			panic(bp)
		}
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
