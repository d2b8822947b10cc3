package render

import (
	"image"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mandel "github.com/marben/bandmandel"
)

func TestPartitionCoversAllRows(t *testing.T) {
	for height := 0; height <= 130; height++ {
		for threads := 1; threads <= 20; threads++ {
			bands := Partition(height, threads)
			require.Len(t, bands, threads)

			rows := (height + threads - 1) / threads
			next := 0
			for i, b := range bands {
				require.Equal(t, i, b.Index)
				require.Equal(t, next, b.Top, "height=%d threads=%d: gap or overlap at band %d", height, threads, i)
				require.GreaterOrEqual(t, b.Height, 0)
				require.LessOrEqual(t, b.Height, rows)
				next += b.Height
			}
			require.Equal(t, height, next)
			require.Equal(t, height, lo.SumBy(bands, func(b Band) int { return b.Height }))
		}
	}
}

func TestPartitionCeilingRows(t *testing.T) {
	bands := Partition(10, 4)
	heights := lo.Map(bands, func(b Band, _ int) int { return b.Height })
	assert.Equal(t, []int{3, 3, 3, 1}, heights)

	// 7 bands of 2 rows would overshoot 10 rows; the tail is empty
	bands = Partition(10, 7)
	heights = lo.Map(bands, func(b Band, _ int) int { return b.Height })
	assert.Equal(t, []int{2, 2, 2, 2, 2, 0, 0}, heights)
	assert.True(t, bands[6].Empty())
	assert.Equal(t, 10, bands[6].Top)
}

func TestPartitionDegenerate(t *testing.T) {
	bands := Partition(0, 8)
	require.Len(t, bands, 8)
	assert.True(t, lo.EveryBy(bands, Band.Empty))

	assert.Equal(t, []Band{{Index: 0, Top: 0, Height: 5}}, Partition(5, 0))
	assert.Equal(t, []Band{{Index: 0, Top: 0, Height: 5}}, Partition(5, -3))
}

func TestBandRectAndBounds(t *testing.T) {
	b := Band{Index: 2, Top: 20, Height: 10}
	assert.Equal(t, image.Rect(0, 20, 64, 30), b.Rect(64))
	assert.Equal(t, mandel.Bounds{Width: 64, Height: 10}, b.Bounds(64))
	assert.Equal(t, "band 2 rows [20,30)", b.String())
}

func TestBandViewport(t *testing.T) {
	global := mandel.Bounds{Width: 100, Height: 100}
	vp := mandel.Viewport{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)}

	got := Band{Top: 25, Height: 50}.Viewport(global, vp)
	assert.InDelta(t, -1, real(got.UpperLeft), 1e-12)
	assert.InDelta(t, 0.5, imag(got.UpperLeft), 1e-12)
	assert.InDelta(t, 1, real(got.LowerRight), 1e-12)
	assert.InDelta(t, -0.5, imag(got.LowerRight), 1e-12)

	// bands stacked together span the whole viewport
	bands := Partition(global.Height, 3)
	assert.Equal(t, vp.UpperLeft, bands[0].Viewport(global, vp).UpperLeft)
	assert.Equal(t, vp.LowerRight, bands[2].Viewport(global, vp).LowerRight)
	for i := 1; i < len(bands); i++ {
		assert.Equal(t,
			imag(bands[i-1].Viewport(global, vp).LowerRight),
			imag(bands[i].Viewport(global, vp).UpperLeft))
	}
}
