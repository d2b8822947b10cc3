package mandel

// region builds a Viewport from its real and imaginary extents.
func region(reMin, reMax, imMin, imMax float64) Viewport {
	return Viewport{
		UpperLeft:  complex(reMin, imMax),
		LowerRight: complex(reMax, imMin),
	}
}

// Well-known views of the set.
var (
	// FullSet frames the cardioid and the period-2 bulb.
	FullSet = region(-2.5, 1.0, -1.0, 1.0)

	// SeahorseValley is the cleft between the cardioid and the period-2 bulb.
	SeahorseValley = region(-0.8, -0.7, 0.05, 0.15)

	// TripleSpiral is a deep zoom where escape counts vary a lot per pixel.
	TripleSpiral = region(-0.7480, -0.7450, 0.0950, 0.0980)
)
