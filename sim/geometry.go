package sim

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// wrapAngle wraps an angle into (-pi, pi].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// wrapUnit wraps a coordinate into [0, 1). The world is a torus.
func wrapUnit(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	return x
}

// heading returns the velocity vector for a rotation and speed. The
// canonical forward axis is +Y; a positive rotation turns it
// counter-clockwise.
func heading(rotation, speed float64) r2.Vec {
	sin, cos := math.Sincos(rotation)
	return r2.Vec{X: -speed * sin, Y: speed * cos}
}

// randomPoint draws a uniform position on the unit square, consuming
// the X draw before the Y draw.
func randomPoint(rng *rand.Rand) r2.Vec {
	x := rng.Float64()
	y := rng.Float64()
	return r2.Vec{X: x, Y: y}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
