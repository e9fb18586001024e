// Package plot samples f(x) = √( (x+1) / (x²+cx+b) ) = √( 1/(x+c−1) )
// near the removable discontinuity at x = −1, for the solution view.
// Sampling is a pure function of the problem coefficients; a side
// table memoizes it per (a, c, b) with no staleness risk because
// problems are immutable.
package plot

import (
	"math"

	"github.com/abhisek/limitz/internal/problem"
)

// Window and density match the original visualization: x ∈ [−2, 0],
// 200 raw samples, points within holeRadius of x = −1 dropped so the
// hole is visible.
const (
	WindowMin  = -2.0
	WindowMax  = 0.0
	numSamples = 200
	holeRadius = 0.05
)

// Point is one sample of the simplified curve.
type Point struct {
	X float64
	Y float64
}

// Curve is the sampled plot for one problem.
type Curve struct {
	// Points is the curve with the neighborhood of x = −1 removed.
	Points []Point

	// Hole is where the hollow marker goes: (−1, limit value).
	Hole Point
}

// Sample computes the curve for p.
func Sample(p problem.Problem) Curve {
	c := float64(p.C)
	pts := make([]Point, 0, numSamples)
	step := (WindowMax - WindowMin) / float64(numSamples-1)
	for i := 0; i < numSamples; i++ {
		x := WindowMin + float64(i)*step
		if math.Abs(x+1) <= holeRadius {
			continue
		}
		pts = append(pts, Point{X: x, Y: math.Sqrt(1 / (x + c - 1))})
	}

	limit, _ := p.Target.Float64()
	return Curve{
		Points: pts,
		Hole:   Point{X: -1, Y: limit},
	}
}
