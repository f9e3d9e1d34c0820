package srtk

import (
	"math"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
)

// QwlDepth solves for the quarter-wavelength depth of a profile at a given
// frequency [Hz]: the depth z where z = VsAvg(z)/(4f). Returns the depth and
// the travel-time average velocity at that depth.
func QwlDepth(thickness, sVelocity []float64, frequency float64) (float64, float64) {
	n := len(thickness)
	zmax := 0.
	for i := 0; i < n-1; i++ {
		zmax += thickness[i]
	}
	zmax += sVelocity[n-1] / (2. * frequency) // search window, generous past the half-space quarter-wavelength

	smpl := func(u float64) float64 {
		return mmaths.LinearTransform(0.01, zmax, u)
	}
	opt := func(u float64) float64 {
		z := smpl(u)
		return math.Abs(z - TravelTimeVelocity(thickness, sVelocity, z)/(4.*frequency))
	}

	u, _ := glbopt.Fibonacci(opt)
	z := smpl(u)
	return z, TravelTimeVelocity(thickness, sVelocity, z)
}
