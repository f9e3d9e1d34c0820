package srtk

import (
	"fmt"
	"math/rand"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	"github.com/maseology/objfunc"
)

// FitVelocityProfile calibrates per-layer shear-wave velocities to observed
// travel-time average velocities vszObs [m/s] at the given depths [m].
// Velocities are searched log-linearly within [vmin,vmax] by SCE, minimizing
// the RMSE misfit. Returns the fitted velocities and the final misfit.
func FitVelocityProfile(rng *rand.Rand, thickness, depths, vszObs []float64, vmin, vmax float64, print bool) ([]float64, float64) {
	nl := len(thickness)
	smpl := func(u []float64) []float64 {
		v := make([]float64, nl)
		for j := range v {
			v[j] = mmaths.LogLinearTransform(vmin, vmax, u[j])
		}
		return v
	}
	gen := func(u []float64) float64 {
		v := smpl(u)
		sim := make([]float64, len(depths))
		for i, d := range depths {
			sim[i] = TravelTimeVelocity(thickness, v, d)
		}
		return objfunc.RMSE(vszObs, sim)
	}

	if print {
		fmt.Println(" optimizing..")
	}
	uFinal, _ := glbopt.SCE(16, nl, rng, gen, true)

	vFinal := smpl(uFinal)
	of := gen(uFinal)
	if print {
		fmt.Printf("\nfinal velocities: %v (rmse %f)\n", vFinal, of)
	}
	return vFinal, of
}
