package srtk

import (
	"math/rand"
	"sync"

	"github.com/maseology/mmaths"
	"github.com/maseology/montecarlo/smpln"
)

// SampleKappa draws n kappa(0) realizations from per-layer shear-wave
// velocity and quality ranges using a latin hypercube plan, two dimensions
// per layer. Ranges are sampled log-linearly.
func SampleKappa(rng *rand.Rand, thickness, vmin, vmax, qmin, qmax []float64, depth float64, n int) []float64 {
	nl := len(thickness)
	sp := smpln.NewLHC(rng, n, 2*nl, false)

	kappas := make([]float64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for k := 0; k < n; k++ {
		go func(k int) {
			v, q := make([]float64, nl), make([]float64, nl)
			for j := 0; j < nl; j++ {
				v[j] = mmaths.LogLinearTransform(vmin[j], vmax[j], sp.U[j][k])
				q[j] = mmaths.LogLinearTransform(qmin[j], qmax[j], sp.U[nl+j][k])
			}
			kappas[k] = SiteKappa(thickness, v, q, depth)
			wg.Done()
		}(k)
	}
	wg.Wait()

	return kappas
}
