package srtk

// SiteKappa computes the site attenuation parameter kappa(0) of a soil
// profile down to an arbitrary depth. sVelocity holds shear-wave velocities
// in m/s, sQuality the adimensional quality factors. A depth of 0 averages
// over the whole profile, down to the last layer interface.
func SiteKappa(thickness, sVelocity, sQuality []float64, depth float64) float64 {
	if depth == 0. {
		for _, tk := range thickness {
			depth += tk
		}
	}

	layerKappa := make([]float64, len(sVelocity))
	for i, v := range sVelocity {
		layerKappa[i] = depth / (v * sQuality[i])
	}

	return DepthWeightedAverage(thickness, layerKappa, depth)
}
