package srtk

// DepthWeightedAverage computes the weighted average of a soil property at
// an arbitrary depth. thickness holds layer thicknesses in meters (half-space
// is 0.), soilProp the parallel per-layer property (e.g. slowness, density),
// depth the averaging depth in meters. Each layer contributes in proportion
// to its overlap with [0,depth]; the half-space contributes only when every
// finite layer lies fully above the cutoff.
func DepthWeightedAverage(thickness, soilProp []float64, depth float64) float64 {
	n := len(thickness)
	meanValue, totalDepth := 0., 0.

	for i := 0; i < n-1; i++ {
		tk, sp := thickness[i], soilProp[i]
		if tk+totalDepth < depth {
			meanValue += tk * sp / depth
		} else {
			meanValue += (depth - totalDepth) * sp / depth // cutoff falls within this layer
			break
		}
		totalDepth += tk
	}

	s := 0.
	for i := 0; i < n-1; i++ {
		s += thickness[i]
	}
	if totalDepth == s { // exact equality: true only when the loop consumed every finite layer
		meanValue += (depth - totalDepth) * soilProp[n-1] / depth
	}

	return meanValue
}
