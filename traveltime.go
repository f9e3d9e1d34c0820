package srtk

const vs30depth = 30. // standard classification window [m]

// TravelTimeVelocity computes the travel-time (harmonic) average shear-wave
// velocity down to an arbitrary depth: the reciprocal of the depth-weighted
// average slowness. A depth of 0 defaults to the 30 m window.
func TravelTimeVelocity(thickness, sVelocity []float64, depth float64) float64 {
	if depth == 0. {
		depth = vs30depth
	}

	slowness := make([]float64, len(sVelocity))
	for i, v := range sVelocity {
		slowness[i] = 1. / v
	}

	return 1. / DepthWeightedAverage(thickness, slowness, depth)
}

// Vs30 is the 30 m travel-time average shear-wave velocity.
func Vs30(thickness, sVelocity []float64) float64 {
	return TravelTimeVelocity(thickness, sVelocity, vs30depth)
}

// SiteClassEC8 maps a Vs30 value [m/s] to its EC8 ground type.
func SiteClassEC8(vs30 float64) string {
	switch {
	case vs30 >= 800.:
		return "A"
	case vs30 >= 360.:
		return "B"
	case vs30 >= 180.:
		return "C"
	default:
		return "D"
	}
}
