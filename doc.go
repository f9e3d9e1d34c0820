// Package srtk derives average soil parameters from layered shear-wave
// profiles: depth-weighted property averages, travel-time average velocities,
// the quarter-wavelength proxy and the site attenuation parameter kappa(0).
//
// Profiles are ordered top-to-bottom as parallel float64 slices; the last
// layer is the half-space and carries a thickness of 0. Callers are
// responsible for constructing consistent arrays (matching lengths, meters,
// m/s, adimensional quality factors); no validation is performed here.
package srtk
