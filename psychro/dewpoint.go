// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "math"

const (
	// Central difference step in °C for the numerical derivative of the
	// Buck equation.
	derivativeStep = 0.01

	// Newton updates below this derivative magnitude would be numerically
	// unstable, so the iteration stops there.
	flatDerivative = 1e-8

	dewPointIterations = 8
)

// DewPoint calculates the dew-point temperature in Celsius for a given
// vapor pressure in kPa by inverting the Buck equation with Newton
// iteration. Returns NaN if the vapor pressure is not positive (no
// measurable moisture, no defined dew point).
//
// The initial guess is a Magnus-type closed-form inversion shifted by -5 °C,
// which puts the full supported range inside the convergence basin. The
// iteration count is fixed instead of residual-driven: 8 steps reach double
// precision over the supported range and terminate unconditionally.
func DewPoint(vaporPressureKPa float64) float64 {
	if vaporPressureKPa <= 0 {
		return math.NaN()
	}

	lnRatio := math.Log(vaporPressureKPa / 0.61121)
	t := 257.14*lnRatio/(18.678-lnRatio) - 5.0

	for i := 0; i < dewPointIterations; i++ {
		f := SaturationVaporPressure(t) - vaporPressureKPa
		df := SaturationVaporPressure(t+derivativeStep) - SaturationVaporPressure(t-derivativeStep)
		df /= 2 * derivativeStep
		if math.Abs(df) < flatDerivative {
			break
		}
		t -= f / df
	}
	return t
}
