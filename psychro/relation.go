// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "math"

// PsychrometricCoefficient calculates the psychrometric coefficient
// gamma = A * P in kPa/°C for a well-ventilated sling psychrometer, with
// A = 0.00066 * (1 + 0.00115 * Twb) per kPa of barometric pressure.
func PsychrometricCoefficient(wetBulbCelsius float64, pressureKPa float64) float64 {
	a := 0.00066 * (1 + 0.00115*wetBulbCelsius)
	return a * pressureKPa
}

// ActualVaporPressure calculates the actual (partial) vapor pressure of
// water in kPa from dry-bulb temperature, wet-bulb temperature, and
// barometric pressure:
//
//	e = e_s(Twb) - gamma * (Tdb - Twb)
//
// The result is clamped to [0, e_s(Tdb)]. The linear wet-bulb depression
// approximation can overshoot these physical limits for extreme or
// inconsistent inputs, so negative and super-saturated pressures never
// propagate downstream. Twb <= Tdb is not checked here; callers that accept
// user input must validate it (see Measurement.Compute).
func ActualVaporPressure(dryBulbCelsius, wetBulbCelsius, pressureKPa float64) float64 {
	saturationAtWetBulb := SaturationVaporPressure(wetBulbCelsius)
	gamma := PsychrometricCoefficient(wetBulbCelsius, pressureKPa)
	e := saturationAtWetBulb - gamma*(dryBulbCelsius-wetBulbCelsius)
	e = math.Max(0.0, e)
	return math.Min(e, SaturationVaporPressure(dryBulbCelsius))
}
