// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

// Package psychro computes psychrometric properties of moist air from
// dry-bulb temperature, wet-bulb temperature, and barometric pressure.
// All functions are pure and operate on scalars: temperatures in degrees
// Celsius, pressures in kilopascal.
package psychro

import "math"

// SaturationVaporPressure calculates the saturation vapor pressure of water
// over a liquid surface in kilopascal (kPa) with the Arden Buck equation,
// because it is the most accurate formula for room temperatures.
// See https://en.wikipedia.org/wiki/Vapour_pressure_of_water#Accuracy_of_different_formulations
//
// The temperature is given in Celsius. Good accuracy for roughly -40 °C to
// +50 °C; mathematically defined down to the pole at -257.14 °C.
func SaturationVaporPressure(temperatureCelsius float64) float64 {
	e := (18.678 - temperatureCelsius/234.5) * (temperatureCelsius / (257.14 + temperatureCelsius))
	return 0.61121 * math.Exp(e)
}
