// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

// MmHgPerKPa is the number of millimeters of mercury per kilopascal.
const MmHgPerKPa = 7.50061683

// KPaToMmHg converts a pressure from kilopascal to millimeters of mercury.
// The conversion is for display only; all computations in this package work
// in kPa.
func KPaToMmHg(pressureKPa float64) float64 {
	return pressureKPa * MmHgPerKPa
}

// MmHgToKPa converts a pressure from millimeters of mercury to kilopascal.
func MmHgToKPa(pressureMmHg float64) float64 {
	return pressureMmHg / MmHgPerKPa
}

// PaToKPa converts a pressure from pascal to kilopascal. Sensor drivers
// report pascal.
func PaToKPa(pressurePa float64) float64 {
	return pressurePa / 1000.0
}
