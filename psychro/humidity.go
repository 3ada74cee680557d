// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "math"

const (
	gasConstant      = 8.31446261815324             // molar gas constant R in kg * m² / (s² * K * mol)
	molarMassWater   = 0.01801528                   // molar mass of water M(H2O) in kg / mol
	gasConstantWater = gasConstant / molarMassWater // specific gas constant for water vapor in m² / (s² * K)

	// Ratio of the molar masses of water vapor and dry air.
	molarMassRatio = 0.62198
)

// RelativeHumidity calculates the relative humidity in percent from the
// actual vapor pressure and the saturation vapor pressure at dry-bulb
// temperature, both in kPa. Returns NaN if the saturation pressure is not
// positive, which cannot happen for temperatures above -257.14 °C.
func RelativeHumidity(vaporPressureKPa float64, saturationPressureKPa float64) float64 {
	if saturationPressureKPa <= 0 {
		return math.NaN()
	}
	return vaporPressureKPa / saturationPressureKPa * 100.0
}

// HumidityRatio calculates the humidity ratio (mixing ratio) omega in
// kg water / kg dry air from the actual vapor pressure and the barometric
// pressure, both in kPa. The denominator is floored at 1e-9 so the ratio
// stays finite as e approaches P (saturation at total pressure).
func HumidityRatio(vaporPressureKPa float64, pressureKPa float64) float64 {
	return molarMassRatio * vaporPressureKPa / math.Max(1e-9, pressureKPa-vaporPressureKPa)
}

// SpecificHumidity calculates the specific humidity q = omega / (1 + omega)
// in kg water / kg moist air from the humidity ratio.
func SpecificHumidity(humidityRatio float64) float64 {
	return humidityRatio / (1.0 + humidityRatio)
}

// AbsoluteHumidity calculates the absolute humidity in g/m³ for a given
// relative humidity in percent and temperature in Celsius.
//
// The humidity definitions and the ideal gas law were used for deriving the formula:
// 1. absoluteHumidity = massWaterVapor / VolumeAirAndWater
// 2. relativeHumidity = partialVaporPressureWater / saturationVaporPressureWater
// 3. partialVaporPressureWater = (massWaterVapor / VolumeAirAndWater) * gasConstantWater * temperatureKelvin
//
// Resulting formula:
// absoluteHumidity = relativeHumidity * saturationVaporPressureWater / (gasConstantWater * temperatureKelvin)
func AbsoluteHumidity(relativeHumidity float64, temperatureCelsius float64) float64 {
	temperatureKelvin := temperatureCelsius + 273.15
	saturationPa := 1000 * SaturationVaporPressure(temperatureCelsius)
	return 1000 * (relativeHumidity / 100.0) * saturationPa / (gasConstantWater * temperatureKelvin)
}
