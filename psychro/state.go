// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "fmt"

// Measurement is one psychrometer reading: dry-bulb and wet-bulb
// temperatures in Celsius and barometric pressure in kPa.
type Measurement struct {
	DryBulb  float64
	WetBulb  float64
	Pressure float64
}

// Properties holds every quantity derived from a Measurement.
type Properties struct {
	VaporPressure      float64 // actual vapor pressure e in kPa
	SaturationPressure float64 // saturation vapor pressure at dry-bulb in kPa
	RelativeHumidity   float64 // percent
	HumidityRatio      float64 // kg water / kg dry air
	SpecificHumidity   float64 // kg water / kg moist air
	DewPoint           float64 // Celsius, NaN if the air holds no moisture
}

// Compute derives all psychrometric properties from the measurement. It
// fails if the wet-bulb temperature exceeds the dry-bulb temperature, a
// physically invalid state that the bare functions would silently clamp.
func (m Measurement) Compute() (Properties, error) {
	var properties Properties
	if m.WetBulb > m.DryBulb {
		return properties, fmt.Errorf(
			"wet-bulb temperature (%g °C) must be less than or equal to dry-bulb temperature (%g °C)",
			m.WetBulb, m.DryBulb)
	}

	properties.VaporPressure = ActualVaporPressure(m.DryBulb, m.WetBulb, m.Pressure)
	properties.SaturationPressure = SaturationVaporPressure(m.DryBulb)
	properties.RelativeHumidity = RelativeHumidity(properties.VaporPressure, properties.SaturationPressure)
	properties.HumidityRatio = HumidityRatio(properties.VaporPressure, m.Pressure)
	properties.SpecificHumidity = SpecificHumidity(properties.HumidityRatio)
	properties.DewPoint = DewPoint(properties.VaporPressure)
	return properties, nil
}
