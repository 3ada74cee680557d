// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"fmt"
	"math"
	"strings"

	"psychrometer/psychro"
)

// buildReport computes all psychrometric properties for the given inputs and
// renders them for the terminal. The pressure is given in the selected unit
// (kPa or mmHg) and converted to kPa before computing; displayed pressures
// use the selected unit again.
func buildReport(dryBulb, wetBulb, pressure float64, unit string) (string, error) {
	var pressureKPa float64
	switch unit {
	case "kPa":
		pressureKPa = pressure
	case "mmHg":
		pressureKPa = psychro.MmHgToKPa(pressure)
	default:
		return "", fmt.Errorf("unknown pressure unit '%s' (supported: kPa, mmHg)", unit)
	}

	measurement := psychro.Measurement{DryBulb: dryBulb, WetBulb: wetBulb, Pressure: pressureKPa}
	properties, err := measurement.Compute()
	if err != nil {
		return "", err
	}

	display := func(valueKPa float64) float64 {
		if unit == "mmHg" {
			return psychro.KPaToMmHg(valueKPa)
		}
		return valueKPa
	}

	dewPoint := "n/a (no measurable moisture)"
	if !math.IsNaN(properties.DewPoint) {
		dewPoint = fmt.Sprintf("%.1f °C", properties.DewPoint)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Inputs\n")
	fmt.Fprintf(&b, "  Dry-bulb temperature:   %.1f °C\n", dryBulb)
	fmt.Fprintf(&b, "  Wet-bulb temperature:   %.1f °C\n", wetBulb)
	fmt.Fprintf(&b, "  Barometric pressure:    %.3f %s\n", pressure, unit)
	fmt.Fprintf(&b, "Results\n")
	fmt.Fprintf(&b, "  Relative humidity:      %.1f %%\n", properties.RelativeHumidity)
	fmt.Fprintf(&b, "  Humidity ratio:         %.5f kg/kg dry air\n", properties.HumidityRatio)
	fmt.Fprintf(&b, "  Specific humidity:      %.5f kg/kg moist air\n", properties.SpecificHumidity)
	fmt.Fprintf(&b, "Intermediate\n")
	fmt.Fprintf(&b, "  Saturation pressure:    %.3f %s\n", display(properties.SaturationPressure), unit)
	fmt.Fprintf(&b, "  Actual vapor pressure:  %.3f %s\n", display(properties.VaporPressure), unit)
	fmt.Fprintf(&b, "  Dew point:              %s\n", dewPoint)
	return b.String(), nil
}
