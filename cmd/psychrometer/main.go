// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

// psychrometer computes relative humidity, humidity ratio, specific
// humidity, and dew point from dry-bulb temperature, wet-bulb temperature,
// and barometric pressure.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	dryBulb := pflag.Float64("dry-bulb", 30.0, "Dry-bulb temperature in °C.")
	wetBulb := pflag.Float64("wet-bulb", 24.0, "Wet-bulb temperature in °C.")
	pressure := pflag.Float64("pressure", 101.325, "Barometric pressure in the selected unit.")
	unit := pflag.String("pressure-unit", "kPa", "Pressure unit for input and display: kPa or mmHg.")
	pflag.Parse()

	// The pressure default is in kPa; switch it to one standard atmosphere
	// in mmHg when the unit changes but the pressure does not.
	if *unit == "mmHg" && !pflag.CommandLine.Changed("pressure") {
		*pressure = 760.0
	}

	report, err := buildReport(*dryBulb, *wetBulb, *pressure, *unit)
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Print(report)
}
