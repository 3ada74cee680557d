// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	report, err := buildReport(30.0, 24.0, 101.325, "kPa")
	require.NoError(t, err)

	wantedLines := []string{
		"Relative humidity:      60.6 %",
		"Humidity ratio:         0.01620 kg/kg dry air",
		"Specific humidity:      0.01594 kg/kg moist air",
		"Saturation pressure:    4.245 kPa",
		"Actual vapor pressure:  2.572 kPa",
		"Dew point:              21.5 °C",
	}
	for _, line := range wantedLines {
		assert.Contains(t, report, line)
	}
}

func TestBuildReportMmHg(t *testing.T) {
	// 760 mmHg is one standard atmosphere; results must match the kPa
	// report, with pressures displayed in mmHg.
	report, err := buildReport(30.0, 24.0, 760.0, "mmHg")
	require.NoError(t, err)

	assert.Contains(t, report, "Barometric pressure:    760.000 mmHg")
	assert.Contains(t, report, "Relative humidity:      60.6 %")
	assert.Contains(t, report, "Actual vapor pressure:  19.293 mmHg")
}

func TestBuildReportDryAir(t *testing.T) {
	// A wet-bulb depression this large clamps the vapor pressure to zero,
	// leaving no defined dew point.
	report, err := buildReport(40.0, 0.0, 101.325, "kPa")
	require.NoError(t, err)

	assert.Contains(t, report, "Relative humidity:      0.0 %")
	assert.Contains(t, report, "Dew point:              n/a")
}

func TestBuildReportInvalidUnit(t *testing.T) {
	_, err := buildReport(30.0, 24.0, 1.0, "bar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pressure unit 'bar'")
}

func TestBuildReportWetBulbAboveDryBulb(t *testing.T) {
	_, err := buildReport(20.0, 25.0, 101.325, "kPa")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "wet-bulb temperature"))
}
